package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"task-manager/app/middlewares"
	"task-manager/app/routes"
	"task-manager/db"
	"task-manager/domain/agenda"
	"task-manager/domain/models"
	"task-manager/domain/repos"
	"task-manager/domain/services"
	test_utils "task-manager/tests/utils"
	"task-manager/utils"

	"github.com/stretchr/testify/assert"
)

type tasksTestEnv struct {
	server       *httptest.Server
	tp           *services.JwtTokenProvider
	usersRepo    *repos.UsersRepo
	projectsRepo *repos.ProjectsRepo
	tasksRepo    *repos.TasksRepo
}

func setupTasksEnv(t *testing.T) *tasksTestEnv {
	r := routes.SetupDefaultRouter()

	conn := db.ConnectDB()

	tp := services.NewJwtTokenProvider()
	usersRepo := repos.NewUsersRepo(conn)

	projectsRepo := repos.NewProjectsRepo(conn)
	tasksRepo := repos.NewTasksRepo(conn)
	tasksService := services.NewTasksService(tasksRepo)
	projectsService := services.NewProjectsService(projectsRepo, tasksRepo)

	jwtHeaderAuth := middlewares.NewJwtHeaderAuthenticator(tp, usersRepo)
	jwtCookieAuth := middlewares.NewJwtCookieAuthenticator(tp, usersRepo)
	projectResolver := middlewares.NewProjectResolver(projectsService, jwtHeaderAuth.AuthCtxKey)

	utils.RegisterValidators()
	routes.RegisterProjectsRoutes(r, jwtHeaderAuth, projectsService)
	routes.RegisterTasksRoutes(r, jwtHeaderAuth, projectResolver, tasksService)
	routes.RegisterDashboardRoutes(r, jwtHeaderAuth, jwtCookieAuth, projectResolver, tasksService)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	t.Cleanup(func() { utils.TruncateTables(conn, []string{"tasks", "projects", "users"}) })

	return &tasksTestEnv{
		server:       server,
		tp:           tp,
		usersRepo:    usersRepo,
		projectsRepo: projectsRepo,
		tasksRepo:    tasksRepo,
	}
}

func (env *tasksTestEnv) do(t *testing.T, method string, path string, token string, payload any) *http.Response {
	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		data, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, env.server.URL+path, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	return resp
}

func decodeTask(t *testing.T, resp *http.Response) models.TaskData {
	var task models.TaskData
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&task))
	return task
}

func TestTasksCRUD(t *testing.T) {
	env := setupTasksEnv(t)

	userCred := models.UserRegister{Name: "Tester", Email: "tester@test.com", Password: "whatever"}
	_, project := test_utils.CreateUserWithProject(userCred, "My Project", env.usersRepo, env.projectsRepo)
	token, _ := env.tp.Provide(userCred.Email)

	dueStr := time.Now().AddDate(0, 0, 3).Format(models.DayDateFmt)

	t.Run("Create rejects empty name", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/tasks/", token, map[string]any{"task_name": "   ", "due_date": dueStr})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Create rejects malformed due date and unknown status", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/tasks/", token, map[string]any{"task_name": "x", "due_date": "soon"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = env.do(t, http.MethodPost, "/tasks/", token, map[string]any{"task_name": "x", "status": "Blocked"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	var created models.TaskData

	t.Run("Create and read back", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/tasks/", token, map[string]any{
			"task_name":   "  Write report  ",
			"description": "quarterly numbers",
			"due_date":    dueStr,
			"color":       "#ff6b6b",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		created = decodeTask(t, resp)

		assert.Equal(t, "Write report", created.Name)
		assert.Equal(t, models.StatusPending, created.Status)
		assert.Equal(t, "#ff6b6b", created.Color)
		assert.Equal(t, dueStr, created.DueDate.String())

		listResp := env.do(t, http.MethodGet, "/tasks/", token, nil)
		assert.Equal(t, http.StatusOK, listResp.StatusCode)
		var tasks []models.TaskData
		assert.NoError(t, json.NewDecoder(listResp.Body).Decode(&tasks))
		assert.Equal(t, []string{"Write report"}, test_utils.MapTasksToName(tasks))
	})

	t.Run("Undated tasks sort last", func(t *testing.T) {
		test_utils.CreateTasks(project.Id, []models.TaskData{{Name: "Someday"}}, env.tasksRepo)

		listResp := env.do(t, http.MethodGet, "/tasks/", token, nil)
		var tasks []models.TaskData
		assert.NoError(t, json.NewDecoder(listResp.Body).Decode(&tasks))
		assert.Equal(t, []string{"Write report", "Someday"}, test_utils.MapTasksToName(tasks))
	})

	t.Run("Patch changes only submitted fields", func(t *testing.T) {
		resp := env.do(t, http.MethodPatch, fmt.Sprintf("/tasks/%d", created.Id), token, map[string]any{"description": "final numbers"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		patched := decodeTask(t, resp)
		assert.Equal(t, "final numbers", patched.Description)
		assert.Equal(t, created.Name, patched.Name)
		assert.Equal(t, created.Color, patched.Color)
		assert.Equal(t, dueStr, patched.DueDate.String())
	})

	t.Run("Patch with no fields is rejected", func(t *testing.T) {
		resp := env.do(t, http.MethodPatch, fmt.Sprintf("/tasks/%d", created.Id), token, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Replace overwrites everything", func(t *testing.T) {
		resp := env.do(t, http.MethodPut, fmt.Sprintf("/tasks/%d", created.Id), token, map[string]any{
			"task_name": "Write report v2",
			"status":    models.StatusInProgress,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		replaced := decodeTask(t, resp)
		assert.Equal(t, "Write report v2", replaced.Name)
		assert.Equal(t, models.StatusInProgress, replaced.Status)
		assert.Equal(t, "", replaced.Description)
		assert.False(t, replaced.DueDate.Valid)
	})

	t.Run("Status update", func(t *testing.T) {
		resp := env.do(t, http.MethodPatch, fmt.Sprintf("/tasks/%d/status", created.Id), token, map[string]any{"status": models.StatusCompleted})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, models.StatusCompleted, decodeTask(t, resp).Status)
	})

	t.Run("Unknown task id is not found", func(t *testing.T) {
		resp := env.do(t, http.MethodPatch, "/tasks/999999", token, map[string]any{"task_name": "nope"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Delete, and delete again", func(t *testing.T) {
		resp := env.do(t, http.MethodDelete, fmt.Sprintf("/tasks/%d", created.Id), token, nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = env.do(t, http.MethodDelete, fmt.Sprintf("/tasks/%d", created.Id), token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestTasksOwnership(t *testing.T) {
	env := setupTasksEnv(t)

	ownerCred := models.UserRegister{Name: "Owner", Email: "owner@test.com", Password: "whatever"}
	_, ownerProject := test_utils.CreateUserWithProject(ownerCred, "Owner Project", env.usersRepo, env.projectsRepo)
	ownerTasks := test_utils.CreateTasks(ownerProject.Id, []models.TaskData{{Name: "Private"}}, env.tasksRepo)

	intruderCred := models.UserRegister{Name: "Intruder", Email: "intruder@test.com", Password: "whatever"}
	test_utils.CreateUserWithProject(intruderCred, "Intruder Project", env.usersRepo, env.projectsRepo)
	intruderToken, _ := env.tp.Provide(intruderCred.Email)

	t.Run("Cross-project update is not found and leaves the task untouched", func(t *testing.T) {
		resp := env.do(t, http.MethodPatch, fmt.Sprintf("/tasks/%d", ownerTasks[0].Id), intruderToken, map[string]any{"task_name": "Hijacked"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		ownerToken, _ := env.tp.Provide(ownerCred.Email)
		listResp := env.do(t, http.MethodGet, "/tasks/", ownerToken, nil)
		var tasks []models.TaskData
		assert.NoError(t, json.NewDecoder(listResp.Body).Decode(&tasks))
		assert.Equal(t, []string{"Private"}, test_utils.MapTasksToName(tasks))
	})

	t.Run("Cross-project delete is not found", func(t *testing.T) {
		resp := env.do(t, http.MethodDelete, fmt.Sprintf("/tasks/%d", ownerTasks[0].Id), intruderToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("User without a project is forbidden", func(t *testing.T) {
		lonerCred := models.UserRegister{Name: "Loner", Email: "loner@test.com", Password: "whatever"}
		loner, err := env.usersRepo.Create(context.Background(), lonerCred.Name, lonerCred.Email, lonerCred.Password)
		assert.NoError(t, err)
		assert.NotZero(t, loner.Id)

		lonerToken, _ := env.tp.Provide(lonerCred.Email)
		resp := env.do(t, http.MethodGet, "/tasks/", lonerToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		// creating a project unlocks task routes
		resp = env.do(t, http.MethodPost, "/project/", lonerToken, map[string]any{"project_name": "First Project"})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = env.do(t, http.MethodGet, "/tasks/", lonerToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestAgendaAndPortfolio(t *testing.T) {
	env := setupTasksEnv(t)

	userCred := models.UserRegister{Name: "Tester", Email: "agenda@test.com", Password: "whatever"}
	_, project := test_utils.CreateUserWithProject(userCred, "Agenda Project", env.usersRepo, env.projectsRepo)
	token, _ := env.tp.Provide(userCred.Email)

	day := func(offset int) models.DayDate { return models.DayOf(time.Now().AddDate(0, 0, offset)) }
	test_utils.CreateTasks(project.Id, []models.TaskData{
		{Name: "Today", DueDate: day(0)},
		{Name: "Past", DueDate: day(-5)},
		{Name: "This week", DueDate: day(6)},
		{Name: "Later", DueDate: day(20)},
		{Name: "Someday"},
	}, env.tasksRepo)

	t.Run("Agenda buckets", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/tasks/agenda", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result agenda.Agenda
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, []string{"Today"}, test_utils.MapTasksToName(result.DueToday))
		assert.Equal(t, []string{"Past", "This week"}, test_utils.MapTasksToName(result.DueThisWeek))
		assert.Equal(t, []string{"Later"}, test_utils.MapTasksToName(result.Later))
		assert.Equal(t, []string{"Someday"}, test_utils.MapTasksToName(result.Unscheduled))
	})

	t.Run("Dashboard summary", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/dashboard/summary", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var summary agenda.Summary
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
		assert.Equal(t, agenda.Summary{
			TotalTasks:   5,
			PendingTasks: 5,
			OverdueCount: 1,
		}, summary)
	})

	t.Run("Dashboard by-day excludes nothing but completed", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/dashboard/by-day", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var series []agenda.DayCount
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&series))
		assert.Len(t, series, 5)
		assert.Equal(t, agenda.NoDueDateLabel, series[len(series)-1].Label)
	})

	t.Run("Portfolio overview", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/portfolio/", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var overviews []services.ProjectOverview
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&overviews))
		assert.Len(t, overviews, 1)
		assert.Equal(t, project.Id, overviews[0].Project.Id)
		assert.Equal(t, 5, overviews[0].Summary.TotalTasks)
	})

	t.Run("Cross-user project details are forbidden", func(t *testing.T) {
		otherCred := models.UserRegister{Name: "Other", Email: "other@test.com", Password: "whatever"}
		test_utils.CreateUserWithProject(otherCred, "Other Project", env.usersRepo, env.projectsRepo)
		otherToken, _ := env.tp.Provide(otherCred.Email)

		resp := env.do(t, http.MethodGet, fmt.Sprintf("/portfolio/%d", project.Id), otherToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}
