package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"task-manager/app/handlers"
	"task-manager/domain/models"
	test_utils "task-manager/tests/utils"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestDashboardLive(t *testing.T) {
	env := setupTasksEnv(t)

	userCred := models.UserRegister{Name: "Tester", Email: "live@test.com", Password: "whatever"}
	_, project := test_utils.CreateUserWithProject(userCred, "Live Project", env.usersRepo, env.projectsRepo)
	token, _ := env.tp.Provide(userCred.Email)

	today := models.DayOf(time.Now())
	test_utils.CreateTasks(project.Id, []models.TaskData{
		{Name: "Task 1", DueDate: today},
		{Name: "Task 2", DueDate: today, Status: models.StatusInProgress},
		{Name: "Task 3"},
		{Name: "Another 3", DueDate: today.AddDays(-3), Status: models.StatusCompleted},
	}, env.tasksRepo)

	u := &url.URL{
		Scheme: "ws",
		Host:   env.server.URL[7:],
		Path:   "/dashboard/live",
	}
	header := http.Header{"Cookie": {fmt.Sprintf("auth_token=%s", token)}}

	t.Run("Bad handshake on empty cookies", func(t *testing.T) {
		_, httpResp, err := websocket.DefaultDialer.Dial(u.String(), nil)
		assert.EqualError(t, err, websocket.ErrBadHandshake.Error())
		assert.Equal(t, http.StatusUnauthorized, httpResp.StatusCode)
	})

	t.Run("Error on invalid filters", func(t *testing.T) {
		wsConn, _, err := websocket.DefaultDialer.Dial(u.String(), header)
		assert.NoError(t, err)
		defer wsConn.Close()

		// not even JSON
		err = wsConn.WriteMessage(websocket.BinaryMessage, []byte("Hello, WebSocket!"))
		assert.NoError(t, err)
		_, message, err := wsConn.ReadMessage()
		assert.NoError(t, err)
		assert.Contains(t, string(message), "error")

		// random status
		randomStatus := "random"
		tasksFilter := models.TasksFilter{Status: &randomStatus}
		reqBytes, _ := json.Marshal(tasksFilter)
		err = wsConn.WriteMessage(websocket.BinaryMessage, reqBytes)
		assert.NoError(t, err)
		_, message, err = wsConn.ReadMessage()
		assert.NoError(t, err)
		assert.Contains(t, string(message), "error")
	})

	t.Run("Snapshot per filter message", func(t *testing.T) {
		wsConn, _, err := websocket.DefaultDialer.Dial(u.String(), header)
		assert.NoError(t, err)
		defer wsConn.Close()

		// empty filter, whole project
		reqBytes, _ := json.Marshal(models.TasksFilter{})
		assert.NoError(t, wsConn.WriteMessage(websocket.BinaryMessage, reqBytes))
		_, resp, err := wsConn.ReadMessage()
		assert.NoError(t, err)

		var snapshot handlers.DashboardSnapshot
		assert.NoError(t, json.Unmarshal(resp, &snapshot), string(resp))
		assert.Equal(t, 4, snapshot.Summary.TotalTasks)
		assert.Equal(t, 1, snapshot.Summary.CompletedTasks)
		assert.Equal(t, 1, snapshot.Summary.InProgressTasks)
		assert.Equal(t, 2, snapshot.Summary.PendingTasks)
		assert.Equal(t, 0, snapshot.Summary.OverdueCount)
		assert.Equal(t, 25.0, snapshot.Summary.CompletionPercentage)
		assert.ElementsMatch(t, []string{"Task 1", "Task 2"}, test_utils.MapTasksToName(snapshot.Agenda.DueToday))
		assert.Equal(t, []string{"Task 3"}, test_utils.MapTasksToName(snapshot.Agenda.Unscheduled))
		assert.Equal(t, []string{"Another 3"}, test_utils.MapTasksToName(snapshot.Agenda.DueThisWeek))

		// status filter narrows the snapshot
		status := models.StatusPending
		reqBytes, _ = json.Marshal(models.TasksFilter{Status: &status})
		assert.NoError(t, wsConn.WriteMessage(websocket.BinaryMessage, reqBytes))
		_, resp, err = wsConn.ReadMessage()
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(resp, &snapshot))
		assert.Equal(t, 2, snapshot.Summary.TotalTasks)
		assert.Equal(t, 2, snapshot.Summary.PendingTasks)
	})
}
