package test_utils

import (
	"context"

	"task-manager/domain/models"
	"task-manager/domain/repos"
)

func Map[T, V any](ts []T, fn func(T) V) []V {
	result := make([]V, len(ts))
	for i, t := range ts {
		result[i] = fn(t)
	}
	return result
}

func MapTasksToName(tasks []models.TaskData) []string {
	return Map(tasks, func(t models.TaskData) string { return t.Name })
}

func CreateUserWithProject(
	userCred models.UserRegister,
	projectName string,
	usersRepo *repos.UsersRepo,
	projectsRepo *repos.ProjectsRepo,
) (models.UserData, models.ProjectData) {
	user, err := usersRepo.Create(context.Background(), userCred.Name, userCred.Email, userCred.Password)
	if err != nil {
		panic(err)
	}
	project, err := projectsRepo.Create(context.Background(), user.Id, projectName)
	if err != nil {
		panic(err)
	}
	return user, project
}

func CreateTasks(
	projectId int,
	tasksData []models.TaskData,
	tasksRepo *repos.TasksRepo,
) []models.TaskData {
	createdTasks := make([]models.TaskData, 0, len(tasksData))
	for _, t := range tasksData {
		status := t.Status
		if status == "" {
			status = models.StatusPending
		}
		color := t.Color
		if color == "" {
			color = models.DefaultTaskColor
		}
		createdTask, err := tasksRepo.Create(context.Background(), projectId, t.Name, t.Description, t.DueDate, status, t.Priority, color)
		if err != nil {
			panic(err)
		}
		createdTasks = append(createdTasks, createdTask)
	}
	return createdTasks
}
