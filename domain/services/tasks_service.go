package services

import (
	"context"
	"errors"
	"strings"

	"task-manager/domain/models"
	"task-manager/domain/repos"
)

var (
	ErrTaskNotFound     = errors.New("task with given id does not exist in this project")
	ErrTaskNameRequired = errors.New("task name must not be empty")
	ErrNoFieldsToPatch  = errors.New("provide at least one field to update")
)

type TasksService struct {
	Repo *repos.TasksRepo
}

func NewTasksService(repo *repos.TasksRepo) *TasksService {
	return &TasksService{Repo: repo}
}

func (s *TasksService) Create(ctx context.Context, projectId int, task models.TaskCreate) (models.TaskData, error) {
	name := strings.TrimSpace(task.Name)
	if name == "" {
		return models.TaskData{}, ErrTaskNameRequired
	}

	status := task.Status
	if status == "" {
		status = models.StatusPending
	}
	color := task.Color
	if color == "" {
		color = models.DefaultTaskColor
	}

	return s.Repo.Create(ctx, projectId, name, task.Description, task.DueDate(), status, task.Priority, color)
}

func (s *TasksService) ListByProject(ctx context.Context, projectId int, filter models.TasksFilter) ([]models.TaskData, error) {
	return s.Repo.ListByProject(ctx, projectId, filter)
}

func (s *TasksService) GetById(ctx context.Context, taskId int, projectId int) (models.TaskData, error) {
	task, found, err := s.Repo.GetById(ctx, taskId, projectId)
	if err != nil {
		return models.TaskData{}, err
	}
	if !found {
		return models.TaskData{}, ErrTaskNotFound
	}
	return task, nil
}

// Patch applies a partial update: fields absent from the patch keep their
// stored values.
func (s *TasksService) Patch(ctx context.Context, taskId int, projectId int, patch models.TaskPatch) (models.TaskData, error) {
	if patch.Empty() {
		return models.TaskData{}, ErrNoFieldsToPatch
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return models.TaskData{}, ErrTaskNameRequired
		}
		patch.Name = &name
	}

	task, found, err := s.Repo.Patch(ctx, taskId, projectId, patch)
	if err != nil {
		return models.TaskData{}, err
	}
	if !found {
		return models.TaskData{}, ErrTaskNotFound
	}
	return task, nil
}

// Replace overwrites the whole task with the submitted fields.
func (s *TasksService) Replace(ctx context.Context, taskId int, projectId int, replace models.TaskReplace) (models.TaskData, error) {
	name := strings.TrimSpace(replace.Name)
	if name == "" {
		return models.TaskData{}, ErrTaskNameRequired
	}
	color := replace.Color
	if color == "" {
		color = models.DefaultTaskColor
	}

	task, found, err := s.Repo.Replace(ctx, taskId, projectId, name, replace.Description, replace.DueDate(), replace.Status, replace.Priority, color)
	if err != nil {
		return models.TaskData{}, err
	}
	if !found {
		return models.TaskData{}, ErrTaskNotFound
	}
	return task, nil
}

func (s *TasksService) UpdateStatus(ctx context.Context, taskId int, projectId int, newStatus string) (models.TaskData, error) {
	task, found, err := s.Repo.UpdateStatus(ctx, taskId, projectId, newStatus)
	if err != nil {
		return models.TaskData{}, err
	}
	if !found {
		return models.TaskData{}, ErrTaskNotFound
	}
	return task, nil
}

func (s *TasksService) DeleteById(ctx context.Context, taskId int, projectId int) error {
	found, err := s.Repo.DeleteById(ctx, taskId, projectId)
	if err != nil {
		return err
	}
	if !found {
		return ErrTaskNotFound
	}
	return nil
}
