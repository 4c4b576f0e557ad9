package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"task-manager/domain/agenda"
	"task-manager/domain/models"
	"task-manager/domain/repos"
)

var (
	ErrProjectNotFound     = errors.New("project does not exist or is not owned by this user")
	ErrNoProject           = errors.New("user has no project yet")
	ErrProjectNameRequired = errors.New("project name must not be empty")
)

type ProjectsService struct {
	Repo      *repos.ProjectsRepo
	TasksRepo *repos.TasksRepo
}

func NewProjectsService(repo *repos.ProjectsRepo, tasksRepo *repos.TasksRepo) *ProjectsService {
	return &ProjectsService{Repo: repo, TasksRepo: tasksRepo}
}

func (s *ProjectsService) Create(ctx context.Context, userId int, project models.ProjectCreate) (models.ProjectData, error) {
	name := strings.TrimSpace(project.Name)
	if name == "" {
		return models.ProjectData{}, ErrProjectNameRequired
	}
	return s.Repo.Create(ctx, userId, name)
}

// ResolveForUser returns the user's current project. Task operations require
// a resolved project first; a user without one gets ErrNoProject.
func (s *ProjectsService) ResolveForUser(ctx context.Context, userId int) (models.ProjectData, error) {
	project, found, err := s.Repo.GetCurrentByUserId(ctx, userId)
	if err != nil {
		return models.ProjectData{}, err
	}
	if !found {
		return models.ProjectData{}, ErrNoProject
	}
	return project, nil
}

// ProjectOverview is a portfolio entry: the project plus its task summary.
type ProjectOverview struct {
	Project models.ProjectData `json:"project"`
	Summary agenda.Summary     `json:"summary"`
}

// ProjectDetails extends the overview with schedule extremes for the
// portfolio modal.
type ProjectDetails struct {
	ProjectOverview
	EarliestDueDate models.DayDate `json:"earliest_due_date"`
	LastActivity    *time.Time     `json:"last_activity"`
}

func (s *ProjectsService) Portfolio(ctx context.Context, userId int, today models.DayDate) ([]ProjectOverview, error) {
	projects, err := s.Repo.ListByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	overviews := make([]ProjectOverview, 0, len(projects))
	for _, project := range projects {
		tasks, err := s.TasksRepo.ListByProject(ctx, project.Id, models.TasksFilter{})
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, ProjectOverview{
			Project: project,
			Summary: agenda.Aggregate(tasks, today),
		})
	}
	return overviews, nil
}

// Details re-verifies ownership of the requested project id before reading
// anything; a project owned by another user reports ErrProjectNotFound.
func (s *ProjectsService) Details(ctx context.Context, projectId int, userId int, today models.DayDate) (ProjectDetails, error) {
	project, found, err := s.Repo.GetByIdForUser(ctx, projectId, userId)
	if err != nil {
		return ProjectDetails{}, err
	}
	if !found {
		return ProjectDetails{}, ErrProjectNotFound
	}

	tasks, err := s.TasksRepo.ListByProject(ctx, project.Id, models.TasksFilter{})
	if err != nil {
		return ProjectDetails{}, err
	}

	details := ProjectDetails{
		ProjectOverview: ProjectOverview{
			Project: project,
			Summary: agenda.Aggregate(tasks, today),
		},
	}
	for _, task := range tasks {
		if task.DueDate.Valid && (!details.EarliestDueDate.Valid || task.DueDate.Before(details.EarliestDueDate)) {
			details.EarliestDueDate = task.DueDate
		}
		if details.LastActivity == nil || task.UpdatedAt.After(*details.LastActivity) {
			updatedAt := task.UpdatedAt
			details.LastActivity = &updatedAt
		}
	}
	return details, nil
}
