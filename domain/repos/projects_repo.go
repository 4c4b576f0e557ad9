package repos

import (
	"context"
	"errors"

	"task-manager/domain/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = "id, user_id, project_name, created_at"

type ProjectsRepo struct {
	Conn *pgxpool.Pool
}

func NewProjectsRepo(conn *pgxpool.Pool) *ProjectsRepo {
	return &ProjectsRepo{Conn: conn}
}

func (repo *ProjectsRepo) Create(ctx context.Context, userId int, name string) (models.ProjectData, error) {
	rows, err := repo.Conn.Query(
		ctx,
		"INSERT INTO projects (user_id, project_name) VALUES ($1, $2) RETURNING "+projectColumns,
		userId,
		name,
	)
	if err != nil {
		return models.ProjectData{}, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToStructByPos[models.ProjectData])
}

// GetCurrentByUserId resolves the user's current project: the earliest one
// created. The schema permits several projects per user, the application
// works on exactly one.
func (repo *ProjectsRepo) GetCurrentByUserId(ctx context.Context, userId int) (project models.ProjectData, found bool, err error) {
	rows, err := repo.Conn.Query(
		ctx,
		"SELECT "+projectColumns+" FROM projects WHERE user_id = $1 ORDER BY id ASC LIMIT 1",
		userId,
	)
	if err != nil {
		return models.ProjectData{}, false, err
	}

	project, err = pgx.CollectOneRow(rows, pgx.RowToStructByPos[models.ProjectData])
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ProjectData{}, false, nil
	}
	if err != nil {
		return models.ProjectData{}, false, err
	}
	return project, true, nil
}

func (repo *ProjectsRepo) GetByIdForUser(ctx context.Context, projectId int, userId int) (project models.ProjectData, found bool, err error) {
	rows, err := repo.Conn.Query(
		ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = $1 AND user_id = $2",
		projectId,
		userId,
	)
	if err != nil {
		return models.ProjectData{}, false, err
	}

	project, err = pgx.CollectOneRow(rows, pgx.RowToStructByPos[models.ProjectData])
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ProjectData{}, false, nil
	}
	if err != nil {
		return models.ProjectData{}, false, err
	}
	return project, true, nil
}

func (repo *ProjectsRepo) ListByUserId(ctx context.Context, userId int) ([]models.ProjectData, error) {
	rows, err := repo.Conn.Query(
		ctx,
		"SELECT "+projectColumns+" FROM projects WHERE user_id = $1 ORDER BY id ASC",
		userId,
	)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByPos[models.ProjectData])
}
