package repos

import (
	"context"
	"errors"

	"task-manager/domain/models"
	"task-manager/utils"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = "id, project_id, task_name, description, due_date, status, priority, color, created_at, updated_at"

// TasksRepo owns persisted task rows. Every statement that touches a task
// carries the project id in its WHERE clause, so ownership is re-checked by
// the database on each call and there is no window between a lookup and the
// write.
type TasksRepo struct {
	Conn *pgxpool.Pool
}

func NewTasksRepo(conn *pgxpool.Pool) *TasksRepo {
	return &TasksRepo{Conn: conn}
}

func (repo *TasksRepo) Create(ctx context.Context, projectId int, name string, description string, dueDate models.DayDate, status string, priority string, color string) (models.TaskData, error) {
	rows, err := repo.Conn.Query(
		ctx,
		"INSERT INTO tasks (project_id, task_name, description, due_date, status, priority, color) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING "+taskColumns,
		projectId,
		name,
		description,
		dueDate,
		status,
		priority,
		color,
	)
	if err != nil {
		return models.TaskData{}, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToStructByPos[models.TaskData])
}

func (repo *TasksRepo) GetById(ctx context.Context, taskId int, projectId int) (task models.TaskData, found bool, err error) {
	rows, err := repo.Conn.Query(
		ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = $1 AND project_id = $2",
		taskId,
		projectId,
	)
	if err != nil {
		return models.TaskData{}, false, err
	}

	task, err = pgx.CollectOneRow(rows, pgx.RowToStructByPos[models.TaskData])
	if errors.Is(err, pgx.ErrNoRows) {
		return models.TaskData{}, false, nil
	}
	if err != nil {
		return models.TaskData{}, false, err
	}
	return task, true, nil
}

// ListByProject returns the project's tasks ordered by due date ascending.
// Undated tasks sort last; ties break on newest created first.
func (repo *TasksRepo) ListByProject(ctx context.Context, projectId int, filter models.TasksFilter) ([]models.TaskData, error) {
	builder := utils.PgxSB.
		Select(taskColumns).
		From("tasks").
		Where(sq.Eq{"project_id": projectId}).
		OrderBy("due_date ASC NULLS LAST", "created_at DESC")

	if filter.Query != nil {
		builder = builder.Where(sq.ILike{"task_name": "%" + *filter.Query + "%"})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}
	if dueDate := filter.DueDate(); dueDate != nil {
		builder = builder.Where(sq.Eq{"due_date": *dueDate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := repo.Conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByPos[models.TaskData])
}

// Patch updates only the fields present in the patch, refreshing updated_at.
func (repo *TasksRepo) Patch(ctx context.Context, taskId int, projectId int, patch models.TaskPatch) (task models.TaskData, found bool, err error) {
	builder := utils.PgxSB.
		Update("tasks").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": taskId, "project_id": projectId}).
		Suffix("RETURNING " + taskColumns)

	if patch.Name != nil {
		builder = builder.Set("task_name", *patch.Name)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if dueDate := patch.DueDate(); dueDate != nil {
		builder = builder.Set("due_date", *dueDate)
	}
	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}
	if patch.Priority != nil {
		builder = builder.Set("priority", *patch.Priority)
	}
	if patch.Color != nil {
		builder = builder.Set("color", *patch.Color)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.TaskData{}, false, err
	}

	return repo.collectUpdated(ctx, query, args)
}

// Replace overwrites every mutable field of the task.
func (repo *TasksRepo) Replace(ctx context.Context, taskId int, projectId int, name string, description string, dueDate models.DayDate, status string, priority string, color string) (task models.TaskData, found bool, err error) {
	rows, err := repo.Conn.Query(
		ctx,
		"UPDATE tasks SET task_name = $1, description = $2, due_date = $3, status = $4, priority = $5, color = $6, updated_at = now() WHERE id = $7 AND project_id = $8 RETURNING "+taskColumns,
		name,
		description,
		dueDate,
		status,
		priority,
		color,
		taskId,
		projectId,
	)
	if err != nil {
		return models.TaskData{}, false, err
	}

	return repo.collectUpdatedRows(rows)
}

func (repo *TasksRepo) UpdateStatus(ctx context.Context, taskId int, projectId int, newStatus string) (task models.TaskData, found bool, err error) {
	rows, err := repo.Conn.Query(
		ctx,
		"UPDATE tasks SET status = $1, updated_at = now() WHERE id = $2 AND project_id = $3 RETURNING "+taskColumns,
		newStatus,
		taskId,
		projectId,
	)
	if err != nil {
		return models.TaskData{}, false, err
	}

	return repo.collectUpdatedRows(rows)
}

// DeleteById hard-deletes the task. Deleting an already deleted task reports
// found = false.
func (repo *TasksRepo) DeleteById(ctx context.Context, taskId int, projectId int) (found bool, err error) {
	tag, err := repo.Conn.Exec(ctx, "DELETE FROM tasks WHERE id = $1 AND project_id = $2", taskId, projectId)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (repo *TasksRepo) collectUpdated(ctx context.Context, query string, args []any) (models.TaskData, bool, error) {
	rows, err := repo.Conn.Query(ctx, query, args...)
	if err != nil {
		return models.TaskData{}, false, err
	}
	return repo.collectUpdatedRows(rows)
}

func (repo *TasksRepo) collectUpdatedRows(rows pgx.Rows) (models.TaskData, bool, error) {
	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[models.TaskData])
	if errors.Is(err, pgx.ErrNoRows) {
		return models.TaskData{}, false, nil
	}
	if err != nil {
		return models.TaskData{}, false, err
	}
	return task, true, nil
}
