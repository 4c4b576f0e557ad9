// Package agenda buckets a project's tasks into temporal categories and
// computes aggregate statistics for dashboards. It is pure: no I/O, no
// clock access, total over any task list. The reference date is always
// passed in by the caller.
package agenda

import "task-manager/domain/models"

type Bucket string

const (
	Unscheduled Bucket = "unscheduled"
	DueToday    Bucket = "due_today"
	DueThisWeek Bucket = "due_this_week"
	Later       Bucket = "later"
)

// HorizonDays is the DueThisWeek cutoff, inclusive: today + 7 days.
const HorizonDays = 7

// BucketOf assigns a task exactly one bucket. Rules are evaluated in order:
// no due date, due today, due on or before the horizon, later. A past due
// date satisfies the horizon rule, so overdue tasks land in DueThisWeek;
// "overdue" itself is a derived property, see IsOverdue.
func BucketOf(task models.TaskData, today models.DayDate) Bucket {
	horizon := today.AddDays(HorizonDays)

	switch {
	case !task.DueDate.Valid:
		return Unscheduled
	case task.DueDate.Equal(today):
		return DueToday
	case !task.DueDate.After(horizon):
		return DueThisWeek
	default:
		return Later
	}
}

// Agenda is the four-way partition of a task list. Within each bucket tasks
// keep the order they arrived in.
type Agenda struct {
	DueToday    []models.TaskData `json:"due_today"`
	DueThisWeek []models.TaskData `json:"due_this_week"`
	Later       []models.TaskData `json:"later"`
	Unscheduled []models.TaskData `json:"unscheduled"`
}

func Classify(tasks []models.TaskData, today models.DayDate) Agenda {
	agenda := Agenda{
		DueToday:    []models.TaskData{},
		DueThisWeek: []models.TaskData{},
		Later:       []models.TaskData{},
		Unscheduled: []models.TaskData{},
	}

	for _, task := range tasks {
		switch BucketOf(task, today) {
		case DueToday:
			agenda.DueToday = append(agenda.DueToday, task)
		case DueThisWeek:
			agenda.DueThisWeek = append(agenda.DueThisWeek, task)
		case Later:
			agenda.Later = append(agenda.Later, task)
		case Unscheduled:
			agenda.Unscheduled = append(agenda.Unscheduled, task)
		}
	}
	return agenda
}

// IsOverdue reports whether the task has a due date in the past and is not
// completed. Completed tasks are never overdue.
func IsOverdue(task models.TaskData, today models.DayDate) bool {
	return task.DueDate.Valid &&
		task.DueDate.Before(today) &&
		task.Status != models.StatusCompleted
}
