package models

import "time"

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"

	DefaultTaskColor = "#4285f4"
)

type TaskStatus struct {
	Status string `json:"status" binding:"required,taskStatus"`
}

type TaskCreate struct {
	Name        string `json:"task_name" binding:"required"`
	Description string `json:"description"`
	DueDateStr  string `json:"due_date" binding:"omitempty,dayFormat"`
	Status      string `json:"status" binding:"omitempty,taskStatus"`
	Priority    string `json:"priority"`
	Color       string `json:"color" binding:"omitempty,hexColor"`
}

func (tc TaskCreate) DueDate() DayDate {
	date, _ := ParseDayDate(tc.DueDateStr)
	return date
}

// TaskPatch carries a partial update: nil fields are left unchanged.
// An empty string in DueDateStr clears the due date.
type TaskPatch struct {
	Name        *string `json:"task_name"`
	Description *string `json:"description"`
	DueDateStr  *string `json:"due_date" binding:"omitempty,dayFormat"`
	Status      *string `json:"status" binding:"omitempty,taskStatus"`
	Priority    *string `json:"priority"`
	Color       *string `json:"color" binding:"omitempty,hexColor"`
}

func (tp TaskPatch) DueDate() *DayDate {
	if tp.DueDateStr == nil {
		return nil
	}
	date, _ := ParseDayDate(*tp.DueDateStr)
	return &date
}

func (tp TaskPatch) Empty() bool {
	return tp.Name == nil && tp.Description == nil && tp.DueDateStr == nil &&
		tp.Status == nil && tp.Priority == nil && tp.Color == nil
}

// TaskReplace overwrites every mutable field, matching the edit-form flow
// where the client always submits the whole task.
type TaskReplace struct {
	Name        string `json:"task_name" binding:"required"`
	Description string `json:"description"`
	DueDateStr  string `json:"due_date" binding:"omitempty,dayFormat"`
	Status      string `json:"status" binding:"required,taskStatus"`
	Priority    string `json:"priority"`
	Color       string `json:"color" binding:"omitempty,hexColor"`
}

func (tr TaskReplace) DueDate() DayDate {
	date, _ := ParseDayDate(tr.DueDateStr)
	return date
}

type TaskData struct {
	Id          int       `json:"id"`
	ProjectId   int       `json:"-"`
	Name        string    `json:"task_name"`
	Description string    `json:"description"`
	DueDate     DayDate   `json:"due_date"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TasksFilter struct {
	Query      *string `form:"q" json:"q"`
	DueDateStr *string `form:"due_date" json:"due_date" binding:"omitempty,dayFormat"`
	Status     *string `form:"status" json:"status" binding:"omitempty,taskStatus"`
}

func (tf TasksFilter) DueDate() *DayDate {
	if tf.DueDateStr == nil {
		return nil
	}
	date, _ := ParseDayDate(*tf.DueDateStr)
	return &date
}
