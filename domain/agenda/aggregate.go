package agenda

import (
	"math"
	"sort"

	"task-manager/domain/models"
)

type Summary struct {
	TotalTasks           int     `json:"total_tasks"`
	CompletedTasks       int     `json:"completed_tasks"`
	InProgressTasks      int     `json:"in_progress_tasks"`
	PendingTasks         int     `json:"pending_tasks"`
	CompletionPercentage float64 `json:"completion_percentage"`
	OverdueCount         int     `json:"overdue_count"`
}

// Aggregate computes dashboard counters over the task list. A status string
// outside the three known values counts toward TotalTasks only; older rows
// may predate status validation. An empty list yields the zero Summary.
func Aggregate(tasks []models.TaskData, today models.DayDate) Summary {
	var summary Summary

	for _, task := range tasks {
		summary.TotalTasks++
		switch task.Status {
		case models.StatusCompleted:
			summary.CompletedTasks++
		case models.StatusInProgress:
			summary.InProgressTasks++
		case models.StatusPending:
			summary.PendingTasks++
		}
		if IsOverdue(task, today) {
			summary.OverdueCount++
		}
	}

	if summary.TotalTasks > 0 {
		ratio := float64(summary.CompletedTasks) / float64(summary.TotalTasks)
		summary.CompletionPercentage = math.Round(ratio*1000) / 10
	}
	return summary
}

// NoDueDateLabel marks the undated group in the per-day series.
const NoDueDateLabel = "N/A"

const dayLabelFmt = "2 Jan"

type DayCount struct {
	DueDate models.DayDate `json:"due_date"`
	Label   string         `json:"label"`
	Count   int            `json:"count"`
}

// CountByDay groups non-completed tasks by due date for the "tasks per day"
// series, ordered by date ascending. Undated tasks form their own group,
// which sorts last.
func CountByDay(tasks []models.TaskData) []DayCount {
	counts := map[string]*DayCount{}

	for _, task := range tasks {
		if task.Status == models.StatusCompleted {
			continue
		}

		key := task.DueDate.String()
		entry, ok := counts[key]
		if !ok {
			label := NoDueDateLabel
			if task.DueDate.Valid {
				label = task.DueDate.Time.Format(dayLabelFmt)
			}
			entry = &DayCount{DueDate: task.DueDate, Label: label}
			counts[key] = entry
		}
		entry.Count++
	}

	series := make([]DayCount, 0, len(counts))
	for _, entry := range counts {
		series = append(series, *entry)
	}
	sort.Slice(series, func(i, j int) bool {
		a, b := series[i].DueDate, series[j].DueDate
		if a.Valid != b.Valid {
			return a.Valid
		}
		return a.Before(b)
	})
	return series
}
