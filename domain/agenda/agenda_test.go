package agenda

import (
	"testing"

	"task-manager/domain/models"

	"github.com/stretchr/testify/assert"
)

func mustDay(t *testing.T, s string) models.DayDate {
	day, err := models.ParseDayDate(s)
	assert.NoError(t, err)
	return day
}

func makeTask(t *testing.T, name string, due string, status string) models.TaskData {
	return models.TaskData{Name: name, DueDate: mustDay(t, due), Status: status}
}

func TestBucketOf(t *testing.T) {
	today := mustDay(t, "2024-06-10")

	t.Run("No due date is unscheduled", func(t *testing.T) {
		assert.Equal(t, Unscheduled, BucketOf(makeTask(t, "t", "", models.StatusPending), today))
	})

	t.Run("Due today", func(t *testing.T) {
		assert.Equal(t, DueToday, BucketOf(makeTask(t, "t", "2024-06-10", models.StatusPending), today))
	})

	t.Run("Horizon is inclusive", func(t *testing.T) {
		assert.Equal(t, DueThisWeek, BucketOf(makeTask(t, "t", "2024-06-17", models.StatusPending), today))
		assert.Equal(t, Later, BucketOf(makeTask(t, "t", "2024-06-18", models.StatusPending), today))
	})

	t.Run("Past due dates fall into this week, not a bucket of their own", func(t *testing.T) {
		assert.Equal(t, DueThisWeek, BucketOf(makeTask(t, "t", "2024-06-05", models.StatusPending), today))
		assert.Equal(t, DueThisWeek, BucketOf(makeTask(t, "t", "2023-01-01", models.StatusCompleted), today))
	})
}

func TestClassify(t *testing.T) {
	today := mustDay(t, "2024-06-10")

	tasks := []models.TaskData{
		makeTask(t, "today", "2024-06-10", models.StatusPending),
		makeTask(t, "past", "2024-06-05", models.StatusPending),
		makeTask(t, "this week", "2024-06-16", models.StatusPending),
		makeTask(t, "later", "2024-06-30", models.StatusPending),
		makeTask(t, "someday", "", models.StatusPending),
	}

	result := Classify(tasks, today)

	t.Run("Each task lands in its bucket", func(t *testing.T) {
		assert.Equal(t, []string{"today"}, taskNames(result.DueToday))
		assert.Equal(t, []string{"past", "this week"}, taskNames(result.DueThisWeek))
		assert.Equal(t, []string{"later"}, taskNames(result.Later))
		assert.Equal(t, []string{"someday"}, taskNames(result.Unscheduled))
	})

	t.Run("Partition covers the whole input with no duplicates", func(t *testing.T) {
		var all []string
		all = append(all, taskNames(result.DueToday)...)
		all = append(all, taskNames(result.DueThisWeek)...)
		all = append(all, taskNames(result.Later)...)
		all = append(all, taskNames(result.Unscheduled)...)
		assert.ElementsMatch(t, taskNames(tasks), all)
	})

	t.Run("Empty input yields empty buckets, not nils", func(t *testing.T) {
		empty := Classify(nil, today)
		assert.NotNil(t, empty.DueToday)
		assert.Empty(t, empty.DueToday)
		assert.NotNil(t, empty.Unscheduled)
	})

	t.Run("Buckets keep input order", func(t *testing.T) {
		reversed := []models.TaskData{tasks[2], tasks[1]}
		got := Classify(reversed, today)
		assert.Equal(t, []string{"this week", "past"}, taskNames(got.DueThisWeek))
	})
}

func TestIsOverdue(t *testing.T) {
	today := mustDay(t, "2024-06-10")

	t.Run("Past due and not completed", func(t *testing.T) {
		assert.True(t, IsOverdue(makeTask(t, "t", "2024-06-05", models.StatusPending), today))
		assert.True(t, IsOverdue(makeTask(t, "t", "2024-06-09", models.StatusInProgress), today))
	})

	t.Run("Completed is never overdue", func(t *testing.T) {
		assert.False(t, IsOverdue(makeTask(t, "t", "2024-06-05", models.StatusCompleted), today))
		assert.False(t, IsOverdue(makeTask(t, "t", "2000-01-01", models.StatusCompleted), today))
	})

	t.Run("Due today or in the future is not overdue", func(t *testing.T) {
		assert.False(t, IsOverdue(makeTask(t, "t", "2024-06-10", models.StatusPending), today))
		assert.False(t, IsOverdue(makeTask(t, "t", "2024-06-11", models.StatusPending), today))
	})

	t.Run("No due date is not overdue", func(t *testing.T) {
		assert.False(t, IsOverdue(makeTask(t, "t", "", models.StatusPending), today))
	})

	t.Run("Completing a past due task clears the overdue flag", func(t *testing.T) {
		task := makeTask(t, "t", "2024-06-05", models.StatusPending)
		assert.True(t, IsOverdue(task, today))

		task.Status = models.StatusCompleted
		assert.False(t, IsOverdue(task, today))
	})
}

func taskNames(tasks []models.TaskData) []string {
	names := make([]string, len(tasks))
	for i, task := range tasks {
		names[i] = task.Name
	}
	return names
}
