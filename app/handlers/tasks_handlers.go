package handlers

import (
	"net/http"
	"strconv"
	"time"

	"task-manager/app/middlewares"
	"task-manager/domain/agenda"
	"task-manager/domain/models"
	"task-manager/domain/services"
	"task-manager/utils"

	"github.com/gin-gonic/gin"
)

func taskIdFromPath(c *gin.Context) (int, bool) {
	taskId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID in URL path"})
		return 0, false
	}
	return taskId, true
}

func abortOnTaskError(c *gin.Context, err error) {
	switch err {
	case services.ErrTaskNotFound:
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case services.ErrTaskNameRequired, services.ErrNoFieldsToPatch:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func HandleListTasks(tasksService *services.TasksService, resolver *middlewares.ProjectResolver) func(*gin.Context) {
	return func(c *gin.Context) {
		project, err := utils.GetProjectFromCtx(c, resolver.ProjectCtxKey)
		if err != nil {
			return
		}

		var tasksFilter models.TasksFilter
		if err := c.ShouldBindQuery(&tasksFilter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		tasks, err := tasksService.ListByProject(c.Request.Context(), project.Id, tasksFilter)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, tasks)
	}
}

// HandleAgenda serves the agenda view: the ordered task list split into the
// four temporal buckets relative to the current date.
func HandleAgenda(tasksService *services.TasksService, resolver *middlewares.ProjectResolver) func(*gin.Context) {
	return func(c *gin.Context) {
		project, err := utils.GetProjectFromCtx(c, resolver.ProjectCtxKey)
		if err != nil {
			return
		}

		tasks, err := tasksService.ListByProject(c.Request.Context(), project.Id, models.TasksFilter{})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, agenda.Classify(tasks, models.DayOf(time.Now())))
	}
}

func HandleCreateTask(tasksService *services.TasksService, resolver *middlewares.ProjectResolver) func(*gin.Context) {
	return func(c *gin.Context) {
		project, err := utils.GetProjectFromCtx(c, resolver.ProjectCtxKey)
		if err != nil {
			return
		}

		var taskCreate models.TaskCreate
		if err := c.ShouldBindBodyWithJSON(&taskCreate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		task, err := tasksService.Create(c.Request.Context(), project.Id, taskCreate)
		if err != nil {
			abortOnTaskError(c, err)
			return
		}
		c.JSON(http.StatusCreated, task)
	}
}

func HandlePatchTask(tasksService *services.TasksService, resolver *middlewares.ProjectResolver) func(*gin.Context) {
	return func(c *gin.Context) {
		project, err := utils.GetProjectFromCtx(c, resolver.ProjectCtxKey)
		if err != nil {
			return
		}
		taskId, ok := taskIdFromPath(c)
		if !ok {
			return
		}

		var taskPatch models.TaskPatch
		if err := c.ShouldBindBodyWithJSON(&taskPatch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		task, err := tasksService.Patch(c.Request.Context(), taskId, project.Id, taskPatch)
		if err != nil {
			abortOnTaskError(c, err)
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

func HandleReplaceTask(tasksService *services.TasksService, resolver *middlewares.ProjectResolver) func(*gin.Context) {
	return func(c *gin.Context) {
		project, err := utils.GetProjectFromCtx(c, resolver.ProjectCtxKey)
		if err != nil {
			return
		}
		taskId, ok := taskIdFromPath(c)
		if !ok {
			return
		}

		var taskReplace models.TaskReplace
		if err := c.ShouldBindBodyWithJSON(&taskReplace); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		task, err := tasksService.Replace(c.Request.Context(), taskId, project.Id, taskReplace)
		if err != nil {
			abortOnTaskError(c, err)
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

func HandleUpdateTaskStatus(tasksService *services.TasksService, resolver *middlewares.ProjectResolver) func(*gin.Context) {
	return func(c *gin.Context) {
		project, err := utils.GetProjectFromCtx(c, resolver.ProjectCtxKey)
		if err != nil {
			return
		}
		taskId, ok := taskIdFromPath(c)
		if !ok {
			return
		}

		var taskStatus models.TaskStatus
		if err := c.ShouldBindBodyWithJSON(&taskStatus); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		task, err := tasksService.UpdateStatus(c.Request.Context(), taskId, project.Id, taskStatus.Status)
		if err != nil {
			abortOnTaskError(c, err)
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

func HandleDeleteTask(tasksService *services.TasksService, resolver *middlewares.ProjectResolver) func(*gin.Context) {
	return func(c *gin.Context) {
		project, err := utils.GetProjectFromCtx(c, resolver.ProjectCtxKey)
		if err != nil {
			return
		}
		taskId, ok := taskIdFromPath(c)
		if !ok {
			return
		}

		err = tasksService.DeleteById(c.Request.Context(), taskId, project.Id)
		if err != nil {
			abortOnTaskError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
