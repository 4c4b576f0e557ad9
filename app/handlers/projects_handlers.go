package handlers

import (
	"net/http"
	"strconv"
	"time"

	"task-manager/app/middlewares"
	"task-manager/domain/models"
	"task-manager/domain/services"
	"task-manager/utils"

	"github.com/gin-gonic/gin"
)

func HandleCreateProject(projectsService *services.ProjectsService, jwtAuth *middlewares.JwtHeaderAuthenticator) func(*gin.Context) {
	return func(c *gin.Context) {
		userData, err := utils.GetUserFromCtx(c, jwtAuth.AuthCtxKey)
		if err != nil {
			return
		}

		var projectCreate models.ProjectCreate
		if err := c.ShouldBindBodyWithJSON(&projectCreate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		project, err := projectsService.Create(c.Request.Context(), userData.Id, projectCreate)
		if err == services.ErrProjectNameRequired {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, project)
	}
}

func HandlePortfolio(projectsService *services.ProjectsService, jwtAuth *middlewares.JwtHeaderAuthenticator) func(*gin.Context) {
	return func(c *gin.Context) {
		userData, err := utils.GetUserFromCtx(c, jwtAuth.AuthCtxKey)
		if err != nil {
			return
		}

		overviews, err := projectsService.Portfolio(c.Request.Context(), userData.Id, models.DayOf(time.Now()))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, overviews)
	}
}

func HandleProjectDetails(projectsService *services.ProjectsService, jwtAuth *middlewares.JwtHeaderAuthenticator) func(*gin.Context) {
	return func(c *gin.Context) {
		userData, err := utils.GetUserFromCtx(c, jwtAuth.AuthCtxKey)
		if err != nil {
			return
		}

		projectId, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID in URL path"})
			return
		}

		details, err := projectsService.Details(c.Request.Context(), projectId, userData.Id, models.DayOf(time.Now()))
		if err == services.ErrProjectNotFound {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, details)
	}
}
