package utils

import (
	"errors"
	"net/http"

	"task-manager/domain/models"

	"github.com/gin-gonic/gin"
)

var (
	ErrGetUserFromCtx    = errors.New("failed to get user from context")
	ErrGetProjectFromCtx = errors.New("failed to get project from context")
)

func GetUserFromCtx(c *gin.Context, ctxKey string) (models.UserData, error) {
	userDataI, ok := c.Get(ctxKey)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user is not provided by middleware"})
		return models.UserData{}, ErrGetUserFromCtx
	}

	userData, ok := userDataI.(models.UserData)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "wrong user type provided by middleware"})
		return models.UserData{}, ErrGetUserFromCtx
	}
	return userData, nil
}

func GetProjectFromCtx(c *gin.Context, ctxKey string) (models.ProjectData, error) {
	projectDataI, ok := c.Get(ctxKey)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "project is not provided by middleware"})
		return models.ProjectData{}, ErrGetProjectFromCtx
	}

	projectData, ok := projectDataI.(models.ProjectData)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "wrong project type provided by middleware"})
		return models.ProjectData{}, ErrGetProjectFromCtx
	}
	return projectData, nil
}
