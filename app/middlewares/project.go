package middlewares

import (
	"net/http"

	"task-manager/domain/services"
	"task-manager/utils"

	"github.com/gin-gonic/gin"
)

// ProjectResolver resolves the authenticated user's current project once per
// request and stores it in the context. Handlers below it never read project
// state from anywhere else; a user without a project is rejected before any
// task operation runs.
type ProjectResolver struct {
	ProjectCtxKey string
	Handler       gin.HandlerFunc
}

func NewProjectResolver(projectsService *services.ProjectsService, authCtxKey string) *ProjectResolver {
	const projectCtxKey = "Project"

	return &ProjectResolver{
		ProjectCtxKey: projectCtxKey,
		Handler: func(c *gin.Context) {
			userData, err := utils.GetUserFromCtx(c, authCtxKey)
			if err != nil {
				return
			}

			project, err := projectsService.ResolveForUser(c.Request.Context(), userData.Id)
			if err == services.ErrNoProject {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
				return
			}
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}

			c.Set(projectCtxKey, project)
			c.Next()
		},
	}
}
