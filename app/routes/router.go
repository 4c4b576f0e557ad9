package routes

import (
	"net/http"

	"task-manager/app/handlers"
	"task-manager/app/middlewares"
	"task-manager/domain/services"

	"github.com/gin-gonic/gin"
)

func SetupDefaultRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	return r
}

func RegisterAuthRoutes(r *gin.Engine, jwtHeaderAuth *middlewares.JwtHeaderAuthenticator, usersService *services.UsersService) {
	g := r.Group("/auth")
	g.POST("/register", handlers.HandleRegistration(usersService))
	g.POST("/login", handlers.HandleLogin(usersService))
	g.GET("/whoami", jwtHeaderAuth.Handler, handlers.HandleWhoAmI(jwtHeaderAuth))
}

func RegisterProjectsRoutes(r *gin.Engine, jwtHeaderAuth *middlewares.JwtHeaderAuthenticator, projectsService *services.ProjectsService) {
	r.POST("/project/", jwtHeaderAuth.Handler, handlers.HandleCreateProject(projectsService, jwtHeaderAuth))

	g := r.Group("/portfolio")
	g.GET("/", jwtHeaderAuth.Handler, handlers.HandlePortfolio(projectsService, jwtHeaderAuth))
	g.GET("/:id", jwtHeaderAuth.Handler, handlers.HandleProjectDetails(projectsService, jwtHeaderAuth))
}

func RegisterTasksRoutes(r *gin.Engine, jwtHeaderAuth *middlewares.JwtHeaderAuthenticator, resolver *middlewares.ProjectResolver, tasksService *services.TasksService) {
	g := r.Group("/tasks", jwtHeaderAuth.Handler, resolver.Handler)
	g.GET("/", handlers.HandleListTasks(tasksService, resolver))
	g.GET("/agenda", handlers.HandleAgenda(tasksService, resolver))
	g.POST("/", handlers.HandleCreateTask(tasksService, resolver))

	g.PATCH("/:id", handlers.HandlePatchTask(tasksService, resolver))
	g.PUT("/:id", handlers.HandleReplaceTask(tasksService, resolver))
	g.PATCH("/:id/status", handlers.HandleUpdateTaskStatus(tasksService, resolver))
	g.DELETE("/:id", handlers.HandleDeleteTask(tasksService, resolver))
}

func RegisterDashboardRoutes(r *gin.Engine, jwtHeaderAuth *middlewares.JwtHeaderAuthenticator, jwtCookieAuth *middlewares.JwtCookieAuthenticator, resolver *middlewares.ProjectResolver, tasksService *services.TasksService) {
	g := r.Group("/dashboard")
	g.GET("/summary", jwtHeaderAuth.Handler, resolver.Handler, handlers.HandleDashboardSummary(tasksService, resolver))
	g.GET("/by-day", jwtHeaderAuth.Handler, resolver.Handler, handlers.HandleDashboardByDay(tasksService, resolver))
	g.GET("/live", jwtCookieAuth.Handler, resolver.Handler, handlers.HandleDashboardLive(tasksService, resolver))
}
