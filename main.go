package main

import (
	"task-manager/app/logger"
	"task-manager/app/middlewares"
	"task-manager/app/routes"
	"task-manager/db"
	"task-manager/domain/repos"
	"task-manager/domain/services"
	"task-manager/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Services struct {
	TokenProvider   *services.JwtTokenProvider
	UsersService    *services.UsersService
	UsersRepo       *repos.UsersRepo
	ProjectsService *services.ProjectsService
	ProjectsRepo    *repos.ProjectsRepo
	TasksService    *services.TasksService
	TasksRepo       *repos.TasksRepo
}

func SetupDependencies(conn *pgxpool.Pool) *Services {
	tp := services.NewJwtTokenProvider()

	usersRepo := repos.NewUsersRepo(conn)
	usersService := services.NewUsersService(usersRepo, tp)

	tasksRepo := repos.NewTasksRepo(conn)
	tasksService := services.NewTasksService(tasksRepo)

	projectsRepo := repos.NewProjectsRepo(conn)
	projectsService := services.NewProjectsService(projectsRepo, tasksRepo)

	return &Services{
		TokenProvider:   tp,
		UsersService:    usersService,
		UsersRepo:       usersRepo,
		ProjectsService: projectsService,
		ProjectsRepo:    projectsRepo,
		TasksService:    tasksService,
		TasksRepo:       tasksRepo,
	}
}

func main() {
	// .env is optional, env vars may come from the environment itself
	godotenv.Load()

	addr := utils.GetenvDefault("SERVER_ADDR", "localhost:9090")

	// Init logging
	logger.InitLogging()

	// Setup DB connection
	conn := db.ConnectDB()

	// Setup deps
	deps := SetupDependencies(conn)

	// Register validators
	utils.RegisterValidators()

	// Setup middlewares
	jwtHeaderAuth := middlewares.NewJwtHeaderAuthenticator(deps.TokenProvider, deps.UsersRepo)
	jwtCookieAuth := middlewares.NewJwtCookieAuthenticator(deps.TokenProvider, deps.UsersRepo)
	projectResolver := middlewares.NewProjectResolver(deps.ProjectsService, jwtHeaderAuth.AuthCtxKey)

	// Register all app routes
	r := routes.SetupDefaultRouter()
	routes.RegisterAuthRoutes(r, jwtHeaderAuth, deps.UsersService)
	routes.RegisterProjectsRoutes(r, jwtHeaderAuth, deps.ProjectsService)
	routes.RegisterTasksRoutes(r, jwtHeaderAuth, projectResolver, deps.TasksService)
	routes.RegisterDashboardRoutes(r, jwtHeaderAuth, jwtCookieAuth, projectResolver, deps.TasksService)

	log.WithFields(log.Fields{"host": addr}).Info("Starting server")
	r.Run(addr)
}
