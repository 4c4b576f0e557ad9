package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"task-manager/app/middlewares"
	"task-manager/domain/agenda"
	"task-manager/domain/models"
	"task-manager/domain/services"
	"task-manager/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

func writeError(wsConn *websocket.Conn, err error) error {
	return wsConn.WriteMessage(websocket.BinaryMessage, []byte(fmt.Sprint("{\"error\": \"", err.Error(), "\"}")))
}

func HandleDashboardSummary(tasksService *services.TasksService, resolver *middlewares.ProjectResolver) func(*gin.Context) {
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

		c.JSON(http.StatusOK, agenda.Aggregate(tasks, models.DayOf(time.Now())))
	}
}

// HandleDashboardByDay serves the "tasks per day" bar chart series: open
// task counts grouped by due date.
func HandleDashboardByDay(tasksService *services.TasksService, resolver *middlewares.ProjectResolver) func(*gin.Context) {
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

		c.JSON(http.StatusOK, agenda.CountByDay(tasks))
	}
}

// DashboardSnapshot is one live-view frame: the classified agenda for the
// requested filter plus the project-wide counters.
type DashboardSnapshot struct {
	Agenda  agenda.Agenda  `json:"agenda"`
	Summary agenda.Summary `json:"summary"`
}

// HandleDashboardLive upgrades to a websocket and answers every binary
// filter message with a fresh DashboardSnapshot.
func HandleDashboardLive(tasksService *services.TasksService, resolver *middlewares.ProjectResolver) func(*gin.Context) {
	return func(c *gin.Context) {
		project, err := utils.GetProjectFromCtx(c, resolver.ProjectCtxKey)
		if err != nil {
			return
		}

		wsConn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		defer wsConn.Close()

		for {
			mt, reqMessage, err := wsConn.ReadMessage()
			if err != nil {
				break
			}

			if mt != websocket.BinaryMessage {
				if err = writeError(wsConn, fmt.Errorf("only binary messages are allowed")); err != nil {
					break
				}
				continue
			}

			var tasksFilter models.TasksFilter
			if err = binding.JSON.BindBody(reqMessage, &tasksFilter); err != nil {
				if err = writeError(wsConn, err); err != nil {
					break
				}
				continue
			}

			tasks, err := tasksService.ListByProject(c.Request.Context(), project.Id, tasksFilter)
			if err != nil {
				writeError(wsConn, err)
				break
			}

			today := models.DayOf(time.Now())
			snapshot := DashboardSnapshot{
				Agenda:  agenda.Classify(tasks, today),
				Summary: agenda.Aggregate(tasks, today),
			}

			respMessage, err := json.Marshal(snapshot)
			if err != nil {
				writeError(wsConn, err)
				break
			}

			err = wsConn.WriteMessage(websocket.BinaryMessage, respMessage)
			if err != nil {
				break
			}
		}
	}
}
