package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/commerce/fulfillsync/internal/infrastructure/scheduler"
)

// TaskInfo describes a registered task and its most recent run
type TaskInfo struct {
	Name     string   `json:"name"`
	Interval string   `json:"interval"`
	LastRun  *TaskRun `json:"last_run,omitempty"`
}

// TaskRun describes one recorded execution of a task
type TaskRun struct {
	Status      string     `json:"status"`
	Error       string     `json:"error,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Manual      bool       `json:"manual"`
}

// TaskHandler exposes the sync tasks for monitoring and manual triggering
type TaskHandler struct {
	registry *scheduler.Registry
	runner   *scheduler.Runner
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(registry *scheduler.Registry, runner *scheduler.Runner) *TaskHandler {
	return &TaskHandler{registry: registry, runner: runner}
}

// RegisterRoutes registers task endpoints
func (h *TaskHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.GET("/:name/history", h.History)
		tasks.POST("/:name/run", h.Trigger)
	}
}

// List returns every registered task with its last run
func (h *TaskHandler) List(c *gin.Context) {
	tasks := h.registry.All()
	infos := make([]TaskInfo, len(tasks))
	for i, task := range tasks {
		info := TaskInfo{
			Name:     task.Name(),
			Interval: task.Interval().String(),
		}
		if record, ok := h.runner.LastRun(task.Name()); ok {
			run := taskRunFromRecord(record)
			info.LastRun = &run
		}
		infos[i] = info
	}
	c.JSON(http.StatusOK, NewSuccessResponse(infos))
}

// History returns the recorded runs of a task, most recent first
func (h *TaskHandler) History(c *gin.Context) {
	name := c.Param("name")
	if _, err := h.registry.Get(name); err != nil {
		c.JSON(http.StatusNotFound, NewErrorResponse("TASK_NOT_FOUND", "no task named "+name))
		return
	}

	records := h.runner.History(name)
	runs := make([]TaskRun, len(records))
	for i, record := range records {
		runs[i] = taskRunFromRecord(record)
	}
	c.JSON(http.StatusOK, NewSuccessResponse(runs))
}

// Trigger runs a task immediately. The run executes synchronously; the
// response reports its outcome.
func (h *TaskHandler) Trigger(c *gin.Context) {
	name := c.Param("name")
	err := h.runner.Trigger(c.Request.Context(), name)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"task": name, "status": "SUCCESS"}))
	case errors.Is(err, scheduler.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, NewErrorResponse("TASK_NOT_FOUND", "no task named "+name))
	case errors.Is(err, scheduler.ErrTaskAlreadyRunning):
		c.JSON(http.StatusConflict, NewErrorResponse("TASK_ALREADY_RUNNING", err.Error()))
	case errors.Is(err, scheduler.ErrRunnerNotRunning):
		c.JSON(http.StatusServiceUnavailable, NewErrorResponse("RUNNER_NOT_RUNNING", err.Error()))
	default:
		c.JSON(http.StatusOK, NewSuccessResponse(gin.H{"task": name, "status": "FAILED", "error": err.Error()}))
	}
}

func taskRunFromRecord(record scheduler.RunRecord) TaskRun {
	return TaskRun{
		Status:      string(record.Status),
		Error:       record.Error,
		StartedAt:   record.StartedAt,
		CompletedAt: record.CompletedAt,
		Manual:      record.Manual,
	}
}
