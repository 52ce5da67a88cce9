package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/todoapp/task-api/internal/api/metrics"
	"github.com/todoapp/task-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. All routes sit
// behind the auth middleware; errors propagate to the central error handler.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /tasks.
//
// @Summary      Create a new task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// List handles GET /tasks with an optional ?completed=true|false filter.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        completed  query     bool  false  "Filter by completion state"
// @Success      200        {array}   taskResponse
// @Failure      400        {object}  map[string]any
// @Failure      401        {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	filter, err := parseTaskFilter(c.QueryParam("completed"))
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskListResponse(tasks))
}

// Get handles GET /tasks/:id.
//
// @Summary      Get a task by ID
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Task ID"
// @Success      200  {object}  taskResponse
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := parseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	task, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// ToggleStatus handles PATCH /tasks/:id/status. The request carries no body;
// the endpoint always flips the completed flag.
//
// @Summary      Toggle a task's completion status
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Task ID"
// @Success      200  {object}  taskResponse
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/status [patch]
func (h *TaskHandler) ToggleStatus(c echo.Context) error {
	id, err := parseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	task, err := h.service.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		return err
	}

	metrics.TasksToggledTotal.Inc()
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  int  true  "Task ID"
// @Success      204
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := parseTaskID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.TasksDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// parseTaskID validates the :id path parameter: an integer greater than zero.
func parseTaskID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, []string{"ID must be a valid number"})
	}
	if id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, []string{"ID must be greater than 0"})
	}
	return id, nil
}

// parseTaskFilter validates the optional completed query parameter.
func parseTaskFilter(raw string) (ports.TaskFilter, error) {
	switch raw {
	case "":
		return ports.TaskFilter{}, nil
	case "true", "false":
		completed := raw == "true"
		return ports.TaskFilter{Completed: &completed}, nil
	default:
		return ports.TaskFilter{}, echo.NewHTTPError(http.StatusBadRequest, []string{"Completed must be true or false"})
	}
}
