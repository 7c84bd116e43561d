package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidTaskID   = "invalid task id"
	errInvalidBodyPref = "invalid body: "
)

// Request DTO for creating a task.
type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// Request DTO for a partial update. Pointer fields distinguish "absent"
// from "set to empty".
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// taskError maps service sentinels to HTTP responses and logs anything
// unexpected without leaking internals.
func (h *Handler) taskError(c *gin.Context, err error, logKey string) {
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTaskForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err, "request_id", c.GetString(requestIDKey))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// taskIDParam parses the :id path segment, writing a 400 on failure.
func taskIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidTaskID})
		return 0, false
	}
	return id, true
}

// @Summary      List own tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {array}   models.Task
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks [get]
// @Security     BearerAuth
func (h *Handler) listTasks(c *gin.Context) {
	tasks, err := h.services.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.taskError(c, err, "tasks_list_failed")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      createTaskRequest  true  "Task payload"
// @Success      201   {object}  map[string]interface{}  "message, id"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /tasks [post]
// @Security     BearerAuth
func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	id, err := h.services.Tasks.Create(c.Request.Context(), currentUserID(c), req.Title, req.Description)
	if err != nil {
		h.taskError(c, err, "task_create_failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "task created", "id": id})
}

// @Summary      Update a task (partial)
// @Description  Any subset of title, description, status; absent fields keep their value
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Task ID"
// @Param        body  body      updateTaskRequest  true  "Fields to overwrite"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	upd := service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	if err := h.services.Tasks.Update(c.Request.Context(), currentUserID(c), id, upd); err != nil {
		h.taskError(c, err, "task_update_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task updated"})
}

// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id  path      int  true  "Task ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.services.Tasks.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		h.taskError(c, err, "task_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
