package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/founderflow/founderflow/internal/modules/serializer"
	"github.com/founderflow/founderflow/internal/modules/service"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{svc: s}
}

type CreateTaskReq struct {
	Title       string `json:"title" binding:"required" example:"Draft landing copy"`
	Description string `json:"description"`
	Status      string `json:"status" example:"todo"`
	Deadline    string `json:"deadline" example:"2026-02-01"`
	ProjectID   string `json:"project_id" format:"uuid"`
}

type UpdateTaskReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Deadline    *string `json:"deadline"`
	ProjectID   *string `json:"project_id"`
}

type UpdateTaskStatusReq struct {
	Status string `json:"status" binding:"required" example:"in_progress"`
}

// ListTasks godoc
//
//	@Summary		List tasks
//	@Description	List tasks with their project name, newest first
//	@Tags			task
//	@Produce		json
//	@Param			status		query	string	false	"todo, in_progress or done"
//	@Param			project_id	query	string	false	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Task}
//	@Router			/api/v1/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context(), service.ListTasksInput{
		Status:    c.Query("status"),
		ProjectID: c.Query("project_id"),
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetTask godoc
//
//	@Summary		Get task
//	@Tags			task
//	@Produce		json
//	@Param			task_id	path	string	true	"Task ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Task}
//	@Router			/api/v1/tasks/{task_id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	out, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// CreateTask godoc
//
//	@Summary		Create task
//	@Description	Create a task assigned to the caller
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateTaskReq	true	"CreateTask payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Task}
//	@Router			/api/v1/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	req := CreateTaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.Create(c.Request.Context(), service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Deadline:    req.Deadline,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// UpdateTask godoc
//
//	@Summary		Update task
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			task_id	path	string					true	"Task ID"	Format(uuid)
//	@Param			payload	body	handler.UpdateTaskReq	true	"UpdateTask payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Task}
//	@Router			/api/v1/tasks/{task_id} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	req := UpdateTaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.Update(c.Request.Context(), id, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Deadline:    req.Deadline,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// UpdateTaskStatus godoc
//
//	@Summary		Move task
//	@Description	Set the task status. Any status may follow any other.
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			task_id	path	string						true	"Task ID"	Format(uuid)
//	@Param			payload	body	handler.UpdateTaskStatusReq	true	"Status payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Task}
//	@Router			/api/v1/tasks/{task_id}/status [patch]
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	req := UpdateTaskStatusReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// DeleteTask godoc
//
//	@Summary		Delete task
//	@Tags			task
//	@Produce		json
//	@Param			task_id	path	string	true	"Task ID"	Format(uuid)
//	@Param			confirm	query	bool	true	"Must be true"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/api/v1/tasks/{task_id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	if !confirmed(c) {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
