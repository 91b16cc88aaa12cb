package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/founderflow/founderflow/internal/modules/serializer"
	"github.com/founderflow/founderflow/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type CreateProjectReq struct {
	Name              string `json:"name" binding:"required" example:"Website redesign"`
	Description       string `json:"description"`
	Deliverables      string `json:"deliverables"`
	StartDate         string `json:"start_date" binding:"required" example:"2026-01-05"`
	Deadline          string `json:"deadline" binding:"required" example:"2026-03-01"`
	Status            string `json:"status" example:"active"`
	ClientName        string `json:"client_name"`
	ClientEmail       string `json:"client_email"`
	ClientPhone       string `json:"client_phone"`
	ResponsiblePerson string `json:"responsible_person"`
	TotalAmount       Amount `json:"total_amount" swaggertype:"number" example:"1000"`
	AmountPaid        Amount `json:"amount_paid" swaggertype:"number" example:"400"`
}

type UpdateProjectReq struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	Deliverables      *string `json:"deliverables"`
	StartDate         *string `json:"start_date"`
	Deadline          *string `json:"deadline"`
	Status            *string `json:"status"`
	ClientName        *string `json:"client_name"`
	ClientEmail       *string `json:"client_email"`
	ClientPhone       *string `json:"client_phone"`
	ResponsiblePerson *string `json:"responsible_person"`
	TotalAmount       *Amount `json:"total_amount" swaggertype:"number"`
	AmountPaid        *Amount `json:"amount_paid" swaggertype:"number"`
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List projects visible to the caller, newest first
//	@Tags			project
//	@Produce		json
//	@Param			q	query	string	false	"Case-insensitive match on name or description"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]service.ProjectDetail}
//	@Router			/api/v1/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetProject godoc
//
//	@Summary		Get project
//	@Description	Get a project with its outstanding balance
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ProjectDetail}
//	@Router			/api/v1/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
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

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a new project owned by the caller
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProjectReq	true	"CreateProject payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=service.ProjectDetail}
//	@Router			/api/v1/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), service.CreateProjectInput{
		Name:              req.Name,
		Description:       req.Description,
		Deliverables:      req.Deliverables,
		StartDate:         req.StartDate,
		Deadline:          req.Deadline,
		Status:            req.Status,
		ClientName:        req.ClientName,
		ClientEmail:       req.ClientEmail,
		ClientPhone:       req.ClientPhone,
		ResponsiblePerson: req.ResponsiblePerson,
		TotalAmount:       string(req.TotalAmount),
		AmountPaid:        string(req.AmountPaid),
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Update the fields present in the payload
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string						true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.UpdateProjectReq	true	"UpdateProject payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ProjectDetail}
//	@Router			/api/v1/projects/{project_id} [patch]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	req := UpdateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Update(c.Request.Context(), id, service.UpdateProjectInput{
		Name:              req.Name,
		Description:       req.Description,
		Deliverables:      req.Deliverables,
		StartDate:         req.StartDate,
		Deadline:          req.Deadline,
		Status:            req.Status,
		ClientName:        req.ClientName,
		ClientEmail:       req.ClientEmail,
		ClientPhone:       req.ClientPhone,
		ResponsiblePerson: req.ResponsiblePerson,
		TotalAmount:       req.TotalAmount.ptr(),
		AmountPaid:        req.AmountPaid.ptr(),
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Hard delete a project. Requires confirm=true.
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			confirm		query	bool	true	"Must be true"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/api/v1/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
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
