package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/founderflow/founderflow/internal/modules/serializer"
	"github.com/founderflow/founderflow/internal/modules/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type FinanceHandler struct {
	svc      service.FinanceService
	payments service.PaymentService
}

func NewFinanceHandler(s service.FinanceService, payments service.PaymentService) *FinanceHandler {
	return &FinanceHandler{svc: s, payments: payments}
}

type CreateFinanceReq struct {
	Type        string `json:"type" binding:"required" example:"income"`
	Amount      Amount `json:"amount" binding:"required" swaggertype:"number" example:"500"`
	Description string `json:"description"`
	Date        string `json:"date" example:"2026-05-20"`
	ProjectID   string `json:"project_id" binding:"required" format:"uuid"`
}

type UpdateFinanceReq struct {
	Type        *string `json:"type"`
	Amount      *Amount `json:"amount" swaggertype:"number"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	ProjectID   *string `json:"project_id"`
}

type CreatePaymentReq struct {
	ProjectID     string `json:"project_id" binding:"required" format:"uuid"`
	Amount        Amount `json:"amount" binding:"required" swaggertype:"number" example:"250"`
	PaymentDate   string `json:"payment_date" example:"2026-05-20"`
	PaymentMethod string `json:"payment_method" example:"bank transfer"`
	Notes         string `json:"notes"`
}

// ListFinance godoc
//
//	@Summary		List finance records
//	@Description	Admin only. Records in the date range with totals.
//	@Tags			finance
//	@Produce		json
//	@Param			range	query	string	false	"all, daily, weekly or monthly"	default(all)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.FinanceList}
//	@Router			/api/v1/finance [get]
func (h *FinanceHandler) ListFinance(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context(), c.Query("range"))
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// ExportFinance godoc
//
//	@Summary		Export finance records
//	@Description	Admin only. XLSX workbook of the records in the date range.
//	@Tags			finance
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			range	query	string	false	"all, daily, weekly or monthly"	default(all)
//	@Security		BearerAuth
//	@Success		200	{file}	file
//	@Router			/api/v1/finance/export [get]
func (h *FinanceHandler) ExportFinance(c *gin.Context) {
	data, name, err := h.svc.Export(c.Request.Context(), c.Query("range"))
	if err != nil {
		abortErr(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// CreateFinance godoc
//
//	@Summary		Create finance record
//	@Tags			finance
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateFinanceReq	true	"CreateFinance payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.FinanceRecord}
//	@Router			/api/v1/finance [post]
func (h *FinanceHandler) CreateFinance(c *gin.Context) {
	req := CreateFinanceReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.Create(c.Request.Context(), service.CreateFinanceInput{
		Type:        req.Type,
		Amount:      string(req.Amount),
		Description: req.Description,
		Date:        req.Date,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// UpdateFinance godoc
//
//	@Summary		Update finance record
//	@Tags			finance
//	@Accept			json
//	@Produce		json
//	@Param			record_id	path	string						true	"Record ID"	Format(uuid)
//	@Param			payload		body	handler.UpdateFinanceReq	true	"UpdateFinance payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.FinanceRecord}
//	@Router			/api/v1/finance/{record_id} [patch]
func (h *FinanceHandler) UpdateFinance(c *gin.Context) {
	id, ok := pathID(c, "record_id")
	if !ok {
		return
	}
	req := UpdateFinanceReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.Update(c.Request.Context(), id, service.UpdateFinanceInput{
		Type:        req.Type,
		Amount:      req.Amount.ptr(),
		Description: req.Description,
		Date:        req.Date,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// DeleteFinance godoc
//
//	@Summary		Delete finance record
//	@Tags			finance
//	@Produce		json
//	@Param			record_id	path	string	true	"Record ID"	Format(uuid)
//	@Param			confirm		query	bool	true	"Must be true"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/api/v1/finance/{record_id} [delete]
func (h *FinanceHandler) DeleteFinance(c *gin.Context) {
	id, ok := pathID(c, "record_id")
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

// ListPayments godoc
//
//	@Summary		List project payments
//	@Tags			payment
//	@Produce		json
//	@Param			project_id	query	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Payment}
//	@Router			/api/v1/payments [get]
func (h *FinanceHandler) ListPayments(c *gin.Context) {
	projectID, err := uuid.Parse(c.Query("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.payments.List(c.Request.Context(), projectID)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// CreatePayment godoc
//
//	@Summary		Record a project payment
//	@Tags			payment
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreatePaymentReq	true	"CreatePayment payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Payment}
//	@Router			/api/v1/payments [post]
func (h *FinanceHandler) CreatePayment(c *gin.Context) {
	req := CreatePaymentReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.payments.Create(c.Request.Context(), projectID, service.CreatePaymentInput{
		Amount:        string(req.Amount),
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// DeletePayment godoc
//
//	@Summary		Delete payment
//	@Tags			payment
//	@Produce		json
//	@Param			payment_id	path	string	true	"Payment ID"	Format(uuid)
//	@Param			confirm		query	bool	true	"Must be true"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/api/v1/payments/{payment_id} [delete]
func (h *FinanceHandler) DeletePayment(c *gin.Context) {
	id, ok := pathID(c, "payment_id")
	if !ok {
		return
	}
	if !confirmed(c) {
		return
	}
	if err := h.payments.Delete(c.Request.Context(), id); err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
