package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/founderflow/founderflow/internal/modules/serializer"
	"github.com/founderflow/founderflow/internal/modules/service"
)

type DashboardHandler struct {
	svc    service.DashboardService
	access service.Authorizer
}

func NewDashboardHandler(s service.DashboardService, access service.Authorizer) *DashboardHandler {
	return &DashboardHandler{svc: s, access: access}
}

// GetDashboard godoc
//
//	@Summary		Dashboard figures
//	@Description	Project and task counts; finance totals are zero unless the caller is admin
//	@Tags			dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.Dashboard}
//	@Router			/api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	out, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetReports godoc
//
//	@Summary		Status reports
//	@Description	Project and task counts per status, in order of first occurrence
//	@Tags			dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.Reports}
//	@Router			/api/v1/reports [get]
func (h *DashboardHandler) GetReports(c *gin.Context) {
	out, err := h.svc.Reports(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetNavigation godoc
//
//	@Summary		Navigation
//	@Description	Sidebar entries for the caller. Finance and Team are listed for admins only.
//	@Tags			dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]service.NavItem}
//	@Router			/api/v1/navigation [get]
func (h *DashboardHandler) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Data: service.NavItems(h.access.IsAdmin(c.Request.Context()))})
}
