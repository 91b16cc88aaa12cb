package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/founderflow/founderflow/internal/modules/serializer"
	"github.com/founderflow/founderflow/internal/modules/service"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(s service.TeamService) *TeamHandler {
	return &TeamHandler{svc: s}
}

type InviteReq struct {
	Email    string `json:"email" binding:"required" example:"mia@example.com"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required" example:"Mia Wong"`
	Role     string `json:"role" example:"member"`
}

type ChangeRoleReq struct {
	Role string `json:"role" binding:"required" example:"admin"`
}

// ListTeam godoc
//
//	@Summary		List team members
//	@Description	Admin only. Falls back to a restricted view with hidden emails when the privileged lookup is refused.
//	@Tags			team
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.TeamView}
//	@Router			/api/v1/team [get]
func (h *TeamHandler) ListTeam(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// InviteMember godoc
//
//	@Summary		Invite a member
//	@Description	Create an identity with the given role and send an invitation email
//	@Tags			team
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.InviteReq	true	"Invite payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=service.ManagedUser}
//	@Router			/api/v1/team/invite [post]
func (h *TeamHandler) InviteMember(c *gin.Context) {
	req := InviteReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.Invite(c.Request.Context(), service.InviteInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// ChangeRole godoc
//
//	@Summary		Change a member's role
//	@Tags			team
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path	string					true	"User ID"	Format(uuid)
//	@Param			payload	body	handler.ChangeRoleReq	true	"Role payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/api/v1/team/{user_id}/role [put]
func (h *TeamHandler) ChangeRole(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	req := ChangeRoleReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if err := h.svc.ChangeRole(c.Request.Context(), id, req.Role); err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// RemoveMember godoc
//
//	@Summary		Remove a member
//	@Description	Delete the identity with its profile and role
//	@Tags			team
//	@Produce		json
//	@Param			user_id	path	string	true	"User ID"	Format(uuid)
//	@Param			confirm	query	bool	true	"Must be true"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/api/v1/team/{user_id} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if !confirmed(c) {
		return
	}
	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAdminRequired) {
			c.JSON(http.StatusForbidden, serializer.ForbiddenErr(service.MsgDeleteRequiresAdmin))
			return
		}
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
