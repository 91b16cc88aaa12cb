package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
	"github.com/founderflow/founderflow/internal/modules/service"
	"github.com/founderflow/founderflow/internal/pkg/token"
)

// FunctionHandler serves the privileged functions. They answer in their own wire
// format rather than the API envelope: a payload on success, {"error": ...} otherwise.
type FunctionHandler struct {
	auth  service.AuthService
	users service.UserAdminService
	reset service.ResetEmailService
	log   *zap.Logger
}

func NewFunctionHandler(auth service.AuthService, users service.UserAdminService, reset service.ResetEmailService, log *zap.Logger) *FunctionHandler {
	return &FunctionHandler{auth: auth, users: users, reset: reset, log: log}
}

type ManageUsersReq struct {
	Action string `json:"action" example:"listUsers"`
	UserID string `json:"userId" format:"uuid"`
}

type ManageUsersResp struct {
	Users   []service.ManagedUser `json:"users,omitempty"`
	Success bool                  `json:"success,omitempty"`
}

type SendResetEmailReq struct {
	Email     string `json:"email" example:"ada@example.com"`
	ResetLink string `json:"resetLink" example:"https://app.example.com/reset-password?token=..."`
}

type FunctionErr struct {
	Error string `json:"error"`
}

func (h *FunctionHandler) fail(c *gin.Context, fn string, status int, msg string, err error) {
	h.log.Warn("function failed", zap.String("function", fn), zap.Int("status", status), zap.Error(err))
	c.JSON(status, FunctionErr{Error: msg})
}

// ManageUsers godoc
//
//	@Summary		Manage users
//	@Description	listUsers or deleteUser. The caller is re-verified as a live admin on every call.
//	@Tags			functions
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.ManageUsersReq	true	"Action payload"
//	@Security		BearerAuth
//	@Success		200	{object}	handler.ManageUsersResp
//	@Failure		400	{object}	handler.FunctionErr
//	@Failure		401	{object}	handler.FunctionErr
//	@Failure		403	{object}	handler.FunctionErr
//	@Router			/functions/v1/manage-users [post]
func (h *FunctionHandler) ManageUsers(c *gin.Context) {
	const fn = "manage-users"
	raw, err := token.ExtractBearer(c.GetHeader("Authorization"))
	if err != nil {
		if errors.Is(err, token.ErrMissing) {
			h.fail(c, fn, http.StatusUnauthorized, "No authorization header", err)
			return
		}
		h.fail(c, fn, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	sess, err := h.auth.Authenticate(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, service.ErrSessionInvalid) {
			h.fail(c, fn, http.StatusUnauthorized, "Unauthorized", err)
			return
		}
		h.fail(c, fn, http.StatusInternalServerError, err.Error(), err)
		return
	}
	ctx := policy.WithPrincipal(c.Request.Context(), policy.Principal{UserID: sess.User.ID})

	req := ManageUsersReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, fn, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	switch {
	case req.Action == "listUsers":
		users, err := h.users.ListUsers(ctx)
		if err != nil {
			h.manageErr(c, err)
			return
		}
		c.JSON(http.StatusOK, ManageUsersResp{Users: users})
	case req.Action == "deleteUser" && req.UserID != "":
		if err := h.users.DeleteUser(ctx, req.UserID); err != nil {
			h.manageErr(c, err)
			return
		}
		c.JSON(http.StatusOK, ManageUsersResp{Success: true})
	default:
		h.fail(c, fn, http.StatusBadRequest, "Invalid action", nil)
	}
}

func (h *FunctionHandler) manageErr(c *gin.Context, err error) {
	const fn = "manage-users"
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		h.fail(c, fn, http.StatusBadRequest, ve.Error(), err)
	case errors.Is(err, service.ErrSessionInvalid):
		h.fail(c, fn, http.StatusUnauthorized, "Unauthorized", err)
	case errors.Is(err, service.ErrAdminRequired):
		h.fail(c, fn, http.StatusForbidden, "Unauthorized - admin required", err)
	case errors.Is(err, repo.ErrNotFound):
		h.fail(c, fn, http.StatusBadRequest, "User not found", err)
	default:
		h.fail(c, fn, http.StatusInternalServerError, err.Error(), err)
	}
}

// SendResetEmail godoc
//
//	@Summary		Send password reset email
//	@Description	Render the reset template around resetLink and send it through the configured provider
//	@Tags			functions
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.SendResetEmailReq	true	"Reset email payload"
//	@Success		200		{object}	map[string]string
//	@Failure		500		{object}	handler.FunctionErr
//	@Router			/functions/v1/send-reset-email [post]
func (h *FunctionHandler) SendResetEmail(c *gin.Context) {
	const fn = "send-reset-email"
	req := SendResetEmailReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, fn, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	res, err := h.reset.Send(c.Request.Context(), req.Email, req.ResetLink)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			h.fail(c, fn, http.StatusBadRequest, ve.Error(), err)
			return
		}
		h.fail(c, fn, http.StatusInternalServerError, err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, res)
}
