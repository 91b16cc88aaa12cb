package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/founderflow/founderflow/internal/modules/serializer"
	"github.com/founderflow/founderflow/internal/modules/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type SignUpReq struct {
	Email    string `json:"email" binding:"required" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse"`
	FullName string `json:"full_name" example:"Ada Lovelace"`
}

type SignInReq struct {
	Email    string `json:"email" binding:"required" example:"ada@example.com"`
	Password string `json:"password" binding:"required"`
}

type RefreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type SignOutReq struct {
	RefreshToken string `json:"refresh_token"`
}

type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required" example:"ada@example.com"`
}

type ResetPasswordReq struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// SignUp godoc
//
//	@Summary		Sign up
//	@Description	Create an identity with the member role and sign it in
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.SignUpReq	true	"SignUp payload"
//	@Success		201		{object}	serializer.Response{data=service.AuthResult}
//	@Router			/api/v1/auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	req := SignUpReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.SignUp(c.Request.Context(), service.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// SignIn godoc
//
//	@Summary		Sign in
//	@Description	Exchange credentials for a token pair. is_admin is resolved before responding.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.SignInReq	true	"SignIn payload"
//	@Success		200		{object}	serializer.Response{data=service.AuthResult}
//	@Router			/api/v1/auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	req := SignInReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// Refresh godoc
//
//	@Summary		Refresh tokens
//	@Description	Rotate the token pair. The presented refresh token is revoked.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.RefreshReq	true	"Refresh payload"
//	@Success		200		{object}	serializer.Response{data=service.AuthResult}
//	@Router			/api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	req := RefreshReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// SignOut godoc
//
//	@Summary		Sign out
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.SignOutReq	false	"Optional refresh token to revoke"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/api/v1/auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	req := SignOutReq{}
	// the body is optional
	_ = c.ShouldBindJSON(&req)

	if err := h.svc.SignOut(c.Request.Context(), sess, req.RefreshToken); err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}

// GetSession godoc
//
//	@Summary		Current session
//	@Description	The signed-in user with a freshly resolved admin flag
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.Session}
//	@Router			/api/v1/auth/session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: h.svc.Session(c.Request.Context(), sess)})
}

// ForgotPassword godoc
//
//	@Summary		Request a password reset
//	@Description	Always succeeds so that registered emails cannot be discovered
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.ForgotPasswordReq	true	"ForgotPassword payload"
//	@Success		200		{object}	serializer.Response
//	@Router			/api/v1/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	req := ForgotPasswordReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if err := h.svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "if the email is registered, a reset link has been sent"})
}

// ResetPassword godoc
//
//	@Summary		Reset password
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.ResetPasswordReq	true	"ResetPassword payload"
//	@Success		200		{object}	serializer.Response
//	@Router			/api/v1/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	req := ResetPasswordReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if err := h.svc.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{})
}
