package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/founderflow/founderflow/internal/modules/serializer"
	"github.com/founderflow/founderflow/internal/modules/service"
)

type ProfileHandler struct {
	svc service.ProfileService
}

func NewProfileHandler(s service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: s}
}

type UpdateProfileReq struct {
	FullName  *string `json:"full_name" example:"Ada Lovelace"`
	AvatarURL *string `json:"avatar_url"`
}

// GetProfile godoc
//
//	@Summary		Own profile
//	@Tags			profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Profile}
//	@Router			/api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	out, err := h.svc.Get(c.Request.Context())
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// UpdateProfile godoc
//
//	@Summary		Update own profile
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.UpdateProfileReq	true	"UpdateProfile payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Profile}
//	@Router			/api/v1/profile [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	req := UpdateProfileReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.Update(c.Request.Context(), service.UpdateProfileInput{
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// UploadAvatar godoc
//
//	@Summary		Upload avatar
//	@Description	Store an image in object storage and set it as the avatar
//	@Tags			profile
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image file"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Profile}
//	@Router			/api/v1/profile/avatar [put]
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.UploadAvatar(c.Request.Context(), fh)
	if err != nil {
		abortErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
