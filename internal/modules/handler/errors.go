package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
	"github.com/founderflow/founderflow/internal/modules/serializer"
	"github.com/founderflow/founderflow/internal/modules/service"
)

// errResponse maps service and repository errors onto the response envelope.
func errResponse(err error) serializer.Response {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return serializer.ParamErr(ve.Error(), err)
	case errors.Is(err, repo.ErrNotFound):
		return serializer.NotFoundErr("")
	case errors.Is(err, policy.ErrDenied), errors.Is(err, repo.ErrForbidden), errors.Is(err, service.ErrAdminRequired):
		return serializer.ForbiddenErr("")
	case errors.Is(err, service.ErrSignupDisabled):
		return serializer.ForbiddenErr(err.Error())
	case errors.Is(err, policy.ErrUnauthenticated), errors.Is(err, service.ErrSessionInvalid):
		return serializer.CheckLogin()
	case errors.Is(err, service.ErrInvalidCredentials):
		return serializer.AuthErr(err.Error())
	case errors.Is(err, repo.ErrDuplicate):
		return serializer.ConflictErr("", err)
	case errors.Is(err, repo.ErrReference):
		return serializer.ParamErr("referenced record does not exist", err)
	default:
		return serializer.DBErr("", err)
	}
}

func abortErr(c *gin.Context, err error) {
	res := errResponse(err)
	c.JSON(res.Code, res)
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return uuid.Nil, false
	}
	return id, true
}

// confirmed rejects hard deletes that were not explicitly confirmed with ?confirm=true.
func confirmed(c *gin.Context) bool {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("delete requires confirm=true", nil))
		return false
	}
	return true
}

func currentSession(c *gin.Context) (*service.Session, bool) {
	v, ok := c.Get("session")
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.CheckLogin())
		return nil, false
	}
	s, ok := v.(*service.Session)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.CheckLogin())
		return nil, false
	}
	return s, true
}
