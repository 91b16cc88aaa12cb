package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/serializer"
	"github.com/founderflow/founderflow/internal/modules/service"
	"github.com/founderflow/founderflow/internal/pkg/token"
	"github.com/founderflow/founderflow/internal/telemetry"
)

// SessionKey is the gin context key holding the *service.Session of the caller.
const SessionKey = "session"

// Auth returns a middleware that authenticates requests using access tokens.
// It verifies the token, attaches the session to the gin context and the principal to the
// request context so the data layer runs under the caller's identity.
func Auth(auth service.AuthService, m *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := token.ExtractBearer(c.GetHeader("Authorization"))
		if err != nil {
			authFailed(c, m, "missing_token")
			return
		}

		sess, err := auth.Authenticate(c.Request.Context(), raw)
		if err != nil {
			if errors.Is(err, service.ErrSessionInvalid) {
				authFailed(c, m, "invalid_token")
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		// Set user_id attribute on the current span for telemetry filtering
		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			span.SetAttributes(attribute.String("user_id", sess.User.ID.String()))
		}

		c.Set(SessionKey, sess)
		c.Request = c.Request.WithContext(policy.WithPrincipal(c.Request.Context(), policy.Principal{UserID: sess.User.ID}))
		c.Next()
	}
}

func authFailed(c *gin.Context, m *telemetry.Metrics, reason string) {
	if m != nil {
		m.AuthFailures.WithLabelValues(reason).Inc()
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.CheckLogin())
}

// RequireAdmin rejects callers without the admin role. The role is read from the
// database on every request, never from the token.
func RequireAdmin(access service.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !access.IsAdmin(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr(""))
			return
		}
		c.Next()
	}
}
