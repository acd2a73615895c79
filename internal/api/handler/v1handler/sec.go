package v1handler

import (
	"pragency/pkg/domain"
	"pragency/pkg/serrors"
	"strings"

	"github.com/gin-gonic/gin"
)

// userContextKey is where requireUser stores the authenticated user.
const userContextKey = "pragency.user"

// requireUser authenticates the bearer token and stores the resolved user in
// the request context. Missing or invalid credentials abort with 401.
func (h *Handler) requireUser(c *gin.Context) {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		respondError(c, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

		return
	}

	user, err := h.deps.Accounts.Authenticate(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)

		return
	}

	c.Set(userContextKey, user)
	c.Next()
}

// bearerToken extracts the token from an Authorization header value. The
// scheme comparison is case-insensitive per RFC 9110.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)

	return token, token != ""
}

// currentUser returns the user stored by requireUser. It must only be called
// from handlers behind that middleware.
func currentUser(c *gin.Context) *domain.User {
	return c.MustGet(userContextKey).(*domain.User)
}
