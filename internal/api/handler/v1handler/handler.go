// Package v1handler implements the version 1 HTTP handlers: authentication,
// the four agent endpoints and the dashboard overview.
package v1handler

import (
	"errors"
	"net/http"
	"pragency/internal/activity"
	"pragency/internal/agent"
	"pragency/internal/auth"
	"pragency/pkg/logger"
	"pragency/pkg/serrors"

	"github.com/gin-gonic/gin"
)

// APIVersion is reported by the root status endpoint.
const APIVersion = "1.0.0"

// Deps bundles the services the handlers depend on.
type Deps struct {
	Accounts   *auth.Accounts
	Agents     agent.Service
	Activities *activity.Log
}

// Handler serves the v1 routes.
type Handler struct {
	deps Deps
}

// New creates a Handler with the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts all v1 routes on the router. Agent and dashboard routes
// require a valid bearer token.
func (h *Handler) Register(router gin.IRouter) {
	router.GET("/", h.status)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)
	authGroup.GET("/me", h.requireUser, h.me)

	agents := api.Group("/agents", h.requireUser)
	agents.POST("/reputation-scan", h.reputationScan)
	agents.POST("/brief-generation", h.briefGeneration)
	agents.POST("/stress-test", h.stressTest)
	agents.POST("/content-repurpose", h.contentRepurpose)

	api.GET("/dashboard/overview", h.requireUser, h.dashboardOverview)
}

// status reports the service name and version.
func (h *Handler) status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AI PR Agency API",
		"version": APIVersion,
		"status":  "running",
	})
}

// errorResponse is the error payload shape for every failing request.
type errorResponse struct {
	Detail string `json:"detail"`
}

// respondError maps a failure to its HTTP status and error payload. Semantic
// kinds decide the status; everything unrecognized is an internal error with
// a generic message.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	detail := "Internal server error"

	switch {
	case errors.Is(err, auth.ErrDuplicateEmail):
		status = http.StatusBadRequest
		detail = "Email already registered"
	case errors.Is(err, auth.ErrInvalidCredentials):
		status = http.StatusBadRequest
		detail = "Incorrect email or password"
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
		detail = "Could not validate credentials"
		c.Header("WWW-Authenticate", "Bearer")
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
		detail = errorDetail(err, "Invalid request")
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
		detail = errorDetail(err, "Not found")
	case errors.Is(err, agent.ErrGeneration):
		detail = "Error running agent"
	}

	if status >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), err.Error())
	}

	c.AbortWithStatusJSON(status, errorResponse{Detail: detail})
}

// errorDetail extracts the semantic error message, falling back when none is
// attached. Causes are never exposed to clients.
func errorDetail(err error, fallback string) string {
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		return serr.Message()
	}

	return fallback
}

// respondBindError reports a malformed or schema-invalid request body.
func respondBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
}
