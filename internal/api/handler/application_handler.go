package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joblane/careers-api/internal/api/metrics"
	appmiddleware "github.com/joblane/careers-api/internal/api/middleware"
	"github.com/joblane/careers-api/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Apply handles POST /users/:username/jobs/:id.
//
// @Summary      Apply a user to a job
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Param        id        path      string  true  "Job ID"
// @Success      201       {object}  applyResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /users/{username}/jobs/{id} [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	jobID, err := h.service.Apply(
		c.Request().Context(),
		appmiddleware.CallerFromContext(c),
		c.Param("username"),
		c.Param("id"),
	)
	if err != nil {
		return respondError(c, err)
	}

	metrics.ApplicationsTotal.Inc()

	return c.JSON(http.StatusCreated, applyResponse{Applied: jobID})
}
