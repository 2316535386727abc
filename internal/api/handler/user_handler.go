package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/joblane/careers-api/internal/api/metrics"
	appmiddleware "github.com/joblane/careers-api/internal/api/middleware"
	"github.com/joblane/careers-api/internal/core/domain"
	"github.com/joblane/careers-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /users.
//
// @Summary      Create a user (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  createUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.service.Create(c.Request().Context(), appmiddleware.CallerFromContext(c), ports.CreateUserInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return respondError(c, err)
	}

	metrics.UsersCreatedTotal.WithLabelValues(strconv.FormatBool(res.User.IsAdmin)).Inc()

	return c.JSON(http.StatusCreated, createUserResponse{
		User:  toUserResponse(res.User),
		Token: res.Token,
	})
}

// List handles GET /users.
//
// @Summary      List all users (admin only)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context(), appmiddleware.CallerFromContext(c))
	if err != nil {
		return respondError(c, err)
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, listUsersResponse{Users: out})
}

// Get handles GET /users/:username.
//
// @Summary      Get a user with their applied job IDs
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  getUserResponse
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /users/{username} [get]
func (h *UserHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), appmiddleware.CallerFromContext(c), c.Param("username"))
	if err != nil {
		return respondError(c, err)
	}

	jobs := detail.Jobs
	if jobs == nil {
		jobs = []string{}
	}
	return c.JSON(http.StatusOK, getUserResponse{
		User: userWithJobsResponse{
			userResponse: toUserResponse(detail.User),
			Jobs:         jobs,
		},
	})
}

// Update handles PATCH /users/:username.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string             true  "Username"
// @Param        body      body      updateUserRequest  true  "Fields to change"
// @Success      200       {object}  updateUserResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /users/{username} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.Update(c.Request().Context(), appmiddleware.CallerFromContext(c), c.Param("username"), ports.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, updateUserResponse{User: toUserResponse(*user)})
}

// Delete handles DELETE /users/:username.
//
// @Summary      Delete a user and their applications
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  deleteUserResponse
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /users/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), appmiddleware.CallerFromContext(c), c.Param("username"))
	if err != nil {
		return respondError(c, err)
	}

	metrics.UsersDeletedTotal.Inc()

	return c.JSON(http.StatusOK, deleteUserResponse{Deleted: deleted})
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
