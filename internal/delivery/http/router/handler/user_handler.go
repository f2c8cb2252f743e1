package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bmshub/internal/delivery/http/response"
	"bmshub/internal/domain/entity"
	"bmshub/internal/usecase"
)

// RegisterUserRequest is the payload captured on first sign-in.
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photoURL"`
}

// UpdateRoleRequest is the payload for the administrative role override.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user member admin"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register stores a user on first sign-in. Re-registering an existing
// email returns the stored document untouched.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "email is required")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Created {
		return response.Success(c, http.StatusOK, map[string]any{"message": "user already exists", "insertedId": nil}, "")
	}

	return response.Success(c, http.StatusOK, map[string]string{"insertedId": output.User.ID}, "User registered successfully")
}

// GetByEmail fetches a user document by email.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.uc.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "")
}

// Search is the query-param form of the email lookup.
func (h *UserHandler) Search(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "MISSING_EMAIL", "Query parameter email is required")
	}

	user, err := h.uc.GetByEmail(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "")
}

// GetRole resolves the role for an email, defaulting to the user role for
// unknown emails.
func (h *UserHandler) GetRole(c echo.Context) error {
	role, err := h.uc.GetRole(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"role": string(role)}, "")
}

// ListMembers lists users currently holding the member role.
func (h *UserHandler) ListMembers(c echo.Context) error {
	users, err := h.uc.ListMembers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := newUserViews(users)

	return response.List(c, views, len(views), "")
}

// UpdateRole is the administrative override that sets a role directly.
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "role must be user, member or admin")
	}

	if err := h.uc.UpdateRole(c.Request().Context(), c.Param("id"), entity.Role(req.Role)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Role updated")
}

// RemoveMember demotes a user back to the default role.
func (h *UserHandler) RemoveMember(c echo.Context) error {
	if err := h.uc.RemoveMember(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Member removed")
}
