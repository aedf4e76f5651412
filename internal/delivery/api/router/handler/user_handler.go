package handler

import (
	"scoop/internal/delivery/api/response"
	"scoop/internal/domain/entity"
	"scoop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves /resources/users.
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(userUC usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// UserPatchRequest represents the request body for updating a user.
type UserPatchRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Password *string `json:"password" validate:"omitempty,min=1"`
}

func (r UserPatchRequest) toPatch() entity.UserPatch {
	return entity.UserPatch{Name: r.Name, Password: r.Password}
}

// List handles GET /resources/users.
func (h *UserHandler) List(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	params, err := listParams(c)
	if err != nil {
		return err
	}

	page, err := h.userUC.List(c.Request().Context(), caller, params)
	if err != nil {
		return err
	}

	return response.Page(c, page)
}

// Get handles GET /resources/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.Get(c.Request().Context(), caller, id, includesQuery(c))
	if err != nil {
		return err
	}

	return response.Data(c, user)
}

// Update handles PUT /resources/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req UserPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.Update(c.Request().Context(), caller, id, req.toPatch())
	if err != nil {
		return err
	}

	return response.Message(c, "User updated successfully", user)
}

// Delete handles DELETE /resources/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.userUC.Delete(c.Request().Context(), caller, id); err != nil {
		return err
	}

	return response.NoContent(c)
}

// DeleteMany handles DELETE /resources/users/deleteMany.
func (h *UserHandler) DeleteMany(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	ids, err := idsQuery(c)
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteMany(c.Request().Context(), caller, ids); err != nil {
		return err
	}

	return response.NoContent(c)
}
