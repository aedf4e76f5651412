package handler

import (
	"scoop/internal/delivery/api/response"
	"scoop/internal/domain/entity"
	"scoop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RoleHandler serves /resources/roles.
type RoleHandler struct {
	roleUC usecase.RoleUsecase
}

// NewRoleHandler is the constructor for RoleHandler.
func NewRoleHandler(roleUC usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{roleUC: roleUC}
}

// RoleRequest represents the request body for ensuring a role.
type RoleRequest struct {
	Name string `json:"name" validate:"required,oneof=ADMIN CLIENT MEMBER"`
}

// List handles GET /resources/roles.
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Data(c, roles)
}

// Ensure handles POST /resources/roles.
func (h *RoleHandler) Ensure(c echo.Context) error {
	var req RoleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	role, err := h.roleUC.Ensure(c.Request().Context(), entity.Role(req.Name))
	if err != nil {
		return err
	}

	return response.Data(c, role)
}
