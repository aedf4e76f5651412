package handler

import (
	"scoop/internal/delivery/api/response"
	"scoop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves /resources/users/admins. The route group is
// restricted to admins.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(adminUC usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// AccountRequest represents the credentials of a new account.
type AccountRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r AccountRequest) toAccount() usecase.Account {
	return usecase.Account{Name: r.Name, Password: r.Password}
}

// Create handles POST /resources/users/admins.
func (h *AdminHandler) Create(c echo.Context) error {
	var req AccountRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.adminUC.Create(c.Request().Context(), req.toAccount())
	if err != nil {
		return err
	}

	return response.Data(c, user)
}

// List handles GET /resources/users/admins.
func (h *AdminHandler) List(c echo.Context) error {
	params, err := listParams(c)
	if err != nil {
		return err
	}

	page, err := h.adminUC.List(c.Request().Context(), params)
	if err != nil {
		return err
	}

	return response.Page(c, page)
}

// Get handles GET /resources/users/admins/:id.
func (h *AdminHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	admin, err := h.adminUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Data(c, admin)
}

// Delete handles DELETE /resources/users/admins/:id.
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.adminUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.NoContent(c)
}
