package handler

import (
	"strings"

	"scoop/internal/delivery/api/response"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ClientHandler serves /resources/users/clients.
type ClientHandler struct {
	clientUC usecase.ClientUsecase
}

// NewClientHandler is the constructor for ClientHandler.
func NewClientHandler(clientUC usecase.ClientUsecase) *ClientHandler {
	return &ClientHandler{clientUC: clientUC}
}

// CreateClientRequest represents the request body for creating a client.
type CreateClientRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	House    string `json:"house" validate:"required"`
	Square   string `json:"square" validate:"required"`
}

// ChangeAddressRequest represents the request body for moving a client.
type ChangeAddressRequest struct {
	House  string `json:"house" validate:"required"`
	Square string `json:"square" validate:"required"`
}

// SwapRequest names the member taking the client's place.
type SwapRequest struct {
	MemberID string `json:"memberId" validate:"required,uuid"`
}

// Create handles POST /resources/users/clients.
func (h *ClientHandler) Create(c echo.Context) error {
	var req CreateClientRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	client, err := h.clientUC.Create(c.Request().Context(), usecase.NewClient{
		Account: usecase.Account{Name: req.Name, Password: req.Password},
		House:   req.House,
		Square:  req.Square,
	})
	if err != nil {
		return err
	}

	return response.Data(c, client)
}

// List handles GET /resources/users/clients.
func (h *ClientHandler) List(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	params, err := listParams(c)
	if err != nil {
		return err
	}

	page, err := h.clientUC.List(c.Request().Context(), caller, params)
	if err != nil {
		return err
	}

	return response.Page(c, page)
}

// Get handles GET /resources/users/clients/:id.
func (h *ClientHandler) Get(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	client, err := h.clientUC.Get(c.Request().Context(), caller, id, includesQuery(c))
	if err != nil {
		return err
	}

	return response.Data(c, client)
}

// Update handles PUT /resources/users/clients/:id.
func (h *ClientHandler) Update(c echo.Context) error {
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

	client, err := h.clientUC.Update(c.Request().Context(), caller, id, req.toPatch())
	if err != nil {
		return err
	}

	return response.Message(c, "Client updated successfully", client)
}

// Delete handles DELETE /resources/users/clients/:id.
func (h *ClientHandler) Delete(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.clientUC.Delete(c.Request().Context(), caller, id); err != nil {
		return err
	}

	return response.NoContent(c)
}

// DeleteMany handles DELETE /resources/users/clients/deleteMany.
func (h *ClientHandler) DeleteMany(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	ids, err := idsQuery(c)
	if err != nil {
		return err
	}

	if err := h.clientUC.DeleteMany(c.Request().Context(), caller, ids); err != nil {
		return err
	}

	return response.NoContent(c)
}

// ChangeAddress handles PUT /resources/users/clients/:id/change-address.
func (h *ClientHandler) ChangeAddress(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req ChangeAddressRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	client, err := h.clientUC.ChangeAddress(c.Request().Context(), caller, id,
		strings.TrimSpace(req.House), strings.TrimSpace(req.Square))
	if err != nil {
		return err
	}

	return response.Data(c, client)
}

// Swap handles PUT /resources/users/clients/swap/:id.
func (h *ClientHandler) Swap(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req SwapRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	client, err := h.clientUC.Swap(c.Request().Context(), id, uuid.MustParse(req.MemberID))
	if err != nil {
		return err
	}

	return response.Data(c, client)
}
