package handler

import (
	"scoop/internal/delivery/api/response"
	"scoop/internal/domain/entity"
	"scoop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AddressHandler serves /resources/addresses.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler.
func NewAddressHandler(addressUC usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{addressUC: addressUC}
}

// AddressRequest represents the request body for creating an address.
type AddressRequest struct {
	House  string `json:"house" validate:"required"`
	Square string `json:"square" validate:"required"`
}

// AddressPatchRequest represents the request body for updating an address.
type AddressPatchRequest struct {
	House  *string `json:"house" validate:"omitempty,min=1"`
	Square *string `json:"square" validate:"omitempty,min=1"`
}

// Create handles POST /resources/addresses.
func (h *AddressHandler) Create(c echo.Context) error {
	var req AddressRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	address, err := h.addressUC.Create(c.Request().Context(), req.House, req.Square)
	if err != nil {
		return err
	}

	return response.Data(c, address)
}

// List handles GET /resources/addresses.
func (h *AddressHandler) List(c echo.Context) error {
	params, err := listParams(c)
	if err != nil {
		return err
	}

	page, err := h.addressUC.List(c.Request().Context(), params)
	if err != nil {
		return err
	}

	return response.Page(c, page)
}

// Get handles GET /resources/addresses/:id.
func (h *AddressHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	address, err := h.addressUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Data(c, address)
}

// Update handles PUT /resources/addresses/:id.
func (h *AddressHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req AddressPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	address, err := h.addressUC.Update(c.Request().Context(), id, entity.AddressPatch{
		House:  req.House,
		Square: req.Square,
	})
	if err != nil {
		return err
	}

	return response.Message(c, "Address updated successfully", address)
}

// Delete handles DELETE /resources/addresses/:id.
func (h *AddressHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.addressUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.NoContent(c)
}
