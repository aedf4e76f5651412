package handler

import (
	"net/http"

	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// PhotoHandler streams stored catalog photos.
type PhotoHandler struct {
	photos service.PhotoStorage
}

// NewPhotoHandler is the constructor for PhotoHandler.
func NewPhotoHandler(photos service.PhotoStorage) *PhotoHandler {
	return &PhotoHandler{photos: photos}
}

// Get handles GET /photos/*.
func (h *PhotoHandler) Get(c echo.Context) error {
	key := c.Param("*")
	if key == "" {
		return domainerrors.ErrNotFound
	}

	body, contentType, err := h.photos.Open(c.Request().Context(), key)
	if err != nil {
		return err
	}
	defer body.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, body)
}
