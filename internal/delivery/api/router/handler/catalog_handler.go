package handler

import (
	"scoop/internal/delivery/api/response"
	"scoop/internal/domain/entity"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/errors"
	"scoop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// catalogForm is the create body of one catalog kind.
type catalogForm[T entity.Cataloged] interface {
	toEntity() T
}

// catalogPatchForm is the update body of one catalog kind.
type catalogPatchForm interface {
	toPatch() entity.CatalogPatch
}

// CatalogHandler serves the CRUD routes of one catalog kind. C and P are
// the create and update bodies.
type CatalogHandler[T entity.Cataloged, C catalogForm[T], P catalogPatchForm] struct {
	catalogUC usecase.CatalogUsecase[T]
	noun      string
}

type (
	CreamHandler   = CatalogHandler[*entity.Cream, CreamRequest, CreamPatchRequest]
	ToppingHandler = CatalogHandler[*entity.Topping, ToppingRequest, ToppingPatchRequest]
	ProductHandler = CatalogHandler[*entity.Product, ProductRequest, ProductPatchRequest]
)

// NewCreamHandler is the constructor for the cream routes.
func NewCreamHandler(creamUC usecase.CreamUsecase) *CreamHandler {
	return &CreamHandler{catalogUC: creamUC, noun: "Cream"}
}

// NewToppingHandler is the constructor for the topping routes.
func NewToppingHandler(toppingUC usecase.ToppingUsecase) *ToppingHandler {
	return &ToppingHandler{catalogUC: toppingUC, noun: "Topping"}
}

// NewProductHandler is the constructor for the product routes.
func NewProductHandler(productUC usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{catalogUC: productUC, noun: "Product"}
}

// Create handles POST /.
func (h *CatalogHandler[T, C, P]) Create(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	var req C
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.catalogUC.Create(c.Request().Context(), caller, req.toEntity())
	if err != nil {
		return err
	}

	return response.Data(c, item)
}

// List handles GET /.
func (h *CatalogHandler[T, C, P]) List(c echo.Context) error {
	params, err := listParams(c)
	if err != nil {
		return err
	}

	page, err := h.catalogUC.List(c.Request().Context(), params)
	if err != nil {
		return err
	}

	return response.Page(c, page)
}

// Get handles GET /:id.
func (h *CatalogHandler[T, C, P]) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	item, err := h.catalogUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Data(c, item)
}

// Update handles PUT /:id.
func (h *CatalogHandler[T, C, P]) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req P
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.catalogUC.Update(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return err
	}

	return response.Message(c, h.noun+" updated successfully", item)
}

// Delete handles DELETE /:id.
func (h *CatalogHandler[T, C, P]) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.catalogUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.NoContent(c)
}

// DeleteMany handles DELETE /deleteMany?ids=a,b.
func (h *CatalogHandler[T, C, P]) DeleteMany(c echo.Context) error {
	ids, err := idsQuery(c)
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteMany(c.Request().Context(), ids); err != nil {
		return err
	}

	return response.NoContent(c)
}

// UploadPhoto handles POST /:id/photo with a multipart "photo" file.
func (h *CatalogHandler[T, C, P]) UploadPhoto(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile("photo")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("photo must be a file and not empty")
	}
	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded photo")
	}
	defer file.Close()

	item, err := h.catalogUC.UploadPhoto(c.Request().Context(), id, usecase.Photo{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Body:        file,
	})
	if err != nil {
		return err
	}

	return response.Message(c, "Photo uploaded successfully", item)
}

// CreamRequest represents the request body for creating a cream.
type CreamRequest struct {
	Name      string   `json:"name" validate:"required"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Amount    *float64 `json:"amount" validate:"required,gte=0"`
	Unit      string   `json:"unit" validate:"required"`
	Available *bool    `json:"available" validate:"required"`
	Photo     string   `json:"photo"`
}

func (r CreamRequest) toEntity() *entity.Cream {
	return &entity.Cream{
		CatalogItem: catalogItem(r.Name, *r.Price, r.Unit, *r.Available, r.Photo),
		Amount:      *r.Amount,
	}
}

// CreamPatchRequest represents the request body for updating a cream.
type CreamPatchRequest struct {
	Name      *string  `json:"name" validate:"omitempty,min=1"`
	Price     *float64 `json:"price" validate:"omitempty,gte=0"`
	Amount    *float64 `json:"amount" validate:"omitempty,gte=0"`
	Unit      *string  `json:"unit" validate:"omitempty,min=1"`
	Available *bool    `json:"available"`
	Photo     *string  `json:"photo"`
}

func (r CreamPatchRequest) toPatch() entity.CatalogPatch {
	return entity.CatalogPatch{
		Name:      r.Name,
		Price:     r.Price,
		Amount:    r.Amount,
		Unit:      r.Unit,
		Available: r.Available,
		Photo:     r.Photo,
	}
}

// ToppingRequest represents the request body for creating a topping.
type ToppingRequest CreamRequest

func (r ToppingRequest) toEntity() *entity.Topping {
	return &entity.Topping{
		CatalogItem: catalogItem(r.Name, *r.Price, r.Unit, *r.Available, r.Photo),
		Amount:      *r.Amount,
	}
}

// ToppingPatchRequest represents the request body for updating a topping.
type ToppingPatchRequest CreamPatchRequest

func (r ToppingPatchRequest) toPatch() entity.CatalogPatch {
	return CreamPatchRequest(r).toPatch()
}

// ProductRequest represents the request body for creating a product.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Size        *float64 `json:"size" validate:"required,gte=0"`
	Unit        string   `json:"unit" validate:"required"`
	Description string   `json:"description"`
	Available   *bool    `json:"available" validate:"required"`
	Photo       string   `json:"photo"`
}

func (r ProductRequest) toEntity() *entity.Product {
	return &entity.Product{
		CatalogItem: catalogItem(r.Name, *r.Price, r.Unit, *r.Available, r.Photo),
		Size:        *r.Size,
		Description: r.Description,
	}
}

// ProductPatchRequest represents the request body for updating a product.
type ProductPatchRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Size        *float64 `json:"size" validate:"omitempty,gte=0"`
	Unit        *string  `json:"unit" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Available   *bool    `json:"available"`
	Photo       *string  `json:"photo"`
}

func (r ProductPatchRequest) toPatch() entity.CatalogPatch {
	return entity.CatalogPatch{
		Name:        r.Name,
		Price:       r.Price,
		Size:        r.Size,
		Unit:        r.Unit,
		Description: r.Description,
		Available:   r.Available,
		Photo:       r.Photo,
	}
}

func catalogItem(name string, price float64, unit string, available bool, photo string) entity.CatalogItem {
	return entity.CatalogItem{
		Name:      name,
		Price:     price,
		Unit:      unit,
		Available: available,
		Photo:     photo,
	}
}
