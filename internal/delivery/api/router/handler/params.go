// Package handler holds the echo handlers of the REST API.
package handler

import (
	"encoding/json"
	"strconv"
	"strings"

	"scoop/internal/delivery/api/middleware"
	"scoop/internal/delivery/api/validator"
	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/listing"
	"scoop/internal/errors"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// idParam parses the ":id" path parameter.
func idParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID
	}

	return id, nil
}

// idsQuery parses the comma separated "ids" query parameter of deleteMany.
func idsQuery(c echo.Context) ([]uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam("ids"))
	if raw == "" {
		return nil, domainerrors.ErrMissingIDs
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, domainerrors.ErrInvalidID.WithMessage("Invalid id: " + part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, domainerrors.ErrMissingIDs
	}

	return ids, nil
}

// listParams reads page, perPage, orderBy, filter and includes.
func listParams(c echo.Context) (listing.Params, error) {
	page, err := intQuery(c, "page")
	if err != nil {
		return listing.Params{}, err
	}
	perPage, err := intQuery(c, "perPage")
	if err != nil {
		return listing.Params{}, err
	}

	return listing.Params{
		Page:     page,
		PerPage:  perPage,
		OrderBy:  c.QueryParam("orderBy"),
		Filter:   c.QueryParam("filter"),
		Includes: includesQuery(c),
	}, nil
}

func intQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithMessage(name + " " + validator.Expectation(validator.KindNumber))
	}

	return n, nil
}

func includesQuery(c echo.Context) []string {
	raw := strings.TrimSpace(c.QueryParam("includes"))
	if raw == "" {
		return nil
	}

	var includes []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			includes = append(includes, part)
		}
	}

	return includes
}

// callerOf returns the authenticated caller. Routes behind Authenticate
// always have one.
func callerOf(c echo.Context) (usecase.Caller, error) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return usecase.Caller{}, domainerrors.ErrNoAccessToken
	}

	return caller, nil
}

// bind decodes the JSON body into req and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return bindError(err)
	}

	return c.Validate(req)
}

// bindError turns a JSON decoding failure into a validation error naming
// the offending field.
func bindError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Internal != nil {
		err = httpErr.Internal
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domainerrors.ErrValidationFailed.WithMessage(
			typeErr.Field + " " + validator.Expectation(validator.KindOf(typeErr.Type)))
	}

	return domainerrors.ErrValidationFailed.WithMessage("Malformed request body")
}
