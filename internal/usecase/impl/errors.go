package impl

import (
	"net/http"

	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/errors"
)

// notFoundAsBadRequest answers a missing target with 400, as write
// endpoints report it.
func notFoundAsBadRequest(err error) error {
	var base *domainerrors.BaseError
	if errors.As(err, &base) && base.HTTPCode() == http.StatusNotFound {
		return base.WithStatus(http.StatusBadRequest)
	}

	return err
}
