package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"repairshop/internal/pkg/errs"
)

// respondError maps domain errors onto HTTP status codes:
//
//	not found            -> 404
//	version conflict     -> 409
//	guard not satisfied  -> 412
//	invalid transition   -> 422
//	invalid value        -> 422
//	anything else        -> 500
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrGuardNotSatisfied):
		code = http.StatusPreconditionFailed
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// respondBadRequest reports a request body or parameter that could not be parsed.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
