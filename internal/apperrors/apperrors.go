// Package apperrors maps domain errors onto transport status codes.
package apperrors

import (
	"errors"

	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, domain.ErrCameraNotFound), errors.Is(err, domain.ErrSessionNotFound):
		return codes.NotFound
	case errors.Is(err, domain.ErrUnknownAccessory),
		errors.Is(err, domain.ErrDateBeforeMinimum),
		errors.Is(err, domain.ErrIncompleteForm),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidPayload):
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

func HTTPStatus(err error) int {
	return runtime.HTTPStatusFromCode(Code(err))
}

// Status converts err into a gRPC status error.
func Status(err error) error {
	if err == nil {
		return nil
	}
	return status.Error(Code(err), err.Error())
}
