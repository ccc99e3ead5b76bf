package server

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/skillscope/skillscope/internal/intake"
	"github.com/skillscope/skillscope/internal/session"
)

// mapIntakeError translates intake failures into a status code and a
// user-facing message. Client-caused failures keep their sentinel message;
// everything else collapses into a generic 500 so internals never leak.
func mapIntakeError(err error) (int, string) {
	clientErrs := []error{
		intake.ErrEmptyDocument,
		intake.ErrUnsupportedType,
		intake.ErrDocumentTooLarge,
		intake.ErrEmptyText,
	}
	for _, sentinel := range clientErrs {
		if errors.Is(err, sentinel) {
			return fiber.StatusBadRequest, sentinel.Error()
		}
	}

	switch {
	case errors.Is(err, intake.ErrNotConfigured):
		return fiber.StatusInternalServerError, intake.ErrNotConfigured.Error()
	case errors.Is(err, intake.ErrUpstreamMalformed):
		return fiber.StatusInternalServerError, intake.ErrUpstreamMalformed.Error()
	default:
		return fiber.StatusInternalServerError, "failed to parse resume"
	}
}

// mapSessionError translates session failures.
func mapSessionError(err error) (int, string) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return fiber.StatusNotFound, session.ErrNotFound.Error()
	case errors.Is(err, session.ErrNoResume):
		return fiber.StatusBadRequest, session.ErrNoResume.Error()
	case errors.Is(err, session.ErrUploadInFlight):
		return fiber.StatusConflict, session.ErrUploadInFlight.Error()
	default:
		return fiber.StatusBadRequest, err.Error()
	}
}
