package handler

import (
	"errors"

	"path-pilot/internal/delivery/http/middleware"
	"path-pilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrInvalidLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrCourseNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Course not found", nil, err)
	case errors.Is(err, usecase.ErrNoQuestions):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Catalog not loaded", nil, err)
	case errors.Is(err, usecase.ErrMalformedCourseData):
		return middleware.NewAppError(fiber.StatusInternalServerError, "Malformed course data", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", nil, err)
	}
}

func badRequest(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
}
