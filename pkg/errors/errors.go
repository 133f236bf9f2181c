package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
)

type ValidationFailedError struct {
	Errors []models.ValidationError
}

func NewValidationFailedError(errs []models.ValidationError) *ValidationFailedError {
	return &ValidationFailedError{Errors: errs}
}

func (e *ValidationFailedError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, v := range e.Errors {
		msgs = append(msgs, v.Message)
	}
	return fmt.Sprintf("filter validation failed: %s", strings.Join(msgs, "; "))
}

func IsValidationFailedError(err error) bool {
	var e *ValidationFailedError
	return errors.As(err, &e)
}

// ValidationErrors returns the validation messages carried by err, if any.
func ValidationErrors(err error) []models.ValidationError {
	var e *ValidationFailedError
	if errors.As(err, &e) {
		return e.Errors
	}
	return nil
}

type BuilderConsumedError struct{}

func NewBuilderConsumedError() *BuilderConsumedError {
	return &BuilderConsumedError{}
}

func (e *BuilderConsumedError) Error() string {
	return "query builder already used; create a new builder per query"
}

func IsBuilderConsumedError(err error) bool {
	var e *BuilderConsumedError
	return errors.As(err, &e)
}

type UnsupportedShapeError struct {
	Shape string
}

func NewUnsupportedShapeError(shape string) *UnsupportedShapeError {
	return &UnsupportedShapeError{Shape: shape}
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unsupported query shape: %s", e.Shape)
}

func IsUnsupportedShapeError(err error) bool {
	var e *UnsupportedShapeError
	return errors.As(err, &e)
}

type UnauthorizedError struct {
	Reason string
}

func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s", e.Reason)
}

func IsUnauthorizedError(err error) bool {
	var e *UnauthorizedError
	return errors.As(err, &e)
}
