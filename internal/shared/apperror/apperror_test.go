package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"go-attendance/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its status and message", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound))

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
		assert.Equal(t, "Employee not found", httpErr.Message)
	})

	t.Run("unknown error is hidden behind internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Internal server error", httpErr.Message)
	})
}

func TestMapValidationError(t *testing.T) {
	type body struct {
		EmployeeName string `json:"employeeName" validate:"required"`
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string { return f.Tag.Get("json") })

	err := v.Struct(body{})
	mapped := apperror.MapValidationError(err)

	var appErr *apperror.AppError
	assert.True(t, errors.As(mapped, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "Employee Name is required", appErr.Message)

	assert.Equal(t, "Invalid request body", apperror.MapValidationError(errors.New("EOF")).Error())
}

func TestMapValidationError_ReportsGivenError(t *testing.T) {
	type body struct {
		Points []int `json:"points" validate:"required,min=3"`
	}
	invalidPlace := apperror.New(apperror.CodeInvalidInput, "Place name and at least 3 points are required", http.StatusBadRequest)

	err := validator.New().Struct(body{Points: []int{1}})
	mapped := apperror.MapValidationError(err, invalidPlace)

	httpErr := apperror.ToHTTP(mapped)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Place name and at least 3 points are required", httpErr.Message)

	var verrs validator.ValidationErrors
	assert.True(t, errors.As(mapped, &verrs))

	assert.Equal(t, "Invalid request body", apperror.MapValidationError(errors.New("EOF"), invalidPlace).Error())
}
