package placeerrors

import (
	"go-attendance/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidPlaceData = apperror.New(
		apperror.CodeInvalidInput,
		"Place name and at least 3 points are required",
		http.StatusBadRequest,
	)
	ErrInvalidPointCoordinates = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid point coordinates",
		http.StatusBadRequest,
	)
	ErrInvalidPointData = apperror.New(
		apperror.CodeInvalidInput,
		"Missing or invalid placeId, cordx, or cordy",
		http.StatusBadRequest,
	)
	ErrInvalidLocation = apperror.New(
		apperror.CodeInvalidInput,
		"Missing or invalid cordx or cordy",
		http.StatusBadRequest,
	)
	// ErrUnknownPlace is a point that references a place id with no row.
	ErrUnknownPlace = apperror.New(
		apperror.CodeInvalidInput,
		"Place not found",
		http.StatusBadRequest,
	)
)
