package place

import (
	"time"

	"go-attendance/internal/shared/coerce"
)

type PointInput struct {
	CordX coerce.Number `json:"cordx"`
	CordY coerce.Number `json:"cordy"`
}

type CreatePlaceRequest struct {
	Name   string       `json:"name" binding:"required"`
	Points []PointInput `json:"points" binding:"required,min=3"`
}

type CreatePointRequest struct {
	PlaceID coerce.Number `json:"placeId"`
	CordX   coerce.Number `json:"cordx"`
	CordY   coerce.Number `json:"cordy"`
}

type PlaceResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Points    []PointResponse `json:"points"`
}

type PointResponse struct {
	ID        uint      `json:"id"`
	PlaceID   uint      `json:"placeId"`
	CordX     float64   `json:"cordx"`
	CordY     float64   `json:"cordy"`
	CreatedAt time.Time `json:"createdAt"`
}
