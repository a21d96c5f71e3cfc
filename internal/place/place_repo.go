package place

import (
	"context"
	"database/sql"

	"go-attendance/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=place_repo.go -destination=mock/place_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreatePlace(ctx context.Context, p *Place) error
	CreatePoints(ctx context.Context, points []Point) error
	FindAllPlaces(ctx context.Context) ([]Place, error)
	FindAllPoints(ctx context.Context) ([]Point, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

// CreatePlace inserts the place row only; points go through CreatePoints.
func (r *repository) CreatePlace(ctx context.Context, p *Place) error {
	return r.conn(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *repository) CreatePoints(ctx context.Context, points []Point) error {
	if len(points) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&points).Error
}

func (r *repository) FindAllPlaces(ctx context.Context) ([]Place, error) {
	var places []Place
	err := r.conn(ctx).
		Preload("Points", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("id ASC").
		Find(&places).Error
	return places, err
}

func (r *repository) FindAllPoints(ctx context.Context) ([]Point, error) {
	var points []Point
	err := r.conn(ctx).Order("id ASC").Find(&points).Error
	return points, err
}
