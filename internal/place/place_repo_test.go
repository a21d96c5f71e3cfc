package place_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-attendance/internal/place"
	placeerrors "go-attendance/internal/place/errors"
	"go-attendance/internal/shared/coerce"
	"go-attendance/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// failingPointsRepo lets the place insert succeed and fails the points insert.
type failingPointsRepo struct {
	place.Repository
}

func (r failingPointsRepo) WithTx(tx *sql.Tx) place.Repository {
	return failingPointsRepo{Repository: r.Repository.WithTx(tx)}
}

func (r failingPointsRepo) CreatePoints(ctx context.Context, points []place.Point) error {
	return errors.New("points insert failed")
}

func newSQLiteService(t *testing.T, repo func(*gorm.DB) place.Repository) (place.Service, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	return place.NewService(sqlDB, repo(db), nil, 0), db
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestPlaceRepository_CreatePlaceIsAtomic(t *testing.T) {
	ctx := context.Background()

	t.Run("commit persists place with all points", func(t *testing.T) {
		svc, db := newSQLiteService(t, place.NewRepository)

		created, err := svc.CreatePlace(ctx, place.CreatePlaceRequest{
			Name:   "Warehouse",
			Points: pointsInput(0, 0, 8, 0, 8, 6, 0, 6),
		})
		require.NoError(t, err)

		places, err := svc.GetAllPlaces(ctx)
		require.NoError(t, err)
		require.Len(t, places, 1)
		assert.Equal(t, created.ID, places[0].ID)
		assert.Equal(t, "Warehouse", places[0].Name)
		assert.Len(t, places[0].Points, 4)
		assert.Equal(t, int64(4), countRows(t, db, &place.Point{}))
	})

	t.Run("failure after place insert leaves nothing behind", func(t *testing.T) {
		svc, db := newSQLiteService(t, func(db *gorm.DB) place.Repository {
			return failingPointsRepo{Repository: place.NewRepository(db)}
		})

		_, err := svc.CreatePlace(ctx, place.CreatePlaceRequest{
			Name:   "Warehouse",
			Points: pointsInput(0, 0, 8, 0, 8, 6),
		})

		assert.Error(t, err)
		assert.Equal(t, int64(0), countRows(t, db, &place.Place{}))
		assert.Equal(t, int64(0), countRows(t, db, &place.Point{}))
	})
}

func TestPlaceRepository_CreatePointForeignKey(t *testing.T) {
	ctx := context.Background()
	svc, db := newSQLiteService(t, place.NewRepository)

	_, err := svc.CreatePoint(ctx, place.CreatePointRequest{
		PlaceID: coerce.NewNumber(float64(999)),
		CordX:   coerce.NewNumber(1.0),
		CordY:   coerce.NewNumber(1.0),
	})

	assert.ErrorIs(t, err, placeerrors.ErrUnknownPlace)
	assert.Equal(t, int64(0), countRows(t, db, &place.Point{}))

	created, err := svc.CreatePlace(ctx, place.CreatePlaceRequest{
		Name:   "Yard",
		Points: pointsInput(0, 0, 1, 0, 1, 1),
	})
	require.NoError(t, err)

	point, err := svc.CreatePoint(ctx, place.CreatePointRequest{
		PlaceID: coerce.NewNumber(float64(created.ID)),
		CordX:   coerce.NewNumber("0"),
		CordY:   coerce.NewNumber("1"),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, point.PlaceID)

	points, err := svc.GetAllPoints(ctx)
	require.NoError(t, err)
	assert.Len(t, points, 4)
}
