package place

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	placeerrors "go-attendance/internal/place/errors"
	"go-attendance/internal/shared/coerce"
	"go-attendance/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// CacheKeyPlacesGeneration is bumped on every write. Readers key the
	// cached list by its current value, so a load that raced a write lands
	// under a generation nobody reads anymore.
	CacheKeyPlacesGeneration = "places:gen"
	CacheKeyAllPlacesPrefix  = "places:all:"
	DefaultCacheTTL          = 10 * time.Minute
	minPolygonPoints         = 3
)

// AllPlacesCacheKey is the cache key of the place list for generation gen.
func AllPlacesCacheKey(gen string) string {
	return CacheKeyAllPlacesPrefix + gen
}

//go:generate mockgen -source=place_service.go -destination=mock/place_service_mock.go -package=mock
type Service interface {
	GetAllPlaces(ctx context.Context) ([]PlaceResponse, error)
	CreatePlace(ctx context.Context, req CreatePlaceRequest) (PlaceResponse, error)
	GetAllPoints(ctx context.Context) ([]PointResponse, error)
	CreatePoint(ctx context.Context, req CreatePointRequest) (PointResponse, error)
	Locate(ctx context.Context, cordX, cordY string) ([]PlaceResponse, error)
	PlacesContaining(ctx context.Context, x, y float64) ([]PlaceResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	rdb      redis.Cmdable
	cacheTTL time.Duration
	group    singleflight.Group
	logger   *zap.Logger
}

// NewService builds the place service. rdb may be nil, in which case
// every read goes to the store.
func NewService(db *sql.DB, repo Repository, rdb redis.Cmdable, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("place.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("place.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		db:       db,
		repo:     repo,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		logger:   l,
	}
}

func (s *service) GetAllPlaces(ctx context.Context) ([]PlaceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	cacheKey, cached := s.cacheKey(ctx, log)
	if cached {
		if places, ok := s.readCache(ctx, log, cacheKey); ok {
			return places, nil
		}
	}

	flightKey := cacheKey
	if !cached {
		flightKey = CacheKeyAllPlacesPrefix
	}
	v, err, shared := s.group.Do(flightKey, func() (any, error) {
		// Shared by every waiter, so one caller canceling must not fail the rest.
		loadCtx := context.WithoutCancel(ctx)
		rows, err := s.repo.FindAllPlaces(loadCtx)
		if err != nil {
			return nil, err
		}
		places := mapToPlaceListResponse(rows)
		if cached {
			s.writeCache(loadCtx, log, cacheKey, places)
		}
		return places, nil
	})
	if err != nil {
		log.Error("get all places failed", zap.Error(err))
		return nil, err
	}
	if shared {
		log.Debug("places load shared with concurrent caller")
	}

	return v.([]PlaceResponse), nil
}

func (s *service) CreatePlace(ctx context.Context, req CreatePlaceRequest) (PlaceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	name := strings.TrimSpace(req.Name)
	if name == "" || len(req.Points) < minPolygonPoints {
		log.Debug("create place rejected", zap.Int("points", len(req.Points)))
		return PlaceResponse{}, placeerrors.ErrInvalidPlaceData
	}

	points := make([]Point, len(req.Points))
	for i, in := range req.Points {
		x, okX := in.CordX.Float64()
		y, okY := in.CordY.Float64()
		if !okX || !okY {
			return PlaceResponse{}, placeerrors.ErrInvalidPointCoordinates
		}
		points[i] = Point{CordX: x, CordY: y}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create place begin tx failed", zap.Error(err))
		return PlaceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p := &Place{Name: name}
	if err := qtx.CreatePlace(ctx, p); err != nil {
		log.Error("create place persist failed", zap.Error(err))
		return PlaceResponse{}, mapRepositoryError(err)
	}

	for i := range points {
		points[i].PlaceID = p.ID
	}
	if err := qtx.CreatePoints(ctx, points); err != nil {
		log.Error("create place points persist failed", zap.Uint("place_id", p.ID), zap.Error(err))
		return PlaceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create place commit failed", zap.Error(err))
		return PlaceResponse{}, err
	}
	s.invalidateCache(ctx, log)

	p.Points = points
	log.Info("create place success", zap.Uint("place_id", p.ID), zap.Int("points", len(points)))
	return mapToPlaceResponse(*p), nil
}

func (s *service) GetAllPoints(ctx context.Context) ([]PointResponse, error) {
	rows, err := s.repo.FindAllPoints(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("get all points failed", zap.Error(err))
		return nil, err
	}
	return mapToPointListResponse(rows), nil
}

func (s *service) CreatePoint(ctx context.Context, req CreatePointRequest) (PointResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	placeID, okID := req.PlaceID.ID()
	x, okX := req.CordX.Float64()
	y, okY := req.CordY.Float64()
	if !okID || !okX || !okY {
		return PointResponse{}, placeerrors.ErrInvalidPointData
	}

	points := []Point{{PlaceID: placeID, CordX: x, CordY: y}}
	if err := s.repo.CreatePoints(ctx, points); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, placeerrors.ErrUnknownPlace) {
			log.Warn("create point unknown place", zap.Uint("place_id", placeID))
		} else {
			log.Error("create point persist failed", zap.Uint("place_id", placeID), zap.Error(err))
		}
		return PointResponse{}, mapped
	}
	s.invalidateCache(ctx, log)

	log.Info("create point success", zap.Uint("point_id", points[0].ID), zap.Uint("place_id", placeID))
	return mapToPointResponse(points[0]), nil
}

func (s *service) Locate(ctx context.Context, cordX, cordY string) ([]PlaceResponse, error) {
	x, okX := coerce.ParseFloat(cordX)
	y, okY := coerce.ParseFloat(cordY)
	if !okX || !okY {
		return nil, placeerrors.ErrInvalidLocation
	}
	return s.PlacesContaining(ctx, x, y)
}

// PlacesContaining returns the places whose polygon covers (x, y),
// boundary included.
func (s *service) PlacesContaining(ctx context.Context, x, y float64) ([]PlaceResponse, error) {
	places, err := s.GetAllPlaces(ctx)
	if err != nil {
		return nil, err
	}

	target := Coordinate{X: x, Y: y}
	matches := make([]PlaceResponse, 0)
	for _, p := range places {
		if Contains(coordinatesOf(p.Points), target) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// cacheKey resolves the list key for the current generation. A missing
// generation counter reads as 0.
func (s *service) cacheKey(ctx context.Context, log *zap.Logger) (string, bool) {
	if s.rdb == nil {
		return "", false
	}

	gen, err := s.rdb.Get(ctx, CacheKeyPlacesGeneration).Result()
	switch {
	case errors.Is(err, redis.Nil):
		gen = "0"
	case err != nil:
		log.Warn("places cache generation read failed", zap.Error(err))
		return "", false
	}
	return AllPlacesCacheKey(gen), true
}

func (s *service) readCache(ctx context.Context, log *zap.Logger, key string) ([]PlaceResponse, bool) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn("places cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var places []PlaceResponse
	if err := json.Unmarshal([]byte(val), &places); err != nil {
		log.Warn("places cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return places, true
}

func (s *service) writeCache(ctx context.Context, log *zap.Logger, key string, places []PlaceResponse) {
	data, err := json.Marshal(places)
	if err != nil {
		log.Warn("places cache encode failed", zap.Error(err))
		return
	}
	if err := s.rdb.Set(ctx, key, string(data), s.cacheTTL).Err(); err != nil {
		log.Warn("places cache write failed", zap.Error(err))
	}
}

func (s *service) invalidateCache(ctx context.Context, log *zap.Logger) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, CacheKeyPlacesGeneration).Err(); err != nil {
		log.Warn("places cache invalidation failed", zap.Error(err))
	}
}

func mapToPlaceResponse(p Place) PlaceResponse {
	return PlaceResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Points:    mapToPointListResponse(p.Points),
	}
}

func mapToPlaceListResponse(rows []Place) []PlaceResponse {
	res := make([]PlaceResponse, len(rows))
	for i, p := range rows {
		res[i] = mapToPlaceResponse(p)
	}
	return res
}

func mapToPointResponse(p Point) PointResponse {
	return PointResponse{
		ID:        p.ID,
		PlaceID:   p.PlaceID,
		CordX:     p.CordX,
		CordY:     p.CordY,
		CreatedAt: p.CreatedAt,
	}
}

func mapToPointListResponse(rows []Point) []PointResponse {
	res := make([]PointResponse, len(rows))
	for i, p := range rows {
		res[i] = mapToPointResponse(p)
	}
	return res
}
