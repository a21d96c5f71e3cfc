package attendance

import (
	"context"
	"database/sql"
	"time"

	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/shared/coerce"
	"go-attendance/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
	ApplyGeofenceStatus(ctx context.Context, id uint, status string) (bool, error)
}

const (
	StatusInPlace    = "IN_PLACE"
	StatusOutOfPlace = "OUT_OF_PLACE"
)

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	employeeID, okID := req.EmployeeID.ID()
	cordX, okX := req.CordX.Float64()
	cordY, okY := req.CordY.Float64()
	if !okID || !okX || !okY {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceData
	}

	attendanceTime, err := coerce.ParseOptionalTime(req.AttendanceTime)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidTimestamp
	}
	departureTime, err := coerce.ParseOptionalTime(req.DepartureTime)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidTimestamp
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	row := &Attendance{
		EmployeeID:       employeeID,
		CordX:            cordX,
		CordY:            cordY,
		AttendanceTime:   attendanceTime,
		DepartureTime:    departureTime,
		AttendanceStatus: req.AttendanceStatus,
		DepartureStatus:  req.DepartureStatus,
		Notes:            req.Notes,
	}

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == attendanceerrors.ErrUnknownEmployee {
			log.Warn("create attendance unknown employee", zap.Uint("employee_id", employeeID))
		} else {
			log.Error("create attendance persist failed", zap.Uint("employee_id", employeeID), zap.Error(err))
		}
		return AttendanceResponse{}, mapped
	}

	if s.outbox != nil {
		event, err := kafka.NewEvent(rid, "attendance", row.ID, "attendance_recorded", events.AttendanceRecordedTopic,
			events.AttendanceRecordedEvent{
				EventType:        "attendance_recorded",
				RequestID:        rid,
				AttendanceID:     row.ID,
				EmployeeID:       row.EmployeeID,
				CordX:            row.CordX,
				CordY:            row.CordY,
				AttendanceStatus: row.AttendanceStatus,
				OccurredAt:       time.Now().UTC(),
			})
		if err != nil {
			log.Error("marshal attendance_recorded event failed", zap.Error(err))
			return AttendanceResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("create attendance outbox persist failed", zap.Uint("attendance_id", row.ID), zap.Error(err))
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("create attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	log.Info("create attendance success",
		zap.Uint("attendance_id", row.ID),
		zap.Uint("employee_id", employeeID),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("get all attendance failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	id, ok := coerce.ParseID(employeeID)
	if !ok {
		return nil, attendanceerrors.ErrEmployeeNotFound
	}

	exists, err := s.repo.EmployeeExists(ctx, id)
	if err != nil {
		log.Error("check employee failed", zap.Uint("employee_id", id), zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, attendanceerrors.ErrEmployeeNotFound
	}

	rows, err := s.repo.FindAllByEmployee(ctx, id)
	if err != nil {
		log.Error("get attendance by employee failed", zap.Uint("employee_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	attendanceID, ok := coerce.ParseID(id)
	if !ok {
		return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
	}

	var (
		employeeID   uint
		cordX, cordY float64
	)
	if req.EmployeeID.Present() {
		if employeeID, ok = req.EmployeeID.ID(); !ok {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceData
		}
	}
	if req.CordX.Present() {
		if cordX, ok = req.CordX.Float64(); !ok {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceData
		}
	}
	if req.CordY.Present() {
		if cordY, ok = req.CordY.Float64(); !ok {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceData
		}
	}

	attendanceTime, err := coerce.ParseOptionalTime(req.AttendanceTime)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidTimestamp
	}
	departureTime, err := coerce.ParseOptionalTime(req.DepartureTime)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidTimestamp
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindByID(ctx, attendanceID)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if req.EmployeeID.Present() {
		row.EmployeeID = employeeID
	}
	if req.CordX.Present() {
		row.CordX = cordX
	}
	if req.CordY.Present() {
		row.CordY = cordY
	}
	if attendanceTime != nil {
		row.AttendanceTime = attendanceTime
	}
	if departureTime != nil {
		row.DepartureTime = departureTime
	}
	if req.AttendanceStatus != nil {
		row.AttendanceStatus = req.AttendanceStatus
	}
	if req.DepartureStatus != nil {
		row.DepartureStatus = req.DepartureStatus
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == err {
			log.Error("update attendance persist failed", zap.Uint("attendance_id", attendanceID), zap.Error(err))
		}
		return AttendanceResponse{}, mapped
	}

	if err := tx.Commit(); err != nil {
		log.Error("update attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	log.Info("update attendance success", zap.Uint("attendance_id", attendanceID))
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	attendanceID, ok := coerce.ParseID(id)
	if !ok {
		return attendanceerrors.ErrAttendanceNotFound
	}

	if err := s.repo.Delete(ctx, attendanceID); err != nil {
		return mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("delete attendance success", zap.Uint("attendance_id", attendanceID))
	return nil
}

func (s *service) DeleteAll(ctx context.Context) (int64, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		log.Error("delete all attendance failed", zap.Error(err))
		return 0, err
	}

	log.Warn("all attendance records deleted", zap.Int64("deleted", deleted))
	return deleted, nil
}

// ApplyGeofenceStatus fills in the attendance status of a record that was
// created without one. Records that already carry a status are left alone.
func (s *service) ApplyGeofenceStatus(ctx context.Context, id uint, status string) (bool, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	updated, err := s.repo.SetStatusIfEmpty(ctx, id, status)
	if err != nil {
		log.Error("apply geofence status failed", zap.Uint("attendance_id", id), zap.Error(err))
		return false, err
	}

	log.Info("apply geofence status",
		zap.Uint("attendance_id", id),
		zap.String("status", status),
		zap.Bool("updated", updated),
	)
	return updated, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:               a.ID,
		EmployeeID:       a.EmployeeID,
		CordX:            a.CordX,
		CordY:            a.CordY,
		AttendanceTime:   a.AttendanceTime,
		DepartureTime:    a.DepartureTime,
		AttendanceStatus: a.AttendanceStatus,
		DepartureStatus:  a.DepartureStatus,
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
	if a.Employee != nil {
		resp.Employee = &EmployeeResponse{
			ID:           a.Employee.ID,
			EmployeeName: a.Employee.EmployeeName,
			EmployeeCode: a.Employee.EmployeeCode,
		}
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
