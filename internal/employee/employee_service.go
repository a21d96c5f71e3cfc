package employee

import (
	"context"
	"database/sql"
	"strings"
	"time"

	employeeerrors "go-attendance/internal/employee/errors"
	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/shared/coerce"
	"go-attendance/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	name := strings.TrimSpace(req.EmployeeName)
	code := strings.TrimSpace(req.EmployeeCode)
	if name == "" || code == "" {
		log.Debug("create employee missing name or code")
		return EmployeeResponse{}, employeeerrors.ErrMissingRequiredFields
	}

	hireDate, err := coerce.ParseOptionalTime(req.HireDate)
	if err != nil {
		log.Debug("create employee invalid hireDate", zap.Stringp("hire_date", req.HireDate))
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	empl := &Employee{
		EmployeeName: name,
		EmployeeCode: code,
		HireDate:     hireDate,
		Department:   req.Department,
		JobTitle:     req.JobTitle,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		log.Error("create employee persist failed", zap.String("employee_code", code), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewEvent(rid, "employee", empl.ID, "employee_created", events.EmployeeCreatedTopic,
			events.EmployeeCreatedEvent{
				EventType:    "employee_created",
				RequestID:    rid,
				EmployeeID:   empl.ID,
				EmployeeCode: empl.EmployeeCode,
				OccurredAt:   time.Now().UTC(),
			})
		if err != nil {
			log.Error("marshal employee_created event failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("create employee outbox persist failed", zap.Uint("employee_id", empl.ID), zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("create employee success", zap.Uint("employee_id", empl.ID))
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employeeID, ok := coerce.ParseID(id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		log.Debug("get employee by id failed", zap.Uint("employee_id", employeeID), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employeeID, ok := coerce.ParseID(id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	if blank(req.EmployeeName) || blank(req.EmployeeCode) {
		return EmployeeResponse{}, employeeerrors.ErrMissingRequiredFields
	}

	hireDate, err := coerce.ParseOptionalTime(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, employeeID)
	if err != nil {
		log.Debug("update employee fetch existing failed", zap.Uint("employee_id", employeeID), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.EmployeeName != nil {
		empl.EmployeeName = strings.TrimSpace(*req.EmployeeName)
	}
	if req.EmployeeCode != nil {
		empl.EmployeeCode = strings.TrimSpace(*req.EmployeeCode)
	}
	if hireDate != nil {
		empl.HireDate = hireDate
	}
	if req.Department != nil {
		empl.Department = req.Department
	}
	if req.JobTitle != nil {
		empl.JobTitle = req.JobTitle
	}

	if err := qtx.Update(ctx, empl); err != nil {
		log.Error("update employee persist failed", zap.Uint("employee_id", employeeID), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("update employee success", zap.Uint("employee_id", employeeID))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	employeeID, ok := coerce.ParseID(id)
	if !ok {
		return employeeerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, employeeID); err != nil {
		log.Debug("delete employee failed", zap.Uint("employee_id", employeeID), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	log.Info("delete employee success", zap.Uint("employee_id", employeeID))
	return nil
}

func blank(v *string) bool {
	return v != nil && strings.TrimSpace(*v) == ""
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                   empl.ID,
		EmployeeName:         empl.EmployeeName,
		EmployeeCode:         empl.EmployeeCode,
		HireDate:             empl.HireDate,
		Department:           empl.Department,
		JobTitle:             empl.JobTitle,
		CreatedAt:            empl.CreatedAt,
		UpdatedAt:            empl.UpdatedAt,
		AttendanceDepartures: make([]AttendanceResponse, len(empl.AttendanceDepartures)),
	}
	for i, a := range empl.AttendanceDepartures {
		resp.AttendanceDepartures[i] = AttendanceResponse{
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
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
