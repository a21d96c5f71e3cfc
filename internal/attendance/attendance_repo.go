package attendance

import (
	"context"
	"database/sql"

	"go-attendance/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindAll(ctx context.Context) ([]Attendance, error)
	FindAllByEmployee(ctx context.Context, employeeID uint) ([]Attendance, error)
	EmployeeExists(ctx context.Context, employeeID uint) (bool, error)
	FindByID(ctx context.Context, id uint) (*Attendance, error)
	Update(ctx context.Context, a *Attendance) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) (int64, error)
	SetStatusIfEmpty(ctx context.Context, id uint, status string) (bool, error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.conn(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var rows []Attendance
	err := r.conn(ctx).
		Preload("Employee").
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID uint) ([]Attendance, error) {
	var rows []Attendance
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID uint) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&EmployeeRef{}).
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Attendance, error) {
	var a Attendance
	err := r.conn(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.conn(ctx).Omit(clause.Associations).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.conn(ctx).Delete(&Attendance{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll wipes attendance_departures and returns the removed row count.
func (r *repository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.conn(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&Attendance{})
	return res.RowsAffected, res.Error
}

// SetStatusIfEmpty writes status only when the record has none yet and
// reports whether a row changed.
func (r *repository) SetStatusIfEmpty(ctx context.Context, id uint, status string) (bool, error) {
	res := r.conn(ctx).
		Model(&Attendance{}).
		Where("id = ? AND (attendance_status IS NULL OR attendance_status = '')", id).
		Update("attendance_status", status)
	return res.RowsAffected > 0, res.Error
}
