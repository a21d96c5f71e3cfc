package attendance_test

import (
	"context"
	"testing"

	"go-attendance/internal/attendance"
	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/employee"
	"go-attendance/internal/place"
	"go-attendance/internal/shared/coerce"
	"go-attendance/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedEmployee(t *testing.T, db *gorm.DB, code string) uint {
	t.Helper()
	e := &employee.Employee{EmployeeName: "Employee " + code, EmployeeCode: code}
	require.NoError(t, db.Create(e).Error)
	return e.ID
}

func newSQLiteService(t *testing.T) (attendance.Service, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	return attendance.NewService(sqlDB, attendance.NewRepository(db)), db
}

func TestAttendanceRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	svc, db := newSQLiteService(t)
	employeeID := seedEmployee(t, db, "EMP-1")

	created, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID:       coerce.NewNumber(float64(employeeID)),
		CordX:            coerce.NewNumber("106.8"),
		CordY:            coerce.NewNumber(-6.2),
		AttendanceStatus: strPtr("on-time"),
	})
	require.NoError(t, err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, 106.8, all[0].CordX)
	assert.Equal(t, -6.2, all[0].CordY)
	require.NotNil(t, all[0].Employee)
	assert.Equal(t, "EMP-1", all[0].Employee.EmployeeCode)

	mine, err := svc.GetByEmployee(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestAttendanceRepository_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSQLiteService(t)

	_, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: coerce.NewNumber(float64(123)),
		CordX:      coerce.NewNumber(1.0),
		CordY:      coerce.NewNumber(2.0),
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrUnknownEmployee)
}

func TestAttendanceRepository_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	svc, db := newSQLiteService(t)
	employeeID := seedEmployee(t, db, "EMP-1")

	_, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID:       coerce.NewNumber(float64(employeeID)),
		CordX:            coerce.NewNumber(1.0),
		CordY:            coerce.NewNumber(2.0),
		AttendanceStatus: strPtr("late"),
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "1", attendance.UpdateAttendanceRequest{
		DepartureTime: strPtr("2024-03-01T17:30:00Z"),
	})
	require.NoError(t, err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 1.0, all[0].CordX)
	assert.Equal(t, 2.0, all[0].CordY)
	assert.Equal(t, "late", *all[0].AttendanceStatus)
	require.NotNil(t, all[0].DepartureTime)
	assert.Equal(t, 17, all[0].DepartureTime.UTC().Hour())
}

func TestAttendanceRepository_DeleteAllLeavesOtherTables(t *testing.T) {
	ctx := context.Background()
	svc, db := newSQLiteService(t)
	employeeID := seedEmployee(t, db, "EMP-1")

	require.NoError(t, db.Create(&place.Place{
		Name:   "Office",
		Points: []place.Point{{CordX: 0, CordY: 0}, {CordX: 1, CordY: 0}, {CordX: 1, CordY: 1}},
	}).Error)

	repo := attendance.NewRepository(db)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &attendance.Attendance{EmployeeID: employeeID, CordX: 1, CordY: 1}))
	}

	deleted, err := svc.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	var attendanceCount, employeeCount, placeCount, pointCount int64
	require.NoError(t, db.Model(&attendance.Attendance{}).Count(&attendanceCount).Error)
	require.NoError(t, db.Model(&employee.Employee{}).Count(&employeeCount).Error)
	require.NoError(t, db.Model(&place.Place{}).Count(&placeCount).Error)
	require.NoError(t, db.Model(&place.Point{}).Count(&pointCount).Error)

	assert.Zero(t, attendanceCount)
	assert.Equal(t, int64(1), employeeCount)
	assert.Equal(t, int64(1), placeCount)
	assert.Equal(t, int64(3), pointCount)
}

func TestAttendanceRepository_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSQLiteService(t)

	err := svc.Delete(ctx, "42")

	assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
}

func TestAttendanceRepository_SetStatusIfEmpty(t *testing.T) {
	ctx := context.Background()
	svc, db := newSQLiteService(t)
	employeeID := seedEmployee(t, db, "EMP-1")
	repo := attendance.NewRepository(db)

	blank := &attendance.Attendance{EmployeeID: employeeID, CordX: 1, CordY: 1}
	manual := &attendance.Attendance{EmployeeID: employeeID, CordX: 1, CordY: 1, AttendanceStatus: strPtr("manual")}
	require.NoError(t, repo.Create(ctx, blank))
	require.NoError(t, repo.Create(ctx, manual))

	updated, err := svc.ApplyGeofenceStatus(ctx, blank.ID, attendance.StatusOutOfPlace)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = svc.ApplyGeofenceStatus(ctx, manual.ID, attendance.StatusOutOfPlace)
	require.NoError(t, err)
	assert.False(t, updated)

	got, err := repo.FindByID(ctx, manual.ID)
	require.NoError(t, err)
	assert.Equal(t, "manual", *got.AttendanceStatus)

	got, err = repo.FindByID(ctx, blank.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusOutOfPlace, *got.AttendanceStatus)
}
