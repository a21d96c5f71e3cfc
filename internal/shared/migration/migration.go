// Package migration owns the schema of every table the service writes.
package migration

import (
	"go-attendance/internal/attendance"
	"go-attendance/internal/employee"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/place"

	"gorm.io/gorm"
)

// Models lists the tables in dependency order.
func Models() []any {
	return []any{
		&employee.Employee{},
		&attendance.Attendance{},
		&place.Place{},
		&place.Point{},
		&kafka.OutboxEvent{},
	}
}

// Migrate runs one AutoMigrate over every model so that tables referenced
// by foreign keys resolve to their owning model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
