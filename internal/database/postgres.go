package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/glucokit/glucokit/internal/config"
	"github.com/glucokit/glucokit/internal/database/migrations"
)

type User struct {
	gorm.Model
	Email  string `gorm:"uniqueIndex"`
	Name   string
	Active bool `gorm:"default:true"`
}

// InsulinDoseRecord rows are append-only. No repository exposes an update or
// delete path: a mistaken entry is corrected by a new compensating row, since
// historical dosing records are medical data.
type InsulinDoseRecord struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    uint `gorm:"index:idx_dose_user_time"`
	User      User
	Amount    float64
	Class     string
	Timestamp time.Time `gorm:"index:idx_dose_user_time"`
}

type GlucoseReadingRecord struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    uint `gorm:"index"`
	User      User
	Value     int
	Trend     string
	Timestamp time.Time
}

type ActivityRecord struct {
	ID           string `gorm:"primaryKey"`
	CreatedAt    time.Time
	UserID       uint   `gorm:"uniqueIndex:uidx_activity_user_type_date"`
	User         User
	ActivityType string    `gorm:"uniqueIndex:uidx_activity_user_type_date"`
	Date         time.Time `gorm:"type:date;uniqueIndex:uidx_activity_user_type_date"`
}

type SensorItemRecord struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    uint `gorm:"index"`
	User      User
	Model     string
	Supplier  string
	WearDays  int
	ExpiresAt time.Time
	OrderedAt time.Time
	Pending   bool
}

type AlertRecord struct {
	ID          string `gorm:"primaryKey"`
	CreatedAt   time.Time
	UserID      uint `gorm:"index"`
	User        User
	Kind        string
	Severity    string
	Message     string
	RelatedIOB  float64
	DoseCount   int
	Glucose     int
	TriggeredAt time.Time
}

func NewPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	// TranslateError maps driver duplicate-key violations to
	// gorm.ErrDuplicatedKey, which the activity repository relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&User{},
		&InsulinDoseRecord{},
		&GlucoseReadingRecord{},
		&ActivityRecord{},
		&SensorItemRecord{},
		&AlertRecord{},
	); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	// Data migrations run after the schema exists.
	if err := migrations.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database connection established and migrations completed")
	return db, nil
}
