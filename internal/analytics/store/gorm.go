package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ebashirli/elvinbashirlisportfolio/internal/analytics"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LinkRegistration is one row of the link_registrations table.
type LinkRegistration struct {
	ID          uint      `gorm:"primaryKey"`
	Code        string    `gorm:"size:32;index"`
	OriginalURL string    `gorm:"type:text"`
	ClientIP    string    `gorm:"size:64"`
	UserAgent   string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
}

// LinkVisit is one row of the link_visits table.
type LinkVisit struct {
	ID         uint      `gorm:"primaryKey"`
	Code       string    `gorm:"size:32;index"`
	ClientIP   string    `gorm:"size:64"`
	UserAgent  string    `gorm:"type:text"`
	Referrer   string    `gorm:"type:text"`
	ResolvedAt time.Time `gorm:"index"`
}

// GormStore persists analytics events into Postgres through GORM.
type GormStore struct {
	db *gorm.DB
}

// OpenGormStore connects to dsn and migrates the analytics tables.
func OpenGormStore(dsn string, logger *zap.Logger) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: NewGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("analytics db: connect: %w", err)
	}

	return NewGormStore(db)
}

// NewGormStore wraps an open GORM handle and migrates the analytics tables.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&LinkRegistration{}, &LinkVisit{}); err != nil {
		return nil, fmt.Errorf("analytics db: migrate: %w", err)
	}

	return &GormStore{db: db}, nil
}

func (s *GormStore) SaveLinkRegistered(ctx context.Context, event *analytics.LinkRegisteredEvent) error {
	return s.db.WithContext(ctx).Create(&LinkRegistration{
		Code:        event.Code,
		OriginalURL: event.OriginalURL,
		ClientIP:    event.ClientIP,
		UserAgent:   event.UserAgent,
		CreatedAt:   event.CreatedAt,
	}).Error
}

func (s *GormStore) SaveLinkResolved(ctx context.Context, event *analytics.LinkResolvedEvent) error {
	return s.db.WithContext(ctx).Create(&LinkVisit{
		Code:       event.Code,
		ClientIP:   event.ClientIP,
		UserAgent:  event.UserAgent,
		Referrer:   event.Referrer,
		ResolvedAt: event.ResolvedAt,
	}).Error
}

// VisitCount returns how many times code has been resolved.
func (s *GormStore) VisitCount(ctx context.Context, code string) (int64, error) {
	var count int64

	err := s.db.WithContext(ctx).Model(&LinkVisit{}).Where("code = ?", code).Count(&count).Error

	return count, err
}

// Shutdown closes the underlying connection pool.
func (s *GormStore) Shutdown() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
