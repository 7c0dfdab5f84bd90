// internal/store/gorm_store.go
package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/models"
)

// GormStore is the MySQL-backed PaymentStore. It keeps the same newest-first
// ordering contract as the JSON snapshot store.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the MySQL connection and migrates the payments table.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	if err := db.AutoMigrate(&models.PaymentRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate payments table: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Create(rec *models.PaymentRecord) error {
	return s.db.Create(rec).Error
}

func (s *GormStore) List() ([]models.PaymentRecord, error) {
	var records []models.PaymentRecord
	err := s.db.Order("created_at DESC, id DESC").Find(&records).Error
	return records, err
}

func (s *GormStore) GetByID(id string) (*models.PaymentRecord, error) {
	var rec models.PaymentRecord
	err := s.db.Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *GormStore) GetByEmailPlan(email, plan string) (*models.PaymentRecord, error) {
	var rec models.PaymentRecord
	want := strings.ToLower(strings.TrimSpace(email))
	err := s.db.Where("LOWER(TRIM(email)) = ? AND plan = ?", want, plan).
		Order("created_at DESC, id DESC").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update rewrites an existing row. It never inserts: gorm's Save would fall
// back to an upsert when the UPDATE touches zero rows, which both resurrects
// unknown ids and misreads a no-op re-confirm as a missing row, so existence
// is checked explicitly instead.
func (s *GormStore) Update(rec *models.PaymentRecord) error {
	var count int64
	if err := s.db.Model(&models.PaymentRecord{}).Where("id = ?", rec.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return s.db.Model(&models.PaymentRecord{}).Where("id = ?", rec.ID).Select("*").Updates(rec).Error
}
