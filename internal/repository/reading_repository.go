package repository

import (
	"context"

	"diatrack.example/go-diatrack/internal/models"
	"gorm.io/gorm"
)

// GormReadingRepository is the GORM implementation of ReadingRepository.
type GormReadingRepository struct {
	db *gorm.DB
}

func NewGormReadingRepository(db *gorm.DB) ReadingRepository {
	return &GormReadingRepository{db: db}
}

func (r *GormReadingRepository) Create(ctx context.Context, reading *models.Reading) error {
	return r.db.WithContext(ctx).Create(reading).Error
}

// FindByUserID returns all readings owned by userID in insertion order.
func (r *GormReadingRepository) FindByUserID(ctx context.Context, userID string) ([]models.Reading, error) {
	var readings []models.Reading
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&readings)
	if result.Error != nil {
		return nil, result.Error
	}
	return readings, nil
}
