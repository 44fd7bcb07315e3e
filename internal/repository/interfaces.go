package repository

import (
	"context"

	"diatrack.example/go-diatrack/internal/models"
)

// UserRepository defines the operations on stored user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// ReadingRepository defines the operations on stored diabetes readings.
// Readings are append-only: there is no update or delete.
type ReadingRepository interface {
	Create(ctx context.Context, reading *models.Reading) error
	FindByUserID(ctx context.Context, userID string) ([]models.Reading, error)
}
