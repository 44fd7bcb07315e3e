package repository

import (
	"context"
	"sync"

	"diatrack.example/go-diatrack/internal/models"
)

// InMemoryUserRepository keeps users in a map. Used by tests and demo setups
// that do not need a database file.
type InMemoryUserRepository struct {
	mu     sync.RWMutex
	nextID uint
	users  map[string]*models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{nextID: 1, users: make(map[string]*models.User)}
}

func (r *InMemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return ErrDuplicate
	}
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

func (r *InMemoryUserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	found := *user
	return &found, nil
}

// InMemoryReadingRepository keeps readings in an append-only slice.
type InMemoryReadingRepository struct {
	mu       sync.RWMutex
	nextID   uint
	readings []models.Reading
}

func NewInMemoryReadingRepository() *InMemoryReadingRepository {
	return &InMemoryReadingRepository{nextID: 1}
}

func (r *InMemoryReadingRepository) Create(_ context.Context, reading *models.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reading.ID = r.nextID
	r.nextID++
	r.readings = append(r.readings, *reading)
	return nil
}

func (r *InMemoryReadingRepository) FindByUserID(_ context.Context, userID string) ([]models.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found []models.Reading
	for _, reading := range r.readings {
		if reading.UserID == userID {
			found = append(found, reading)
		}
	}
	return found, nil
}
