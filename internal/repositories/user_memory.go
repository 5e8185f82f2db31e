package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resume-builder-backend/internal/models"
)

// MemoryUserRepository stores users in memory for tests, enforcing the
// unique email index like the mongo repository.
type MemoryUserRepository struct {
	mu   sync.RWMutex
	byID map[primitive.ObjectID]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID: make(map[primitive.ObjectID]models.User),
	}
}

// Insert implements UserRepository.
func (m *MemoryUserRepository) Insert(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.byID {
		if u.Email == user.Email {
			return fmt.Errorf("insert user: %w", ErrDuplicateKey)
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.byID[user.ID] = *user
	return nil
}

// FindByEmail implements UserRepository.
func (m *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.byID {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// FindByID implements UserRepository.
func (m *MemoryUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}
