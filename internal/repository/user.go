package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/glucokit/glucokit/internal/database"
	"github.com/glucokit/glucokit/internal/domain"
)

// UserRepository handles user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreateUser gets an existing user by email or creates a new one
func (r *UserRepository) GetOrCreateUser(ctx context.Context, email, name string) (*domain.User, error) {
	user := &database.User{
		Email:  email,
		Name:   name,
		Active: true,
	}

	result := r.db.WithContext(ctx).FirstOrCreate(user, database.User{Email: email})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to register user: %w", result.Error)
	}

	return toDomainUser(user), nil
}

// ActiveUsers lists every user enrolled in periodic evaluation.
func (r *UserRepository) ActiveUsers(ctx context.Context) ([]domain.User, error) {
	var records []database.User
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get active users: %w", err)
	}

	users := make([]domain.User, 0, len(records))
	for i := range records {
		users = append(users, *toDomainUser(&records[i]))
	}
	return users, nil
}

func toDomainUser(u *database.User) *domain.User {
	return &domain.User{
		ID:        u.ID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Email:     u.Email,
		Name:      u.Name,
		Active:    u.Active,
	}
}
