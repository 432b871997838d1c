// Package users provides database operations for user management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.FindByEmail(ctx, "ash@example.com")
package users

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/pokemons-api/internal/entities"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// UserUpdate carries the fields to change. Nil fields are left untouched.
// Password must already be in its stored form.
type UserUpdate struct {
	Email    *string
	Password *string
}

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user. The password is stored as given.
func (r *Repository) Create(ctx context.Context, email, password string) (*entities.User, error) {
	if err := r.ensureEmailFree(ctx, email, 0); err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:    email,
		Password: password,
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByEmail retrieves a user by exact email match.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// FindByID retrieves a user by ID.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// FindAll returns every user ordered by ID.
func (r *Repository) FindAll(ctx context.Context) ([]entities.User, error) {
	var all []entities.User
	if err := r.db.WithContext(ctx).Order("id").Find(&all).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return all, nil
}

// Update applies the non-nil fields of upd and returns the fresh record.
func (r *Repository) Update(ctx context.Context, id uint, upd UserUpdate) (*entities.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if upd.Email != nil && *upd.Email != user.Email {
		if err := r.ensureEmailFree(ctx, *upd.Email, id); err != nil {
			return nil, err
		}
		updates["email"] = *upd.Email
	}
	if upd.Password != nil {
		updates["password"] = *upd.Password
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := r.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return r.FindByID(ctx, id)
}

// Delete removes a user permanently.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ensureEmailFree fails with ErrUserExists if another user owns email.
func (r *Repository) ensureEmailFree(ctx context.Context, email string, exceptID uint) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("email = ? AND id <> ?", email, exceptID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if count > 0 {
		return ErrUserExists
	}
	return nil
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("failed to find user: %w", err)
}
