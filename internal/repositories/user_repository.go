package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskforce.app/taskforce/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

var ErrDuplicateEmail = errors.New("email is already registered")

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string, isExecutor bool) (*model.User, error) {
	user := &model.User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Password:   passwordHash,
		IsExecutor: isExecutor,
		CreatedAt:  time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Reputation counters are explicit named operations rather than read-modify-
// write on the loaded record, so they stay correct under concurrent commits.

func (r *UserRepository) IncrementOrders(ctx context.Context, id string) error {
	return r.increment(ctx, id, "orders")
}

func (r *UserRepository) IncrementFailures(ctx context.Context, id string) error {
	return r.increment(ctx, id, "failures")
}

func (r *UserRepository) IncrementPopularity(ctx context.Context, id string) error {
	return r.increment(ctx, id, "popularity")
}

func (r *UserRepository) increment(ctx context.Context, id, column string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
