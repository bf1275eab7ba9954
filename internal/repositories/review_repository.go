package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskforce.app/taskforce/internal/models"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) WithTx(tx *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: tx}
}

func (r *ReviewRepository) Create(ctx context.Context, taskID, userID string, value int, comment string) (*model.Review, error) {
	review := &model.Review{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		UserID:    userID,
		Value:     value,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}

	return review, nil
}

func (r *ReviewRepository) ListForUser(ctx context.Context, userID string) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) AverageForUser(ctx context.Context, userID string) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("user_id = ?", userID).
		Select("COALESCE(AVG(value), 0)").
		Scan(&avg).Error
	return avg, err
}
