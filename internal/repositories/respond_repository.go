package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskforce.app/taskforce/internal/constants"
	model "taskforce.app/taskforce/internal/models"
)

type RespondRepository struct {
	db *gorm.DB
}

// ErrDuplicateRespond surfaces the (task_id, author_id) unique index: one bid
// per user per task, regardless of what the caller checked beforehand.
var ErrDuplicateRespond = errors.New("respond already exists for this task and author")

func NewRespondRepository(db *gorm.DB) *RespondRepository {
	return &RespondRepository{db: db}
}

func (r *RespondRepository) WithTx(tx *gorm.DB) *RespondRepository {
	return &RespondRepository{db: tx}
}

func (r *RespondRepository) Create(ctx context.Context, taskID, authorID string, price int64, comment string) (*model.Respond, error) {
	respond := &model.Respond{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		AuthorID:  authorID,
		Price:     price,
		Comment:   comment,
		Status:    constants.RespondNew,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(respond).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRespond
		}
		return nil, err
	}

	return respond, nil
}

func (r *RespondRepository) FindByID(ctx context.Context, id string) (*model.Respond, error) {
	var respond model.Respond
	err := r.db.WithContext(ctx).First(&respond, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &respond, nil
}

func (r *RespondRepository) ListByTask(ctx context.Context, taskID string) ([]model.Respond, error) {
	var responds []model.Respond
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at asc").
		Find(&responds).Error
	return responds, err
}

func (r *RespondRepository) ExistsForTaskAndAuthor(ctx context.Context, taskID, authorID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Respond{}).
		Where("task_id = ? AND author_id = ?", taskID, authorID).
		Count(&count).Error
	return count > 0, err
}

func (r *RespondRepository) UpdateStatus(ctx context.Context, id string, to constants.RespondStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Respond{}).
		Where("id = ?", id).
		Update("status", to)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
