package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskforce.app/taskforce/internal/constants"
	model "taskforce.app/taskforce/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

// ErrStatusConflict is returned when a compare-and-set update matched no row,
// i.e. another request already moved the task out of the expected status.
var ErrStatusConflict = errors.New("task status changed concurrently")

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// WithTx rebinds the repository onto a transaction handle. The caller owns
// commit and rollback.
func (r *TaskRepository) WithTx(tx *gorm.DB) *TaskRepository {
	return &TaskRepository{db: tx}
}

func (r *TaskRepository) Create(ctx context.Context, authorID, title, description string, price int64) (*model.Task, error) {
	task := &model.Task{
		ID:          uuid.NewString(),
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		Price:       price,
		Status:      constants.StatusNew,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindWithResponds(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Responds").
		Preload("Review").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, status constants.TaskStatus) ([]model.Task, error) {
	var tasks []model.Task
	query := r.db.WithContext(ctx).Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&tasks).Error
	return tasks, err
}

// UpdateStatus moves a task from one status to another. The WHERE clause on
// the current status makes racing transitions lose with ErrStatusConflict
// instead of silently double-applying.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id string, from, to constants.TaskStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

// AssignExecutor is the admit transition on the task row: status and
// executor_id change together, guarded by the same compare-and-set.
func (r *TaskRepository) AssignExecutor(ctx context.Context, id, executorID string, from, to constants.TaskStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":      to,
			"executor_id": executorID,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}
