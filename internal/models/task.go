package model

import (
	"time"

	"taskforce.app/taskforce/internal/constants"
)

// Task is never hard-deleted: cancellation is a status value, not row removal.
type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	AuthorID    string               `gorm:"size:36;not null;index" json:"author_id"`
	ExecutorID  *string              `gorm:"size:36;index" json:"executor_id,omitempty"`
	Title       string               `gorm:"not null" json:"title"`
	Description string               `gorm:"not null" json:"description"`
	Price       int64                `gorm:"not null;default:0" json:"price"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time            `json:"created_at"`

	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Executor *User     `gorm:"foreignKey:ExecutorID" json:"executor,omitempty"`
	Responds []Respond `gorm:"foreignKey:TaskID" json:"responds,omitempty"`
	Review   *Review   `gorm:"foreignKey:TaskID" json:"review,omitempty"`
}
