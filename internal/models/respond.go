package model

import (
	"time"

	"taskforce.app/taskforce/internal/constants"
)

// Respond is an executor's bid on a task. A user may bid at most once per
// task; the (task_id, author_id) unique index backs the lifecycle guard.
type Respond struct {
	ID        string                  `gorm:"primaryKey;size:36" json:"id"`
	TaskID    string                  `gorm:"size:36;not null;uniqueIndex:idx_responds_task_author" json:"task_id"`
	AuthorID  string                  `gorm:"size:36;not null;uniqueIndex:idx_responds_task_author" json:"author_id"`
	Price     int64                   `gorm:"not null" json:"price"`
	Comment   string                  `json:"comment"`
	Status    constants.RespondStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time               `json:"created_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
