package model

import "time"

// Review is written exactly once, when the customer completes a task.
// UserID is the reviewed executor.
type Review struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	TaskID    string    `gorm:"size:36;not null;uniqueIndex" json:"task_id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	Value     int       `gorm:"not null;check:value >= 1 AND value <= 5" json:"value"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
