package model

import "time"

type User struct {
	ID         string  `gorm:"primaryKey;size:36" json:"id"`
	Name       string  `gorm:"size:60;not null" json:"name"`
	Email      string  `gorm:"size:60;not null;uniqueIndex" json:"email"`
	Password   string  `gorm:"size:128;not null" json:"-"`
	IsExecutor bool    `gorm:"not null;default:false" json:"is_executor"`
	Orders     int     `gorm:"not null;default:0" json:"orders"`
	Failures   int     `gorm:"not null;default:0" json:"failures"`
	Popularity int     `gorm:"not null;default:0" json:"popularity"`
	Rating     float64 `gorm:"not null;default:0" json:"rating"`

	CreatedAt time.Time `json:"created_at"`

	AuthoredTasks []Task    `gorm:"foreignKey:AuthorID" json:"-"`
	ExecutedTasks []Task    `gorm:"foreignKey:ExecutorID" json:"-"`
	Responds      []Respond `gorm:"foreignKey:AuthorID" json:"-"`
	Reviews       []Review  `gorm:"foreignKey:UserID" json:"-"`
}
