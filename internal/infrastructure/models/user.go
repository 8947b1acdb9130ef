package models

import "time"

type User struct {
	Email     string `gorm:"type:varchar(255);primaryKey"`
	Role      string `gorm:"type:varchar(50);not null;default:'user'"`
	CreatedAt time.Time
	LastLogIn time.Time `gorm:"column:last_log_in"`
}
