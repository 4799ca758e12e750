package models

import "time"

// Users 用户表，仅靠展示名标识（无密码），首次使用时按 name upsert
type Users struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(32);not null;uniqueIndex:uk_name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (u Users) TableName() string { return "users" }
