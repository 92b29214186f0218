package model

import "time"

// BaseModel carries the server-assigned numeric primary key and audit
// timestamps shared by every persisted entity.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
