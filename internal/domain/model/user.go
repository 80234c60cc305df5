package model

import "time"

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`

	//bcryptハッシュを保存（平文は保存しない）
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
