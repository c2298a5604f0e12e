// internal/model/session.go
package model

import "time"

// Session is a server-side record of an issued bearer token. Deleting the
// row revokes the token, which is what makes logout effective.
type Session struct {
	Token     string    `gorm:"primaryKey;column:token;size:128" json:"-"`
	Username  string    `gorm:"column:username;index" json:"-"`
	ExpiresAt time.Time `gorm:"column:expires_at;index" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
}

func (Session) TableName() string { return "sessions" }
