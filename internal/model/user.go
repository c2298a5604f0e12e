// internal/model/user.go
package model

type User struct {
	ID       int    `gorm:"primaryKey;column:id" json:"id"`
	Username string `gorm:"column:username;uniqueIndex" json:"username"`
	Email    string `gorm:"column:email" json:"email"`
	// Password holds the bcrypt hash and never leaves the server.
	Password string `gorm:"column:password_hash" json:"-"`
}

func (User) TableName() string { return "users" }
