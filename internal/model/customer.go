// internal/model/customer.go
package model

type Customer struct {
	ID          int    `gorm:"primaryKey;column:id" json:"id"`
	FirstName   string `gorm:"column:first_name" json:"first_name"`
	LastName    string `gorm:"column:last_name" json:"last_name"`
	Address     string `gorm:"column:address" json:"address"`
	Email       string `gorm:"column:email;uniqueIndex" json:"email"`
	PhoneNumber string `gorm:"column:phone_number" json:"phone_number"`
}

func (Customer) TableName() string { return "customers" }
