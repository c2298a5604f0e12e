// internal/model/product.go
package model

// Product keeps product_id as the primary key name to stay compatible with
// the existing products table and wire format.
type Product struct {
	ProductID   int    `gorm:"primaryKey;column:product_id" json:"product_id"`
	Name        string `gorm:"column:name" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Price       string `gorm:"column:price" json:"price"`
	Category    string `gorm:"column:category" json:"category"`
	ImageURL    string `gorm:"column:image_url" json:"image_url"`
}

func (Product) TableName() string { return "products" }
