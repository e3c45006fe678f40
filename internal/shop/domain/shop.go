package domain

import (
	"time"

	userdomain "snapnet-backend/internal/user/domain"
)

type Product struct {
	ID          string           `json:"id" gorm:"primaryKey"`
	UserID      string           `json:"user_id" gorm:"index;not null"`
	User        *userdomain.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name        string           `json:"name" gorm:"not null"`
	Price       float64          `json:"price" gorm:"not null"`
	Image       string           `json:"image,omitempty"`
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CartItem keys on (user, product); a product appears in a cart at most once
type CartItem struct {
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	ProductID string    `json:"product_id" gorm:"primaryKey"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID        string      `json:"id" gorm:"primaryKey"`
	UserID    string      `json:"user_id" gorm:"index;not null"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	OrderID   string    `json:"order_id" gorm:"index;not null"`
	ProductID string    `json:"product_id" gorm:"index;not null"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
