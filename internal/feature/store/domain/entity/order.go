package entity

import "time"

// Order status values. The simulated gateway cannot reject an order, so
// every persisted order is completed.
const OrderStatusCompleted = "completed"

// Order is the record written when checkout completes.
// Amounts are copied from the cart totals at checkout time.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"-"`
	OrderNumber string      `gorm:"uniqueIndex;size:36;not null" json:"orderNumber"`
	UserID      uint        `gorm:"index;not null" json:"-"`
	Subtotal    float64     `gorm:"not null" json:"subtotal"`
	Donation    float64     `gorm:"not null" json:"donation"`
	Shipping    float64     `gorm:"not null" json:"shipping"`
	Total       float64     `gorm:"not null" json:"total"`
	Status      string      `gorm:"size:20;not null" json:"status"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// OrderItem is one purchased line of an order.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index;not null" json:"-"`
	ProductID string  `gorm:"size:20;not null" json:"productId"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}
