package models

import (
	"time"

	"gorm.io/gorm"
)

// Order's owning user never changes after creation. Status is a free-form
// string; writers are constrained by role, not the value.
type Order struct {
	gorm.Model
	UserID         uint        `json:"user_id"`
	User           User        `json:"-"`
	DeliveryCrewID *uint       `json:"delivery_crew_id"`
	DeliveryCrew   *User       `json:"-" gorm:"foreignKey:DeliveryCrewID"`
	Status         string      `json:"status"`
	Total          float64     `json:"total"`
	Date           time.Time   `json:"date"`
	Items          []OrderItem `json:"items,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
}

// OrderItem is a snapshot line; immutable once the order exists.
type OrderItem struct {
	gorm.Model
	OrderID    uint      `json:"order_id"`
	MenuItemID uint      `json:"menu_item_id"`
	MenuItem   *MenuItem `json:"menu_item,omitempty"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	Price      float64   `json:"price"`
}
