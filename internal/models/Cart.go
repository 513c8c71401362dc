package models

import "gorm.io/gorm"

// Cart is one pending line item. The owner is always stamped server-side
// from the authenticated identity, never taken from the payload.
type Cart struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"uniqueIndex:idx_cart_user_item"`
	User       User      `json:"-"`
	MenuItemID uint      `json:"menu_item_id" gorm:"uniqueIndex:idx_cart_user_item"`
	MenuItem   *MenuItem `json:"menu_item,omitempty"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"`
	Price      float64   `json:"price"`
}
