package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnake(t *testing.T) {
	tests := map[string]string{
		"Title":          "title",
		"MenuItemID":     "menu_item_id",
		"DeliveryCrewID": "delivery_crew_id",
		"Quantity":       "quantity",
		"UserID":         "user_id",
	}
	for in, want := range tests {
		assert.Equal(t, want, toSnake(in), in)
	}
}
