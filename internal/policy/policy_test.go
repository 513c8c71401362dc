package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"little_lemon/internal/models"
)

func TestHasRole(t *testing.T) {
	groups := []string{models.GroupCustomer, models.GroupManager}

	assert.True(t, HasRole(groups, models.GroupCustomer))
	assert.True(t, HasRole(groups, models.GroupManager))
	assert.False(t, HasRole(groups, models.GroupDeliveryCrew))
	assert.False(t, HasRole(nil, models.GroupCustomer))
}

func TestCanBrowseMenu(t *testing.T) {
	tests := []struct {
		name   string
		groups []string
		want   bool
	}{
		{"customer", []string{models.GroupCustomer}, true},
		{"delivery crew", []string{models.GroupDeliveryCrew}, true},
		{"manager", []string{models.GroupManager}, true},
		{"no business role", []string{"Accounting"}, false},
		{"no groups at all", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanBrowseMenu(tt.groups))
		})
	}
}

func TestOrderListScope(t *testing.T) {
	tests := []struct {
		name   string
		groups []string
		want   OrderScope
	}{
		{"customer", []string{models.GroupCustomer}, ScopeOwn},
		{"delivery crew", []string{models.GroupDeliveryCrew}, ScopeAssigned},
		{"manager", []string{models.GroupManager}, ScopeAll},
		{"no role", nil, ScopeDenied},
		// first matching branch wins, never a union
		{"customer and manager", []string{models.GroupManager, models.GroupCustomer}, ScopeOwn},
		{"delivery crew and manager", []string{models.GroupManager, models.GroupDeliveryCrew}, ScopeAssigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderListScope(tt.groups))
		})
	}
}

func TestCanViewOrder(t *testing.T) {
	crew := uint(7)
	order := &models.Order{UserID: 3, DeliveryCrewID: &crew}

	assert.True(t, CanViewOrder(3, order, nil), "owner")
	assert.True(t, CanViewOrder(7, order, nil), "assigned crew")
	assert.True(t, CanViewOrder(99, order, []string{models.GroupManager}), "manager")
	assert.False(t, CanViewOrder(99, order, []string{models.GroupCustomer}), "unrelated customer")

	unassigned := &models.Order{UserID: 3}
	assert.False(t, CanViewOrder(7, unassigned, []string{models.GroupDeliveryCrew}))
}

func TestResolveOrderUpdateMode(t *testing.T) {
	assert.Equal(t, UpdateFull, ResolveOrderUpdateMode([]string{models.GroupManager}))
	assert.Equal(t, UpdateStatusOnly, ResolveOrderUpdateMode([]string{models.GroupDeliveryCrew}))
	assert.Equal(t, UpdateDenied, ResolveOrderUpdateMode([]string{models.GroupCustomer}))
	assert.Equal(t, UpdateDenied, ResolveOrderUpdateMode(nil))

	// Manager wins for a user holding both writable roles
	both := []string{models.GroupDeliveryCrew, models.GroupManager}
	assert.Equal(t, UpdateFull, ResolveOrderUpdateMode(both))
}

func TestCanDeleteOrder(t *testing.T) {
	assert.True(t, CanDeleteOrder([]string{models.GroupManager}))
	assert.False(t, CanDeleteOrder([]string{models.GroupDeliveryCrew}))
	assert.False(t, CanDeleteOrder([]string{models.GroupCustomer}))
}
