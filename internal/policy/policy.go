// Package policy holds every resource-access decision as a pure function of
// the requester's group memberships. Handlers never inspect groups directly.
package policy

import "little_lemon/internal/models"

// OrderScope is the slice of orders a role may list.
type OrderScope int

const (
	ScopeDenied   OrderScope = iota
	ScopeOwn                 // orders where user_id == self
	ScopeAssigned            // orders where delivery_crew_id == self
	ScopeAll
)

// OrderUpdateMode says which fields a role may write on an order.
type OrderUpdateMode int

const (
	UpdateDenied     OrderUpdateMode = iota
	UpdateFull                       // any field, validated
	UpdateStatusOnly                 // the status field, verbatim
)

func HasRole(groups []string, name string) bool {
	for _, g := range groups {
		if g == name {
			return true
		}
	}
	return false
}

// CanBrowseMenu allows menu reads to any holder of a business role.
func CanBrowseMenu(groups []string) bool {
	return HasRole(groups, models.GroupCustomer) ||
		HasRole(groups, models.GroupDeliveryCrew) ||
		HasRole(groups, models.GroupManager)
}

// OrderListScope resolves list visibility by the first matching role in the
// order Customer, Delivery Crew, Manager. A multi-role user gets the first
// branch, not a union.
func OrderListScope(groups []string) OrderScope {
	switch {
	case HasRole(groups, models.GroupCustomer):
		return ScopeOwn
	case HasRole(groups, models.GroupDeliveryCrew):
		return ScopeAssigned
	case HasRole(groups, models.GroupManager):
		return ScopeAll
	default:
		return ScopeDenied
	}
}

// CanViewOrder allows the owning customer, the assigned crew member, or any
// Manager to retrieve a single order.
func CanViewOrder(userID uint, order *models.Order, groups []string) bool {
	if order.UserID == userID {
		return true
	}
	if order.DeliveryCrewID != nil && *order.DeliveryCrewID == userID {
		return true
	}
	return HasRole(groups, models.GroupManager)
}

// ResolveOrderUpdateMode checks Manager before Delivery Crew, matching list
// precedence for users holding both.
func ResolveOrderUpdateMode(groups []string) OrderUpdateMode {
	switch {
	case HasRole(groups, models.GroupManager):
		return UpdateFull
	case HasRole(groups, models.GroupDeliveryCrew):
		return UpdateStatusOnly
	default:
		return UpdateDenied
	}
}

func CanDeleteOrder(groups []string) bool {
	return HasRole(groups, models.GroupManager)
}
