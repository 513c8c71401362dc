package models

import "gorm.io/gorm"

// The three business roles. The groups table itself is open: adding a
// member to an unknown group creates it.
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery Crew"
	GroupCustomer     = "Customer"
)

type Group struct {
	gorm.Model
	Name string `json:"name" gorm:"unique"`

	Users []User `json:"-" gorm:"many2many:user_groups;"`
}
