package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique"`
	Email    string `json:"email"`
	Password string `json:"-"`
	IsAdmin  bool   `json:"is_admin"`

	// Business roles are group memberships, not an attribute. A user may
	// hold zero or many groups at once.
	Groups []Group `json:"groups,omitempty" gorm:"many2many:user_groups;"`
}

// GroupNames flattens the preloaded memberships for policy checks.
func (u *User) GroupNames() []string {
	names := make([]string, 0, len(u.Groups))
	for _, g := range u.Groups {
		names = append(names, g.Name)
	}
	return names
}
