package services

import (
	"errors"

	"gorm.io/gorm"

	"little_lemon/internal/models"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrGroupNotFound = errors.New("group not found")
)

// RoleMembershipService is the single capability behind every group
// administration route: the specialized manager/delivery-crew endpoints,
// the generic per-group endpoint and the legacy /manager endpoint are all
// thin wrappers over it.
type RoleMembershipService struct {
	DB *gorm.DB
}

// Members returns the usernames of every user in the named group. An
// unknown group simply has no members.
func (s *RoleMembershipService) Members(groupName string) ([]string, error) {
	var users []models.User
	err := s.DB.
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Joins("JOIN groups ON groups.id = user_groups.group_id").
		Where("groups.name = ?", groupName).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return names, nil
}

// Add attaches the user to the named group, creating the group if it does
// not exist yet. Attaching twice is a no-op.
func (s *RoleMembershipService) Add(groupName string, userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		group, err := getOrCreateGroup(tx, groupName)
		if err != nil {
			return err
		}
		return tx.Model(&user).Association("Groups").Append(group)
	})
}

// Remove detaches the user from the named group. Unlike Add, a missing
// group is an error here.
func (s *RoleMembershipService) Remove(groupName string, userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		var group models.Group
		if err := tx.Where("name = ?", groupName).First(&group).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGroupNotFound
			}
			return err
		}
		return tx.Model(&user).Association("Groups").Delete(&group)
	})
}

// UserByUsername resolves the legacy by-username surface.
func (s *RoleMembershipService) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func getOrCreateGroup(tx *gorm.DB, name string) (*models.Group, error) {
	var group models.Group
	err := tx.Where(models.Group{Name: name}).FirstOrCreate(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}
