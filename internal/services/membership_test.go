package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"little_lemon/internal/config"
	"little_lemon/internal/models"
)

func newTestService(t *testing.T) *RoleMembershipService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))
	return &RoleMembershipService{DB: db}
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.test"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestAddCreatesMissingGroup(t *testing.T) {
	svc := newTestService(t)
	user := seedUser(t, svc.DB, "maria")

	require.NoError(t, svc.Add(models.GroupManager, user.ID))

	var group models.Group
	require.NoError(t, svc.DB.Where("name = ?", models.GroupManager).First(&group).Error)

	names, err := svc.Members(models.GroupManager)
	require.NoError(t, err)
	assert.Equal(t, []string{"maria"}, names)
}

func TestAddIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	user := seedUser(t, svc.DB, "maria")

	require.NoError(t, svc.Add(models.GroupManager, user.ID))
	require.NoError(t, svc.Add(models.GroupManager, user.ID))

	names, err := svc.Members(models.GroupManager)
	require.NoError(t, err)
	assert.Len(t, names, 1)
}

func TestAddUnknownUser(t *testing.T) {
	svc := newTestService(t)

	err := svc.Add(models.GroupManager, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRemove(t *testing.T) {
	svc := newTestService(t)
	user := seedUser(t, svc.DB, "dmitri")
	require.NoError(t, svc.Add(models.GroupDeliveryCrew, user.ID))

	require.NoError(t, svc.Remove(models.GroupDeliveryCrew, user.ID))

	names, err := svc.Members(models.GroupDeliveryCrew)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRemoveUnknownUser(t *testing.T) {
	svc := newTestService(t)

	err := svc.Remove(models.GroupDeliveryCrew, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRemoveUnknownGroup(t *testing.T) {
	svc := newTestService(t)
	user := seedUser(t, svc.DB, "dmitri")

	err := svc.Remove("No Such Group", user.ID)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestMembersOfUnknownGroupIsEmpty(t *testing.T) {
	svc := newTestService(t)

	names, err := svc.Members("Ghost Crew")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestUserByUsername(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc.DB, "carla")

	user, err := svc.UserByUsername("carla")
	require.NoError(t, err)
	assert.Equal(t, "carla", user.Username)

	_, err = svc.UserByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
