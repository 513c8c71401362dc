package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"little_lemon/internal/config"
	"little_lemon/internal/models"
	"little_lemon/internal/services"
)

// All group routes are admin-gated at the router; the handlers here are
// thin wrappers over one RoleMembershipService.

func membership() *services.RoleMembershipService {
	return &services.RoleMembershipService{DB: config.DB}
}

// GroupMembers lists the usernames in a fixed group.
func GroupMembers(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := membership().Members(groupName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch group members"})
			return
		}
		c.JSON(http.StatusOK, names)
	}
}

// GroupAddMember attaches the user in the body to a fixed group, creating
// the group on first use.
func GroupAddMember(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			UserID uint `json:"user_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, bindingErrors(err))
			return
		}

		if err := membership().Add(groupName, body.UserID); err != nil {
			respondMembershipError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": "User added to " + groupName + " group"})
	}
}

// GroupRemoveMember detaches the user in the path from a fixed group.
func GroupRemoveMember(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathUserID(c, "userId")
		if !ok {
			return
		}
		if err := membership().Remove(groupName, userID); err != nil {
			respondMembershipError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "User removed from " + groupName + " group"})
	}
}

// AddToGroup is the generic per-group-name surface: POST /users/:id/groups
// with body {"groupname": ...}.
func AddToGroup(c *gin.Context) {
	groupName, userID, ok := genericGroupArgs(c)
	if !ok {
		return
	}
	if err := membership().Add(groupName, userID); err != nil {
		respondMembershipError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "User added to " + groupName + " group"})
}

// RemoveFromGroup is the generic removal surface: DELETE /users/:id/groups.
func RemoveFromGroup(c *gin.Context) {
	groupName, userID, ok := genericGroupArgs(c)
	if !ok {
		return
	}
	if err := membership().Remove(groupName, userID); err != nil {
		respondMembershipError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "User removed from " + groupName + " group"})
}

// LegacyManager keeps the old /manager endpoint alive: POST adds the named
// user to the Manager group, DELETE removes.
func LegacyManager(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	user, err := membership().UserByUsername(body.Username)
	if err != nil {
		respondMembershipError(c, err)
		return
	}

	if c.Request.Method == http.MethodDelete {
		err = membership().Remove(models.GroupManager, user.ID)
	} else {
		err = membership().Add(models.GroupManager, user.ID)
	}
	if err != nil {
		respondMembershipError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func genericGroupArgs(c *gin.Context) (string, uint, bool) {
	var body struct {
		GroupName string `json:"groupname"`
	}
	// Groupname must be present before any lookup happens.
	if err := c.ShouldBindJSON(&body); err != nil || body.GroupName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group name is required"})
		return "", 0, false
	}
	userID, ok := pathUserID(c, "id")
	if !ok {
		return "", 0, false
	}
	return body.GroupName, userID, true
}

func pathUserID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return uint(id), true
}

func respondMembershipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, services.ErrGroupNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
	default:
		logrus.WithError(err).Error("group membership change failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "group membership change failed"})
	}
}
