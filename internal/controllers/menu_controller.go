package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"little_lemon/internal/config"
	"little_lemon/internal/middleware"
	"little_lemon/internal/models"
	"little_lemon/internal/policy"
)

// ListMenuItems returns the full menu to holders of any business role.
func ListMenuItems(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if !policy.CanBrowseMenu(user.GroupNames()) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var items []models.MenuItem
	if err := config.DB.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// GetMenuItem retrieves one item by ID
func GetMenuItem(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if !policy.CanBrowseMenu(user.GroupNames()) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	id := c.Param("id")
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

type menuItemInput struct {
	Title    string  `json:"title" binding:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Featured bool    `json:"featured"`
}

// CreateMenuItem adds a new item (admin only; gated at the route)
func CreateMenuItem(c *gin.Context) {
	var input menuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	item := models.MenuItem{
		Title:    input.Title,
		Category: input.Category,
		Price:    input.Price,
		Featured: input.Featured,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "menu item title already in use"})
			return
		}
		logrus.WithError(err).Error("menu item create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"menu_item": item})
}

// UpdateMenuItem modifies an existing item; absent fields are left alone.
func UpdateMenuItem(c *gin.Context) {
	id := c.Param("id")
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var input struct {
		Title    *string  `json:"title"`
		Category *string  `json:"category"`
		Price    *float64 `json:"price"`
		Featured *bool    `json:"featured"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"price": "must be greater than 0"})
			return
		}
		item.Price = *input.Price
	}
	if input.Featured != nil {
		item.Featured = *input.Featured
	}

	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// DeleteMenuItem removes an item by ID
func DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
