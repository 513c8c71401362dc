package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"little_lemon/internal/config"
	"little_lemon/internal/middleware"
	"little_lemon/internal/models"
)

// ListCartItems returns the caller's own cart lines, never anyone else's.
func ListCartItems(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var lines []models.Cart
	if err := config.DB.Preload("MenuItem").Where("user_id = ?", user.ID).Find(&lines).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": lines})
}

type cartInput struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// AddToCart creates a cart line owned by the caller. Any owner field in the
// payload is ignored; prices come from the menu item, not the client.
func AddToCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input cartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, input.MenuItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	line := models.Cart{
		UserID:     user.ID,
		MenuItemID: item.ID,
		Quantity:   input.Quantity,
		UnitPrice:  item.Price,
		Price:      item.Price * float64(input.Quantity),
	}
	if err := config.DB.Create(&line).Error; err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "item already in cart"})
			return
		}
		logrus.WithError(err).WithField("user_id", user.ID).Error("cart add failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not add to cart"})
		return
	}

	line.MenuItem = &item
	c.JSON(http.StatusCreated, gin.H{"cart_item": line})
}

// ClearCart deletes every line the caller owns. Clearing an empty cart is
// still a success.
func ClearCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	// Hard delete: a soft-deleted row would still hold the (user, item)
	// unique slot and block re-adding the same item later.
	if err := config.DB.Unscoped().Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not clear cart"})
		return
	}
	c.Status(http.StatusNoContent)
}
