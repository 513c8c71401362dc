// Seeds groups, demo users, menu items and a couple of orders. The API has
// no user or order creation surface, so this is how a development database
// gets its fixtures.
package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"little_lemon/internal/config"
	"little_lemon/internal/middleware"
	"little_lemon/internal/models"
	"little_lemon/internal/services"
)

type seedUser struct {
	username string
	email    string
	isAdmin  bool
	group    string
}

func main() {
	config.InitDB()
	db := config.GetDB()

	users := []seedUser{
		{username: "admin", email: "admin@littlelemon.test", isAdmin: true},
		{username: "maria", email: "maria@littlelemon.test", group: models.GroupManager},
		{username: "dmitri", email: "dmitri@littlelemon.test", group: models.GroupDeliveryCrew},
		{username: "carla", email: "carla@littlelemon.test", group: models.GroupCustomer},
	}

	membership := &services.RoleMembershipService{DB: db}

	for _, su := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("could not hash password: %v", err)
		}
		user := models.User{
			Username: su.username,
			Email:    su.email,
			Password: string(hash),
			IsAdmin:  su.isAdmin,
		}
		if err := db.Where(models.User{Username: su.username}).FirstOrCreate(&user).Error; err != nil {
			log.Fatalf("could not seed user %s: %v", su.username, err)
		}
		if su.group != "" {
			if err := membership.Add(su.group, user.ID); err != nil {
				log.Fatalf("could not add %s to %s: %v", su.username, su.group, err)
			}
		}

		token, err := middleware.GenerateToken(user.ID)
		if err != nil {
			log.Fatalf("could not generate token for %s: %v", su.username, err)
		}
		log.Printf("%s token: %s", su.username, token)
	}

	items := []models.MenuItem{
		{Title: "Greek Salad", Category: "starters", Price: 7.5},
		{Title: "Bruschetta", Category: "starters", Price: 5.0},
		{Title: "Lemon Dessert", Category: "desserts", Price: 4.25, Featured: true},
		{Title: "Grilled Fish", Category: "mains", Price: 14.0},
	}
	for i := range items {
		if err := db.Where(models.MenuItem{Title: items[i].Title}).FirstOrCreate(&items[i]).Error; err != nil {
			log.Fatalf("could not seed menu item %s: %v", items[i].Title, err)
		}
	}

	seedOrder(db, "carla", "dmitri", items[0], 2)
	seedOrder(db, "carla", "", items[3], 1)

	log.Println("seed complete")
}

func seedOrder(db *gorm.DB, customer, crew string, item models.MenuItem, qty int) {
	var owner models.User
	if err := db.Where("username = ?", customer).First(&owner).Error; err != nil {
		log.Fatalf("seed order: %v", err)
	}

	order := models.Order{
		UserID: owner.ID,
		Status: "pending",
		Total:  item.Price * float64(qty),
		Date:   time.Now(),
		Items: []models.OrderItem{{
			MenuItemID: item.ID,
			Quantity:   qty,
			UnitPrice:  item.Price,
			Price:      item.Price * float64(qty),
		}},
	}
	if crew != "" {
		var assignee models.User
		if err := db.Where("username = ?", crew).First(&assignee).Error; err != nil {
			log.Fatalf("seed order: %v", err)
		}
		order.DeliveryCrewID = &assignee.ID
	}

	if err := db.Create(&order).Error; err != nil {
		log.Fatalf("could not seed order: %v", err)
	}
}
