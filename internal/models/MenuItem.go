package models

import "gorm.io/gorm"

type MenuItem struct {
	gorm.Model
	Title    string  `json:"title" gorm:"unique"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Featured bool    `json:"featured"`
}
