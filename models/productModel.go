package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Price       float64        `json:"price" binding:"min=0"`
	Stock       int            `json:"stock" binding:"min=0"`
	Category    string         `json:"category"`
	Images      datatypes.JSON `json:"images"`
}
