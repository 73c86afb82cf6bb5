package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Fullname string `json:"fullname" binding:"required"`
	Email    string `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
