package models

import (
	"gorm.io/gorm"
)

type ShoppingList struct {
	gorm.Model
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Title  string `gorm:"default:'Minha Lista'" json:"title"`

	Items []ShoppingItem `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"items"`
}

type ShoppingItem struct {
	gorm.Model
	ListID  uint   `gorm:"index;not null" json:"list_id"`
	Name    string `gorm:"not null" json:"name"`
	Checked bool   `gorm:"default:false" json:"checked"`
}
