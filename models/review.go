package models

import (
	"gorm.io/gorm"
)

// Review 代表使用者對書籍的評論，評分介於 1 到 5
type Review struct {
	gorm.Model

	UserID  uint   `gorm:"not null;index" json:"userId"`
	BookID  uint   `gorm:"not null;index" json:"bookId"`
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	// 外鍵關聯
	User User `json:"user"`
	Book Book `json:"-"`
}
