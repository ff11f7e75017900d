package models

import (
	"gorm.io/gorm"
)

// Wishlist 代表使用者收藏的書籍
// 同一位使用者對同一本書最多只有一筆未刪除的收藏
type Wishlist struct {
	gorm.Model

	UserID uint `gorm:"uniqueIndex:idx_wishlists_user_book,where:deleted_at IS NULL;not null" json:"userId"`
	BookID uint `gorm:"uniqueIndex:idx_wishlists_user_book,where:deleted_at IS NULL;not null" json:"bookId"`

	// 外鍵關聯
	User User `json:"-"`
	Book Book `json:"book"`
}
