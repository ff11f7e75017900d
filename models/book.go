package models

import (
	"gorm.io/gorm"
)

// 書籍的上架狀態，只允許 AVAILABLE -> SOLD 的轉換
const (
	BookStatusAvailable = "AVAILABLE"
	BookStatusSold      = "SOLD"
)

// 書籍的刊登類型
const (
	ListingTypeSale     = "SALE"
	ListingTypeExchange = "EXCHANGE"
	ListingTypeAuction  = "AUCTION"
)

// 書況列舉值
const (
	ConditionNew     = "NEW"
	ConditionLikeNew = "LIKE_NEW"
	ConditionGood    = "GOOD"
	ConditionFair    = "FAIR"
	ConditionPoor    = "POOR"
)

// Book 代表一筆書籍刊登
// 一本書只有單一份庫存，售出後狀態轉為 SOLD 且不再出現在公開列表
type Book struct {
	gorm.Model

	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Author      string  `gorm:"type:varchar(255);not null" json:"author"`
	Price       float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Condition   string  `gorm:"column:condition_type;type:varchar(32);not null" json:"condition"`
	Description string  `gorm:"type:text" json:"description"`
	Image       string  `gorm:"type:varchar(255)" json:"image"`
	ISBN        string  `gorm:"type:varchar(32)" json:"isbn"`
	SellerID    uint    `gorm:"not null;index" json:"sellerId"`
	Status      string  `gorm:"type:varchar(32);not null;default:AVAILABLE" json:"status"`
	ListingType string  `gorm:"type:varchar(32);not null;default:SALE" json:"listingType"`

	// 外鍵關聯
	Seller User  `json:"seller"`
	Bids   []Bid `json:"-"`
}

// ValidCondition 檢查書況是否為合法的列舉值
func ValidCondition(condition string) bool {
	switch condition {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// ValidListingType 檢查刊登類型是否為合法的列舉值
func ValidListingType(listingType string) bool {
	switch listingType {
	case ListingTypeSale, ListingTypeExchange, ListingTypeAuction:
		return true
	}
	return false
}
