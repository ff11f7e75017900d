package models

import (
	"gorm.io/gorm"
)

// 出價狀態，只有 ACTIVE 的出價能被賣家接受
const (
	BidStatusActive    = "ACTIVE"
	BidStatusAccepted  = "ACCEPTED"
	BidStatusRejected  = "REJECTED"
	BidStatusWithdrawn = "WITHDRAWN"
)

// Bid 代表對一筆書籍刊登的出價
// 同一位出價者在同一本書上最多只能有一筆 ACTIVE 的出價，
// 由部分唯一索引在資料庫層擋下併發的重複出價
type Bid struct {
	gorm.Model

	BookID   uint    `gorm:"uniqueIndex:idx_bids_one_active,where:status = 'ACTIVE' AND deleted_at IS NULL;not null" json:"bookId"`
	BidderID uint    `gorm:"uniqueIndex:idx_bids_one_active,where:status = 'ACTIVE' AND deleted_at IS NULL;not null" json:"bidderId"`
	Amount   float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status   string  `gorm:"type:varchar(32);not null;default:ACTIVE" json:"status"`

	// 外鍵關聯
	Book   Book `json:"-"`
	Bidder User `gorm:"foreignKey:BidderID" json:"bidder"`
}
