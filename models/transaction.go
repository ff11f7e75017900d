package models

import (
	"gorm.io/gorm"
)

// 交易狀態，直購交易在建立當下即為 COMPLETED
const (
	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusCancelled = "CANCELLED"
)

// Transaction 代表一筆完成的購買紀錄
// 金額是建立當下書籍售價的快照，之後書價變動不影響歷史紀錄
type Transaction struct {
	gorm.Model

	BookID   uint    `gorm:"not null;index" json:"bookId"`
	BuyerID  uint    `gorm:"not null;index" json:"buyerId"`
	SellerID uint    `gorm:"not null;index" json:"sellerId"`
	Amount   float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status   string  `gorm:"type:varchar(32);not null;default:COMPLETED" json:"status"`

	// 外鍵關聯
	Book   Book `json:"book"`
	Buyer  User `gorm:"foreignKey:BuyerID" json:"buyer"`
	Seller User `gorm:"foreignKey:SellerID" json:"seller"`
}
