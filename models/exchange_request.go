package models

import (
	"gorm.io/gorm"
)

// 交換請求狀態
// PENDING 之後只能單向轉移到 ACCEPTED、DECLINED 或 CANCELLED，
// 終止狀態之間不允許再轉換
const (
	ExchangeStatusPending   = "PENDING"
	ExchangeStatusAccepted  = "ACCEPTED"
	ExchangeStatusDeclined  = "DECLINED"
	ExchangeStatusCancelled = "CANCELLED"
)

// ExchangeRequest 代表以書換書的交換提案
// requester 提出以 offered book 交換 owner 的 requested book
type ExchangeRequest struct {
	gorm.Model

	RequesterID     uint   `gorm:"not null;index" json:"requesterId"`
	OwnerID         uint   `gorm:"not null;index" json:"ownerId"`
	RequestedBookID uint   `gorm:"not null;index" json:"requestedBookId"`
	OfferedBookID   uint   `gorm:"not null;index" json:"offeredBookId"`
	Message         string `gorm:"type:text" json:"message"`
	Status          string `gorm:"type:varchar(32);not null;default:PENDING" json:"status"`

	// 外鍵關聯
	Requester     User `gorm:"foreignKey:RequesterID" json:"requester"`
	Owner         User `gorm:"foreignKey:OwnerID" json:"owner"`
	RequestedBook Book `gorm:"foreignKey:RequestedBookID" json:"requestedBook"`
	OfferedBook   Book `gorm:"foreignKey:OfferedBookID" json:"offeredBook"`
}
