package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookswap/models"
)

// TransactionService 負責直購交易的建立與查詢
type TransactionService struct {
	db *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// Create 以買家身分直購一本書
// 交易金額是書籍目前售價的快照，建立交易的同時書籍轉為 SOLD
func (s *TransactionService) Create(buyerEmail string, bookID uint) (*models.Transaction, error) {
	const op = "TransactionService.Create"
	var transaction models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var buyer models.User
		if result := tx.Where("email = ?", buyerEmail).First(&buyer); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %s", ErrNotFound, buyerEmail)
			}
			return fmt.Errorf("[%s] Fail to find buyer, err=%w", op, result.Error)
		}
		var book models.Book
		if result := tx.First(&book, bookID); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: book %d", ErrNotFound, bookID)
			}
			return fmt.Errorf("[%s] Fail to find book, err=%w", op, result.Error)
		}
		if book.SellerID == buyer.ID {
			return fmt.Errorf("%w: you cannot buy your own book", ErrConflict)
		}
		transaction = models.Transaction{
			BookID:   book.ID,
			BuyerID:  buyer.ID,
			SellerID: book.SellerID,
			Amount:   book.Price,
			Status:   models.TransactionStatusCompleted,
		}
		if result := tx.Create(&transaction); result.Error != nil {
			return fmt.Errorf("[%s] Fail to create transaction, err=%w", op, result.Error)
		}
		if result := tx.Model(&models.Book{}).Where("id = ?", book.ID).
			Update("status", models.BookStatusSold); result.Error != nil {
			return fmt.Errorf("[%s] Fail to mark book as sold, err=%w", op, result.Error)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// Purchases 回傳買家的購買紀錄，最新在前
func (s *TransactionService) Purchases(buyerEmail string) ([]models.Transaction, error) {
	const op = "TransactionService.Purchases"
	var buyer models.User
	if result := s.db.Where("email = ?", buyerEmail).First(&buyer); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, buyerEmail)
		}
		return nil, fmt.Errorf("[%s] Fail to find buyer, err=%w", op, result.Error)
	}
	var transactions []models.Transaction
	if result := s.db.Preload("Book").Preload("Seller").
		Where("buyer_id = ?", buyer.ID).
		Order("created_at DESC").
		Find(&transactions); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list purchases, err=%w", op, result.Error)
	}
	return transactions, nil
}

// Sales 回傳賣家的售出紀錄，最新在前
func (s *TransactionService) Sales(sellerEmail string) ([]models.Transaction, error) {
	const op = "TransactionService.Sales"
	var seller models.User
	if result := s.db.Where("email = ?", sellerEmail).First(&seller); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, sellerEmail)
		}
		return nil, fmt.Errorf("[%s] Fail to find seller, err=%w", op, result.Error)
	}
	var transactions []models.Transaction
	if result := s.db.Preload("Book").Preload("Buyer").
		Where("seller_id = ?", seller.ID).
		Order("created_at DESC").
		Find(&transactions); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list sales, err=%w", op, result.Error)
	}
	return transactions, nil
}
