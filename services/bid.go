package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookswap/models"
)

// BidService 負責出價的建立、查詢與賣家接受出價的狀態轉移
type BidService struct {
	db *gorm.DB
}

func NewBidService(db *gorm.DB) *BidService {
	return &BidService{db: db}
}

// Place 以 bidderEmail 對書籍出價
//   - 出價者或書籍不存在時回傳 ErrNotFound
//   - 對自己的書出價回傳 ErrConflict
//   - 同一本書已有 ACTIVE 的出價時回傳 ErrConflict；
//     先讀後寫的檢查之外，資料庫的部分唯一索引會擋下併發的重複出價
func (s *BidService) Place(bidderEmail string, bookID uint, amount float64) (*models.Bid, error) {
	const op = "BidService.Place"
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}
	var bidder models.User
	if result := s.db.Where("email = ?", bidderEmail).First(&bidder); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, bidderEmail)
		}
		return nil, fmt.Errorf("[%s] Fail to find bidder, err=%w", op, result.Error)
	}
	var book models.Book
	if result := s.db.First(&book, bookID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, bookID)
		}
		return nil, fmt.Errorf("[%s] Fail to find book, err=%w", op, result.Error)
	}
	if book.SellerID == bidder.ID {
		return nil, fmt.Errorf("%w: you cannot bid on your own book", ErrConflict)
	}
	var count int64
	if result := s.db.Model(&models.Bid{}).
		Where("book_id = ? AND bidder_id = ? AND status = ?", bookID, bidder.ID, models.BidStatusActive).
		Count(&count); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to check active bids, err=%w", op, result.Error)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: you already have an active bid for this book", ErrConflict)
	}
	bid := models.Bid{
		BookID:   bookID,
		BidderID: bidder.ID,
		Amount:   amount,
		Status:   models.BidStatusActive,
	}
	if result := s.db.Create(&bid); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: you already have an active bid for this book", ErrConflict)
		}
		return nil, fmt.Errorf("[%s] Fail to create bid, err=%w", op, result.Error)
	}
	return &bid, nil
}

// Accept 由賣家接受一筆出價
// 在單一資料庫交易中：被接受的出價轉為 ACCEPTED、書籍轉為 SOLD、
// 同一本書其餘 ACTIVE 的出價全部轉為 REJECTED，全部成功或全部不生效
func (s *BidService) Accept(bidID uint, sellerEmail string) (*models.Bid, error) {
	const op = "BidService.Accept"
	var accepted models.Bid
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var bid models.Bid
		if result := tx.Preload("Book.Seller").First(&bid, bidID); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: bid %d", ErrNotFound, bidID)
			}
			return fmt.Errorf("[%s] Fail to find bid, err=%w", op, result.Error)
		}
		if bid.Book.Seller.Email != sellerEmail {
			return fmt.Errorf("%w: you are not authorized to accept this bid", ErrForbidden)
		}
		if bid.Status != models.BidStatusActive {
			return fmt.Errorf("%w: bid is not active", ErrConflict)
		}
		if result := tx.Model(&models.Bid{}).Where("id = ?", bid.ID).
			Update("status", models.BidStatusAccepted); result.Error != nil {
			return fmt.Errorf("[%s] Fail to accept bid, err=%w", op, result.Error)
		}
		if result := tx.Model(&models.Book{}).Where("id = ?", bid.BookID).
			Update("status", models.BookStatusSold); result.Error != nil {
			return fmt.Errorf("[%s] Fail to mark book as sold, err=%w", op, result.Error)
		}
		if result := tx.Model(&models.Bid{}).
			Where("book_id = ? AND id <> ? AND status = ?", bid.BookID, bid.ID, models.BidStatusActive).
			Update("status", models.BidStatusRejected); result.Error != nil {
			return fmt.Errorf("[%s] Fail to reject other bids, err=%w", op, result.Error)
		}
		accepted = bid
		accepted.Status = models.BidStatusAccepted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &accepted, nil
}

// ListForBook 回傳書籍的所有出價
// 依金額由高到低排序，同額出價以建立時間先後為序
func (s *BidService) ListForBook(bookID uint) ([]models.Bid, error) {
	const op = "BidService.ListForBook"
	var book models.Book
	if result := s.db.First(&book, bookID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, bookID)
		}
		return nil, fmt.Errorf("[%s] Fail to find book, err=%w", op, result.Error)
	}
	var bids []models.Bid
	if result := s.db.Preload("Bidder").
		Where("book_id = ?", bookID).
		Order("amount DESC, created_at ASC").
		Find(&bids); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list bids, err=%w", op, result.Error)
	}
	return bids, nil
}
