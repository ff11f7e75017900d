package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookswap/models"
)

// BookService 負責書籍刊登的生命週期與刪除時的關聯清理
type BookService struct {
	db *gorm.DB
}

func NewBookService(db *gorm.DB) *BookService {
	return &BookService{db: db}
}

// BookInput 是建立書籍刊登的輸入欄位
type BookInput struct {
	Title       string
	Author      string
	Price       float64
	Condition   string
	Description string
	ISBN        string
	ListingType string
	Image       string
}

// Create 以賣家身分建立一筆書籍刊登，狀態預設為 AVAILABLE
func (s *BookService) Create(sellerID uint, input BookInput) (*models.Book, error) {
	const op = "BookService.Create"
	if input.Title == "" || input.Author == "" {
		return nil, fmt.Errorf("%w: title and author are required", ErrInvalid)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	if !models.ValidCondition(input.Condition) {
		return nil, fmt.Errorf("%w: unknown condition %q", ErrInvalid, input.Condition)
	}
	if input.ListingType == "" {
		input.ListingType = models.ListingTypeSale
	}
	if !models.ValidListingType(input.ListingType) {
		return nil, fmt.Errorf("%w: unknown listing type %q", ErrInvalid, input.ListingType)
	}
	book := models.Book{
		Title:       input.Title,
		Author:      input.Author,
		Price:       input.Price,
		Condition:   input.Condition,
		Description: input.Description,
		ISBN:        input.ISBN,
		Image:       input.Image,
		SellerID:    sellerID,
		Status:      models.BookStatusAvailable,
		ListingType: input.ListingType,
	}
	if result := s.db.Create(&book); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to create book, err=%w", op, result.Error)
	}
	return &book, nil
}

// ListAvailable 回傳所有 AVAILABLE 的書籍，最新刊登在前
// search 非空時以書名做模糊比對
func (s *BookService) ListAvailable(search string) ([]models.Book, error) {
	const op = "BookService.ListAvailable"
	query := s.db.Preload("Seller").
		Where("status = ?", models.BookStatusAvailable).
		Order("created_at DESC")
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}
	var books []models.Book
	if result := query.Find(&books); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list books, err=%w", op, result.Error)
	}
	return books, nil
}

// Get 取得單一書籍與其賣家資訊
func (s *BookService) Get(bookID uint) (*models.Book, error) {
	const op = "BookService.Get"
	var book models.Book
	if result := s.db.Preload("Seller").First(&book, bookID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, bookID)
		}
		return nil, fmt.Errorf("[%s] Fail to find book, err=%w", op, result.Error)
	}
	return &book, nil
}

// ListBySeller 回傳賣家的所有刊登，最新刊登在前
func (s *BookService) ListBySeller(sellerID uint) ([]models.Book, error) {
	const op = "BookService.ListBySeller"
	var books []models.Book
	if result := s.db.Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&books); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list seller books, err=%w", op, result.Error)
	}
	return books, nil
}

// ListAll 回傳所有書籍（含 SOLD），供後台檢視
func (s *BookService) ListAll() ([]models.Book, error) {
	const op = "BookService.ListAll"
	var books []models.Book
	if result := s.db.Preload("Seller").Order("created_at DESC").Find(&books); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list books, err=%w", op, result.Error)
	}
	return books, nil
}

// Delete 刪除書籍刊登
// 只有賣家本人或管理員可以刪除；為了維持參照完整性，
// 相依的出價、評論、收藏與交換請求（雙向）會在同一個交易中一併刪除。
// 回傳書籍的圖片檔名，供呼叫端移除已儲存的檔案
func (s *BookService) Delete(bookID uint, caller *models.User) (string, error) {
	const op = "BookService.Delete"
	var image string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if result := tx.First(&book, bookID); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: book %d", ErrNotFound, bookID)
			}
			return fmt.Errorf("[%s] Fail to find book, err=%w", op, result.Error)
		}
		if book.SellerID != caller.ID && !caller.IsAdmin() {
			return fmt.Errorf("%w: you can only delete your own books", ErrForbidden)
		}
		image = book.Image
		// 先清掉相依資料列，避免留下孤兒外鍵
		if result := tx.Where("book_id = ?", bookID).Delete(&models.Bid{}); result.Error != nil {
			return fmt.Errorf("[%s] Fail to delete bids, err=%w", op, result.Error)
		}
		if result := tx.Where("book_id = ?", bookID).Delete(&models.Review{}); result.Error != nil {
			return fmt.Errorf("[%s] Fail to delete reviews, err=%w", op, result.Error)
		}
		if result := tx.Where("book_id = ?", bookID).Delete(&models.Wishlist{}); result.Error != nil {
			return fmt.Errorf("[%s] Fail to delete wishlist entries, err=%w", op, result.Error)
		}
		if result := tx.Where("requested_book_id = ? OR offered_book_id = ?", bookID, bookID).Delete(&models.ExchangeRequest{}); result.Error != nil {
			return fmt.Errorf("[%s] Fail to delete exchange requests, err=%w", op, result.Error)
		}
		if result := tx.Delete(&book); result.Error != nil {
			return fmt.Errorf("[%s] Fail to delete book, err=%w", op, result.Error)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return image, nil
}
