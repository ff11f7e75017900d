package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookswap/models"
)

// WishlistService 負責使用者收藏清單的維護
type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

// List 回傳使用者的收藏清單，最新在前
func (s *WishlistService) List(userEmail string) ([]models.Wishlist, error) {
	const op = "WishlistService.List"
	user, err := s.findUser(op, userEmail)
	if err != nil {
		return nil, err
	}
	var entries []models.Wishlist
	if result := s.db.Preload("Book").Preload("Book.Seller").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&entries); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list wishlist, err=%w", op, result.Error)
	}
	return entries, nil
}

// Add 將書籍加入收藏
// 書籍不存在回傳 ErrNotFound，已在收藏中回傳 ErrConflict
func (s *WishlistService) Add(userEmail string, bookID uint) (*models.Wishlist, error) {
	const op = "WishlistService.Add"
	user, err := s.findUser(op, userEmail)
	if err != nil {
		return nil, err
	}
	var book models.Book
	if result := s.db.First(&book, bookID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, bookID)
		}
		return nil, fmt.Errorf("[%s] Fail to find book, err=%w", op, result.Error)
	}
	var count int64
	if result := s.db.Model(&models.Wishlist{}).
		Where("user_id = ? AND book_id = ?", user.ID, bookID).
		Count(&count); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to check wishlist, err=%w", op, result.Error)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: book is already in wishlist", ErrConflict)
	}
	entry := models.Wishlist{
		UserID: user.ID,
		BookID: bookID,
	}
	if result := s.db.Create(&entry); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: book is already in wishlist", ErrConflict)
		}
		return nil, fmt.Errorf("[%s] Fail to create wishlist entry, err=%w", op, result.Error)
	}
	return &entry, nil
}

// Remove 將書籍自收藏中移除，不存在的收藏回傳 ErrNotFound
func (s *WishlistService) Remove(userEmail string, bookID uint) error {
	const op = "WishlistService.Remove"
	user, err := s.findUser(op, userEmail)
	if err != nil {
		return err
	}
	var entry models.Wishlist
	if result := s.db.Where("user_id = ? AND book_id = ?", user.ID, bookID).First(&entry); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: book %d is not in wishlist", ErrNotFound, bookID)
		}
		return fmt.Errorf("[%s] Fail to find wishlist entry, err=%w", op, result.Error)
	}
	if result := s.db.Delete(&entry); result.Error != nil {
		return fmt.Errorf("[%s] Fail to delete wishlist entry, err=%w", op, result.Error)
	}
	return nil
}

func (s *WishlistService) findUser(op, email string) (*models.User, error) {
	var user models.User
	if result := s.db.Where("email = ?", email).First(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, fmt.Errorf("[%s] Fail to find user, err=%w", op, result.Error)
	}
	return &user, nil
}
