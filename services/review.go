package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookswap/models"
)

// ReviewService 負責書籍評論的建立與查詢
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Add 對書籍新增一則評論，評分必須介於 1 到 5
func (s *ReviewService) Add(userEmail string, bookID uint, rating int, comment string) (*models.Review, error) {
	const op = "ReviewService.Add"
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalid)
	}
	var user models.User
	if result := s.db.Where("email = ?", userEmail).First(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userEmail)
		}
		return nil, fmt.Errorf("[%s] Fail to find user, err=%w", op, result.Error)
	}
	var book models.Book
	if result := s.db.First(&book, bookID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, bookID)
		}
		return nil, fmt.Errorf("[%s] Fail to find book, err=%w", op, result.Error)
	}
	review := models.Review{
		UserID:  user.ID,
		BookID:  bookID,
		Rating:  rating,
		Comment: comment,
	}
	if result := s.db.Create(&review); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to create review, err=%w", op, result.Error)
	}
	return &review, nil
}

// ListForBook 回傳書籍的所有評論，最新在前
func (s *ReviewService) ListForBook(bookID uint) ([]models.Review, error) {
	const op = "ReviewService.ListForBook"
	var reviews []models.Review
	if result := s.db.Preload("User").
		Where("book_id = ?", bookID).
		Order("created_at DESC").
		Find(&reviews); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list reviews, err=%w", op, result.Error)
	}
	return reviews, nil
}

// ListByUser 回傳使用者發表過的所有評論，最新在前
func (s *ReviewService) ListByUser(userEmail string) ([]models.Review, error) {
	const op = "ReviewService.ListByUser"
	var user models.User
	if result := s.db.Where("email = ?", userEmail).First(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userEmail)
		}
		return nil, fmt.Errorf("[%s] Fail to find user, err=%w", op, result.Error)
	}
	var reviews []models.Review
	if result := s.db.
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&reviews); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list reviews, err=%w", op, result.Error)
	}
	return reviews, nil
}
