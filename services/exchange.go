package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookswap/models"
)

// ExchangeService 負責交換請求的工作流程
// 狀態機：PENDING -> ACCEPTED / DECLINED（限 owner）
// 或 PENDING -> CANCELLED（限 requester，透過刪除），終止狀態不可再轉換
type ExchangeService struct {
	db *gorm.DB
}

func NewExchangeService(db *gorm.DB) *ExchangeService {
	return &ExchangeService{db: db}
}

// Create 建立交換請求：requester 以 offeredBook 交換 requestedBook
// 對自己的書提出交換回傳 ErrConflict
func (s *ExchangeService) Create(requesterEmail string, requestedBookID, offeredBookID uint, message string) (*models.ExchangeRequest, error) {
	const op = "ExchangeService.Create"
	var requester models.User
	if result := s.db.Where("email = ?", requesterEmail).First(&requester); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, requesterEmail)
		}
		return nil, fmt.Errorf("[%s] Fail to find requester, err=%w", op, result.Error)
	}
	var requestedBook models.Book
	if result := s.db.First(&requestedBook, requestedBookID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: requested book %d", ErrNotFound, requestedBookID)
		}
		return nil, fmt.Errorf("[%s] Fail to find requested book, err=%w", op, result.Error)
	}
	var offeredBook models.Book
	if result := s.db.First(&offeredBook, offeredBookID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: offered book %d", ErrNotFound, offeredBookID)
		}
		return nil, fmt.Errorf("[%s] Fail to find offered book, err=%w", op, result.Error)
	}
	if requestedBook.SellerID == requester.ID {
		return nil, fmt.Errorf("%w: you cannot request an exchange for your own book", ErrConflict)
	}
	request := models.ExchangeRequest{
		RequesterID:     requester.ID,
		OwnerID:         requestedBook.SellerID,
		RequestedBookID: requestedBookID,
		OfferedBookID:   offeredBookID,
		Message:         message,
		Status:          models.ExchangeStatusPending,
	}
	if result := s.db.Create(&request); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to create exchange request, err=%w", op, result.Error)
	}
	return &request, nil
}

// Received 回傳 owner 收到的交換請求，最新在前
func (s *ExchangeService) Received(ownerEmail string) ([]models.ExchangeRequest, error) {
	const op = "ExchangeService.Received"
	owner, err := s.findUser(op, ownerEmail)
	if err != nil {
		return nil, err
	}
	var requests []models.ExchangeRequest
	if result := s.db.Preload("Requester").Preload("RequestedBook").Preload("OfferedBook").
		Where("owner_id = ?", owner.ID).
		Order("created_at DESC").
		Find(&requests); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list received requests, err=%w", op, result.Error)
	}
	return requests, nil
}

// Sent 回傳 requester 送出的交換請求，最新在前
func (s *ExchangeService) Sent(requesterEmail string) ([]models.ExchangeRequest, error) {
	const op = "ExchangeService.Sent"
	requester, err := s.findUser(op, requesterEmail)
	if err != nil {
		return nil, err
	}
	var requests []models.ExchangeRequest
	if result := s.db.Preload("Owner").Preload("RequestedBook").Preload("OfferedBook").
		Where("requester_id = ?", requester.ID).
		Order("created_at DESC").
		Find(&requests); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list sent requests, err=%w", op, result.Error)
	}
	return requests, nil
}

// Accept 由 owner 接受 PENDING 的交換請求
func (s *ExchangeService) Accept(requestID uint, ownerEmail string) (*models.ExchangeRequest, error) {
	return s.resolve("ExchangeService.Accept", requestID, ownerEmail, models.ExchangeStatusAccepted)
}

// Decline 由 owner 婉拒 PENDING 的交換請求
func (s *ExchangeService) Decline(requestID uint, ownerEmail string) (*models.ExchangeRequest, error) {
	return s.resolve("ExchangeService.Decline", requestID, ownerEmail, models.ExchangeStatusDeclined)
}

// Cancel 由 requester 取消 PENDING 的交換請求並刪除資料列
func (s *ExchangeService) Cancel(requestID uint, requesterEmail string) error {
	const op = "ExchangeService.Cancel"
	var request models.ExchangeRequest
	if result := s.db.Preload("Requester").First(&request, requestID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: exchange request %d", ErrNotFound, requestID)
		}
		return fmt.Errorf("[%s] Fail to find exchange request, err=%w", op, result.Error)
	}
	if request.Requester.Email != requesterEmail {
		return fmt.Errorf("%w: you are not authorized to cancel this request", ErrForbidden)
	}
	if request.Status != models.ExchangeStatusPending {
		return fmt.Errorf("%w: request is no longer pending", ErrConflict)
	}
	if result := s.db.Delete(&request); result.Error != nil {
		return fmt.Errorf("[%s] Fail to delete exchange request, err=%w", op, result.Error)
	}
	return nil
}

func (s *ExchangeService) resolve(op string, requestID uint, ownerEmail, status string) (*models.ExchangeRequest, error) {
	var request models.ExchangeRequest
	if result := s.db.Preload("Owner").First(&request, requestID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: exchange request %d", ErrNotFound, requestID)
		}
		return nil, fmt.Errorf("[%s] Fail to find exchange request, err=%w", op, result.Error)
	}
	if request.Owner.Email != ownerEmail {
		return nil, fmt.Errorf("%w: you are not authorized to resolve this request", ErrForbidden)
	}
	if request.Status != models.ExchangeStatusPending {
		return nil, fmt.Errorf("%w: request is no longer pending", ErrConflict)
	}
	request.Status = status
	if result := s.db.Save(&request); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to update exchange request, err=%w", op, result.Error)
	}
	return &request, nil
}

func (s *ExchangeService) findUser(op, email string) (*models.User, error) {
	var user models.User
	if result := s.db.Where("email = ?", email).First(&user); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
		}
		return nil, fmt.Errorf("[%s] Fail to find user, err=%w", op, result.Error)
	}
	return &user, nil
}
