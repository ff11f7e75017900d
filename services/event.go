package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bookswap/models"
)

// EventService 負責讀書活動的投稿、查詢與核准
type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// EventInput 是投稿活動的輸入欄位
type EventInput struct {
	Title       string
	Description string
	Location    string
	StartDate   time.Time
	EndDate     time.Time
	Type        string
}

// Submit 由使用者投稿一場活動，等待管理員核准
func (s *EventService) Submit(input EventInput) (*models.Event, error) {
	const op = "EventService.Submit"
	if input.Title == "" || input.Location == "" {
		return nil, fmt.Errorf("%w: title and location are required", ErrInvalid)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end date must not be before start date", ErrInvalid)
	}
	if input.Type == "" {
		input.Type = models.EventTypeBookFair
	}
	if !models.ValidEventType(input.Type) {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalid, input.Type)
	}
	event := models.Event{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Type:        input.Type,
	}
	if result := s.db.Create(&event); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to create event, err=%w", op, result.Error)
	}
	return &event, nil
}

// List 回傳所有活動，開始時間由近到遠
func (s *EventService) List() ([]models.Event, error) {
	const op = "EventService.List"
	var events []models.Event
	if result := s.db.Order("start_date ASC").Find(&events); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list events, err=%w", op, result.Error)
	}
	return events, nil
}

// Upcoming 回傳尚未開始的活動，開始時間由近到遠
func (s *EventService) Upcoming() ([]models.Event, error) {
	const op = "EventService.Upcoming"
	var events []models.Event
	if result := s.db.Where("start_date > ?", time.Now()).
		Order("start_date ASC").
		Find(&events); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list upcoming events, err=%w", op, result.Error)
	}
	return events, nil
}

// ByType 回傳特定類型的活動，開始時間由近到遠
func (s *EventService) ByType(eventType string) ([]models.Event, error) {
	const op = "EventService.ByType"
	if !models.ValidEventType(eventType) {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalid, eventType)
	}
	var events []models.Event
	if result := s.db.Where("type = ?", eventType).
		Order("start_date ASC").
		Find(&events); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list events by type, err=%w", op, result.Error)
	}
	return events, nil
}

// Approve 由管理員核准活動
func (s *EventService) Approve(eventID uint) (*models.Event, error) {
	const op = "EventService.Approve"
	var event models.Event
	if result := s.db.First(&event, eventID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: event %d", ErrNotFound, eventID)
		}
		return nil, fmt.Errorf("[%s] Fail to find event, err=%w", op, result.Error)
	}
	event.Approved = true
	if result := s.db.Save(&event); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to approve event, err=%w", op, result.Error)
	}
	return &event, nil
}
