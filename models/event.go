package models

import (
	"time"

	"gorm.io/gorm"
)

// 活動類型
const (
	EventTypeBookFair       = "BOOK_FAIR"
	EventTypeAuthorMeetup   = "AUTHOR_MEETUP"
	EventTypeReadingSession = "READING_SESSION"
	EventTypeWorkshop       = "WORKSHOP"
)

// Event 代表平台上的讀書活動
// 使用者可以投稿活動，經管理員核准後 Approved 為 true
type Event struct {
	gorm.Model

	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`
	StartDate   time.Time `gorm:"type:timestamp with time zone;not null" json:"startDate"`
	EndDate     time.Time `gorm:"type:timestamp with time zone;not null" json:"endDate"`
	Type        string    `gorm:"type:varchar(32);not null;default:BOOK_FAIR" json:"type"`
	Approved    bool      `gorm:"not null;default:false" json:"approved"`
}

// ValidEventType 檢查活動類型是否為合法的列舉值
func ValidEventType(eventType string) bool {
	switch eventType {
	case EventTypeBookFair, EventTypeAuthorMeetup, EventTypeReadingSession, EventTypeWorkshop:
		return true
	}
	return false
}
