package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookswap/services"
)

type submitEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location" binding:"required"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	Type        string    `json:"type"`
}

// ListEvents 列出所有活動，公開端點
// (GET /api/events)
func (impl *ServerImpl) ListEvents(c *gin.Context) {
	const op = "ListEvents"
	events, err := impl.events.List()
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// ListUpcomingEvents 列出尚未開始的活動，公開端點
// (GET /api/events/upcoming)
func (impl *ServerImpl) ListUpcomingEvents(c *gin.Context) {
	const op = "ListUpcomingEvents"
	events, err := impl.events.Upcoming()
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// ListEventsByType 列出特定類型的活動，公開端點
// (GET /api/events/type/:type)
func (impl *ServerImpl) ListEventsByType(c *gin.Context) {
	const op = "ListEventsByType"
	events, err := impl.events.ByType(c.Param("type"))
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// SubmitEvent 投稿一場活動，等待管理員核准
// (POST /api/events/submit)
func (impl *ServerImpl) SubmitEvent(c *gin.Context) {
	const op = "SubmitEvent"
	var request submitEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, location, startDate and endDate are required"})
		return
	}
	event, err := impl.events.Submit(services.EventInput{
		Title:       request.Title,
		Description: impl.htmlChecker.Sanitize(request.Description),
		Location:    request.Location,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		Type:        request.Type,
	})
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}
