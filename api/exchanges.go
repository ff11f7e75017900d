package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createExchangeRequest struct {
	RequestedBookID uint   `json:"requestedBookId" binding:"required"`
	OfferedBookID   uint   `json:"offeredBookId" binding:"required"`
	Message         string `json:"message"`
}

// CreateExchangeRequest 建立交換請求
// (POST /api/exchange-requests)
func (impl *ServerImpl) CreateExchangeRequest(c *gin.Context) {
	const op = "CreateExchangeRequest"
	claims := currentClaims(c)
	var request createExchangeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requestedBookId and offeredBookId are required"})
		return
	}
	// 留言由使用者自由輸入，先消毒再儲存
	message := impl.htmlChecker.Sanitize(request.Message)
	exchange, err := impl.exchanges.Create(claims.Subject, request.RequestedBookID, request.OfferedBookID, message)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusCreated, exchange)
}

// ListReceivedRequests 列出目前使用者收到的交換請求
// (GET /api/exchange-requests/received)
func (impl *ServerImpl) ListReceivedRequests(c *gin.Context) {
	const op = "ListReceivedRequests"
	claims := currentClaims(c)
	requests, err := impl.exchanges.Received(claims.Subject)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ListSentRequests 列出目前使用者送出的交換請求
// (GET /api/exchange-requests/sent)
func (impl *ServerImpl) ListSentRequests(c *gin.Context) {
	const op = "ListSentRequests"
	claims := currentClaims(c)
	requests, err := impl.exchanges.Sent(claims.Subject)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// AcceptExchangeRequest 由書籍擁有者接受交換請求
// (PUT /api/exchange-requests/:id/accept)
func (impl *ServerImpl) AcceptExchangeRequest(c *gin.Context) {
	const op = "AcceptExchangeRequest"
	claims := currentClaims(c)
	requestID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	request, err := impl.exchanges.Accept(requestID, claims.Subject)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// DeclineExchangeRequest 由書籍擁有者婉拒交換請求
// (PUT /api/exchange-requests/:id/decline)
func (impl *ServerImpl) DeclineExchangeRequest(c *gin.Context) {
	const op = "DeclineExchangeRequest"
	claims := currentClaims(c)
	requestID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	request, err := impl.exchanges.Decline(requestID, claims.Subject)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// CancelExchangeRequest 由提出者取消交換請求
// (DELETE /api/exchange-requests/:id)
func (impl *ServerImpl) CancelExchangeRequest(c *gin.Context) {
	const op = "CancelExchangeRequest"
	claims := currentClaims(c)
	requestID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := impl.exchanges.Cancel(requestID, claims.Subject); err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exchange request cancelled"})
}
