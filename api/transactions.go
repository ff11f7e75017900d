package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type createTransactionRequest struct {
	BookID uint `json:"bookId" binding:"required"`
}

// CreateTransaction 直購一本書，金額為書籍目前售價的快照
// (POST /api/transactions)
func (impl *ServerImpl) CreateTransaction(c *gin.Context) {
	const op = "CreateTransaction"
	claims := currentClaims(c)
	var request createTransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bookId is required"})
		return
	}
	transaction, err := impl.transactions.Create(claims.Subject, request.BookID)
	if err != nil {
		respondError(c, op, err)
		return
	}
	slog.Info("Transaction completed", slog.String("op", op), slog.String("buyer", claims.Subject), slog.Uint64("bookID", uint64(request.BookID)))
	c.JSON(http.StatusCreated, transaction)
}

// ListPurchases 列出目前使用者的購買紀錄
// (GET /api/transactions/purchases)
func (impl *ServerImpl) ListPurchases(c *gin.Context) {
	const op = "ListPurchases"
	claims := currentClaims(c)
	transactions, err := impl.transactions.Purchases(claims.Subject)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// ListSales 列出目前使用者的售出紀錄
// (GET /api/transactions/sales)
func (impl *ServerImpl) ListSales(c *gin.Context) {
	const op = "ListSales"
	claims := currentClaims(c)
	transactions, err := impl.transactions.Sales(claims.Subject)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}
