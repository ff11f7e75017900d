package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"bookswap/models"
)

type placeBidRequest struct {
	BookID uint    `json:"bookId" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// bidResponse 是出價的對外表示，附上出價者名稱
type bidResponse struct {
	ID       uint    `json:"id"`
	BookID   uint    `json:"bookId"`
	BidderID uint    `json:"bidderId"`
	Bidder   string  `json:"bidder"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
}

// PlaceBid 對書籍出價
// (POST /api/bids)
func (impl *ServerImpl) PlaceBid(c *gin.Context) {
	const op = "PlaceBid"
	claims := currentClaims(c)
	var request placeBidRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bookId and amount are required"})
		return
	}
	bid, err := impl.bids.Place(claims.Subject, request.BookID, request.Amount)
	if err != nil {
		respondError(c, op, err)
		return
	}
	slog.Info("Bid placed", slog.String("op", op), slog.String("bidder", claims.Subject), slog.Uint64("bookID", uint64(request.BookID)), slog.Float64("amount", request.Amount))
	c.JSON(http.StatusCreated, bid)
}

// ListBookBids 列出書籍的所有出價，金額由高到低
// (GET /api/bids/book/:bookId)
func (impl *ServerImpl) ListBookBids(c *gin.Context) {
	const op = "ListBookBids"
	bookID, ok := parseUintParam(c, "bookId")
	if !ok {
		return
	}
	bids, err := impl.bids.ListForBook(bookID)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(bids, func(bid models.Bid, _ int) bidResponse {
		return bidResponse{
			ID:       bid.ID,
			BookID:   bid.BookID,
			BidderID: bid.BidderID,
			Bidder:   bid.Bidder.Username,
			Amount:   bid.Amount,
			Status:   bid.Status,
		}
	}))
}

// AcceptBid 由賣家接受出價
// 被接受的出價轉為 ACCEPTED、書籍轉為 SOLD、其餘 ACTIVE 出價轉為 REJECTED
// (PUT /api/bids/:bidId/accept)
func (impl *ServerImpl) AcceptBid(c *gin.Context) {
	const op = "AcceptBid"
	claims := currentClaims(c)
	bidID, ok := parseUintParam(c, "bidId")
	if !ok {
		return
	}
	bid, err := impl.bids.Accept(bidID, claims.Subject)
	if err != nil {
		respondError(c, op, err)
		return
	}
	slog.Info("Bid accepted", slog.String("op", op), slog.Uint64("bidID", uint64(bidID)), slog.String("seller", claims.Subject))
	c.JSON(http.StatusOK, bid)
}
