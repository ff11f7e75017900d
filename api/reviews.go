package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ListBookReviews 列出書籍的所有評論，公開端點
// (GET /api/books/:id/reviews)
func (impl *ServerImpl) ListBookReviews(c *gin.Context) {
	const op = "ListBookReviews"
	bookID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	reviews, err := impl.reviews.ListForBook(bookID)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// AddBookReview 對書籍新增評論
// (POST /api/books/:id/reviews)
func (impl *ServerImpl) AddBookReview(c *gin.Context) {
	const op = "AddBookReview"
	claims := currentClaims(c)
	bookID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var request addReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating is required"})
		return
	}
	comment := impl.htmlChecker.Sanitize(request.Comment)
	review, err := impl.reviews.Add(claims.Subject, bookID, request.Rating, comment)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListMyReviews 列出目前使用者發表過的評論
// (GET /api/my-reviews)
func (impl *ServerImpl) ListMyReviews(c *gin.Context) {
	const op = "ListMyReviews"
	claims := currentClaims(c)
	reviews, err := impl.reviews.ListByUser(claims.Subject)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
