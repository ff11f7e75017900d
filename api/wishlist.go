package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListWishlist 列出目前使用者的收藏清單
// (GET /api/wishlist)
func (impl *ServerImpl) ListWishlist(c *gin.Context) {
	const op = "ListWishlist"
	claims := currentClaims(c)
	entries, err := impl.wishlists.List(claims.Subject)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddToWishlist 將書籍加入收藏，重複加入回應 400
// (POST /api/wishlist/:bookId)
func (impl *ServerImpl) AddToWishlist(c *gin.Context) {
	const op = "AddToWishlist"
	claims := currentClaims(c)
	bookID, ok := parseUintParam(c, "bookId")
	if !ok {
		return
	}
	entry, err := impl.wishlists.Add(claims.Subject, bookID)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// RemoveFromWishlist 將書籍自收藏中移除，不存在的收藏回應 404
// (DELETE /api/wishlist/:bookId)
func (impl *ServerImpl) RemoveFromWishlist(c *gin.Context) {
	const op = "RemoveFromWishlist"
	claims := currentClaims(c)
	bookID, ok := parseUintParam(c, "bookId")
	if !ok {
		return
	}
	if err := impl.wishlists.Remove(claims.Subject, bookID); err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book removed from wishlist"})
}
