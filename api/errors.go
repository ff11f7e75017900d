package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookswap/services"
)

// respondError 將服務層的錯誤類別轉換成 HTTP 狀態碼，整個邊界只在這裡做一次轉換
// not-found -> 404、authorization failure -> 403/401、conflict 與 invalid -> 400
func respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error("Unhandled service error", slog.String("op", op), slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
