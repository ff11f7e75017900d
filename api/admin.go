package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookswap/api/token"
)

// AdminLogin 驗證管理員帳號並簽發權杖，非管理員角色回應 403
// (POST /api/admin/login)
func (impl *ServerImpl) AdminLogin(c *gin.Context) {
	const op = "AdminLogin"
	var request loginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	user, err := impl.users.AuthenticateAdmin(request.Email, request.Password)
	if err != nil {
		respondError(c, op, err)
		return
	}
	signed, err := token.Issue(user, []byte(impl.config.Auth.Secret), impl.config.Auth.Issuer, impl.config.Auth.ExpireDuration)
	if err != nil {
		respondError(c, op, err)
		return
	}
	slog.Info("Admin logged in", slog.String("op", op), slog.String("email", user.Email))
	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"admin": newUserResponse(user),
	})
}

// AdminListBooks 列出所有書籍（含 SOLD），供後台檢視
// (GET /api/admin/books)
func (impl *ServerImpl) AdminListBooks(c *gin.Context) {
	const op = "AdminListBooks"
	books, err := impl.books.ListAll()
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// AdminDeleteBook 由管理員下架任何書籍，相依資料一併刪除
// (DELETE /api/admin/books/:bookId)
func (impl *ServerImpl) AdminDeleteBook(c *gin.Context) {
	const op = "AdminDeleteBook"
	claims := currentClaims(c)
	bookID, ok := parseUintParam(c, "bookId")
	if !ok {
		return
	}
	caller, err := impl.users.FindByEmail(claims.Subject)
	if err != nil {
		respondError(c, op, err)
		return
	}
	image, err := impl.books.Delete(bookID, caller)
	if err != nil {
		respondError(c, op, err)
		return
	}
	if image != "" {
		if err := impl.store.Remove(c.Request.Context(), image); err != nil {
			slog.Warn("Fail to remove book image", slog.String("op", op), slog.Any("error", err))
		}
	}
	slog.Info("Book deleted by admin", slog.String("op", op), slog.Uint64("bookID", uint64(bookID)), slog.String("admin", claims.Subject))
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

// AdminApproveEvent 核准使用者投稿的活動
// (PUT /api/admin/events/:eventId/approve)
func (impl *ServerImpl) AdminApproveEvent(c *gin.Context) {
	const op = "AdminApproveEvent"
	eventID, ok := parseUintParam(c, "eventId")
	if !ok {
		return
	}
	event, err := impl.events.Approve(eventID)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Event approved successfully",
		"event":   event,
	})
}

// AdminListUsers 列出所有使用者
// (GET /api/admin/users)
func (impl *ServerImpl) AdminListUsers(c *gin.Context) {
	const op = "AdminListUsers"
	users, err := impl.users.ListUsers()
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// AdminUpdateUserRole 變更使用者角色，僅限 SUPER_ADMIN
// (PUT /api/admin/users/:userId/role)
func (impl *ServerImpl) AdminUpdateUserRole(c *gin.Context) {
	const op = "AdminUpdateUserRole"
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}
	var request updateRoleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role is required"})
		return
	}
	user, err := impl.users.UpdateRole(userID, request.Role)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User role updated successfully",
		"user":    newUserResponse(user),
	})
}

type promoteRequest struct {
	Email string `json:"email" binding:"required"`
}

// AdminPromoteToAdmin 以 email 將使用者升級為管理員，僅限 SUPER_ADMIN
// (POST /api/admin/users/promote-to-admin)
func (impl *ServerImpl) AdminPromoteToAdmin(c *gin.Context) {
	const op = "AdminPromoteToAdmin"
	var request promoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	user, err := impl.users.PromoteToAdmin(request.Email)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User promoted to admin successfully",
		"user":    newUserResponse(user),
	})
}
