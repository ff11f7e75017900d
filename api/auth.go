package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookswap/api/token"
	"bookswap/models"
	"bookswap/services"
)

// userResponse 是回傳給前端的使用者資訊，不包含密碼雜湊
type userResponse struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture"`
}

func newUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Role:           user.Role,
		ProfilePicture: user.ProfilePicture,
	}
}

// Register 註冊新使用者
// (POST /api/register)
func (impl *ServerImpl) Register(c *gin.Context) {
	const op = "Register"
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	// 頭像為選填，有提供才儲存
	var profilePicture string
	if fileHeader, err := c.FormFile("profilePicture"); err == nil {
		ref, err := impl.saveUpload(c.Request.Context(), fileHeader)
		if err != nil {
			respondError(c, op, err)
			return
		}
		profilePicture = ref
	}

	user, err := impl.users.Register(username, email, password, profilePicture)
	if err != nil {
		respondError(c, op, err)
		return
	}
	slog.Info("User registered", slog.String("op", op), slog.String("email", user.Email))
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    newUserResponse(user),
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 驗證帳號密碼並簽發存取權杖
// (POST /api/login)
func (impl *ServerImpl) Login(c *gin.Context) {
	const op = "Login"
	var request loginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	user, err := impl.users.Authenticate(request.Email, request.Password)
	if err != nil {
		respondError(c, op, err)
		return
	}
	signed, err := token.Issue(user, []byte(impl.config.Auth.Secret), impl.config.Auth.Issuer, impl.config.Auth.ExpireDuration)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user":  newUserResponse(user),
	})
}

// UpdateProfile 更新目前使用者的個人資料
// (PUT /api/profile)
func (impl *ServerImpl) UpdateProfile(c *gin.Context) {
	const op = "UpdateProfile"
	claims := currentClaims(c)

	update := services.ProfileUpdate{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
	if fileHeader, err := c.FormFile("profilePicture"); err == nil {
		ref, err := impl.saveUpload(c.Request.Context(), fileHeader)
		if err != nil {
			respondError(c, op, err)
			return
		}
		update.ProfilePicture = ref
	}

	user, err := impl.users.UpdateProfile(claims.UserID, update)
	if err != nil {
		respondError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}
