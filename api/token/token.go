package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookswap/models"
)

// Claims 是平台簽發的存取權杖內容
// subject 為使用者 email，role 供受保護端點做授權判斷；
// 權杖在有效期限內一律視為有效，伺服器端沒有撤銷清單
type Claims struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issue 為使用者簽發 HS256 權杖
func Issue(user *models.User, secret []byte, issuer string, ttl time.Duration) (string, error) {
	const op = "token.Issue"
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to sign token, err=%w", op, err)
	}
	return signed, nil
}

// ParseAndValidate 解析並驗證權杖，回傳其中的宣告
func ParseAndValidate(tokenString string, secret []byte) (*Claims, error) {
	const op = "token.ParseAndValidate"
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to parse token, err=%w", op, err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("[%s] Token is invalid", op)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("[%s] Token claims are invalid", op)
	}
	return claims, nil
}
