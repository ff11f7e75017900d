package services

import (
	"errors"
)

// 服務層的錯誤類別
// 各服務用 %w 包裝這些基底錯誤附上細節，由 API 層統一轉換成 HTTP 狀態碼
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid request")
)
