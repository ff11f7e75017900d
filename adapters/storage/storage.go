package storage

import (
	"context"
)

// Store 是上傳檔案的儲存後端
// Save 回傳檔案的對外參照：本地後端回傳檔名（由 /uploads 靜態路由提供），
// S3 後端回傳公開 URL
type Store interface {
	Save(ctx context.Context, name, contentType string, content []byte) (string, error)
	Remove(ctx context.Context, name string) error
}
