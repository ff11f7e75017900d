package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"bookswap/adapters/storage"
	"bookswap/services"
)

const defaultMaxUploadBytes = 5 << 20

// saveUpload 讀取 multipart 欄位的圖片並交給儲存後端
// 限制：
//  1. 大小不超過設定的上限（預設 5MB）
//  2. MIME 類型為不包含腳本的圖片檔案
//
// 回傳儲存後的檔案參照（檔名或公開 URL）
func (impl *ServerImpl) saveUpload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	const op = "saveUpload"
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to open uploaded file, err=%w", op, err)
	}
	defer file.Close()

	maxBytes := impl.config.Storage.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	body := storage.NewMaxSizeReader(file, maxBytes)
	content, err := io.ReadAll(body)
	if errors.As(err, &storage.ErrReachLimitType) {
		return "", fmt.Errorf("%w: %s", services.ErrInvalid, err.Error())
	}
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to read uploaded file, err=%w", op, err)
	}
	mimeType := http.DetectContentType(content)
	secure, ext := storage.CheckSecureImageAndGetExtension(mimeType)
	if !secure {
		return "", fmt.Errorf("%w: invalid image type: %s", services.ErrInvalid, mimeType)
	}
	name := uuid.New().String() + "." + ext
	ref, err := impl.store.Save(ctx, name, mimeType, content)
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to save uploaded file, err=%w", op, err)
	}
	return ref, nil
}
