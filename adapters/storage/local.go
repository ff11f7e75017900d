package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore 將上傳檔案存放在本地目錄
// 目錄由設定檔指定，檔案以檔名被實體紀錄參照，並由靜態路由對外提供
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	const op = "NewLocalStore"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("[%s] Fail to create upload directory, err=%w", op, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(_ context.Context, name, _ string, content []byte) (string, error) {
	const op = "LocalStore.Save"
	// 只取基底檔名，避免路徑跳脫到上傳目錄之外
	name = filepath.Base(name)
	if err := os.WriteFile(filepath.Join(s.dir, name), content, 0o644); err != nil {
		return "", fmt.Errorf("[%s] Fail to write file, err=%w", op, err)
	}
	return name, nil
}

func (s *LocalStore) Remove(_ context.Context, name string) error {
	const op = "LocalStore.Remove"
	name = filepath.Base(name)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("[%s] Fail to remove file, err=%w", op, err)
	}
	return nil
}
