package api

import (
	"time"
)

type ServerConfig struct {
	Auth    AuthConfig
	DB      DBConfig
	Storage StorageConfig
}

type AuthConfig struct {
	Secret         string
	Issuer         string
	ExpireDuration time.Duration
}

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     int
	Database string
	Schema   string
}

// StorageConfig 設定上傳檔案的儲存後端
// Backend 為 local 時檔案存放在 UploadDir 並由 /uploads 靜態路由提供，
// 為 s3 時使用 S3 設定
type StorageConfig struct {
	Backend        string
	UploadDir      string
	MaxUploadBytes int64

	S3 S3Config
}

type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	Bucket          string
	PublicBaseURL   string
}
