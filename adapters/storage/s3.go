package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store 將上傳檔案存放在 S3 相容的物件儲存
type S3Store struct {
	// Client 是 S3 客戶端
	Client *s3.Client
	// Bucket 是 S3 存儲桶的名稱
	Bucket string
	// PublicEndpoint 是存儲桶的公開 Endpoint
	PublicEndpoint *url.URL
}

func NewS3Store(client *s3.Client, bucket, publicBaseURL string) (*S3Store, error) {
	const op = "NewS3Store"
	publicEndpoint, err := url.Parse(publicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to parse public base URL, err=%w", op, err)
	}
	return &S3Store{Client: client, Bucket: bucket, PublicEndpoint: publicEndpoint}, nil
}

func (s *S3Store) Save(ctx context.Context, name, contentType string, content []byte) (string, error) {
	const op = "S3Store.Save"
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to upload file to S3, err=%w", op, err)
	}
	uri := *s.PublicEndpoint
	uri.Path = name
	return uri.String(), nil
}

func (s *S3Store) Remove(ctx context.Context, name string) error {
	const op = "S3Store.Remove"
	// Save 回傳的是公開 URL，取最後一段路徑當作物件鍵
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(path.Base(name)),
	})
	if err != nil {
		return fmt.Errorf("[%s] Fail to delete file from S3, err=%w", op, err)
	}
	return nil
}
