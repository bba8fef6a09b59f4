package minio

import (
	"Kajoogram/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/policy"
)

// Storage 媒体对象存储
type Storage struct {
	client   *minio.Client
	bucket   string
	publicEP string
	useSSL   bool
}

// New 初始化 MinIO 客户端并确保桶存在且可公开读取
func New(cfg config.MinIOConfig) (*Storage, error) {
	endpoint, useSSL := cfg.InternalEndpoint, cfg.InternalUseSSL
	if endpoint == "" {
		endpoint, useSSL = cfg.ExternalEndpoint, true
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	s := &Storage{
		client:   client,
		bucket:   cfg.Bucket,
		publicEP: cfg.ExternalEndpoint,
		useSSL:   true,
	}
	if s.publicEP == "" {
		s.publicEP, s.useSSL = endpoint, useSSL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Storage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if exists {
		return nil
	}
	if err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	readOnly := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, s.bucket)
	if err = s.client.SetBucketPolicy(ctx, s.bucket, readOnly); err != nil {
		return fmt.Errorf("set bucket policy: %w", err)
	}
	log.Info("MinIO bucket created", "bucket", s.bucket, "policy", string(policy.BucketPolicyReadOnly))
	return nil
}
