package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	// PublicBaseURL が設定されている場合、画像URLは署名なしの公開URLになります
	PublicBaseURL string
	// URLTTL は署名付きURLの有効期間です
	URLTTL time.Duration
}

type API interface {
	PutObject(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// Client は投稿画像をS3互換ストレージに保存します
type Client struct {
	api           API
	presigner     Presigner
	bucket        string
	publicBaseURL string
	urlTTL        time.Duration
	newID         func() string
}

func NewConnection(cfg Config) *s3.Client {
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})
}

func NewClient(conn *s3.Client, cfg Config) *Client {
	return NewClientWithAPI(conn, s3.NewPresignClient(conn), cfg)
}

func NewClientWithAPI(api API, presigner Presigner, cfg Config) *Client {
	ttl := cfg.URLTTL
	if ttl <= 0 || ttl > MaxPresignTTL {
		ttl = MaxPresignTTL
	}
	return &Client{
		api:           api,
		presigner:     presigner,
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
		urlTTL:        ttl,
		newID:         uuid.NewString,
	}
}

func (c *Client) HeadBucket(ctx context.Context) error {
	_, err := c.api.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucket),
	})
	if err != nil {
		return fmt.Errorf("failed to head bucket: %w", newStorageError(OperationHead, err))
	}
	return nil
}
