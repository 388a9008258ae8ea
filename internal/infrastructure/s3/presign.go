package s3

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MaxPresignTTL はSigV4の署名付きURLに設定できる最長の有効期間です
const MaxPresignTTL = 7 * 24 * time.Hour

type Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

func (c *Client) objectURL(ctx context.Context, key string) (string, error) {
	if c.publicBaseURL != "" {
		return url.JoinPath(strings.TrimRight(c.publicBaseURL, "/"), key)
	}

	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = c.urlTTL
	})
	if err != nil {
		return "", newStorageError(OperationPresign, err)
	}
	return req.URL, nil
}
