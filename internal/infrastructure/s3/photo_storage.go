package s3

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/na2na-p/eventsync/internal/usecase"
)

var _ usecase.PhotoStorage = (*Client)(nil)

// PutPhoto は画像を新しいキーで保存し、投稿に載せるURLを返します
func (c *Client) PutPhoto(ctx context.Context, body io.Reader, size int64, contentType string) (string, error) {
	key, err := PhotoKey(c.newID(), contentType)
	if err != nil {
		return "", err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	}
	// multipartの本体はシークできないため、ペイロードは署名しない
	if _, err := c.api.PutObject(ctx, input, s3.WithAPIOptions(v4.SwapComputePayloadSHA256ForUnsignedPayloadMiddleware)); err != nil {
		return "", newStorageError(OperationPut, err)
	}

	return c.objectURL(ctx, key)
}
