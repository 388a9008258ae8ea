package s3

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestHealthChecker_Check(t *testing.T) {
	tests := []struct {
		name    string
		headErr error
		wantErr bool
	}{
		{
			name: "正常系: バケットに到達できる",
		},
		{
			name:    "異常系: バケットに到達できない",
			headErr: &mockAPIError{code: "NotFound"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bucket string
			api := &mockAPI{
				headBucketFunc: func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
					bucket = aws.ToString(params.Bucket)
					return &s3.HeadBucketOutput{}, tt.headErr
				},
			}
			checker := NewHealthChecker(newTestClient(api, &mockPresigner{}, Config{Bucket: "photos-bucket"}))

			if checker.Name() != "s3" {
				t.Errorf("Name() = %q, want s3", checker.Name())
			}
			err := checker.Check(context.Background())
			if bucket != "photos-bucket" {
				t.Errorf("bucket = %q, want photos-bucket", bucket)
			}
			if tt.wantErr {
				var se *StorageError
				if !errors.As(err, &se) || se.Operation != OperationHead {
					t.Errorf("want head StorageError, but got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
