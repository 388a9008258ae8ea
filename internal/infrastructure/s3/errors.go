package s3

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

type StorageOperation string

const (
	OperationPut     StorageOperation = "put"
	OperationHead    StorageOperation = "head"
	OperationPresign StorageOperation = "presign"
)

// StorageError はストレージ操作の失敗です。APIエラーの場合はCodeにエラーコードが入ります
type StorageError struct {
	Operation StorageOperation
	Code      string
	Err       error
}

func (e *StorageError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("storage %s error (%s): %v", e.Operation, e.Code, e.Err)
	}
	return fmt.Sprintf("storage %s error: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func newStorageError(op StorageOperation, err error) *StorageError {
	se := &StorageError{Operation: op, Err: err}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		se.Code = apiErr.ErrorCode()
	}
	return se
}

// IsClientFault はリクエスト側に原因がある失敗かどうかを返します
func IsClientFault(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorFault() == smithy.FaultClient
}
