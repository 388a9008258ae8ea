package s3

import (
	"errors"
	"fmt"
	"mime"
	"regexp"
)

var (
	ErrInvalidPhotoID         = errors.New("invalid photo id")
	ErrUnsupportedContentType = errors.New("unsupported content type")
)

var photoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

// PhotoKey は画像のオブジェクトキーを作ります。
// 形式: photos/{id[0:2]}/{id}{ext}
func PhotoKey(id, contentType string) (string, error) {
	if len(id) < 2 || !photoIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhotoID, id)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}
	ext, ok := extensions[mediaType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedContentType, mediaType)
	}
	return fmt.Sprintf("photos/%s/%s%s", id[:2], id, ext), nil
}
