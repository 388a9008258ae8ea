package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/query"
)

type PhotoUseCase struct {
	session *Session
	storage PhotoStorage
}

// NewPhotoUseCase のstorageはnilでも構いません。その場合、画像本体のアップロードはできません
func NewPhotoUseCase(s *Session, storage PhotoStorage) *PhotoUseCase {
	return &PhotoUseCase{session: s, storage: storage}
}

func (uc *PhotoUseCase) PhotoPosts(ctx context.Context) query.Result[[]domain.PhotoPost] {
	return query.Fetch(ctx, uc.session.Client(), bindingQuery(uc.session, query.NewKey(QueryPhotoPosts), func(ctx context.Context, b RemoteBinding) ([]domain.PhotoPost, error) {
		return b.GetPhotoPosts(ctx)
	}))
}

type PhotoInput struct {
	ImageURL string
	Caption  string
}

// PublishPhoto は既に公開されている画像URLを投稿として登録します
func (uc *PhotoUseCase) PublishPhoto(ctx context.Context, in PhotoInput) (domain.ID, error) {
	if strings.TrimSpace(in.ImageURL) == "" {
		return 0, fmt.Errorf("%w: image url is required", ErrInvalidInput)
	}
	return mutate(ctx, uc.session, OperationUploadPhoto, in, func(ctx context.Context, b RemoteBinding, in PhotoInput) (domain.ID, error) {
		return b.UploadPhoto(ctx, in.ImageURL, in.Caption)
	})
}

type PhotoUpload struct {
	Body        io.Reader
	Size        int64
	ContentType string
	Caption     string
}

// UploadPhoto は画像をストレージに保存してから投稿を登録します。
// 保存に失敗した場合はバックエンドを呼ばず、キャッシュも変わりません
func (uc *PhotoUseCase) UploadPhoto(ctx context.Context, in PhotoUpload) (domain.ID, error) {
	if uc.storage == nil {
		return 0, ErrPhotoStorageUnavailable
	}
	if in.Body == nil || in.Size <= 0 {
		return 0, fmt.Errorf("%w: image body is required", ErrInvalidInput)
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		return 0, fmt.Errorf("%w: content type %q is not an image", ErrInvalidInput, in.ContentType)
	}
	if _, ok := uc.session.Binding(); !ok {
		return 0, fmt.Errorf("%s: %w", OperationUploadPhoto, ErrBindingUnavailable)
	}

	url, err := uc.storage.PutPhoto(ctx, in.Body, in.Size, in.ContentType)
	if err != nil {
		return 0, fmt.Errorf("画像の保存に失敗しました: %w", err)
	}
	return uc.PublishPhoto(ctx, PhotoInput{ImageURL: url, Caption: in.Caption})
}

func (uc *PhotoUseCase) DeletePhoto(ctx context.Context, id domain.ID) error {
	_, err := mutate(ctx, uc.session, OperationDeletePhoto, id, func(ctx context.Context, b RemoteBinding, id domain.ID) (struct{}, error) {
		return struct{}{}, b.DeletePhoto(ctx, id)
	})
	return err
}
