package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/handler/middleware"
	"github.com/na2na-p/eventsync/internal/handler/response"
	"github.com/na2na-p/eventsync/internal/usecase"
)

const DefaultMaxPhotoSize int64 = 10 << 20

type PhotoHandler struct {
	storage usecase.PhotoStorage
	maxSize int64
}

// NewPhotoHandler は storage が nil の場合でもURL指定の投稿だけは受け付けます
func NewPhotoHandler(storage usecase.PhotoStorage, maxSize int64) *PhotoHandler {
	if maxSize <= 0 {
		maxSize = DefaultMaxPhotoSize
	}
	return &PhotoHandler{storage: storage, maxSize: maxSize}
}

func (h *PhotoHandler) HandleList(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	return respondQuery(c, usecase.NewPhotoUseCase(sess, h.storage).PhotoPosts(c.Request().Context()))
}

type photoRequest struct {
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption"`
}

// HandleCreate はmultipartの画像アップロードと、公開済みURLのJSON登録の両方を受け付けます
func (h *PhotoHandler) HandleCreate(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	uc := usecase.NewPhotoUseCase(sess, h.storage)
	ctx := c.Request().Context()

	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		var req photoRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		id, err := uc.PublishPhoto(ctx, usecase.PhotoInput{ImageURL: req.ImageURL, Caption: req.Caption})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, response.IDResponse{ID: id})
	}

	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, h.maxSize+(1<<20))
	fh, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return middleware.NewAppError(http.StatusRequestEntityTooLarge, "画像が大きすぎます", err)
		}
		return middleware.NewAppError(http.StatusBadRequest, "imageフィールドがありません", err)
	}
	if fh.Size > h.maxSize {
		return middleware.NewAppError(http.StatusRequestEntityTooLarge, "画像が大きすぎます", nil)
	}

	file, err := fh.Open()
	if err != nil {
		return fmt.Errorf("アップロードされた画像を開けませんでした: %w", err)
	}
	defer func() { _ = file.Close() }()

	id, err := uc.UploadPhoto(ctx, usecase.PhotoUpload{
		Body:        file,
		Size:        fh.Size,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Caption:     c.FormValue("caption"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, response.IDResponse{ID: id})
}

func (h *PhotoHandler) HandleDelete(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := usecase.NewPhotoUseCase(sess, h.storage).DeletePhoto(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
