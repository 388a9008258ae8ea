package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/handler/middleware"
	"github.com/na2na-p/eventsync/internal/handler/response"
	"github.com/na2na-p/eventsync/internal/usecase"
)

const DefaultStreamKeepAlive = 15 * time.Second

type ContestHandler struct {
	keepAlive time.Duration
}

func NewContestHandler(keepAlive time.Duration) *ContestHandler {
	if keepAlive <= 0 {
		keepAlive = DefaultStreamKeepAlive
	}
	return &ContestHandler{keepAlive: keepAlive}
}

func (h *ContestHandler) HandleList(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	return respondQuery(c, usecase.NewContestUseCase(sess).ContestEntries(c.Request().Context()))
}

// HandleStream は接続している間コンテストの投稿一覧を購読し、更新のたびにイベントを送ります。
// 切断されるかセッションが閉じられると購読を解除し、最後の購読者ならポーリングも止まります
func (h *ContestHandler) HandleStream(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	if _, ok := sess.Binding(); !ok {
		return usecase.ErrBindingUnavailable
	}

	ctx := c.Request().Context()
	obs := usecase.NewContestUseCase(sess).WatchContestEntries(ctx)
	defer obs.Close()

	w := newSSEWriter(c)
	keepAlive := time.NewTicker(h.keepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sess.Done():
			return nil
		case r, ok := <-obs.Updates():
			if !ok {
				return nil
			}
			if !r.HasData && r.Err == nil {
				continue
			}
			if !r.HasData {
				if err := w.writeEvent("error", response.ErrorResponse{Error: r.Err.Error()}); err != nil {
					return nil
				}
				continue
			}
			if err := w.writeEvent("entries", response.NewQueryResponse(r)); err != nil {
				return nil
			}
		case <-keepAlive.C:
			if err := w.writeComment("keepalive"); err != nil {
				return nil
			}
		}
	}
}

func (h *ContestHandler) HandleVote(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := usecase.NewContestUseCase(sess).Vote(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type contestEntryRequest struct {
	ImageURL string `json:"imageUrl"`
}

// HandleCreate は呼び出し元を作者としてコンテストに投稿します
func (h *ContestHandler) HandleCreate(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	var req contestEntryRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	artist, ok := sess.Principal()
	if !ok {
		return usecase.ErrIdentityUnavailable
	}
	entry := domain.ContestEntry{ImageURL: req.ImageURL, Artist: artist}
	if err := usecase.NewContestUseCase(sess).CreateEntry(c.Request().Context(), entry); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}
