package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// sseWriter は text/event-stream の1イベントずつを書き込み、その都度フラッシュします
type sseWriter struct {
	resp *echo.Response
}

func newSSEWriter(c echo.Context) *sseWriter {
	resp := c.Response()
	h := resp.Header()
	h.Set(echo.HeaderContentType, "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()
	return &sseWriter{resp: resp}
}

func (w *sseWriter) writeEvent(event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("イベントのエンコードに失敗しました: %w", err)
	}
	if _, err := fmt.Fprintf(w.resp, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	w.resp.Flush()
	return nil
}

func (w *sseWriter) writeComment(text string) error {
	if _, err := fmt.Fprintf(w.resp, ": %s\n\n", text); err != nil {
		return err
	}
	w.resp.Flush()
	return nil
}
