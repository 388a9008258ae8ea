package query_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/eventsync/internal/query"
)

func seedCache(t *testing.T, ctx context.Context, c *query.Client, keys ...query.Key) {
	t.Helper()
	var calls atomic.Int32
	for _, key := range keys {
		if r := query.Fetch(ctx, c, countingQuery(key, &calls, "seed")); r.Err != nil {
			t.Fatalf("Fetch(%s) error = %v", key, r.Err)
		}
	}
}

func TestMutate(t *testing.T) {
	keys := []query.Key{
		query.NewKey("userTickets", "principal-1"),
		query.NewKey("ticket", "42"),
		query.NewKey("ticket", "43"),
		query.NewKey("favorites", "principal-1"),
		query.NewKey("announcements"),
	}

	tests := []struct {
		name            string
		invalidates     []query.Name
		invalidateKeys  func(id uint64) []query.Key
		fnErr           error
		wantInvalidated map[string]bool
	}{
		{
			name:        "正常系: 成功時は対象の名前のエントリだけ無効化される",
			invalidates: []query.Name{"userTickets", "ticket"},
			wantInvalidated: map[string]bool{
				`["announcements"]`:             false,
				`["favorites","principal-1"]`:   false,
				`["ticket","42"]`:               true,
				`["ticket","43"]`:               true,
				`["userTickets","principal-1"]`: true,
			},
		},
		{
			name:        "正常系: キー指定の無効化は入力から作ったキーに完全一致するエントリだけに効く",
			invalidates: []query.Name{"userTickets"},
			invalidateKeys: func(id uint64) []query.Key {
				return []query.Key{query.NewKey("ticket", strconv.FormatUint(id, 10)), query.NewKey("ticket", "404")}
			},
			wantInvalidated: map[string]bool{
				`["announcements"]`:             false,
				`["favorites","principal-1"]`:   false,
				`["ticket","42"]`:               true,
				`["ticket","43"]`:               false,
				`["userTickets","principal-1"]`: true,
			},
		},
		{
			name:        "異常系: 失敗時はキャッシュに触れない",
			invalidates: []query.Name{"userTickets", "ticket"},
			invalidateKeys: func(id uint64) []query.Key {
				return []query.Key{query.NewKey("ticket", strconv.FormatUint(id, 10))}
			},
			fnErr: errRemote,
			wantInvalidated: map[string]bool{
				`["announcements"]`:             false,
				`["favorites","principal-1"]`:   false,
				`["ticket","42"]`:               false,
				`["ticket","43"]`:               false,
				`["userTickets","principal-1"]`: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
			c := newTestClient()
			seedCache(t, ctx, c, keys...)
			before := c.Cache().Snapshot()

			var calls atomic.Int32
			m := query.Mutation[uint64, struct{}]{
				Name:           "validate-ticket",
				Invalidates:    tt.invalidates,
				InvalidateKeys: tt.invalidateKeys,
				Fn: func(ctx context.Context, id uint64) (struct{}, error) {
					calls.Add(1)
					return struct{}{}, tt.fnErr
				},
			}

			_, err := query.Mutate(ctx, c, m, 42)

			if calls.Load() != 1 {
				t.Errorf("mutation called %d times, want 1", calls.Load())
			}
			if tt.fnErr != nil {
				if !errors.Is(err, tt.fnErr) {
					t.Fatalf("want error %v, but got %v", tt.fnErr, err)
				}
				if diff := cmp.Diff(before, c.Cache().Snapshot()); diff != "" {
					t.Errorf("cache changed after failed mutation (-before +after):\n%s", diff)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := make(map[string]bool)
			for _, s := range c.Cache().Snapshot() {
				got[s.Key] = s.Invalidated
			}
			if diff := cmp.Diff(tt.wantInvalidated, got); diff != "" {
				t.Errorf("invalidated flags mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMutate_InvalidatedEntryRefetches(t *testing.T) {
	ctx := newTestContext(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	c := newTestClient()

	var (
		fetches atomic.Int32
		favs    atomic.Int32
	)
	q := query.Query[int32]{
		Key:     query.NewKey("favorites", "principal-1"),
		Enabled: true,
		Fn: func(ctx context.Context) (int32, error) {
			fetches.Add(1)
			return favs.Load(), nil
		},
	}
	if r := query.Fetch(ctx, c, q); r.Data != 0 {
		t.Fatalf("initial Data = %d, want 0", r.Data)
	}

	m := query.Mutation[uint64, struct{}]{
		Name:        "add-favorite",
		Invalidates: []query.Name{"favorites"},
		Fn: func(ctx context.Context, id uint64) (struct{}, error) {
			favs.Add(1)
			return struct{}{}, nil
		},
	}
	if _, err := query.Mutate(ctx, c, m, 7); err != nil {
		t.Fatalf("Mutate() error = %v", err)
	}

	r := query.Fetch(ctx, c, q)
	if r.Data != 1 {
		t.Errorf("Data after mutation = %d, want 1", r.Data)
	}
	if fetches.Load() != 2 {
		t.Errorf("fetches = %d, want 2", fetches.Load())
	}
}
