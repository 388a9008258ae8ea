package usecase

import (
	"context"
	"fmt"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/query"
)

// bindingQuery はバインディングが確立されている間だけ有効なクエリを作ります。
// バインディングは実行のたびに引き直すため、ログアウト後に古い資格情報で呼び出すことはありません
func bindingQuery[T any](s *Session, key query.Key, fn func(ctx context.Context, b RemoteBinding) (T, error)) query.Query[T] {
	_, bound := s.Binding()
	return query.Query[T]{
		Key:     key,
		Enabled: bound,
		Active: func() bool {
			_, ok := s.Binding()
			return ok
		},
		Fn: func(ctx context.Context) (T, error) {
			b, ok := s.Binding()
			if !ok {
				var zero T
				return zero, ErrBindingUnavailable
			}
			return fn(ctx, b)
		},
	}
}

// identityQuery は呼び出し元のPrincipalでスコープされたクエリを作ります。
// 未ログインの間、またはキーを作ったときと別のPrincipalに切り替わった後は無効です
func identityQuery[T any](s *Session, name query.Name, fn func(ctx context.Context, b RemoteBinding, p domain.Principal) (T, error)) query.Query[T] {
	_, bound := s.Binding()
	p, authed := s.Principal()
	current := func() (RemoteBinding, bool) {
		b, ok := s.Binding()
		if !ok {
			return nil, false
		}
		now, ok := s.Principal()
		return b, ok && now.Equal(p)
	}
	return query.Query[T]{
		Key:     scopedKey(name, p, authed),
		Enabled: bound && authed,
		Active: func() bool {
			_, ok := current()
			return ok
		},
		Fn: func(ctx context.Context) (T, error) {
			b, ok := current()
			if !ok {
				var zero T
				return zero, ErrIdentityUnavailable
			}
			return fn(ctx, b, p)
		},
	}
}

// mutate はOperationの対応表に従って書き込みを実行します
func mutate[I, O any](ctx context.Context, s *Session, op Operation, input I, fn func(ctx context.Context, b RemoteBinding, input I) (O, error)) (O, error) {
	return mutateKeys(ctx, s, op, input, nil, fn)
}

// mutateKeys は対応表の名前に加えて、入力から作ったキーを完全一致で無効化します
func mutateKeys[I, O any](ctx context.Context, s *Session, op Operation, input I, keys func(I) []query.Key, fn func(ctx context.Context, b RemoteBinding, input I) (O, error)) (O, error) {
	b, ok := s.Binding()
	if !ok {
		var zero O
		return zero, fmt.Errorf("%s: %w", op, ErrBindingUnavailable)
	}
	return query.Mutate(ctx, s.Client(), query.Mutation[I, O]{
		Name:           op.String(),
		Invalidates:    op.Targets(),
		InvalidateKeys: keys,
		Fn: func(ctx context.Context, in I) (O, error) {
			return fn(ctx, b, in)
		},
	}, input)
}
