package query

import "context"

// Mutation はリモートへの書き込みと、成功時に古くなるクエリの組です
type Mutation[I, O any] struct {
	Name        string
	Invalidates []Name
	// InvalidateKeys は入力から完全一致で無効化するキーを決めます。nilなら名前単位の無効化だけです
	InvalidateKeys func(input I) []Key
	Fn             func(ctx context.Context, input I) (O, error)
}

// Mutate は書き込みを1回だけ実行します。再試行はしません。
// 成功した場合だけInvalidatesとInvalidateKeysのエントリを無効化し、失敗時はキャッシュに触れません
func Mutate[I, O any](ctx context.Context, c *Client, m Mutation[I, O], input I) (O, error) {
	out, err := m.Fn(ctx, input)
	c.metrics.observeMutation(m.Name, err)
	if err != nil {
		c.logger.WarnContext(ctx, "mutation failed", "operation", m.Name, "error", err)
		var zero O
		return zero, err
	}

	n := c.Invalidate(m.Invalidates...)
	if m.InvalidateKeys != nil {
		for _, key := range m.InvalidateKeys(input) {
			if c.InvalidateKey(key) {
				n++
			}
		}
	}
	c.logger.DebugContext(ctx, "mutation succeeded", "operation", m.Name, "invalidated", n)
	return out, nil
}
