package query

import (
	"encoding/json"
	"slices"
)

// Name はクエリの種類を表します。無効化対象の指定にも使います
type Name string

// Key はクエリ名と0個以上のスコープ用パラメータの組です。
// 名前とすべてのパラメータが値として等しいとき、2つのKeyは等しくなります
type Key struct {
	name   Name
	params []string
}

func NewKey(name Name, params ...string) Key {
	return Key{
		name:   name,
		params: slices.Clone(params),
	}
}

func (k Key) Name() Name {
	return k.name
}

func (k Key) Params() []string {
	return slices.Clone(k.params)
}

func (k Key) Equal(other Key) bool {
	return k.name == other.name && slices.Equal(k.params, other.params)
}

// Matches は名前だけで比較します。パラメータは無視されます
func (k Key) Matches(name Name) bool {
	return k.name == name
}

// String はマップのキーとして使う正規化済みの表現を返します
func (k Key) String() string {
	parts := make([]string, 0, len(k.params)+1)
	parts = append(parts, string(k.name))
	parts = append(parts, k.params...)
	b, err := json.Marshal(parts)
	if err != nil {
		return string(k.name)
	}
	return string(b)
}
