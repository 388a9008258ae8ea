package domain

import (
	"fmt"
	"strings"
)

// UserProfile は呼び出し元のプロフィールです。ロール固有の項目は任意です
type UserProfile struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	Balance      int64    `json:"balance"`
	Interests    []string `json:"interests"`
	PortfolioURL *string  `json:"portfolioUrl,omitempty"`
	Empresa      *string  `json:"empresa,omitempty"`
	CnpjCpf      *string  `json:"cnpjCpf,omitempty"`
}

// Validate はプロフィール入力の形だけを検査します。業務ルールはバックエンドの責務です
func (p UserProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidProfile)
	}
	if p.Role.IsZero() {
		return fmt.Errorf("%w: role is required", ErrInvalidProfile)
	}
	return nil
}

// StripRoleFields はロールに合わない項目と空の項目を落とした写しを返します。
// cnpjCpfとempresaは主催者、portfolioUrlは出展者だけが持ちます
func (p UserProfile) StripRoleFields() UserProfile {
	keep := func(allowed bool, v *string) *string {
		if !allowed || v == nil || strings.TrimSpace(*v) == "" {
			return nil
		}
		return v
	}
	p.CnpjCpf = keep(p.Role == UserRoleAdmin, p.CnpjCpf)
	p.Empresa = keep(p.Role == UserRoleAdmin, p.Empresa)
	p.PortfolioURL = keep(p.Role == UserRoleUser, p.PortfolioURL)
	return p
}
