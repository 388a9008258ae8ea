package usecase

import (
	"context"
	"fmt"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/query"
)

type ProfileUseCase struct {
	session *Session
}

func NewProfileUseCase(s *Session) *ProfileUseCase {
	return &ProfileUseCase{session: s}
}

func (uc *ProfileUseCase) callerProfileQuery() query.Query[*domain.UserProfile] {
	q := bindingQuery(uc.session, query.NewKey(QueryCallerProfile), func(ctx context.Context, b RemoteBinding) (*domain.UserProfile, error) {
		return b.GetCallerUserProfile(ctx)
	})
	q.Retry = query.NoRetry
	return q
}

// CallerProfile はログイン中の利用者のプロフィールを返します。未登録ならDataはnilです
func (uc *ProfileUseCase) CallerProfile(ctx context.Context) query.Result[*domain.UserProfile] {
	return query.Fetch(ctx, uc.session.Client(), uc.callerProfileQuery())
}

// NeedsProfileSetup はプロフィール取得が完了し、かつ未登録だった場合にtrueを返します
func (uc *ProfileUseCase) NeedsProfileSetup(ctx context.Context) bool {
	if _, ok := uc.session.Principal(); !ok {
		return false
	}
	r := uc.CallerProfile(ctx)
	return !r.IsLoading && r.IsFetched && r.Err == nil && r.Data == nil
}

func (uc *ProfileUseCase) UserProfile(ctx context.Context, user domain.Principal) query.Result[*domain.UserProfile] {
	return query.Fetch(ctx, uc.session.Client(), bindingQuery(uc.session, UserProfileKey(user), func(ctx context.Context, b RemoteBinding) (*domain.UserProfile, error) {
		return b.GetUserProfile(ctx, user)
	}))
}

func (uc *ProfileUseCase) CallerRole(ctx context.Context) query.Result[domain.UserRole] {
	return query.Fetch(ctx, uc.session.Client(), bindingQuery(uc.session, query.NewKey(QueryCallerRole), func(ctx context.Context, b RemoteBinding) (domain.UserRole, error) {
		return b.GetCallerUserRole(ctx)
	}))
}

func (uc *ProfileUseCase) IsCallerAdmin(ctx context.Context) query.Result[bool] {
	return query.Fetch(ctx, uc.session.Client(), bindingQuery(uc.session, query.NewKey(QueryCallerIsAdmin), func(ctx context.Context, b RemoteBinding) (bool, error) {
		return b.IsCallerAdmin(ctx)
	}))
}

// SaveCallerProfile はロールに合わない項目を落とし、形の検査に通ったプロフィールだけを送信します
func (uc *ProfileUseCase) SaveCallerProfile(ctx context.Context, profile domain.UserProfile) error {
	profile = profile.StripRoleFields()
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	_, err := mutate(ctx, uc.session, OperationSaveCallerProfile, profile, func(ctx context.Context, b RemoteBinding, p domain.UserProfile) (struct{}, error) {
		return struct{}{}, b.SaveCallerUserProfile(ctx, p)
	})
	return err
}

type RoleAssignment struct {
	User domain.Principal
	Role domain.UserRole
}

func (uc *ProfileUseCase) AssignRole(ctx context.Context, in RoleAssignment) error {
	if in.User.IsZero() || in.Role.IsZero() {
		return fmt.Errorf("%w: user and role are required", ErrInvalidInput)
	}
	_, err := mutate(ctx, uc.session, OperationAssignRole, in, func(ctx context.Context, b RemoteBinding, in RoleAssignment) (struct{}, error) {
		return struct{}{}, b.AssignCallerUserRole(ctx, in.User, in.Role)
	})
	return err
}
