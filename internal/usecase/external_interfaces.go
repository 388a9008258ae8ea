//go:generate mockgen -source=$GOFILE -destination=mock_usecase/mock_external_interfaces.go -package=mock_usecase
package usecase

import (
	"context"
	"io"

	"github.com/na2na-p/eventsync/internal/domain"
)

type ProfileBinding interface {
	GetCallerUserProfile(ctx context.Context) (*domain.UserProfile, error)
	GetUserProfile(ctx context.Context, user domain.Principal) (*domain.UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, profile domain.UserProfile) error
	GetCallerUserRole(ctx context.Context) (domain.UserRole, error)
	IsCallerAdmin(ctx context.Context) (bool, error)
	AssignCallerUserRole(ctx context.Context, user domain.Principal, role domain.UserRole) error
}

type TicketBinding interface {
	GetUserTickets(ctx context.Context, owner domain.Principal) ([]domain.Ticket, error)
	GetTicket(ctx context.Context, id domain.ID) (*domain.Ticket, error)
	CreateTicket(ctx context.Context, ticket domain.Ticket) error
	ValidateTicket(ctx context.Context, id domain.ID) (bool, error)
	RefundTicket(ctx context.Context, id domain.ID) error
}

type FavoriteBinding interface {
	GetFavorites(ctx context.Context) ([]domain.ID, error)
	AddFavorite(ctx context.Context, itemID domain.ID) error
	RemoveFavorite(ctx context.Context, itemID domain.ID) error
}

type AnnouncementBinding interface {
	GetAnnouncements(ctx context.Context) ([]domain.Announcement, error)
	CreateAnnouncement(ctx context.Context, title, message string, priority domain.AnnouncementPriority) (domain.ID, error)
	DeleteAnnouncement(ctx context.Context, id domain.ID) error
}

type PhotoBinding interface {
	GetPhotoPosts(ctx context.Context) ([]domain.PhotoPost, error)
	UploadPhoto(ctx context.Context, imageURL, caption string) (domain.ID, error)
	DeletePhoto(ctx context.Context, id domain.ID) error
}

type WalletBinding interface {
	GetBalance(ctx context.Context, user domain.Principal) (int64, error)
	GetTransactions(ctx context.Context, user domain.Principal) ([]domain.WalletTransaction, error)
	RecordTransaction(ctx context.Context, user domain.Principal, amount int64, description string) (domain.ID, error)
	UpdateBalance(ctx context.Context, user domain.Principal, amount int64) error
}

type ContestBinding interface {
	GetContestEntries(ctx context.Context) ([]domain.ContestEntry, error)
	VoteContestEntry(ctx context.Context, entryID domain.ID) error
	CreateContestEntry(ctx context.Context, entry domain.ContestEntry) error
}

type QuoteBinding interface {
	GetQuoteRequestsForUser(ctx context.Context) ([]domain.QuoteRequest, error)
	SendQuoteRequest(ctx context.Context, to domain.Principal, message string) (domain.ID, error)
}

// RemoteBinding は認証済みのバックエンド呼び出し一式です
type RemoteBinding interface {
	ProfileBinding
	TicketBinding
	FavoriteBinding
	AnnouncementBinding
	PhotoBinding
	WalletBinding
	ContestBinding
	QuoteBinding
}

// BindingFactory はログイン中の利用者の資格情報でRemoteBindingを作ります
type BindingFactory interface {
	Bind(user *domain.UserInfo) (RemoteBinding, error)
}

// PhotoStorage は投稿画像を保存し、参照用のURLを返します
type PhotoStorage interface {
	PutPhoto(ctx context.Context, body io.Reader, size int64, contentType string) (string, error)
}
