package backend

import (
	"context"
	"fmt"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/usecase"
)

var _ usecase.RemoteBinding = (*Client)(nil)

type userArgs struct {
	User domain.Principal `json:"user"`
}

type idArgs struct {
	ID domain.ID `json:"id"`
}

type idResult struct {
	ID domain.ID `json:"id"`
}

func (c *Client) callID(ctx context.Context, method string, args any) (domain.ID, error) {
	var out idResult
	if err := c.call(ctx, method, args, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// プロフィール

func (c *Client) GetCallerUserProfile(ctx context.Context) (*domain.UserProfile, error) {
	var out *domain.UserProfile
	if err := c.call(ctx, "getCallerUserProfile", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUserProfile(ctx context.Context, user domain.Principal) (*domain.UserProfile, error) {
	var out *domain.UserProfile
	if err := c.call(ctx, "getUserProfile", userArgs{User: user}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SaveCallerUserProfile(ctx context.Context, profile domain.UserProfile) error {
	return c.call(ctx, "saveCallerUserProfile", struct {
		Profile domain.UserProfile `json:"profile"`
	}{Profile: profile}, nil)
}

func (c *Client) GetCallerUserRole(ctx context.Context) (domain.UserRole, error) {
	var out domain.UserRole
	if err := c.call(ctx, "getCallerUserRole", nil, &out); err != nil {
		return domain.UserRole{}, err
	}
	if out.IsZero() {
		return domain.UserRole{}, fmt.Errorf("%w: getCallerUserRole: empty role", ErrDecodeResponse)
	}
	return out, nil
}

func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	var out bool
	if err := c.call(ctx, "isCallerAdmin", nil, &out); err != nil {
		return false, err
	}
	return out, nil
}

func (c *Client) AssignCallerUserRole(ctx context.Context, user domain.Principal, role domain.UserRole) error {
	return c.call(ctx, "assignCallerUserRole", struct {
		User domain.Principal `json:"user"`
		Role domain.UserRole  `json:"role"`
	}{User: user, Role: role}, nil)
}

// チケット

func (c *Client) GetUserTickets(ctx context.Context, owner domain.Principal) ([]domain.Ticket, error) {
	return callList[domain.Ticket](ctx, c, "getUserTickets", struct {
		Owner domain.Principal `json:"owner"`
	}{Owner: owner})
}

func (c *Client) GetTicket(ctx context.Context, id domain.ID) (*domain.Ticket, error) {
	var out *domain.Ticket
	if err := c.call(ctx, "getTicket", idArgs{ID: id}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("ticket %s: %w", id, domain.ErrNotFound)
	}
	return out, nil
}

func (c *Client) CreateTicket(ctx context.Context, ticket domain.Ticket) error {
	return c.call(ctx, "createTicket", struct {
		Ticket domain.Ticket `json:"ticket"`
	}{Ticket: ticket}, nil)
}

func (c *Client) ValidateTicket(ctx context.Context, id domain.ID) (bool, error) {
	var out bool
	if err := c.call(ctx, "validateTicket", idArgs{ID: id}, &out); err != nil {
		return false, err
	}
	return out, nil
}

func (c *Client) RefundTicket(ctx context.Context, id domain.ID) error {
	return c.call(ctx, "refundTicket", idArgs{ID: id}, nil)
}

// お気に入り

type itemArgs struct {
	ItemID domain.ID `json:"itemId"`
}

func (c *Client) GetFavorites(ctx context.Context) ([]domain.ID, error) {
	return callList[domain.ID](ctx, c, "getFavorites", nil)
}

func (c *Client) AddFavorite(ctx context.Context, itemID domain.ID) error {
	return c.call(ctx, "addFavorite", itemArgs{ItemID: itemID}, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, itemID domain.ID) error {
	return c.call(ctx, "removeFavorite", itemArgs{ItemID: itemID}, nil)
}

// お知らせ

func (c *Client) GetAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	return callList[domain.Announcement](ctx, c, "getAnnouncements", nil)
}

func (c *Client) CreateAnnouncement(ctx context.Context, title, message string, priority domain.AnnouncementPriority) (domain.ID, error) {
	return c.callID(ctx, "createAnnouncement", struct {
		Title    string                      `json:"title"`
		Message  string                      `json:"message"`
		Priority domain.AnnouncementPriority `json:"priority"`
	}{Title: title, Message: message, Priority: priority})
}

func (c *Client) DeleteAnnouncement(ctx context.Context, id domain.ID) error {
	return c.call(ctx, "deleteAnnouncement", idArgs{ID: id}, nil)
}

// 写真

func (c *Client) GetPhotoPosts(ctx context.Context) ([]domain.PhotoPost, error) {
	return callList[domain.PhotoPost](ctx, c, "getPhotoPosts", nil)
}

func (c *Client) UploadPhoto(ctx context.Context, imageURL, caption string) (domain.ID, error) {
	return c.callID(ctx, "uploadPhoto", struct {
		ImageURL string `json:"imageUrl"`
		Caption  string `json:"caption"`
	}{ImageURL: imageURL, Caption: caption})
}

func (c *Client) DeletePhoto(ctx context.Context, id domain.ID) error {
	return c.call(ctx, "deletePhoto", idArgs{ID: id}, nil)
}

// ウォレット

func (c *Client) GetBalance(ctx context.Context, user domain.Principal) (int64, error) {
	var out int64
	if err := c.call(ctx, "getBalance", userArgs{User: user}, &out); err != nil {
		return 0, err
	}
	return out, nil
}

func (c *Client) GetTransactions(ctx context.Context, user domain.Principal) ([]domain.WalletTransaction, error) {
	return callList[domain.WalletTransaction](ctx, c, "getTransactions", userArgs{User: user})
}

func (c *Client) RecordTransaction(ctx context.Context, user domain.Principal, amount int64, description string) (domain.ID, error) {
	return c.callID(ctx, "recordTransaction", struct {
		User        domain.Principal `json:"user"`
		Amount      int64            `json:"amount"`
		Description string           `json:"description"`
	}{User: user, Amount: amount, Description: description})
}

func (c *Client) UpdateBalance(ctx context.Context, user domain.Principal, amount int64) error {
	return c.call(ctx, "updateBalance", struct {
		User   domain.Principal `json:"user"`
		Amount int64            `json:"amount"`
	}{User: user, Amount: amount}, nil)
}

// コンテスト

func (c *Client) GetContestEntries(ctx context.Context) ([]domain.ContestEntry, error) {
	return callList[domain.ContestEntry](ctx, c, "getContestEntries", nil)
}

func (c *Client) VoteContestEntry(ctx context.Context, entryID domain.ID) error {
	return c.call(ctx, "voteContestEntry", struct {
		EntryID domain.ID `json:"entryId"`
	}{EntryID: entryID}, nil)
}

func (c *Client) CreateContestEntry(ctx context.Context, entry domain.ContestEntry) error {
	return c.call(ctx, "createContestEntry", struct {
		Entry domain.ContestEntry `json:"entry"`
	}{Entry: entry}, nil)
}

// 見積もり依頼

func (c *Client) GetQuoteRequestsForUser(ctx context.Context) ([]domain.QuoteRequest, error) {
	return callList[domain.QuoteRequest](ctx, c, "getQuoteRequestsForUser", nil)
}

func (c *Client) SendQuoteRequest(ctx context.Context, to domain.Principal, message string) (domain.ID, error) {
	return c.callID(ctx, "sendQuoteRequest", struct {
		To      domain.Principal `json:"to"`
		Message string           `json:"message"`
	}{To: to, Message: message})
}
