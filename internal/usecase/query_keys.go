package usecase

import (
	"time"

	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/query"
)

const (
	QueryCallerProfile  query.Name = "currentUserProfile"
	QueryUserProfile    query.Name = "userProfile"
	QueryCallerRole     query.Name = "callerUserRole"
	QueryCallerIsAdmin  query.Name = "isCallerAdmin"
	QueryUserTickets    query.Name = "userTickets"
	QueryTicket         query.Name = "ticket"
	QueryFavorites      query.Name = "favorites"
	QueryAnnouncements  query.Name = "announcements"
	QueryPhotoPosts     query.Name = "photoPosts"
	QueryBalance        query.Name = "balance"
	QueryTransactions   query.Name = "transactions"
	QueryContestEntries query.Name = "contestEntries"
	QueryQuoteRequests  query.Name = "quoteRequests"
)

// DefaultContestPollInterval はコンテスト投稿一覧のポーリング間隔です
const DefaultContestPollInterval = 5000 * time.Millisecond

// scopedKey はPrincipalをパラメータに含むKeyを作ります。未ログインならパラメータなしになります
func scopedKey(name query.Name, p domain.Principal, ok bool) query.Key {
	if !ok {
		return query.NewKey(name)
	}
	return query.NewKey(name, p.String())
}

func UserTicketsKey(p domain.Principal) query.Key {
	return scopedKey(QueryUserTickets, p, !p.IsZero())
}

func BalanceKey(p domain.Principal) query.Key {
	return scopedKey(QueryBalance, p, !p.IsZero())
}

func TransactionsKey(p domain.Principal) query.Key {
	return scopedKey(QueryTransactions, p, !p.IsZero())
}

func TicketKey(id domain.ID) query.Key {
	return query.NewKey(QueryTicket, id.String())
}

func UserProfileKey(p domain.Principal) query.Key {
	return query.NewKey(QueryUserProfile, p.String())
}
