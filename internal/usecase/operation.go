package usecase

import (
	"fmt"
	"slices"

	"github.com/na2na-p/eventsync/internal/query"
)

// Operation はバックエンドへの書き込みの種類です
type Operation struct {
	value string
}

var (
	OperationSaveCallerProfile  = Operation{value: "save-caller-profile"}
	OperationAssignRole         = Operation{value: "assign-role"}
	OperationCreateTicket       = Operation{value: "create-ticket"}
	OperationValidateTicket     = Operation{value: "validate-ticket"}
	OperationRefundTicket       = Operation{value: "refund-ticket"}
	OperationAddFavorite        = Operation{value: "add-favorite"}
	OperationRemoveFavorite     = Operation{value: "remove-favorite"}
	OperationCreateAnnouncement = Operation{value: "create-announcement"}
	OperationDeleteAnnouncement = Operation{value: "delete-announcement"}
	OperationUploadPhoto        = Operation{value: "upload-photo"}
	OperationDeletePhoto        = Operation{value: "delete-photo"}
	OperationVoteContestEntry   = Operation{value: "vote-contest-entry"}
	OperationCreateContestEntry = Operation{value: "create-contest-entry"}
	OperationSendQuoteRequest   = Operation{value: "send-quote-request"}
	OperationRecordTransaction  = Operation{value: "record-transaction"}
	OperationUpdateBalance      = Operation{value: "update-balance"}
)

// invalidationTargets は書き込み成功後に古くなるクエリ名の対応表です
var invalidationTargets = map[Operation][]query.Name{
	OperationSaveCallerProfile:  {QueryCallerProfile},
	OperationAssignRole:         {QueryCallerRole, QueryCallerIsAdmin},
	OperationCreateTicket:       {QueryUserTickets},
	OperationValidateTicket:     {QueryUserTickets},
	OperationRefundTicket:       {QueryUserTickets},
	OperationAddFavorite:        {QueryFavorites},
	OperationRemoveFavorite:     {QueryFavorites},
	OperationCreateAnnouncement: {QueryAnnouncements},
	OperationDeleteAnnouncement: {QueryAnnouncements},
	OperationUploadPhoto:        {QueryPhotoPosts},
	OperationDeletePhoto:        {QueryPhotoPosts},
	OperationVoteContestEntry:   {QueryContestEntries},
	OperationCreateContestEntry: {QueryContestEntries},
	OperationSendQuoteRequest:   {QueryQuoteRequests},
	OperationRecordTransaction:  {QueryBalance, QueryTransactions},
	OperationUpdateBalance:      {QueryBalance},
}

func Operations() []Operation {
	return []Operation{
		OperationSaveCallerProfile,
		OperationAssignRole,
		OperationCreateTicket,
		OperationValidateTicket,
		OperationRefundTicket,
		OperationAddFavorite,
		OperationRemoveFavorite,
		OperationCreateAnnouncement,
		OperationDeleteAnnouncement,
		OperationUploadPhoto,
		OperationDeletePhoto,
		OperationVoteContestEntry,
		OperationCreateContestEntry,
		OperationSendQuoteRequest,
		OperationRecordTransaction,
		OperationUpdateBalance,
	}
}

func ParseOperation(s string) (Operation, error) {
	for _, op := range Operations() {
		if op.value == s {
			return op, nil
		}
	}
	return Operation{}, fmt.Errorf("%w: unknown operation %q", ErrInvalidInput, s)
}

func (o Operation) String() string {
	return o.value
}

// Targets は書き込み成功後に無効化するクエリ名を返します
func (o Operation) Targets() []query.Name {
	return slices.Clone(invalidationTargets[o])
}
