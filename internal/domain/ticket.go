package domain

type Ticket struct {
	ID     ID           `json:"id"`
	Status TicketStatus `json:"status"`
	Owner  Principal    `json:"owner"`
	Event  string       `json:"event"`
}
