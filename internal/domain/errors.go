package domain

import "errors"

var (
	ErrNotFound                    = errors.New("not found")
	ErrEmptyPrincipal              = errors.New("principal cannot be empty")
	ErrEmptyToken                  = errors.New("token cannot be empty")
	ErrUnknownTicketStatus         = errors.New("unknown ticket status")
	ErrUnknownUserRole             = errors.New("unknown user role")
	ErrUnknownAnnouncementPriority = errors.New("unknown announcement priority")
	ErrInvalidProfile              = errors.New("invalid user profile")
)
