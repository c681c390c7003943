package models

import "fmt"

// Invitation is a referral by an existing member. Tagged is a manual flag
// meaning the friend converted; no workflow enforces the transition.
type Invitation struct {
	ID          int64   `json:"id" db:"id"`
	ClientID    int64   `json:"client_id" db:"client_id"`
	FriendName  string  `json:"friend_name" db:"friend_name"`
	FriendPhone *string `json:"friend_phone,omitempty" db:"friend_phone"`
	InvitedAt   string  `json:"invited_at" db:"invited_at"`
	Tagged      bool    `json:"tagged" db:"tagged"`
}

// InvitationStats aggregates referral outcomes.
type InvitationStats struct {
	Total  int `json:"total"`
	Tagged int `json:"tagged"`
}

// Conversion renders the tagged/total ratio as the literal "N/M" form the
// dashboard shows, "0/0" when there are no invitations.
func (s InvitationStats) Conversion() string {
	return fmt.Sprintf("%d/%d", s.Tagged, s.Total)
}
