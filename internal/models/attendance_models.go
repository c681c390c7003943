package models

// CheckIn is a single attendance event. Append-only: the system never
// updates or deletes a check-in. The timestamp is assigned by the store.
type CheckIn struct {
	ID          int64  `json:"id" db:"id"`
	ClientID    int64  `json:"client_id" db:"client_id"`
	CheckinTime string `json:"checkin_time" db:"checkin_time"` // YYYY-MM-DD HH:MM:SS
	CheckedInBy *int64 `json:"checked_in_by,omitempty" db:"checked_in_by"`
}

// CheckInWithMember is the by-date listing projection, joined with member identity.
type CheckInWithMember struct {
	ID          int64  `json:"id"`
	ClientCode  string `json:"client_code"`
	Name        string `json:"name"`
	CheckinTime string `json:"checkin_time"`
}
