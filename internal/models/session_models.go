package models

// TrainingSession is one booked session. Create and list only; no edit or
// delete exists for sessions.
type TrainingSession struct {
	ID          int64  `json:"id" db:"id"`
	ClientID    int64  `json:"client_id" db:"client_id"`
	TrainerName string `json:"trainer_name" db:"trainer_name"`
	SessionDate string `json:"session_date" db:"session_date"` // YYYY-MM-DD
	SessionType string `json:"session_type" db:"session_type"` // e.g. "Private", "Group"
	IsGroup     bool   `json:"is_group" db:"is_group"`
	CreatedAt   string `json:"created_at" db:"created_at"`
}
