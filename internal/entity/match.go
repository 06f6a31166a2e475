package entity

import "time"

const (
	EventMatchStarted   = "match_started"
	EventMatchFinished  = "match_finished"
	EventMatchAbandoned = "match_abandoned"
)

// MatchRecord - a finished session as kept in the match history.
type MatchRecord struct {
	ID         string    `json:"id"`
	PlayerX    int64     `json:"player_x"`
	PlayerO    int64     `json:"player_o"`
	Outcome    string    `json:"outcome"`
	Board      Board     `json:"board"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewMatchRecord(session *Session, finishedAt time.Time) *MatchRecord {
	return &MatchRecord{
		ID:         session.ID,
		PlayerX:    session.PlayerX,
		PlayerO:    session.PlayerO,
		Outcome:    session.Outcome.Message(),
		Board:      session.Board,
		StartedAt:  session.StartedAt,
		FinishedAt: finishedAt,
	}
}

type MatchEvent struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	PlayerX   int64     `json:"player_x"`
	PlayerO   int64     `json:"player_o"`
	Outcome   string    `json:"outcome,omitempty"`
	At        time.Time `json:"at"`
}

func NewMatchEvent(eventType string, session *Session, at time.Time) MatchEvent {
	return MatchEvent{
		Type:      eventType,
		SessionID: session.ID,
		PlayerX:   session.PlayerX,
		PlayerO:   session.PlayerO,
		Outcome:   session.Outcome.Message(),
		At:        at,
	}
}
