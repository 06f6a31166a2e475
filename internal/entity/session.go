package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
)

type SessionState int

const (
	StateAwaitingJoinAck SessionState = iota
	StateInProgress
	StateFinished
)

func (that SessionState) String() string {
	switch that {
	case StateAwaitingJoinAck:
		return "awaiting_join_ack"
	case StateInProgress:
		return "in_progress"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("unknown(%d)", int(that))
	}
}

// Session is a single match between two paired clients. The first paired client plays X.
type Session struct {
	ID        string
	PlayerX   int64
	PlayerO   int64
	State     SessionState
	Turn      Symbol
	Board     Board
	Outcome   Outcome
	StartedAt time.Time
}

func NewSession(id string, first, second int64, startedAt time.Time) *Session {
	return &Session{
		ID:        id,
		PlayerX:   first,
		PlayerO:   second,
		State:     StateAwaitingJoinAck,
		StartedAt: startedAt,
	}
}

// Start moves the session into play once both peers were told their symbols.
func (that *Session) Start() {
	if that.State != StateAwaitingJoinAck {
		return
	}

	that.State = StateInProgress
	that.Turn = SymbolX
}

func (that *Session) SymbolOf(clientID int64) (Symbol, bool) {
	switch clientID {
	case that.PlayerX:
		return SymbolX, true
	case that.PlayerO:
		return SymbolO, true
	default:
		return EmptyCell, false
	}
}

func (that *Session) IsFinished() bool {
	return that.State == StateFinished
}

// ApplyMove - accepts the board submitted by the turn holder and classifies it.
func (that *Session) ApplyMove(clientID int64, symbol Symbol, board Board) (Outcome, error) {
	switch that.State {
	case StateFinished:
		return that.Outcome, apperror.ErrGameFinished
	case StateAwaitingJoinAck:
		return Outcome{}, fmt.Errorf("%w: session %s has not started", apperror.ErrOutOfTurnMove, that.ID)
	}

	mover, ok := that.SymbolOf(clientID)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: client %d is not part of session %s", apperror.ErrUnknownOpponent, clientID, that.ID)
	}

	if mover != symbol || mover != that.Turn {
		return Outcome{}, fmt.Errorf("%w: turn is %s, got %s from %s", apperror.ErrOutOfTurnMove, that.Turn, symbol, mover)
	}

	outcome := Classify(board)
	that.Board = board

	if !outcome.IsTerminal() {
		that.Turn = that.Turn.Next()
		return outcome, nil
	}

	that.State = StateFinished
	that.Outcome = outcome
	that.Turn = EmptyCell

	return outcome, nil
}

// Abandon finishes a session whose peer disconnected. A session that already has a result keeps it.
func (that *Session) Abandon() {
	if that.State == StateFinished {
		return
	}

	that.State = StateFinished
	that.Outcome = Outcome{Kind: OutcomeAbandoned}
	that.Turn = EmptyCell
}
