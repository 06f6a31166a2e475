package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

// Message is the raw inbound JSON object. The board may arrive as "board" or "field".
type Message struct {
	Method   string   `json:"method"`
	Board    []string `json:"board,omitempty"`
	Field    []string `json:"field,omitempty"`
	Position *int     `json:"position,omitempty"`
	Symbol   string   `json:"symbol,omitempty"`
	Turn     string   `json:"turn,omitempty"`
}

// Decode turns one text frame into a typed inbound message. Every failure wraps ErrMalformedMessage.
func Decode(data []byte) (entity.Inbound, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedMessage, err)
	}

	switch msg.Method {
	case entity.MethodMove:
		return msg.toMove()
	case entity.MethodOpponentMove:
		return msg.toOpponentMove()
	default:
		return nil, fmt.Errorf("%w: %w %q", apperror.ErrMalformedMessage, apperror.ErrUnknownMethod, msg.Method)
	}
}

func (that *Message) board() (entity.Board, error) {
	cells := that.Board
	if cells == nil {
		cells = that.Field
	}

	if cells == nil {
		return entity.Board{}, fmt.Errorf("%w: board is required", apperror.ErrMalformedMessage)
	}

	board, err := entity.ParseBoard(cells)
	if err != nil {
		return entity.Board{}, fmt.Errorf("%w: %w", apperror.ErrMalformedMessage, err)
	}

	return board, nil
}

func (that *Message) toMove() (entity.Inbound, error) {
	board, err := that.board()
	if err != nil {
		return nil, err
	}

	symbol := entity.Symbol(that.Symbol)
	if !symbol.IsPlayer() {
		return nil, fmt.Errorf("%w: symbol %q", apperror.ErrMalformedMessage, that.Symbol)
	}

	turn := entity.Symbol(that.Turn)
	if turn != entity.EmptyCell && !turn.IsPlayer() {
		return nil, fmt.Errorf("%w: turn %q", apperror.ErrMalformedMessage, that.Turn)
	}

	return entity.Move{Board: board, Symbol: symbol, Turn: turn}, nil
}

func (that *Message) toOpponentMove() (entity.Inbound, error) {
	board, err := that.board()
	if err != nil {
		return nil, err
	}

	if that.Position == nil || *that.Position < 0 || *that.Position >= entity.BoardSize {
		return nil, fmt.Errorf("%w: position must be between 0 and %d", apperror.ErrMalformedMessage, entity.BoardSize-1)
	}

	turn := entity.Symbol(that.Turn)
	if !turn.IsPlayer() {
		return nil, fmt.Errorf("%w: turn %q", apperror.ErrMalformedMessage, that.Turn)
	}

	return entity.OpponentMove{Board: board, Position: *that.Position, Turn: turn}, nil
}
