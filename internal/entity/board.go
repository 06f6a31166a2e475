package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
)

type Symbol string

const (
	SymbolX   Symbol = "X"
	SymbolO   Symbol = "O"
	EmptyCell Symbol = ""
)

const BoardSize = 9

// WinCombos - three rows, three columns and two diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsPlayer reports whether the symbol belongs to one of the two players.
func (that Symbol) IsPlayer() bool {
	return that == SymbolX || that == SymbolO
}

// Next returns the symbol that moves after this one.
func (that Symbol) Next() Symbol {
	switch that {
	case SymbolX:
		return SymbolO
	case SymbolO:
		return SymbolX
	default:
		return EmptyCell
	}
}

type Board [BoardSize]Symbol

// ParseBoard - converts wire cells into a Board, rejecting anything but "", "X" and "O".
func ParseBoard(cells []string) (Board, error) {
	var board Board

	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, BoardSize, len(cells))
	}

	for i, cell := range cells {
		symbol := Symbol(cell)
		if symbol != EmptyCell && !symbol.IsPlayer() {
			return board, fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidBoard, i, cell)
		}

		board[i] = symbol
	}

	return board, nil
}

type OutcomeKind int

const (
	OutcomeContinue OutcomeKind = iota
	OutcomeWin
	OutcomeDraw
	OutcomeAbandoned
)

type Outcome struct {
	Kind   OutcomeKind
	Winner Symbol
}

// IsTerminal reports whether the outcome ends the game.
func (that Outcome) IsTerminal() bool {
	return that.Kind != OutcomeContinue
}

// Message - text carried by the result message: "X win", "O win" or "Draw".
func (that Outcome) Message() string {
	switch that.Kind {
	case OutcomeWin:
		return string(that.Winner) + " win"
	case OutcomeDraw:
		return "Draw"
	case OutcomeAbandoned:
		return "Abandoned"
	default:
		return ""
	}
}

// Classify - evaluates the board. A winning triple takes precedence over a full board.
func Classify(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Outcome{Kind: OutcomeWin, Winner: a}
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if cell == EmptyCell {
			return Outcome{Kind: OutcomeContinue}
		}
	}

	return Outcome{Kind: OutcomeDraw}
}
