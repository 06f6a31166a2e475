package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestClassify(t *testing.T) {
	t.Run("Empty board continues", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: the board is classified
		outcome := Classify(board)

		// Then: the game continues
		assert.Equal(t, OutcomeContinue, outcome.Kind)
		assert.False(t, outcome.IsTerminal())
	})

	t.Run("Top row of X wins", func(t *testing.T) {
		// Given: X fills the top row
		board := Board{SymbolX, SymbolX, SymbolX}

		// When: the board is classified
		outcome := Classify(board)

		// Then: X wins
		assert.Equal(t, Outcome{Kind: OutcomeWin, Winner: SymbolX}, outcome)
		assert.Equal(t, "X win", outcome.Message())
	})

	t.Run("Full board without a triple is a draw", func(t *testing.T) {
		// Given: a full board with no winning triple
		board := Board{SymbolX, SymbolO, SymbolX, SymbolO, SymbolX, SymbolO, SymbolO, SymbolX, SymbolO}

		// When: the board is classified
		outcome := Classify(board)

		// Then: it is a draw
		assert.Equal(t, OutcomeDraw, outcome.Kind)
		assert.Equal(t, "Draw", outcome.Message())
	})

	t.Run("Full board with a triple is a win", func(t *testing.T) {
		// Given: a full board where O holds the diagonal
		board := Board{SymbolO, SymbolX, SymbolX, SymbolX, SymbolO, SymbolO, SymbolX, SymbolO, SymbolO}

		// When: the board is classified
		outcome := Classify(board)

		// Then: O wins, never a draw
		assert.Equal(t, Outcome{Kind: OutcomeWin, Winner: SymbolO}, outcome)
	})
}

func TestClassify_EveryTripleWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		combo := WinCombos[rapid.IntRange(0, len(WinCombos)-1).Draw(t, "combo")]
		symbol := rapid.SampledFrom([]Symbol{SymbolX, SymbolO}).Draw(t, "symbol")

		var board Board
		for _, cell := range combo {
			board[cell] = symbol
		}

		outcome := Classify(board)
		if outcome.Kind != OutcomeWin || outcome.Winner != symbol {
			t.Fatalf("expected %s to win on %v, got %+v", symbol, combo, outcome)
		}
	})
}

func TestClassify_FullBoards(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var board Board
		for i := range board {
			board[i] = rapid.SampledFrom([]Symbol{SymbolX, SymbolO}).Draw(t, "cell")
		}

		outcome := Classify(board)

		if hasTriple(board) {
			if outcome.Kind != OutcomeWin {
				t.Fatalf("full board %v with a triple classified as %+v", board, outcome)
			}
			return
		}

		if outcome.Kind != OutcomeDraw {
			t.Fatalf("full board %v without a triple classified as %+v", board, outcome)
		}
	})
}

func hasTriple(board Board) bool {
	lines := [][3]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8}, {2, 4, 6},
	}

	for _, line := range lines {
		if board[line[0]] != EmptyCell && board[line[0]] == board[line[1]] && board[line[1]] == board[line[2]] {
			return true
		}
	}

	return false
}

func TestParseBoard(t *testing.T) {
	t.Run("Valid cells", func(t *testing.T) {
		// Given: nine valid cells
		cells := []string{"X", "", "O", "", "", "", "", "", ""}

		// When: parsed
		board, err := ParseBoard(cells)

		// Then: the board mirrors the cells
		require.NoError(t, err)
		assert.Equal(t, Board{SymbolX, EmptyCell, SymbolO}, board)
	})

	t.Run("Wrong length", func(t *testing.T) {
		// When: parsing eight cells
		_, err := ParseBoard(make([]string, 8))

		// Then: the board is rejected
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		// When: a cell holds an unknown symbol
		_, err := ParseBoard([]string{"Z", "", "", "", "", "", "", "", ""})

		// Then: the board is rejected
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})
}

func TestSymbol_Next(t *testing.T) {
	assert.Equal(t, SymbolO, SymbolX.Next())
	assert.Equal(t, SymbolX, SymbolO.Next())
	assert.Equal(t, EmptyCell, EmptyCell.Next())
}
