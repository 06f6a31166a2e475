package websocket

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("Move", func(t *testing.T) {
		// Given: a move frame
		data := []byte(`{"method":"move","board":["X","","","","","","","",""],"symbol":"X","turn":"O"}`)

		// When: it is decoded
		msg, err := Decode(data)

		// Then: a typed move comes out
		require.NoError(t, err)
		assert.Equal(t, entity.Move{
			Board:  entity.Board{entity.SymbolX},
			Symbol: entity.SymbolX,
			Turn:   entity.SymbolO,
		}, msg)
	})

	t.Run("Move with field instead of board", func(t *testing.T) {
		data := []byte(`{"method":"move","field":["","O","","","","","","",""],"symbol":"O"}`)

		msg, err := Decode(data)

		require.NoError(t, err)
		move, ok := msg.(entity.Move)
		require.True(t, ok)
		assert.Equal(t, entity.SymbolO, move.Board[1])
	})

	t.Run("Opponent move", func(t *testing.T) {
		data := []byte(`{"method":"opponentMove","board":["","","","","X","","","",""],"position":4,"turn":"O"}`)

		msg, err := Decode(data)

		require.NoError(t, err)
		assert.Equal(t, entity.OpponentMove{
			Board:    entity.Board{4: entity.SymbolX},
			Position: 4,
			Turn:     entity.SymbolO,
		}, msg)
	})

	malformed := map[string]string{
		"not json":              `{"method":`,
		"unknown method":        `{"method":"chat"}`,
		"missing board":         `{"method":"move","symbol":"X"}`,
		"short board":           `{"method":"move","board":["X"],"symbol":"X"}`,
		"bad cell":              `{"method":"move","board":["Q","","","","","","","",""],"symbol":"X"}`,
		"bad symbol":            `{"method":"move","board":["","","","","","","","",""],"symbol":"Z"}`,
		"missing position":      `{"method":"opponentMove","board":["","","","","","","","",""],"turn":"X"}`,
		"position out of range": `{"method":"opponentMove","board":["","","","","","","","",""],"position":9,"turn":"X"}`,
		"relay without turn":    `{"method":"opponentMove","board":["","","","","","","","",""],"position":1}`,
	}

	for name, data := range malformed {
		t.Run("Malformed: "+name, func(t *testing.T) {
			_, err := Decode([]byte(data))

			require.ErrorIs(t, err, apperror.ErrMalformedMessage)
		})
	}
}
