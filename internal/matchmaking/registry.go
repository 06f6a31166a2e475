// Package matchmaking holds the connection registry, the waiting queue, the opponent relations and the room
// membership. None of the types lock; the coordinator that owns them serializes every access.
package matchmaking

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

// Conn is the outbound side of a live client connection. Send must not block.
type Conn interface {
	Send(msg entity.Outbound) bool
}

type Client struct {
	ID     int64
	RoomID string
	Conn   Conn
}

type Registry struct {
	clients map[int64]*Client
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[int64]*Client),
	}
}

func (that *Registry) Register(id int64, roomID string, conn Conn) error {
	if _, ok := that.clients[id]; ok {
		return fmt.Errorf("%w: %d", apperror.ErrDuplicateIdentifier, id)
	}

	that.clients[id] = &Client{ID: id, RoomID: roomID, Conn: conn}

	return nil
}

// Unregister removes the client and returns it, or false when it was not registered.
func (that *Registry) Unregister(id int64) (*Client, bool) {
	client, ok := that.clients[id]
	if !ok {
		return nil, false
	}

	delete(that.clients, id)

	return client, true
}

// Send delivers msg to a registered client. Unknown ids are ignored.
func (that *Registry) Send(id int64, msg entity.Outbound) bool {
	client, ok := that.clients[id]
	if !ok {
		return false
	}

	return client.Conn.Send(msg)
}

func (that *Registry) Len() int {
	return len(that.clients)
}
