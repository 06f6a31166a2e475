package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/matchmaking"
)

// DefaultRoom is the only room that performs matchmaking.
const DefaultRoom = "0"

type matchRepo interface {
	Save(ctx context.Context, record *entity.MatchRecord) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event entity.MatchEvent) error
}

type Stats struct {
	Clients  int            `json:"clients"`
	Waiting  int            `json:"waiting"`
	Sessions int            `json:"sessions"`
	Rooms    map[string]int `json:"rooms"`
}

// Coordinator owns the registry, the queue, the relations and the sessions. Every mutation happens under mu,
// so pairing two clients can never interleave with either of them disconnecting.
type Coordinator struct {
	logger *slog.Logger

	matchRepo matchRepo
	publisher eventPublisher

	mu        sync.Mutex
	registry  *matchmaking.Registry
	queue     *matchmaking.Queue
	relations *matchmaking.Relations
	rooms     *matchmaking.Rooms
	sessions  map[int64]*entity.Session

	newID func() string
	now   func() time.Time
}

func NewCoordinator(logger *slog.Logger, matchRepo matchRepo, publisher eventPublisher) *Coordinator {
	return &Coordinator{
		logger: logger.With("component", "coordinator"),

		matchRepo: matchRepo,
		publisher: publisher,

		registry:  matchmaking.NewRegistry(),
		queue:     matchmaking.NewQueue(),
		relations: matchmaking.NewRelations(),
		rooms:     matchmaking.NewRooms(),
		sessions:  make(map[int64]*entity.Session),

		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Connect registers the client and, in the default room, queues it for an opponent.
func (that *Coordinator) Connect(ctx context.Context, clientID int64, roomID string, conn matchmaking.Conn) error {
	log := that.logger.With("method", "Connect", "clientID", clientID, "roomID", roomID)

	event, paired, err := that.admit(clientID, roomID, conn)
	if err != nil {
		return fmt.Errorf("failed to register client: %w", err)
	}

	switch {
	case paired:
		log.Info("clients paired", "sessionID", event.SessionID, "playerX", event.PlayerX, "playerO", event.PlayerO)
		that.publish(ctx, event)
	case roomID != DefaultRoom:
		log.Info("client joined room without matchmaking")
	default:
		log.Info("client is waiting for an opponent")
	}

	return nil
}

// admit returns the start event when the client completed a pair.
func (that *Coordinator) admit(clientID int64, roomID string, conn matchmaking.Conn) (entity.MatchEvent, bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.registry.Register(clientID, roomID, conn); err != nil {
		return entity.MatchEvent{}, false, err
	}

	that.rooms.Join(roomID, clientID)

	if roomID != DefaultRoom {
		return entity.MatchEvent{}, false, nil
	}

	first, second, paired := that.queue.Enqueue(clientID)
	if !paired {
		return entity.MatchEvent{}, false, nil
	}

	session := that.startSession(first, second)

	return entity.NewMatchEvent(entity.EventMatchStarted, session, session.StartedAt), true, nil
}

// startSession must be called with mu held.
func (that *Coordinator) startSession(first, second int64) *entity.Session {
	session := entity.NewSession(that.newID(), first, second, that.now())

	that.relations.Pair(first, second)
	that.sessions[first] = session
	that.sessions[second] = session

	that.registry.Send(first, entity.JoinMessage(entity.SymbolX, entity.SymbolX, second))
	that.registry.Send(second, entity.JoinMessage(entity.SymbolO, entity.SymbolX, first))

	session.Start()

	return session
}

// HandleMessage dispatches one decoded inbound message from clientID.
func (that *Coordinator) HandleMessage(ctx context.Context, clientID int64, msg entity.Inbound) error {
	switch m := msg.(type) {
	case entity.Move:
		return that.handleMove(ctx, clientID, m)
	case entity.OpponentMove:
		return that.relayMove(clientID, m)
	default:
		return fmt.Errorf("%w: %T", apperror.ErrUnknownMethod, msg)
	}
}

// finish holds what has to be persisted once a session reaches a terminal state.
type finish struct {
	record *entity.MatchRecord
	event  entity.MatchEvent
}

func (that *Coordinator) handleMove(ctx context.Context, clientID int64, move entity.Move) error {
	done, err := that.applyMove(clientID, move)
	if err != nil {
		return err
	}

	if done == nil {
		return nil
	}

	that.logger.Info("session finished", "sessionID", done.record.ID, "outcome", done.record.Outcome)
	that.saveRecord(ctx, done.record)
	that.publish(ctx, done.event)

	return nil
}

// applyMove returns a non-nil finish when the move ended the session.
func (that *Coordinator) applyMove(clientID int64, move entity.Move) (*finish, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	opponentID, ok := that.relations.Lookup(clientID)
	if !ok {
		return nil, fmt.Errorf("%w: client %d", apperror.ErrUnknownOpponent, clientID)
	}

	session := that.sessions[clientID]

	outcome, err := session.ApplyMove(clientID, move.Symbol, move.Board)
	if errors.Is(err, apperror.ErrOutOfTurnMove) {
		that.registry.Send(clientID, entity.WaitingMessage())
	}

	if err != nil {
		return nil, fmt.Errorf("failed to apply move in session %s: %w", session.ID, err)
	}

	if !outcome.IsTerminal() {
		update := entity.UpdateMessage(session.Turn, session.Board)
		that.registry.Send(clientID, update)
		that.registry.Send(opponentID, update)

		return nil, nil
	}

	result := entity.ResultMessage(outcome, session.Board)
	that.registry.Send(clientID, result)
	that.registry.Send(opponentID, result)

	finishedAt := that.now()

	return &finish{
		record: entity.NewMatchRecord(session, finishedAt),
		event:  entity.NewMatchEvent(entity.EventMatchFinished, session, finishedAt),
	}, nil
}

func (that *Coordinator) relayMove(clientID int64, move entity.OpponentMove) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	opponentID, ok := that.relations.Lookup(clientID)
	if !ok {
		return fmt.Errorf("%w: client %d", apperror.ErrUnknownOpponent, clientID)
	}

	that.registry.Send(opponentID, entity.OpponentMoveMessage(move))

	return nil
}

type departure struct {
	registered bool
	queued     bool
	paired     bool
	opponentID int64
	abandoned  *finish
}

// Disconnect cleans up after a lost connection. Calling it again for the same client does nothing.
func (that *Coordinator) Disconnect(ctx context.Context, clientID int64) {
	log := that.logger.With("method", "Disconnect", "clientID", clientID)

	gone := that.release(clientID)

	switch {
	case !gone.registered:
		return
	case gone.queued:
		log.Info("waiting client left the queue")
	case !gone.paired:
		log.Info("unpaired client disconnected")
	default:
		log.Info("paired client disconnected, opponent notified", "opponentID", gone.opponentID)
	}

	if gone.abandoned != nil {
		that.saveRecord(ctx, gone.abandoned.record)
		that.publish(ctx, gone.abandoned.event)
	}
}

func (that *Coordinator) release(clientID int64) departure {
	that.mu.Lock()
	defer that.mu.Unlock()

	client, ok := that.registry.Unregister(clientID)
	if !ok {
		return departure{}
	}

	that.rooms.Leave(client.RoomID, clientID)

	if that.queue.Remove(clientID) {
		return departure{registered: true, queued: true}
	}

	opponentID, ok := that.relations.Unpair(clientID)
	if !ok {
		return departure{registered: true}
	}

	session := that.sessions[clientID]
	delete(that.sessions, clientID)
	delete(that.sessions, opponentID)

	that.registry.Send(opponentID, entity.LeftMessage())

	gone := departure{registered: true, paired: true, opponentID: opponentID}

	if session != nil && !session.IsFinished() {
		session.Abandon()
		finishedAt := that.now()
		gone.abandoned = &finish{
			record: entity.NewMatchRecord(session, finishedAt),
			event:  entity.NewMatchEvent(entity.EventMatchAbandoned, session, finishedAt),
		}
	}

	return gone
}

func (that *Coordinator) Stats() Stats {
	that.mu.Lock()
	defer that.mu.Unlock()

	return Stats{
		Clients:  that.registry.Len(),
		Waiting:  that.queue.Len(),
		Sessions: that.relations.Len(),
		Rooms:    that.rooms.Counts(),
	}
}

func (that *Coordinator) saveRecord(ctx context.Context, record *entity.MatchRecord) {
	if that.matchRepo == nil {
		return
	}

	if err := that.matchRepo.Save(ctx, record); err != nil {
		that.logger.Error("failed to save match record", "sessionID", record.ID, "error", err)
	}
}

func (that *Coordinator) publish(ctx context.Context, event entity.MatchEvent) {
	if that.publisher == nil {
		return
	}

	if err := that.publisher.Publish(ctx, event); err != nil {
		that.logger.Error("failed to publish match event", "type", event.Type, "sessionID", event.SessionID, "error", err)
	}
}
