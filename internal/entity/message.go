package entity

const (
	MethodMove         = "move"
	MethodOpponentMove = "opponentMove"
	MethodJoin         = "join"
	MethodUpdate       = "update"
	MethodResult       = "result"
	MethodWaiting      = "waiting"
	MethodLeft         = "left"
)

const (
	waitingMessage = "Waiting for opponent's move..."
	leftMessage    = "opponent left"
)

// Inbound is one of the messages a client may send: Move or OpponentMove.
type Inbound interface {
	inbound()
}

// Move carries the full board after the mover placed its symbol.
type Move struct {
	Board  Board
	Symbol Symbol
	Turn   Symbol
}

// OpponentMove is relayed to the opponent untouched.
type OpponentMove struct {
	Board    Board
	Position int
	Turn     Symbol
}

func (Move) inbound()         {}
func (OpponentMove) inbound() {}

// Outbound is a server to client message. Only the fields of its method are populated.
type Outbound struct {
	Method     string `json:"method"`
	Symbol     Symbol `json:"symbol,omitempty"`
	Turn       Symbol `json:"turn,omitempty"`
	OpponentID *int64 `json:"opponent_id,omitempty"`
	Board      *Board `json:"board,omitempty"`
	Position   *int   `json:"position,omitempty"`
	Message    string `json:"message,omitempty"`
}

func JoinMessage(symbol, turn Symbol, opponentID int64) Outbound {
	return Outbound{Method: MethodJoin, Symbol: symbol, Turn: turn, OpponentID: &opponentID}
}

func UpdateMessage(turn Symbol, board Board) Outbound {
	return Outbound{Method: MethodUpdate, Turn: turn, Board: &board}
}

func ResultMessage(outcome Outcome, board Board) Outbound {
	return Outbound{Method: MethodResult, Message: outcome.Message(), Board: &board}
}

func WaitingMessage() Outbound {
	return Outbound{Method: MethodWaiting, Message: waitingMessage}
}

func LeftMessage() Outbound {
	return Outbound{Method: MethodLeft, Message: leftMessage}
}

func OpponentMoveMessage(move OpponentMove) Outbound {
	position := move.Position
	board := move.Board

	return Outbound{Method: MethodOpponentMove, Board: &board, Position: &position, Turn: move.Turn}
}
