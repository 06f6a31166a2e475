package apperror

import "errors"

var (
	ErrDuplicateIdentifier = errors.New("client identifier is already connected")
	ErrUnknownOpponent     = errors.New("client has no paired opponent")
	ErrMalformedMessage    = errors.New("malformed message")
	ErrUnknownMethod       = errors.New("unknown message method")
	ErrInvalidBoard        = errors.New("invalid board")
	ErrOutOfTurnMove       = errors.New("it's not your turn")
	ErrGameFinished        = errors.New("game is already finished")

	ErrMatchNotFound    = errors.New("match not found")
	ErrStatNotFound     = errors.New("user statistic not found")
	ErrInvalidStatName  = errors.New("invalid stat name")
	ErrStatAlreadyExist = errors.New("user statistic already exists")

	ErrSignatureMismatch   = errors.New("signature mismatch")
	ErrItemNotFound        = errors.New("item does not exist")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
	ErrUnknownNotification = errors.New("unknown notification type")
	ErrPurchaseDisabled    = errors.New("purchase access key is not configured")
)
