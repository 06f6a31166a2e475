package service

import (
	"context"
	"crypto/md5" //nolint: gosec // the payment provider signs notifications with md5
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-matchmaker/internal/entity"
)

// appOrderID - orders are not stored yet, every confirmation carries the same application order.
const appOrderID = 1

// absentParam is how the provider renders an optional param that was not sent.
const absentParam = "None"

var saleItems = map[string]entity.SaleItem{
	"item_id_1": {Name: "Item 1", Price: 10},
	"item_id_2": {Name: "Item 2", Price: 20},
}

type PurchaseService interface {
	Handle(ctx context.Context, req *entity.PurchaseRequest) (*entity.PurchaseResponse, error)
}

type purchaseService struct {
	logger    *slog.Logger
	accessKey string
}

// NewPurchaseService - without an access key every notification is refused.
func NewPurchaseService(logger *slog.Logger, accessKey string) PurchaseService {
	log := logger.With("component", "purchase")
	if accessKey == "" {
		log.Warn("purchase access key is empty, notifications will be refused")
	}

	return &purchaseService{
		logger:    log,
		accessKey: accessKey,
	}
}

// Signature - md5 over "k=v" pairs sorted by key and joined with "&", followed by the access key.
func Signature(params map[string]string, accessKey string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		if key == "sig" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	sum := md5.Sum([]byte(strings.Join(pairs, "&") + accessKey)) //nolint: gosec // provider protocol

	return hex.EncodeToString(sum[:])
}

func RequestParams(req *entity.PurchaseRequest) map[string]string {
	optional := func(value *string) string {
		if value == nil {
			return absentParam
		}
		return *value
	}

	return map[string]string{
		"notification_type": req.NotificationType,
		"item":              optional(req.Item),
		"status":            optional(req.Status),
		"order_id":          optional(req.OrderID),
	}
}

func (that *purchaseService) Handle(_ context.Context, req *entity.PurchaseRequest) (*entity.PurchaseResponse, error) {
	log := that.logger.With("method", "Handle", "notificationType", req.NotificationType)

	if that.accessKey == "" {
		log.Warn("purchase notification refused")
		return nil, apperror.ErrPurchaseDisabled
	}

	if Signature(RequestParams(req), that.accessKey) != req.Sig {
		log.Warn("purchase signature mismatch")
		return nil, apperror.ErrSignatureMismatch
	}

	switch req.NotificationType {
	case entity.NotificationGetItem, entity.NotificationGetItemTest:
		return that.getItem(req)
	case entity.NotificationOrderStatusChange, entity.NotificationOrderStatusChangeTest:
		return that.changeOrderStatus(req)
	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownNotification, req.NotificationType)
	}
}

func (that *purchaseService) getItem(req *entity.PurchaseRequest) (*entity.PurchaseResponse, error) {
	if req.Item == nil {
		return nil, apperror.ErrItemNotFound
	}

	item, ok := saleItems[*req.Item]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrItemNotFound, *req.Item)
	}

	return &entity.PurchaseResponse{Response: item}, nil
}

func (that *purchaseService) changeOrderStatus(req *entity.PurchaseRequest) (*entity.PurchaseResponse, error) {
	var orderID string
	if req.OrderID != nil {
		orderID = *req.OrderID
	}

	status := ""
	if req.Status != nil {
		status = *req.Status
	}

	switch status {
	case entity.OrderStatusChargeable:
		that.logger.Info("order is chargeable", "orderID", orderID)
		return &entity.PurchaseResponse{Response: entity.OrderConfirmation{OrderID: orderID, AppOrderID: appOrderID}}, nil
	case entity.OrderStatusRefund:
		that.logger.Info("order refunded", "orderID", orderID)
		return &entity.PurchaseResponse{Response: entity.OrderConfirmation{OrderID: orderID}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidOrderStatus, status)
	}
}
