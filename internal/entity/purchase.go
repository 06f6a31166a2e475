package entity

const (
	NotificationGetItem               = "get_item"
	NotificationGetItemTest           = "get_item_test"
	NotificationOrderStatusChange     = "order_status_change"
	NotificationOrderStatusChangeTest = "order_status_change_test"

	OrderStatusChargeable = "chargeable"
	OrderStatusRefund     = "refund"
)

// PurchaseRequest is a payment provider notification. Optional params are nil when absent.
type PurchaseRequest struct {
	NotificationType string  `json:"notification_type"`
	Item             *string `json:"item"`
	Status           *string `json:"status"`
	OrderID          *string `json:"order_id"`
	Sig              string  `json:"sig"`
}

type SaleItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type OrderConfirmation struct {
	OrderID    string `json:"order_id"`
	AppOrderID int    `json:"app_order_id,omitempty"`
}

type PurchaseResponse struct {
	Response any `json:"response"`
}
