package model

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderStatuses = map[OrderStatus]bool{
	OrderStatusPending:   true,
	OrderStatusConfirmed: true,
	OrderStatusReady:     true,
	OrderStatusCompleted: true,
	OrderStatusCancelled: true,
}

// completed and cancelled are terminal.
var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:   {OrderStatusConfirmed: true, OrderStatusCancelled: true},
	OrderStatusConfirmed: {OrderStatusReady: true, OrderStatusCancelled: true},
	OrderStatusReady:     {OrderStatusCompleted: true, OrderStatusCancelled: true},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if !orderStatuses[st] {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return st, nil
}

func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

type Order struct {
	ID               uint64      `gorm:"column:order_id;primaryKey;autoIncrement" json:"orderId"`
	CustomerID       uint64      `gorm:"column:customer_id;not null;index" json:"customerId"`
	VendorID         uint64      `gorm:"column:vendor_id;not null;index" json:"vendorId"`
	TotalAmount      float64     `gorm:"column:total_amount;type:decimal(10,2);not null" json:"totalAmount"`
	CommissionAmount float64     `gorm:"column:commission_amount;type:decimal(10,2);not null;default:0" json:"commissionAmount"`
	Status           OrderStatus `gorm:"size:16;not null;default:pending;index" json:"status"`
	DeliveryAddress  string      `gorm:"column:delivery_address;type:text" json:"deliveryAddress"`
	Notes            string      `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Order) TableName() string {
	return "orders"
}
