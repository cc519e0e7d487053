package models

import (
	"time"
)

// Order is a one-shot customer submission. Nothing here is persisted; the
// validated order is rendered into notifications and forgotten.
type Order struct {
	Name             string      `json:"name" binding:"required,min=2,max=100"`
	Phone            string      `json:"phone" binding:"required,phone,min=7,max=20"`
	Email            string      `json:"email,omitempty" binding:"omitempty,email,max=254"`
	PickupOrDelivery string      `json:"pickupOrDelivery" binding:"required,oneof=pickup delivery"`
	Address          string      `json:"address,omitempty" binding:"max=300"`
	DesiredDate      string      `json:"desiredDate,omitempty" binding:"max=100"`
	GeneralNotes     string      `json:"generalNotes,omitempty" binding:"max=1000"`
	Items            []OrderItem `json:"items" binding:"required,min=1,max=50,dive"`
	Total            float64     `json:"total" binding:"gte=0"`
}

// OrderItem carries the product name and unit price as snapshotted by the
// client at add-to-cart time. The total is trusted as submitted and is not
// recomputed against the catalog.
type OrderItem struct {
	ProductID   string  `json:"productId" binding:"required,max=100"`
	ProductName string  `json:"productName" binding:"required,max=200"`
	Size        string  `json:"size,omitempty" binding:"omitempty,oneof=pequeño mediano grande"`
	Quantity    int     `json:"quantity" binding:"required,gte=1,lte=100"`
	Price       float64 `json:"price" binding:"gte=0"`
	Notes       string  `json:"notes,omitempty" binding:"max=500"`
}

// OrderSubmission is the raw inbound payload: an Order plus the two
// anti-abuse fields the form adds. Company is a honeypot input hidden from
// humans; FormStartedAt is the Unix-millisecond timestamp at which the form
// was first rendered.
type OrderSubmission struct {
	Order
	Company       string `json:"company"`
	FormStartedAt int64  `json:"formStartedAt"`
}

// Sanitized returns the order with the anti-abuse fields stripped, the only
// shape ever handed to the notification dispatcher.
func (s *OrderSubmission) Sanitized() Order {
	return s.Order
}

// OrderEvent is published to the order queue after an accepted submission.
type OrderEvent struct {
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Mode     string    `json:"mode"`
	Total    float64   `json:"total"`
	Items    int       `json:"items"`
	Type     string    `json:"type"` // accepted
	Occurred time.Time `json:"occurred"`
}

// NewOrderEvent snapshots the fields the consumer side cares about.
func NewOrderEvent(o Order, eventType string) OrderEvent {
	return OrderEvent{
		Name:     o.Name,
		Phone:    o.Phone,
		Mode:     o.PickupOrDelivery,
		Total:    o.Total,
		Items:    len(o.Items),
		Type:     eventType,
		Occurred: time.Now(),
	}
}
