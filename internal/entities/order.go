package entities

import "time"

type Order struct {
	ID                string
	ClientName        string
	ClientEmail       string
	PickupAddress     string
	DeliveryAddress   string
	CargoType         string
	Weight            float64
	Status            OrderStatusType
	Priority          PriorityType
	Carrier           string
	CreatedAt         time.Time
	EstimatedDelivery time.Time
	TotalCost         float64
}

func (o Order) SearchableFields() []string {
	return []string{o.ID, o.ClientName, o.PickupAddress, o.DeliveryAddress}
}

func (o Order) FilterValue(key string) (string, bool) {
	switch key {
	case FilterKeyStatus:
		return o.Status.String(), true
	case FilterKeyPriority:
		return o.Priority.String(), true
	default:
		return "", false
	}
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderAssigned  OrderStatusType = "assigned"
	OrderEnRoute   OrderStatusType = "en_route"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

var OrderStatuses = []OrderStatusType{OrderPending, OrderAssigned, OrderEnRoute, OrderDelivered, OrderCancelled}

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) Label() string {
	switch s {
	case OrderPending:
		return "En attente"
	case OrderAssigned:
		return "Assigné"
	case OrderEnRoute:
		return "En route"
	case OrderDelivered:
		return "Livré"
	case OrderCancelled:
		return "Annulé"
	}
	return string(s)
}

type PriorityType string

const (
	PriorityNormal PriorityType = "normal"
	PriorityHigh   PriorityType = "high"
	PriorityUrgent PriorityType = "urgent"
)

func (p PriorityType) String() string {
	return string(p)
}

func (p PriorityType) Label() string {
	switch p {
	case PriorityNormal:
		return "Normal"
	case PriorityHigh:
		return "Prioritaire"
	case PriorityUrgent:
		return "Urgent"
	}
	return string(p)
}

// OrderModify carries a partial order update; nil fields are left untouched.
type OrderModify struct {
	ID      *string
	Status  *OrderStatusType
	Carrier *string
}
