package entities

import "time"

type Delivery struct {
	ID               string
	Client           string
	Route            string
	PickupAddress    string
	DeliveryAddress  string
	Status           DeliveryStatusType
	Progress         int
	EstimatedArrival string
	Cargo            string
	Weight           float64
	Payment          float64
	StartDate        string
	ActualDelivery   string
	Carrier          string
}

func (d Delivery) SearchableFields() []string {
	return []string{d.ID, d.Client, d.Route, d.PickupAddress, d.DeliveryAddress}
}

func (d Delivery) FilterValue(key string) (string, bool) {
	if key == FilterKeyStatus {
		return d.Status.String(), true
	}
	return "", false
}

type DeliveryStatusType string

const (
	DeliveryAssigned  DeliveryStatusType = "assigned"
	DeliveryPickup    DeliveryStatusType = "pickup"
	DeliveryEnRoute   DeliveryStatusType = "en_route"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryDelayed   DeliveryStatusType = "delayed"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

func (s DeliveryStatusType) Label() string {
	switch s {
	case DeliveryAssigned:
		return "Assigné"
	case DeliveryPickup:
		return "Collecte"
	case DeliveryEnRoute:
		return "En route"
	case DeliveryDelivered:
		return "Livré"
	case DeliveryDelayed:
		return "Retardé"
	}
	return string(s)
}

// Progress is the completion percentage shown for a status. ok is false for delayed,
// which keeps whatever progress the delivery already had.
func (s DeliveryStatusType) Progress() (progress int, ok bool) {
	switch s {
	case DeliveryAssigned:
		return 0, true
	case DeliveryPickup:
		return 25, true
	case DeliveryEnRoute:
		return 60, true
	case DeliveryDelivered:
		return 100, true
	case DeliveryDelayed:
		return 0, false
	}
	return 0, false
}

var deliveryTransitions = map[DeliveryStatusType][]DeliveryStatusType{
	DeliveryAssigned: {DeliveryPickup},
	DeliveryPickup:   {DeliveryEnRoute, DeliveryDelayed},
	DeliveryEnRoute:  {DeliveryDelivered, DeliveryDelayed},
	DeliveryDelayed:  {DeliveryEnRoute, DeliveryDelivered},
}

func (s DeliveryStatusType) CanTransitionTo(next DeliveryStatusType) bool {
	for _, allowed := range deliveryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DeliveryStatusChange is published whenever a carrier moves a delivery forward.
type DeliveryStatusChange struct {
	DeliveryID string
	From       DeliveryStatusType
	To         DeliveryStatusType
	Progress   int
	ChangedAt  time.Time
}

func (s DeliveryStatusType) Valid() bool {
	_, ok := s.Progress()
	return ok || s == DeliveryDelayed
}

type DeliveryModify struct {
	ID             *string
	Status         *DeliveryStatusType
	Progress       *int
	ActualDelivery *string
}
