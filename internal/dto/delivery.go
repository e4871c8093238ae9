package dto

import "freightdesk/internal/entities"

type Delivery struct {
	ID               string  `json:"id"`
	Client           string  `json:"client"`
	Route            string  `json:"route"`
	PickupAddress    string  `json:"pickup_address"`
	DeliveryAddress  string  `json:"delivery_address"`
	Status           Option  `json:"status"`
	Progress         int     `json:"progress"`
	EstimatedArrival string  `json:"estimated_arrival"`
	Cargo            string  `json:"cargo"`
	Weight           float64 `json:"weight"`
	Payment          float64 `json:"payment"`
	StartDate        string  `json:"start_date"`
	ActualDelivery   string  `json:"actual_delivery,omitempty"`
	Carrier          string  `json:"carrier,omitempty"`
}

type DeliveryStatusUpdate struct {
	Status string `json:"status"`
}

func FromDelivery(d entities.Delivery) Delivery {
	return Delivery{
		ID:               d.ID,
		Client:           d.Client,
		Route:            d.Route,
		PickupAddress:    d.PickupAddress,
		DeliveryAddress:  d.DeliveryAddress,
		Status:           Option{Value: d.Status.String(), Label: d.Status.Label()},
		Progress:         d.Progress,
		EstimatedArrival: d.EstimatedArrival,
		Cargo:            d.Cargo,
		Weight:           d.Weight,
		Payment:          d.Payment,
		StartDate:        d.StartDate,
		ActualDelivery:   d.ActualDelivery,
		Carrier:          d.Carrier,
	}
}

func FromDeliveries(deliveries []entities.Delivery) []Delivery {
	out := make([]Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, FromDelivery(d))
	}
	return out
}
