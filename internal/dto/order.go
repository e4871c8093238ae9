package dto

import "freightdesk/internal/entities"

type Order struct {
	ID                string  `json:"id"`
	ClientName        string  `json:"client_name"`
	ClientEmail       string  `json:"client_email"`
	PickupAddress     string  `json:"pickup_address"`
	DeliveryAddress   string  `json:"delivery_address"`
	CargoType         string  `json:"cargo_type"`
	Weight            float64 `json:"weight"`
	Status            Option  `json:"status"`
	Priority          Option  `json:"priority"`
	Carrier           string  `json:"carrier,omitempty"`
	CreatedAt         string  `json:"created_at"`
	EstimatedDelivery string  `json:"estimated_delivery"`
	TotalCost         float64 `json:"total_cost"`
}

func FromOrders(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, Order{
			ID:                o.ID,
			ClientName:        o.ClientName,
			ClientEmail:       o.ClientEmail,
			PickupAddress:     o.PickupAddress,
			DeliveryAddress:   o.DeliveryAddress,
			CargoType:         o.CargoType,
			Weight:            o.Weight,
			Status:            Option{Value: o.Status.String(), Label: o.Status.Label()},
			Priority:          Option{Value: o.Priority.String(), Label: o.Priority.Label()},
			Carrier:           o.Carrier,
			CreatedAt:         formatDate(o.CreatedAt),
			EstimatedDelivery: formatDate(o.EstimatedDelivery),
			TotalCost:         o.TotalCost,
		})
	}
	return out
}
