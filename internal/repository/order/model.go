package order

import "time"

type OrderDB struct {
	ID                string
	ClientName        string
	ClientEmail       string
	PickupAddress     string
	DeliveryAddress   string
	CargoType         string
	Weight            float64
	Status            string
	Priority          string
	Carrier           *string
	CreatedAt         time.Time
	EstimatedDelivery time.Time
	TotalCost         float64
}

type OrderModifyDB struct {
	ID      *string
	Status  *string
	Carrier *string
}
