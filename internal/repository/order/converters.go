package order

import (
	"github.com/AlekSi/pointer"

	"freightdesk/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:                o.ID,
		ClientName:        o.ClientName,
		ClientEmail:       o.ClientEmail,
		PickupAddress:     o.PickupAddress,
		DeliveryAddress:   o.DeliveryAddress,
		CargoType:         o.CargoType,
		Weight:            o.Weight,
		Status:            entities.OrderStatusType(o.Status),
		Priority:          entities.PriorityType(o.Priority),
		Carrier:           pointer.Get(o.Carrier),
		CreatedAt:         o.CreatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
		TotalCost:         o.TotalCost,
	}
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}
	orderDB := &OrderDB{
		ID:                o.ID,
		ClientName:        o.ClientName,
		ClientEmail:       o.ClientEmail,
		PickupAddress:     o.PickupAddress,
		DeliveryAddress:   o.DeliveryAddress,
		CargoType:         o.CargoType,
		Weight:            o.Weight,
		Status:            o.Status.String(),
		Priority:          o.Priority.String(),
		CreatedAt:         o.CreatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
		TotalCost:         o.TotalCost,
	}
	if o.Carrier != "" {
		orderDB.Carrier = pointer.To(o.Carrier)
	}
	if orderDB.Priority == "" {
		orderDB.Priority = entities.PriorityNormal.String()
	}
	return orderDB
}

func FromDomainModify(o *entities.OrderModify) *OrderModifyDB {
	if o == nil {
		return nil
	}
	orderModifyDB := &OrderModifyDB{
		ID:      o.ID,
		Carrier: o.Carrier,
	}
	if o.Status != nil {
		orderModifyDB.Status = pointer.To(o.Status.String())
	}
	return orderModifyDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		result[i] = *ToDomain(&ordersDB[i])
	}
	return result
}
