package delivery

import (
	"github.com/AlekSi/pointer"

	"freightdesk/internal/entities"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:               d.ID,
		Client:           d.Client,
		Route:            d.Route,
		PickupAddress:    d.PickupAddress,
		DeliveryAddress:  d.DeliveryAddress,
		Status:           entities.DeliveryStatusType(d.Status),
		Progress:         d.Progress,
		EstimatedArrival: d.EstimatedArrival,
		Cargo:            d.Cargo,
		Weight:           d.Weight,
		Payment:          d.Payment,
		StartDate:        d.StartDate,
		ActualDelivery:   pointer.Get(d.ActualDelivery),
		Carrier:          pointer.Get(d.Carrier),
	}
}

func FromDomain(d *entities.Delivery) *DeliveryDB {
	if d == nil {
		return nil
	}
	deliveryDB := &DeliveryDB{
		ID:               d.ID,
		Client:           d.Client,
		Route:            d.Route,
		PickupAddress:    d.PickupAddress,
		DeliveryAddress:  d.DeliveryAddress,
		Status:           d.Status.String(),
		Progress:         d.Progress,
		EstimatedArrival: d.EstimatedArrival,
		Cargo:            d.Cargo,
		Weight:           d.Weight,
		Payment:          d.Payment,
		StartDate:        d.StartDate,
	}

	if d.ActualDelivery != "" {
		deliveryDB.ActualDelivery = pointer.To(d.ActualDelivery)
	}
	if d.Carrier != "" {
		deliveryDB.Carrier = pointer.To(d.Carrier)
	}

	return deliveryDB
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}
	deliveryModifyDB := &DeliveryModifyDB{
		ID:             d.ID,
		Progress:       d.Progress,
		ActualDelivery: d.ActualDelivery,
	}

	if d.Status != nil {
		deliveryModifyDB.Status = pointer.To(d.Status.String())
	}

	return deliveryModifyDB
}

func ToDomainList(deliveriesDB []DeliveryDB) []entities.Delivery {
	result := make([]entities.Delivery, len(deliveriesDB))
	for i := range deliveriesDB {
		result[i] = *ToDomain(&deliveriesDB[i])
	}
	return result
}
