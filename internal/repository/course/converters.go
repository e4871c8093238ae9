package course

import "freightdesk/internal/entities"

func ToDomain(c *CourseDB) *entities.Course {
	if c == nil {
		return nil
	}
	return &entities.Course{
		ID:                  c.ID,
		Client:              c.Client,
		ClientEmail:         c.ClientEmail,
		ClientPhone:         c.ClientPhone,
		PickupAddress:       c.PickupAddress,
		DeliveryAddress:     c.DeliveryAddress,
		PickupDate:          c.PickupDate,
		DeliveryDate:        c.DeliveryDate,
		CargoType:           c.CargoType,
		CargoDescription:    c.CargoDescription,
		Weight:              c.Weight,
		Dimensions:          c.Dimensions,
		Distance:            c.Distance,
		EstimatedDuration:   c.EstimatedDuration,
		Payment:             c.Payment,
		Urgency:             entities.PriorityType(c.Urgency),
		VehicleType:         c.VehicleType,
		SpecialRequirements: c.SpecialRequirements,
		Fragile:             c.Fragile,
		Dangerous:           c.Dangerous,
		Available:           c.Available,
	}
}

func ToDomainList(coursesDB []CourseDB) []entities.Course {
	result := make([]entities.Course, len(coursesDB))
	for i := range coursesDB {
		result[i] = *ToDomain(&coursesDB[i])
	}
	return result
}
