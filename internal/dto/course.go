package dto

import "freightdesk/internal/entities"

type Course struct {
	ID                  string  `json:"id"`
	Client              string  `json:"client"`
	ClientEmail         string  `json:"client_email"`
	ClientPhone         string  `json:"client_phone"`
	PickupAddress       string  `json:"pickup_address"`
	DeliveryAddress     string  `json:"delivery_address"`
	PickupDate          string  `json:"pickup_date"`
	DeliveryDate        string  `json:"delivery_date"`
	CargoType           string  `json:"cargo_type"`
	CargoDescription    string  `json:"cargo_description"`
	Weight              float64 `json:"weight"`
	Dimensions          string  `json:"dimensions"`
	Distance            string  `json:"distance"`
	EstimatedDuration   string  `json:"estimated_duration"`
	Payment             float64 `json:"payment"`
	Urgency             Option  `json:"urgency"`
	VehicleType         string  `json:"vehicle_type"`
	SpecialRequirements string  `json:"special_requirements,omitempty"`
	Fragile             bool    `json:"fragile"`
	Dangerous           bool    `json:"dangerous"`
}

func FromCourses(courses []entities.Course) []Course {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		out = append(out, Course{
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
			Urgency:             Option{Value: c.Urgency.String(), Label: c.Urgency.Label()},
			VehicleType:         c.VehicleType,
			SpecialRequirements: c.SpecialRequirements,
			Fragile:             c.Fragile,
			Dangerous:           c.Dangerous,
		})
	}
	return out
}
