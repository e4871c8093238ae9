package entities

// Course is a transport job offered to carriers.
type Course struct {
	ID                  string
	Client              string
	ClientEmail         string
	ClientPhone         string
	PickupAddress       string
	DeliveryAddress     string
	PickupDate          string
	DeliveryDate        string
	CargoType           string
	CargoDescription    string
	Weight              float64
	Dimensions          string
	Distance            string
	EstimatedDuration   string
	Payment             float64
	Urgency             PriorityType
	VehicleType         string
	SpecialRequirements string
	Fragile             bool
	Dangerous           bool
	Available           bool
}

func (c Course) SearchableFields() []string {
	return []string{c.ID, c.Client, c.PickupAddress, c.DeliveryAddress}
}

func (c Course) FilterValue(key string) (string, bool) {
	switch key {
	case FilterKeyUrgency:
		return c.Urgency.String(), true
	case FilterKeyVehicle:
		return c.VehicleType, true
	default:
		return "", false
	}
}
