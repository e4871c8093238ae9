package course

type CourseDB struct {
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
	Urgency             string
	VehicleType         string
	SpecialRequirements string
	Fragile             bool
	Dangerous           bool
	Available           bool
}
