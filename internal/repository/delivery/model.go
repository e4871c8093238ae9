package delivery

type DeliveryDB struct {
	ID               string
	Client           string
	Route            string
	PickupAddress    string
	DeliveryAddress  string
	Status           string
	Progress         int
	EstimatedArrival string
	Cargo            string
	Weight           float64
	Payment          float64
	StartDate        string
	ActualDelivery   *string
	Carrier          *string
}

type DeliveryModifyDB struct {
	ID             *string
	Status         *string
	Progress       *int
	ActualDelivery *string
}
