package entities

import "time"

type CargoType string

const (
	CargoElectronics CargoType = "electronics"
	CargoFood        CargoType = "food"
	CargoTextile     CargoType = "textile"
	CargoFurniture   CargoType = "furniture"
	CargoChemical    CargoType = "chemical"
	CargoOther       CargoType = "other"
)

func (c CargoType) String() string {
	return string(c)
}

type Temperature string

const (
	TemperatureAmbient      Temperature = "ambient"
	TemperatureRefrigerated Temperature = "refrigerated"
	TemperatureFrozen       Temperature = "frozen"
)

type VehicleType string

const (
	VehicleVan          VehicleType = "van"
	VehicleTruck        VehicleType = "truck"
	VehicleSemi         VehicleType = "semi"
	VehicleRefrigerated VehicleType = "refrigerated"
)

type Urgency string

const (
	UrgencyStandard Urgency = "standard"
	UrgencyExpress  Urgency = "express"
	UrgencyUrgent   Urgency = "urgent"
)

// OrderDraft is the order being assembled across the intake steps.
// Enum-typed fields hold whatever the client sent; they are not validated while drafting.
type OrderDraft struct {
	PickupAddress    string
	PickupCity       string
	PickupPostalCode string
	PickupDate       string
	PickupTime       string

	DeliveryAddress    string
	DeliveryCity       string
	DeliveryPostalCode string
	DeliveryDate       string
	DeliveryTime       string

	CargoType        CargoType
	CargoDescription string
	Weight           string
	Dimensions       string
	Quantity         string
	Fragile          bool
	Dangerous        bool
	// Temperature only matters while Dangerous is set, but is kept when it is cleared.
	Temperature Temperature

	TransportType       VehicleType
	Urgency             Urgency
	Insurance           bool
	SpecialInstructions string

	ContactName     string
	ContactPhone    string
	ContactEmail    string
	EstimatedBudget string
}

type DraftField string

const (
	FieldPickupAddress      DraftField = "pickupAddress"
	FieldPickupCity         DraftField = "pickupCity"
	FieldPickupPostalCode   DraftField = "pickupPostalCode"
	FieldPickupDate         DraftField = "pickupDate"
	FieldPickupTime         DraftField = "pickupTime"
	FieldDeliveryAddress    DraftField = "deliveryAddress"
	FieldDeliveryCity       DraftField = "deliveryCity"
	FieldDeliveryPostalCode DraftField = "deliveryPostalCode"
	FieldDeliveryDate       DraftField = "deliveryDate"
	FieldDeliveryTime       DraftField = "deliveryTime"

	FieldCargoType        DraftField = "cargoType"
	FieldCargoDescription DraftField = "cargoDescription"
	FieldWeight           DraftField = "weight"
	FieldDimensions       DraftField = "dimensions"
	FieldQuantity         DraftField = "quantity"
	FieldFragile          DraftField = "fragile"
	FieldDangerous        DraftField = "dangerous"
	FieldTemperature      DraftField = "temperature"

	FieldTransportType       DraftField = "transportType"
	FieldUrgency             DraftField = "urgency"
	FieldInsurance           DraftField = "insurance"
	FieldSpecialInstructions DraftField = "specialInstructions"

	FieldContactName     DraftField = "contactName"
	FieldContactPhone    DraftField = "contactPhone"
	FieldContactEmail    DraftField = "contactEmail"
	FieldEstimatedBudget DraftField = "estimatedBudget"
)

func (f DraftField) String() string {
	return string(f)
}

type Step int

const (
	StepRoute Step = iota + 1
	StepCargo
	StepTransport
	StepContact
)

const (
	FirstStep = StepRoute
	LastStep  = StepContact
)

type StepDefinition struct {
	ID          Step
	Title       string
	Description string
}

var Steps = []StepDefinition{
	{ID: StepRoute, Title: "Points de collecte et livraison", Description: "Définissez les adresses de départ et d'arrivée"},
	{ID: StepCargo, Title: "Détails de la marchandise", Description: "Décrivez votre cargaison"},
	{ID: StepTransport, Title: "Options de transport", Description: "Choisissez le type de transport"},
	{ID: StepContact, Title: "Contact et budget", Description: "Informations finales"},
}

type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSubmitted  SubmissionState = "submitted"
	SubmissionFailed     SubmissionState = "failed"
)

func (s SubmissionState) String() string {
	return string(s)
}

// OrderAcceptance is what the order-acceptance collaborator returns on success.
type OrderAcceptance struct {
	OrderID    string
	AcceptedAt time.Time
}

// DraftState is a point-in-time copy of an intake session.
type DraftState struct {
	ID            string
	Step          Step
	Draft         OrderDraft
	StepValid     map[Step]bool
	Submission    SubmissionState
	Acceptance    *OrderAcceptance
	FailureReason string
	UpdatedAt     time.Time

	// EstimatedDelivery is nil until the pickup date and urgency allow an estimate.
	EstimatedDelivery *DeliveryWindow
}

// DeliveryWindow is the date range shown on the draft recap.
type DeliveryWindow struct {
	From time.Time
	To   time.Time
}
