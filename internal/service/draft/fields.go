package draft

import (
	"fmt"
	"strconv"

	"freightdesk/internal/entities"
)

func textField(d *entities.OrderDraft, field entities.DraftField) (*string, bool) {
	switch field {
	case entities.FieldPickupAddress:
		return &d.PickupAddress, true
	case entities.FieldPickupCity:
		return &d.PickupCity, true
	case entities.FieldPickupPostalCode:
		return &d.PickupPostalCode, true
	case entities.FieldPickupDate:
		return &d.PickupDate, true
	case entities.FieldPickupTime:
		return &d.PickupTime, true
	case entities.FieldDeliveryAddress:
		return &d.DeliveryAddress, true
	case entities.FieldDeliveryCity:
		return &d.DeliveryCity, true
	case entities.FieldDeliveryPostalCode:
		return &d.DeliveryPostalCode, true
	case entities.FieldDeliveryDate:
		return &d.DeliveryDate, true
	case entities.FieldDeliveryTime:
		return &d.DeliveryTime, true
	case entities.FieldCargoDescription:
		return &d.CargoDescription, true
	case entities.FieldWeight:
		return &d.Weight, true
	case entities.FieldDimensions:
		return &d.Dimensions, true
	case entities.FieldQuantity:
		return &d.Quantity, true
	case entities.FieldSpecialInstructions:
		return &d.SpecialInstructions, true
	case entities.FieldContactName:
		return &d.ContactName, true
	case entities.FieldContactPhone:
		return &d.ContactPhone, true
	case entities.FieldContactEmail:
		return &d.ContactEmail, true
	case entities.FieldEstimatedBudget:
		return &d.EstimatedBudget, true
	case entities.FieldCargoType,
		entities.FieldTemperature,
		entities.FieldTransportType,
		entities.FieldUrgency,
		entities.FieldFragile,
		entities.FieldDangerous,
		entities.FieldInsurance:
		return nil, false
	}
	return nil, false
}

func flagField(d *entities.OrderDraft, field entities.DraftField) (*bool, bool) {
	switch field {
	case entities.FieldFragile:
		return &d.Fragile, true
	case entities.FieldDangerous:
		return &d.Dangerous, true
	case entities.FieldInsurance:
		return &d.Insurance, true
	default:
		return nil, false
	}
}

// setField writes exactly one field. Enum-typed fields take the raw value.
func setField(d *entities.OrderDraft, field entities.DraftField, value string) error {
	if ptr, ok := textField(d, field); ok {
		*ptr = value
		return nil
	}

	if ptr, ok := flagField(d, field); ok {
		flag, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", field, value, ErrInvalidFlagValue)
		}
		*ptr = flag
		return nil
	}

	switch field {
	case entities.FieldCargoType:
		d.CargoType = entities.CargoType(value)
	case entities.FieldTemperature:
		d.Temperature = entities.Temperature(value)
	case entities.FieldTransportType:
		d.TransportType = entities.VehicleType(value)
	case entities.FieldUrgency:
		d.Urgency = entities.Urgency(value)
	default:
		return fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	return nil
}

// textValue reads a field as text; flags are never required so they read as empty.
func textValue(d *entities.OrderDraft, field entities.DraftField) string {
	if ptr, ok := textField(d, field); ok {
		return *ptr
	}

	switch field {
	case entities.FieldCargoType:
		return string(d.CargoType)
	case entities.FieldTemperature:
		return string(d.Temperature)
	case entities.FieldTransportType:
		return string(d.TransportType)
	case entities.FieldUrgency:
		return string(d.Urgency)
	default:
		return ""
	}
}
