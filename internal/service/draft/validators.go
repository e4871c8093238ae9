package draft

import (
	"strings"

	"freightdesk/internal/entities"
)

var stepRequirements = map[entities.Step][]entities.DraftField{
	entities.StepRoute: {
		entities.FieldPickupAddress,
		entities.FieldPickupCity,
		entities.FieldDeliveryAddress,
		entities.FieldDeliveryCity,
	},
	entities.StepCargo: {
		entities.FieldCargoType,
		entities.FieldWeight,
		entities.FieldDimensions,
	},
	entities.StepTransport: {
		entities.FieldTransportType,
		entities.FieldUrgency,
	},
	entities.StepContact: {
		entities.FieldContactName,
		entities.FieldContactPhone,
		entities.FieldContactEmail,
	},
}

func isStepValid(d *entities.OrderDraft, step entities.Step) bool {
	required, ok := stepRequirements[step]
	if !ok {
		return false
	}

	for _, field := range required {
		if !isFilled(textValue(d, field)) {
			return false
		}
	}
	return true
}

func isFilled(value string) bool {
	return strings.TrimSpace(value) != ""
}
