package order

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"freightdesk/internal/entities"
)

const (
	keyDraftID      = "draft_id"
	keyDraft        = "draft"
	keyOrderID      = "order_id"
	keyAcceptedAt   = "accepted_at"
	keyID           = "id"
	keyOrder        = "order"
	timestampFormat = time.RFC3339
)

func fromDraft(draftID string, d entities.OrderDraft) (*structpb.Struct, error) {
	fields := map[string]any{
		entities.FieldPickupAddress.String():      d.PickupAddress,
		entities.FieldPickupCity.String():         d.PickupCity,
		entities.FieldPickupPostalCode.String():   d.PickupPostalCode,
		entities.FieldPickupDate.String():         d.PickupDate,
		entities.FieldPickupTime.String():         d.PickupTime,
		entities.FieldDeliveryAddress.String():    d.DeliveryAddress,
		entities.FieldDeliveryCity.String():       d.DeliveryCity,
		entities.FieldDeliveryPostalCode.String(): d.DeliveryPostalCode,
		entities.FieldDeliveryDate.String():       d.DeliveryDate,
		entities.FieldDeliveryTime.String():       d.DeliveryTime,

		entities.FieldCargoType.String():        d.CargoType.String(),
		entities.FieldCargoDescription.String(): d.CargoDescription,
		entities.FieldWeight.String():           d.Weight,
		entities.FieldDimensions.String():       d.Dimensions,
		entities.FieldQuantity.String():         d.Quantity,
		entities.FieldFragile.String():          d.Fragile,
		entities.FieldDangerous.String():        d.Dangerous,
		entities.FieldTemperature.String():      string(d.Temperature),

		entities.FieldTransportType.String():       string(d.TransportType),
		entities.FieldUrgency.String():             string(d.Urgency),
		entities.FieldInsurance.String():           d.Insurance,
		entities.FieldSpecialInstructions.String(): d.SpecialInstructions,

		entities.FieldContactName.String():     d.ContactName,
		entities.FieldContactPhone.String():    d.ContactPhone,
		entities.FieldContactEmail.String():    d.ContactEmail,
		entities.FieldEstimatedBudget.String(): d.EstimatedBudget,
	}

	req, err := structpb.NewStruct(map[string]any{
		keyDraftID: draftID,
		keyDraft:   fields,
	})
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}
	return req, nil
}

func toAcceptance(resp *structpb.Struct, now time.Time) (*entities.OrderAcceptance, error) {
	orderID := stringField(resp, keyOrderID)
	if orderID == "" {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedResponse, keyOrderID)
	}

	acceptedAt, err := timeField(resp, keyAcceptedAt)
	if err != nil {
		return nil, err
	}
	if acceptedAt.IsZero() {
		acceptedAt = now
	}

	return &entities.OrderAcceptance{
		OrderID:    orderID,
		AcceptedAt: acceptedAt.UTC(),
	}, nil
}

func toDomain(s *structpb.Struct) (*entities.Order, error) {
	createdAt, err := timeField(s, "created_at")
	if err != nil {
		return nil, err
	}
	estimated, err := timeField(s, "estimated_delivery")
	if err != nil {
		return nil, err
	}

	return &entities.Order{
		ID:                stringField(s, keyID),
		ClientName:        stringField(s, "client_name"),
		ClientEmail:       stringField(s, "client_email"),
		PickupAddress:     stringField(s, "pickup_address"),
		DeliveryAddress:   stringField(s, "delivery_address"),
		CargoType:         stringField(s, "cargo_type"),
		Weight:            s.GetFields()["weight"].GetNumberValue(),
		Status:            entities.OrderStatusType(stringField(s, "status")),
		Priority:          entities.PriorityType(stringField(s, "priority")),
		Carrier:           stringField(s, "carrier"),
		CreatedAt:         createdAt,
		EstimatedDelivery: estimated,
		TotalCost:         s.GetFields()["total_cost"].GetNumberValue(),
	}, nil
}

func stringField(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

func timeField(s *structpb.Struct, key string) (time.Time, error) {
	raw := stringField(s, key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(timestampFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, key, err)
	}
	return t, nil
}
