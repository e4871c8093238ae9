package dto

import (
	"time"

	"freightdesk/internal/entities"
)

type DraftFieldUpdate struct {
	Value string `json:"value"`
}

type DraftStep struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Valid       bool   `json:"valid"`
}

type OrderDraft struct {
	PickupAddress    string `json:"pickupAddress"`
	PickupCity       string `json:"pickupCity"`
	PickupPostalCode string `json:"pickupPostalCode"`
	PickupDate       string `json:"pickupDate"`
	PickupTime       string `json:"pickupTime"`

	DeliveryAddress    string `json:"deliveryAddress"`
	DeliveryCity       string `json:"deliveryCity"`
	DeliveryPostalCode string `json:"deliveryPostalCode"`
	DeliveryDate       string `json:"deliveryDate"`
	DeliveryTime       string `json:"deliveryTime"`

	CargoType        string `json:"cargoType"`
	CargoDescription string `json:"cargoDescription"`
	Weight           string `json:"weight"`
	Dimensions       string `json:"dimensions"`
	Quantity         string `json:"quantity"`
	Fragile          bool   `json:"fragile"`
	Dangerous        bool   `json:"dangerous"`
	Temperature      string `json:"temperature"`

	TransportType       string `json:"transportType"`
	Urgency             string `json:"urgency"`
	Insurance           bool   `json:"insurance"`
	SpecialInstructions string `json:"specialInstructions"`

	ContactName     string `json:"contactName"`
	ContactPhone    string `json:"contactPhone"`
	ContactEmail    string `json:"contactEmail"`
	EstimatedBudget string `json:"estimatedBudget"`
}

type OrderAcceptance struct {
	OrderID    string    `json:"order_id"`
	AcceptedAt time.Time `json:"accepted_at"`
}

type DeliveryWindow struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type DraftState struct {
	ID                string           `json:"id"`
	Step              int              `json:"step"`
	Steps             []DraftStep      `json:"steps"`
	Draft             OrderDraft       `json:"draft"`
	Submission        string           `json:"submission"`
	Acceptance        *OrderAcceptance `json:"acceptance,omitempty"`
	FailureReason     string           `json:"failure_reason,omitempty"`
	EstimatedDelivery *DeliveryWindow  `json:"estimated_delivery,omitempty"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func FromDraftState(s entities.DraftState) DraftState {
	steps := make([]DraftStep, 0, len(entities.Steps))
	for _, def := range entities.Steps {
		steps = append(steps, DraftStep{
			ID:          int(def.ID),
			Title:       def.Title,
			Description: def.Description,
			Valid:       s.StepValid[def.ID],
		})
	}

	out := DraftState{
		ID:            s.ID,
		Step:          int(s.Step),
		Steps:         steps,
		Draft:         fromOrderDraft(s.Draft),
		Submission:    s.Submission.String(),
		FailureReason: s.FailureReason,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.Acceptance != nil {
		out.Acceptance = &OrderAcceptance{
			OrderID:    s.Acceptance.OrderID,
			AcceptedAt: s.Acceptance.AcceptedAt,
		}
	}
	if s.EstimatedDelivery != nil {
		out.EstimatedDelivery = &DeliveryWindow{
			From: formatDate(s.EstimatedDelivery.From),
			To:   formatDate(s.EstimatedDelivery.To),
		}
	}
	return out
}

func fromOrderDraft(d entities.OrderDraft) OrderDraft {
	return OrderDraft{
		PickupAddress:       d.PickupAddress,
		PickupCity:          d.PickupCity,
		PickupPostalCode:    d.PickupPostalCode,
		PickupDate:          d.PickupDate,
		PickupTime:          d.PickupTime,
		DeliveryAddress:     d.DeliveryAddress,
		DeliveryCity:        d.DeliveryCity,
		DeliveryPostalCode:  d.DeliveryPostalCode,
		DeliveryDate:        d.DeliveryDate,
		DeliveryTime:        d.DeliveryTime,
		CargoType:           d.CargoType.String(),
		CargoDescription:    d.CargoDescription,
		Weight:              d.Weight,
		Dimensions:          d.Dimensions,
		Quantity:            d.Quantity,
		Fragile:             d.Fragile,
		Dangerous:           d.Dangerous,
		Temperature:         string(d.Temperature),
		TransportType:       string(d.TransportType),
		Urgency:             string(d.Urgency),
		Insurance:           d.Insurance,
		SpecialInstructions: d.SpecialInstructions,
		ContactName:         d.ContactName,
		ContactPhone:        d.ContactPhone,
		ContactEmail:        d.ContactEmail,
		EstimatedBudget:     d.EstimatedBudget,
	}
}
