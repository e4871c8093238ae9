package delivery

import (
	"strings"

	"freightdesk/internal/entities"
)

func isValidDeliveryID(deliveryID string) bool {
	return strings.TrimSpace(deliveryID) != ""
}

func isValidStatus(status entities.DeliveryStatusType) bool {
	return status.Valid()
}
