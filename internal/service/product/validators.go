package product

import (
	"strings"

	"freightdesk/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidCategory(category string) bool {
	_, ok := entities.CategoryByName(category)
	return ok
}

func isValidWeight(weight float64) bool {
	return weight > 0
}

func isValidStatus(status entities.ProductStatusType) bool {
	switch status {
	case entities.ProductActive, entities.ProductInactive:
		return true
	default:
		return false
	}
}

func validate(productModify entities.ProductModify) error {
	if productModify.Name != nil && !isValidName(*productModify.Name) {
		return ErrInvalidName
	}
	if productModify.Category != nil && !isValidCategory(*productModify.Category) {
		return ErrInvalidCategory
	}
	if productModify.Weight != nil && !isValidWeight(*productModify.Weight) {
		return ErrInvalidWeight
	}
	if productModify.Status != nil && !isValidStatus(*productModify.Status) {
		return ErrInvalidStatus
	}
	return nil
}
