package product

import (
	"github.com/AlekSi/pointer"

	"freightdesk/internal/entities"
)

func ToDomain(p *ProductDB) *entities.Product {
	if p == nil {
		return nil
	}
	return &entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Weight:      p.Weight,
		Dimensions:  p.Dimensions,
		Fragile:     p.Fragile,
		Status:      entities.ProductStatusType(p.Status),
		CreatedAt:   p.CreatedAt,
	}
}

func FromDomainModify(p *entities.ProductModify) *ProductModifyDB {
	if p == nil {
		return nil
	}
	productDB := &ProductModifyDB{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Weight:      p.Weight,
		Dimensions:  p.Dimensions,
		Fragile:     p.Fragile,
	}

	if p.Status != nil {
		productDB.Status = pointer.To(p.Status.String())
	}

	return productDB
}

func ToDomainList(productsDB []ProductDB) []entities.Product {
	result := make([]entities.Product, len(productsDB))
	for i := range productsDB {
		result[i] = *ToDomain(&productsDB[i])
	}
	return result
}
