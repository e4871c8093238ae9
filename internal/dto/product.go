package dto

import (
	"time"

	"freightdesk/internal/entities"
)

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Weight      float64   `json:"weight"`
	Dimensions  string    `json:"dimensions"`
	Fragile     bool      `json:"fragile"`
	Status      Option    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductCreate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category"`
	Weight      *float64 `json:"weight"`
	Dimensions  *string  `json:"dimensions,omitempty"`
	Fragile     *bool    `json:"fragile,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// ProductUpdate carries only the fields to change.
type ProductUpdate = ProductCreate

type ProductCreateResponse struct {
	ID int64 `json:"id"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// ToProductModify maps a create or update body onto the entity patch.
func (p ProductCreate) ToProductModify() entities.ProductModify {
	modify := entities.ProductModify{
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Weight:      p.Weight,
		Dimensions:  p.Dimensions,
		Fragile:     p.Fragile,
	}
	if p.Status != nil {
		status := entities.ProductStatusType(*p.Status)
		modify.Status = &status
	}
	return modify
}

func FromProduct(p entities.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Weight:      p.Weight,
		Dimensions:  p.Dimensions,
		Fragile:     p.Fragile,
		Status:      Option{Value: p.Status.String(), Label: p.Status.Label()},
		CreatedAt:   p.CreatedAt,
	}
}

func FromProducts(products []entities.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromCategories(categories []entities.Category) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, Category(c))
	}
	return out
}
