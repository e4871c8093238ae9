package entities

import "time"

type Product struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Weight      float64
	Dimensions  string
	Fragile     bool
	Status      ProductStatusType
	CreatedAt   time.Time
}

func (p Product) SearchableFields() []string {
	return []string{p.Name, p.Description}
}

func (p Product) FilterValue(key string) (string, bool) {
	switch key {
	case FilterKeyCategory:
		return p.Category, true
	case FilterKeyStatus:
		return p.Status.String(), true
	default:
		return "", false
	}
}

type ProductStatusType string

const (
	ProductActive   ProductStatusType = "active"
	ProductInactive ProductStatusType = "inactive"
)

const DefaultProductStatus = ProductActive

func (s ProductStatusType) String() string {
	return string(s)
}

func (s ProductStatusType) Label() string {
	switch s {
	case ProductActive:
		return "Actif"
	case ProductInactive:
		return "Inactif"
	}
	return string(s)
}

type ProductModify struct {
	ID          *int64
	Name        *string
	Description *string
	Category    *string
	Weight      *float64
	Dimensions  *string
	Fragile     *bool
	Status      *ProductStatusType
}

type Category struct {
	ID          string
	Name        string
	Description string
	Color       string
}

var Categories = []Category{
	{ID: "1", Name: "Électronique", Description: "Appareils électroniques et composants", Color: "blue"},
	{ID: "2", Name: "Alimentaire", Description: "Produits alimentaires et boissons", Color: "green"},
	{ID: "3", Name: "Textile", Description: "Vêtements et tissus", Color: "purple"},
	{ID: "4", Name: "Mobilier", Description: "Meubles et décoration", Color: "orange"},
	{ID: "5", Name: "Chimique", Description: "Produits chimiques et dangereux", Color: "red"},
}

// CategoryByName returns the category with the given display name.
func CategoryByName(name string) (Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
