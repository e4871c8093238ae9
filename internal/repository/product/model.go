package product

import "time"

type ProductDB struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Weight      float64
	Dimensions  string
	Fragile     bool
	Status      string
	CreatedAt   time.Time
}

type ProductModifyDB struct {
	ID          *int64
	Name        *string
	Description *string
	Category    *string
	Weight      *float64
	Dimensions  *string
	Fragile     *bool
	Status      *string
}
