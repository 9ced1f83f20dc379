package catalog

import "github.com/google/uuid"

// Product is the catalog record. ID is fixed once assigned.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Category    string
}

// NewProduct builds a Product, generating a random ID unless a non-nil one
// is supplied. It does not validate its arguments.
func NewProduct(name, description string, price float64, category string, id ...uuid.UUID) Product {
	p := Product{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
	}
	if len(id) > 0 && id[0] != uuid.Nil {
		p.ID = id[0]
	} else {
		p.ID = uuid.New()
	}
	return p
}

// ProductPatch is a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
}

// Apply copies the non-nil fields of patch onto p.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
}
