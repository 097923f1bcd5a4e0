package pages

import (
	"storefront/internal/catalog"
	"storefront/models"
)

const (
	pageTitle    = "Shop the Collection"
	contactTitle = "Contact"
)

// StorefrontView is everything the storefront page renders from.
type StorefrontView struct {
	Theme    models.Theme
	Criteria catalog.Criteria
	State    catalog.State
}

// NewStorefrontView normalises criteria against the loaded categories.
func NewStorefrontView(active models.Theme, criteria catalog.Criteria, state catalog.State) StorefrontView {
	if criteria.Category == "" {
		criteria.Category = catalog.AllCategories
	}
	if len(state.Categories) == 0 {
		state.Categories = catalog.Categories(state.Products)
	}
	return StorefrontView{Theme: active, Criteria: criteria, State: state}
}

// Visible returns the products that survive the view's criteria.
func (v StorefrontView) Visible() []models.Product {
	return v.Criteria.Apply(v.State.Products)
}
