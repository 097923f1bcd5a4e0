package catalog

import (
	"net/http"
	"strings"

	"storefront/models"
)

// AllCategories is the category sentinel that disables category filtering.
const AllCategories = "all"

// Criteria captures the visitor-driven search state.
type Criteria struct {
	Query    string
	Category string
}

// DefaultCriteria matches every product.
func DefaultCriteria() Criteria {
	return Criteria{Category: AllCategories}
}

// CriteriaFromRequest extracts the q and category inputs from a request.
func CriteriaFromRequest(r *http.Request) Criteria {
	criteria := DefaultCriteria()
	if err := r.ParseForm(); err != nil {
		return criteria
	}
	criteria.Query = r.FormValue("q")
	if category := r.FormValue("category"); category != "" {
		criteria.Category = category
	}
	return criteria
}

// IsDefault reports whether the criteria leave the product set untouched.
func (c Criteria) IsDefault() bool {
	return strings.TrimSpace(c.Query) == "" && (c.Category == "" || c.Category == AllCategories)
}

// Apply returns the products visible under the criteria.
func (c Criteria) Apply(products []models.Product) []models.Product {
	return Visible(products, c.Query, c.Category)
}

// Visible derives the visible subset. A category other than "all" must match
// exactly, including case. A non-blank query must appear verbatim in the
// title, ignoring case only; descriptions are never searched. Input order is preserved
// and the input slice is not modified.
func Visible(products []models.Product, query, category string) []models.Product {
	needle := ""
	if strings.TrimSpace(query) != "" {
		needle = strings.ToLower(query)
	}
	filterCategory := category != "" && category != AllCategories

	visible := make([]models.Product, 0, len(products))
	for _, product := range products {
		if filterCategory && product.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(product.Title), needle) {
			continue
		}
		visible = append(visible, product)
	}
	return visible
}

// Categories returns "all" followed by each distinct category in first-seen order.
func Categories(products []models.Product) []string {
	categories := []string{AllCategories}
	seen := make(map[string]struct{}, len(products))
	for _, product := range products {
		if _, ok := seen[product.Category]; ok {
			continue
		}
		seen[product.Category] = struct{}{}
		categories = append(categories, product.Category)
	}
	return categories
}
