package components

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/a-h/templ"

	"storefront/internal/catalog"
)

// SkeletonCount is the number of placeholder cards shown while loading.
const SkeletonCount = 6

const descriptionLimit = 140

func tabClass(active bool) string {
	if active {
		return "theme-tab active"
	}
	return "theme-tab"
}

// CategoryLabel returns the option text for a category value.
func CategoryLabel(category string) string {
	if category == catalog.AllCategories {
		return "All Categories"
	}
	r, size := utf8.DecodeRuneInString(category)
	if r == utf8.RuneError {
		return category
	}
	return string(unicode.ToUpper(r)) + category[size:]
}

func resultsLabel(count int) string {
	if count == 1 {
		return "1 product found"
	}
	return strconv.Itoa(count) + " products found"
}

// imageSrc drops image URLs with an unsafe scheme.
func imageSrc(raw string) string {
	return string(templ.URL(raw))
}
