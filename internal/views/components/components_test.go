package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"

	"storefront/internal/catalog"
	"storefront/models"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render component: %v", err)
	}
	return buf.String()
}

func TestCategoryLabel(t *testing.T) {
	tests := map[string]string{
		"all":            "All Categories",
		"electronics":    "Electronics",
		"men's clothing": "Men's clothing",
		"":               "",
		"émigré goods":   "Émigré goods",
	}
	for in, want := range tests {
		if got := CategoryLabel(in); got != want {
			t.Fatalf("CategoryLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestThemeTabsMarksActiveTheme(t *testing.T) {
	out := render(t, ThemeTabs(models.ThemeDarkPro))
	if strings.Count(out, "<button") != 3 {
		t.Fatalf("expected three theme tabs: %s", out)
	}
	if !strings.Contains(out, `value="theme2" class="theme-tab active"`) {
		t.Fatalf("expected theme2 tab to be active: %s", out)
	}
	if strings.Count(out, "theme-tab active") != 1 {
		t.Fatalf("expected exactly one active tab: %s", out)
	}
	for _, label := range []string{"Clean Light", "Dark Pro", "Warm Cozy"} {
		if !strings.Contains(out, label) {
			t.Fatalf("expected tab label %q: %s", label, out)
		}
	}
}

func TestFilterBarKeepsCriteria(t *testing.T) {
	criteria := catalog.Criteria{Query: `"shoes"`, Category: "clothing"}
	out := render(t, FilterBar(criteria, []string{"all", "clothing", "electronics"}))
	if !strings.Contains(out, `value="&#34;shoes&#34;"`) {
		t.Fatalf("expected escaped query value: %s", out)
	}
	if !strings.Contains(out, `<option value="clothing" selected>Clothing</option>`) {
		t.Fatalf("expected selected category option: %s", out)
	}
	if !strings.Contains(out, `<option value="all">All Categories</option>`) {
		t.Fatalf("expected all categories option: %s", out)
	}
	if strings.Contains(out, "hx-swap-oob") {
		t.Fatalf("filter bar select must not be out-of-band: %s", out)
	}
}

func TestCategorySelectOutOfBand(t *testing.T) {
	out := render(t, CategorySelect([]string{"all"}, "all", true))
	if !strings.Contains(out, `hx-swap-oob="true"`) {
		t.Fatalf("expected out-of-band attribute: %s", out)
	}
}

func TestSkeletonGridRendersPlaceholders(t *testing.T) {
	out := render(t, SkeletonGrid(SkeletonCount))
	if got := strings.Count(out, `class="loading-card"`); got != SkeletonCount {
		t.Fatalf("expected %d placeholders, got %d", SkeletonCount, got)
	}
	if !strings.Contains(out, `hx-get="/products"`) {
		t.Fatalf("expected skeleton grid to request products: %s", out)
	}
	if !strings.Contains(out, `<noscript><a href="/?nojs"`) {
		t.Fatalf("expected a scriptless fallback link: %s", out)
	}
}

func TestEmptyStateOffersReset(t *testing.T) {
	out := render(t, EmptyState())
	if !strings.Contains(out, "No products found") {
		t.Fatalf("expected empty state message: %s", out)
	}
	if !strings.Contains(out, `<a href="/" class="reset-filters-btn"`) {
		t.Fatalf("expected reset action: %s", out)
	}
}

func TestResultsCount(t *testing.T) {
	if out := render(t, ResultsCount(1)); !strings.Contains(out, "1 product found") {
		t.Fatalf("unexpected singular count: %s", out)
	}
	if out := render(t, ResultsCount(0)); !strings.Contains(out, "0 products found") {
		t.Fatalf("unexpected zero count: %s", out)
	}
}

func TestProductCardRendersFields(t *testing.T) {
	product := models.Product{
		ID:          7,
		Title:       "Red <Shoes>",
		Description: strings.Repeat("comfortable ", 30),
		Image:       "https://img.example/7.png",
		Price:       decimal.RequireFromString("22.3"),
		Category:    "clothing",
	}
	out := render(t, ProductCard(product))
	for _, token := range []string{
		`data-product-id="7"`,
		`src="https://img.example/7.png"`,
		"Red &lt;Shoes&gt;",
		"$22.30",
		`<div class="category-badge">clothing</div>`,
		"…",
	} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected %q in card: %s", token, out)
		}
	}
}

func TestProductCardSanitisesImageURL(t *testing.T) {
	out := render(t, ProductCard(models.Product{ID: 1, Image: "javascript:alert(1)"}))
	if strings.Contains(out, "javascript:") {
		t.Fatalf("expected unsafe image url to be replaced: %s", out)
	}
}

func TestProductGridRendersOneCardPerProduct(t *testing.T) {
	products := []models.Product{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}
	out := render(t, ProductGrid(products))
	if got := strings.Count(out, `class="prodcontainer"`); got != 2 {
		t.Fatalf("expected two cards, got %d", got)
	}
}
