package pages

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"storefront/internal/catalog"
	"storefront/internal/catalog/catalogtest"
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

func TestStorefrontRendersLoadingState(t *testing.T) {
	view := NewStorefrontView(models.ThemeWarmCozy, catalog.DefaultCriteria(), catalog.Pending())
	out := render(t, Storefront(view))

	if got := strings.Count(out, `class="loading-card"`); got != 6 {
		t.Fatalf("expected six skeleton cards, got %d", got)
	}
	if strings.Contains(out, "products found") {
		t.Fatalf("expected no result count while loading: %s", out)
	}
	if !strings.Contains(out, `class="theme3"`) {
		t.Fatalf("expected active theme on document: %s", out)
	}
	if !strings.Contains(out, "Shop the Collection") {
		t.Fatalf("expected page heading: %s", out)
	}
	if !strings.Contains(out, `<a href="/contact">Contact</a>`) {
		t.Fatalf("expected link to the contact page: %s", out)
	}
}

func TestStorefrontRendersPopulatedGrid(t *testing.T) {
	state := catalog.Loaded(catalogtest.Products())
	view := NewStorefrontView(models.DefaultTheme, catalog.Criteria{Category: "electronics"}, state)
	out := render(t, Storefront(view))

	if got := strings.Count(out, `class="prodcontainer"`); got != 2 {
		t.Fatalf("expected two electronics cards, got %d", got)
	}
	if !strings.Contains(out, "2 products found") {
		t.Fatalf("expected results count: %s", out)
	}
	if !strings.Contains(out, `<option value="electronics" selected>Electronics</option>`) {
		t.Fatalf("expected selected category in filter bar: %s", out)
	}
}

func TestResultsRendersEmptyStateAfterFailedFetch(t *testing.T) {
	state := catalog.Load(context.Background(), &catalogtest.Fetcher{Err: &catalog.FetchError{Op: "get products", Err: errors.New("offline")}}, 20)
	view := NewStorefrontView(models.DefaultTheme, catalog.DefaultCriteria(), state)
	out := render(t, Results(view, true))

	if state.Loading {
		t.Fatal("expected loading to be false")
	}
	if !strings.Contains(out, "No products found") {
		t.Fatalf("expected empty state: %s", out)
	}
	if !strings.Contains(out, "0 products found") {
		t.Fatalf("expected zero count: %s", out)
	}
	if strings.Contains(out, "loading-card") {
		t.Fatalf("expected no skeletons after failed fetch: %s", out)
	}
}

func TestResultsRendersEmptyStateWhenFiltersExcludeAll(t *testing.T) {
	view := NewStorefrontView(models.DefaultTheme, catalog.Criteria{Query: "zzz", Category: "all"}, catalog.Loaded(catalogtest.Products()))
	out := render(t, Results(view, false))

	if !strings.Contains(out, "Reset Filters") {
		t.Fatalf("expected reset action: %s", out)
	}
	if strings.Contains(out, "hx-swap-oob") {
		t.Fatalf("expected no out-of-band select without refresh: %s", out)
	}
}

func TestResultsRefreshesCategories(t *testing.T) {
	view := NewStorefrontView(models.DefaultTheme, catalog.DefaultCriteria(), catalog.Loaded(catalogtest.Products()))
	out := render(t, Results(view, true))

	if !strings.Contains(out, `hx-swap-oob="true"`) {
		t.Fatalf("expected out-of-band category select: %s", out)
	}
	for _, category := range []string{"Clothing", "Electronics", "Jewelery"} {
		if !strings.Contains(out, ">"+category+"</option>") {
			t.Fatalf("expected %s option: %s", category, out)
		}
	}
}

func TestNewStorefrontViewDefaults(t *testing.T) {
	view := NewStorefrontView(models.DefaultTheme, catalog.Criteria{}, catalog.State{Products: catalogtest.Products()})
	if view.Criteria.Category != catalog.AllCategories {
		t.Fatalf("expected all category default, got %q", view.Criteria.Category)
	}
	if len(view.State.Categories) != 4 {
		t.Fatalf("expected derived categories, got %v", view.State.Categories)
	}
	if len(view.Visible()) != len(catalogtest.Products()) {
		t.Fatalf("expected every product visible by default")
	}
}

func TestContactRendersStaticPage(t *testing.T) {
	out := render(t, Contact(models.ThemeDarkPro))

	if !strings.Contains(out, "<title>Contact</title>") {
		t.Fatalf("expected contact title: %s", out)
	}
	if !strings.Contains(out, `<h2 class="main-title">Welcome to Our Store</h2>`) {
		t.Fatalf("expected contact heading: %s", out)
	}
	if !strings.Contains(out, `class="theme2"`) {
		t.Fatalf("expected active theme on document: %s", out)
	}
	if strings.Contains(out, "prodcontainer") || strings.Contains(out, "loading-card") {
		t.Fatalf("contact page must not render products: %s", out)
	}
}
