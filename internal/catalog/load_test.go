package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"storefront/internal/catalog/catalogtest"
	"storefront/models"
)

func TestLoadSingleShirt(t *testing.T) {
	t.Parallel()

	fetcher := &catalogtest.Fetcher{Products: []models.Product{{
		ID:       1,
		Title:    "Shirt",
		Category: "clothing",
		Price:    decimal.RequireFromString("19.99"),
	}}}

	state := Load(context.Background(), fetcher, 20)
	if state.Loading {
		t.Fatal("expected loading to be false after fetch")
	}
	if state.Err != nil {
		t.Fatalf("unexpected error: %v", state.Err)
	}
	if got := len(Visible(state.Products, "", AllCategories)); got != 1 {
		t.Fatalf("expected one visible product, got %d", got)
	}
	if diff := cmp.Diff([]string{"all", "clothing"}, state.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	if fetcher.Calls != 1 {
		t.Fatalf("expected one fetch, got %d", fetcher.Calls)
	}
}

func TestLoadFailureLeavesEmptySet(t *testing.T) {
	t.Parallel()

	fetcher := &catalogtest.Fetcher{Err: &FetchError{Op: "get products", Err: errors.New("connection refused")}}

	state := Load(context.Background(), fetcher, 20)
	if state.Loading {
		t.Fatal("expected loading to be false after failed fetch")
	}
	if !errors.Is(state.Err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", state.Err)
	}
	if len(state.Products) != 0 {
		t.Fatalf("expected no products, got %d", len(state.Products))
	}
	if diff := cmp.Diff([]string{"all"}, state.Categories); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	if fetcher.Calls != 1 {
		t.Fatalf("expected no retry, got %d calls", fetcher.Calls)
	}
}

func TestPendingIsLoading(t *testing.T) {
	t.Parallel()

	state := Pending()
	if !state.Loading {
		t.Fatal("expected pending state to be loading")
	}
	if len(state.Products) != 0 {
		t.Fatal("expected pending state to have no products")
	}
}
