package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/shopstreamhq/shopstream-backend/internal/catalog"
)

func product(id int64, title, price string) catalog.Product {
	return catalog.Product{
		ID:    id,
		Title: title,
		Price: decimal.RequireFromString(price),
		Image: "https://img/" + title,
	}
}

func TestAddToCartMergesDuplicateIdentifiers(t *testing.T) {
	svc := NewService()
	session := "sess-1"

	svc.AddToCart(session, product(1, "backpack", "109.95"))
	svc.AddToCart(session, product(2, "shirt", "22.30"))
	svc.AddToCart(session, product(1, "backpack", "109.95"))
	svc.AddToCart(session, product(1, "backpack", "109.95"))

	items := svc.Items(session)
	if len(items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(items))
	}
	if items[0].ID != 1 || items[0].Quantity != 3 {
		t.Fatalf("expected first item qty 3, got %+v", items[0])
	}
	if items[1].ID != 2 || items[1].Quantity != 1 {
		t.Fatalf("expected second item qty 1, got %+v", items[1])
	}
}

func TestReAddKeepsInsertionOrder(t *testing.T) {
	svc := NewService()
	session := "sess-1"

	svc.AddToCart(session, product(1, "a", "1"))
	svc.AddToCart(session, product(2, "b", "2"))
	svc.AddToCart(session, product(3, "c", "3"))
	svc.AddToCart(session, product(2, "b", "2"))

	items := svc.Items(session)
	want := []int64{1, 2, 3}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("expected order %v, got item %d at %d", want, items[i].ID, i)
		}
	}
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	svc := NewService()
	session := "sess-1"

	svc.AddToCart(session, product(1, "a", "5"))
	svc.RemoveFromCart(session, 1)
	svc.RemoveFromCart(session, 1)
	svc.RemoveFromCart(session, 99)

	if items := svc.Items(session); len(items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(items))
	}
}

func TestTotalAmountIsDerivedNotCached(t *testing.T) {
	svc := NewService()
	session := "sess-1"

	if !svc.TotalAmount(session).IsZero() {
		t.Fatalf("empty cart total should be zero")
	}

	svc.AddToCart(session, product(1, "a", "109.95"))
	svc.AddToCart(session, product(1, "a", "109.95"))
	svc.AddToCart(session, product(2, "b", "22.30"))

	want := decimal.RequireFromString("242.20")
	if got := svc.TotalAmount(session); !got.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, got)
	}
}

func TestAddThenRemoveRestoresPriorTotal(t *testing.T) {
	svc := NewService()
	session := "sess-1"

	svc.AddToCart(session, product(1, "a", "109.95"))
	before := svc.TotalAmount(session)

	svc.AddToCart(session, product(2, "b", "22.30"))
	svc.RemoveFromCart(session, 2)

	if got := svc.TotalAmount(session); !got.Equal(before) {
		t.Fatalf("expected total restored to %s, got %s", before, got)
	}
}

func TestCartsAreSessionScoped(t *testing.T) {
	svc := NewService()

	svc.AddToCart("sess-1", product(1, "a", "5"))
	if items := svc.Items("sess-2"); len(items) != 0 {
		t.Fatalf("carts must not leak across sessions")
	}
}

func TestItemsReturnsSnapshotCopy(t *testing.T) {
	svc := NewService()
	session := "sess-1"
	svc.AddToCart(session, product(1, "a", "5"))

	items := svc.Items(session)
	items[0].Quantity = 99

	if got := svc.Items(session); got[0].Quantity != 1 {
		t.Fatalf("mutating the snapshot must not touch the store")
	}
}
