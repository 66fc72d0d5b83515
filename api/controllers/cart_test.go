package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/shopstreamhq/shopstream-backend/api/middleware"
	cartsvc "github.com/shopstreamhq/shopstream-backend/internal/cart"
	"github.com/shopstreamhq/shopstream-backend/internal/catalog"
	checkoutsvc "github.com/shopstreamhq/shopstream-backend/internal/checkout"
)

func cartTestCatalog() stubCatalog {
	return stubCatalog{products: []catalog.Product{
		{ID: 1, Title: "Fjallraven Backpack", Price: decimal.NewFromFloat(109.95)},
		{ID: 2, Title: "Mens Casual T-Shirt", Price: decimal.NewFromFloat(22.3)},
	}}
}

func withSession(req *http.Request, sessionID string) *http.Request {
	return req.WithContext(middleware.WithSessionID(req.Context(), sessionID))
}

func decodeCart(t *testing.T, resp *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var envelope struct {
		Data cartResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func TestCartAddItemMergesRepeatAdds(t *testing.T) {
	carts := cartsvc.NewService()
	handler := CartAddItem(carts, cartTestCatalog(), nil)

	for i := 0; i < 2; i++ {
		req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":1}`)), "sess-a")
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", resp.Code)
		}
	}

	items := carts.Items("sess-a")
	if len(items) != 1 {
		t.Fatalf("expected merged line item, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	handler := CartAddItem(cartsvc.NewService(), cartTestCatalog(), nil)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":99}`)), "sess-a")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCartFetchReturnsItemsAndTotal(t *testing.T) {
	carts := cartsvc.NewService()
	cat := cartTestCatalog()
	carts.AddToCart("sess-a", cat.products[0])
	carts.AddToCart("sess-a", cat.products[1])
	carts.AddToCart("sess-a", cat.products[1])

	handler := CartFetch(carts, nil)
	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), "sess-a")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	data := decodeCart(t, resp)
	if len(data.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(data.Items))
	}
	want := decimal.NewFromFloat(154.55)
	if !data.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, data.Total)
	}
}

func TestCartRemoveItem(t *testing.T) {
	carts := cartsvc.NewService()
	cat := cartTestCatalog()
	carts.AddToCart("sess-a", cat.products[0])
	carts.AddToCart("sess-a", cat.products[1])

	router := chi.NewRouter()
	router.Delete("/api/v1/cart/items/{productID}", CartRemoveItem(carts, nil))

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/1", nil), "sess-a")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	data := decodeCart(t, resp)
	if len(data.Items) != 1 || data.Items[0].ID != 2 {
		t.Fatalf("unexpected items after remove: %+v", data.Items)
	}
}

func TestCartRemoveItemBadID(t *testing.T) {
	router := chi.NewRouter()
	router.Delete("/api/v1/cart/items/{productID}", CartRemoveItem(cartsvc.NewService(), nil))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartCheckoutClearsBuyNowSelection(t *testing.T) {
	svc := &stubCheckout{}
	handler := CartCheckout(svc, nil)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/checkout", nil), "sess-a")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if len(svc.cleared) != 1 || svc.cleared[0] != "sess-a" {
		t.Fatalf("expected checkout to clear session sess-a, got %v", svc.cleared)
	}

	var envelope struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data["redirect"] != checkoutsvc.RedirectOrder {
		t.Fatalf("unexpected redirect: %s", envelope.Data["redirect"])
	}
}
