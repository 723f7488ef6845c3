package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ecommerce-api/internal/domain"
	authsvc "ecommerce-api/internal/service/auth"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func TestGetCart_NoIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, testDeps(Deps{}))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "No user or session identifier found.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetCart_SessionHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cartSvc := &stubCartService{
		cart: &domain.Cart{ID: 3},
		items: []domain.CartItemDetail{
			{ID: 1, ProductID: 5, Name: "Mug", Price: decimal.NewFromFloat(12.99), Quantity: 2},
		},
	}
	router, err := buildRouter(logDiscard(), nil, testDeps(Deps{CartSvc: cartSvc}))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("X-Session-Id", "s1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if cartSvc.lastOwner.SessionID != "s1" || cartSvc.lastOwner.UserID != nil {
		t.Fatalf("unexpected owner: %+v", cartSvc.lastOwner)
	}
	if !strings.Contains(rec.Body.String(), `"cartId":3`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetCart_SessionCookieFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cartSvc := &stubCartService{cart: &domain.Cart{ID: 4}}
	router, err := buildRouter(logDiscard(), nil, testDeps(Deps{CartSvc: cartSvc}))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "cookie-session"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if cartSvc.lastOwner.SessionID != "cookie-session" {
		t.Fatalf("cookie session not used: %+v", cartSvc.lastOwner)
	}
}

func TestGetCart_HeaderPrecedesCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cartSvc := &stubCartService{cart: &domain.Cart{ID: 4}}
	router, err := buildRouter(logDiscard(), nil, testDeps(Deps{CartSvc: cartSvc}))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("X-Session-Id", "header-session")
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "cookie-session"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if cartSvc.lastOwner.SessionID != "header-session" {
		t.Fatalf("header should take precedence: %+v", cartSvc.lastOwner)
	}
}

// A request with both a valid bearer token and a session header must resolve
// to the user's cart, not the session's.
func TestGetCart_TokenPrecedesSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := authsvc.New(nil, []byte("test-secret"), time.Hour)
	token, err := auth.IssueToken(42, "user@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	cartSvc := &stubCartService{cart: &domain.Cart{ID: 8}}
	router, err := buildRouter(logDiscard(), nil, testDeps(Deps{AuthSvc: auth, CartSvc: cartSvc}))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Session-Id", "s1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if cartSvc.lastOwner.UserID == nil || *cartSvc.lastOwner.UserID != 42 {
		t.Fatalf("expected user identity, got %+v", cartSvc.lastOwner)
	}
	if cartSvc.lastOwner.SessionID != "" {
		t.Fatalf("session should be ignored when a valid token is present")
	}
}

func TestGetCart_InvalidTokenForbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := authsvc.New(nil, []byte("test-secret"), time.Hour)
	router, err := buildRouter(logDiscard(), nil, testDeps(Deps{AuthSvc: auth}))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	req.Header.Set("X-Session-Id", "s1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// A bad token is rejected even though a session fallback exists.
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddCartItem_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cartSvc := &stubCartService{cart: &domain.Cart{ID: 1}}
	router, err := buildRouter(logDiscard(), nil, testDeps(Deps{CartSvc: cartSvc}))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	for _, body := range []string{
		`{"product_id":5,"quantity":0}`,
		`{"product_id":0,"quantity":2}`,
		`{"quantity":-1}`,
		`not json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-Id", "s1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
	if cartSvc.lastAddQty != 0 {
		t.Fatalf("service should not be invoked for invalid payloads")
	}
}

func TestAddCartItem_Created(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cartSvc := &stubCartService{
		cart:      &domain.Cart{ID: 1},
		addedItem: &domain.CartItem{ID: 10, CartID: 1, ProductID: 5, Quantity: 2},
	}
	router, err := buildRouter(logDiscard(), nil, testDeps(Deps{CartSvc: cartSvc}))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"product_id":5,"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", "s1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if cartSvc.lastAddCart != 1 || cartSvc.lastAddProd != 5 || cartSvc.lastAddQty != 2 {
		t.Fatalf("add called with %d/%d/%d", cartSvc.lastAddCart, cartSvc.lastAddProd, cartSvc.lastAddQty)
	}
	if !strings.Contains(rec.Body.String(), `"quantity":2`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRemoveCartItem_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cartSvc := &stubCartService{
		cart:      &domain.Cart{ID: 1},
		removeErr: domain.ErrNotFound,
	}
	router, err := buildRouter(logDiscard(), nil, testDeps(Deps{CartSvc: cartSvc}))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/99", nil)
	req.Header.Set("X-Session-Id", "s1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Item not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestClearCart_OK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cartSvc := &stubCartService{cart: &domain.Cart{ID: 6}}
	router, err := buildRouter(logDiscard(), nil, testDeps(Deps{CartSvc: cartSvc}))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	req.Header.Set("X-Session-Id", "s1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if cartSvc.clearedCartID != 6 {
		t.Fatalf("cleared cart %d, want 6", cartSvc.clearedCartID)
	}
}
