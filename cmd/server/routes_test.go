package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"swift-parcel.backend/internal/interfaces/http/handlers"
)

func testRouteDeps(auth gin.HandlerFunc) routeDeps {
	return routeDeps{
		userHandler:    &handlers.UserHandler{},
		parcelHandler:  &handlers.ParcelHandler{},
		riderHandler:   &handlers.RiderHandler{},
		paymentHandler: &handlers.PaymentHandler{},
		authMiddleware: auth,
	}
}

func TestRegisterRoutes_RegistersAllEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerRoutes(r, testRouteDeps(func(c *gin.Context) { c.Next() }))

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/users"},
		{"GET", "/users/search"},
		{"GET", "/users/role/:email"},
		{"PATCH", "/users/make-admin/:email"},
		{"PATCH", "/users/remove-admin/:email"},
		{"POST", "/parcels"},
		{"GET", "/parcels"},
		{"GET", "/parcels/:id"},
		{"DELETE", "/parcels/:id"},
		{"PATCH", "/parcels/assign/:id"},
		{"POST", "/riders"},
		{"GET", "/riders/pending"},
		{"GET", "/riders/active"},
		{"GET", "/riders/by-district"},
		{"PATCH", "/riders/:id"},
		{"POST", "/create-payment-intent"},
		{"POST", "/payments"},
		{"GET", "/payments"},
	}

	routes := r.Routes()
	for _, want := range expects {
		found := false
		for _, route := range routes {
			if route.Method == want.method && route.Path == want.path {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("route %s %s not registered", want.method, want.path)
		}
	}
}

func TestRegisterRoutes_AdminEndpointsBehindIdentityGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// identity gate that rejects everything, as it would an absent credential
	registerRoutes(r, testRouteDeps(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false})
	}))

	gated := []struct {
		method string
		path   string
	}{
		{"GET", "/users/search"},
		{"PATCH", "/users/make-admin/a@b.com"},
		{"GET", "/riders/pending"},
		{"PATCH", "/parcels/assign/xyz"},
		{"GET", "/payments"},
	}
	for _, g := range gated {
		req := httptest.NewRequest(g.method, g.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		// the gate answers before any handler or store is reached
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", g.method, g.path, w.Code)
		}
	}
}

func TestHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCORSMiddleware_PreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	applyCORSMiddleware(r)
	r.POST("/parcels", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/parcels", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS origin header")
	}
}
