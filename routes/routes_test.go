package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, nil)

	routes := make(map[string]bool)
	for _, ri := range r.Routes() {
		routes[ri.Method+" "+ri.Path] = true
	}
	return routes
}

func TestSetupRoutesRegistersFullSurface(t *testing.T) {
	routes := registeredRoutes(t)

	want := []string{
		http.MethodPost + " /api/user/register",
		http.MethodPost + " /api/user/login",
		http.MethodGet + " /api/user/cars",
		http.MethodGet + " /api/user/data",
		http.MethodGet + " /api/user/bookings",
		http.MethodPost + " /api/bookings/check-availability",
		http.MethodPost + " /api/bookings/create",
		http.MethodGet + " /api/bookings/user",
		http.MethodGet + " /api/bookings/owner",
		http.MethodPost + " /api/bookings/change-status",
		http.MethodPost + " /api/owner/change-role",
		http.MethodPost + " /api/owner/add-car",
		http.MethodGet + " /api/owner/cars",
		http.MethodPut + " /api/owner/car/:id",
		http.MethodPatch + " /api/owner/car/:id/toggle",
		http.MethodDelete + " /api/owner/car/:id",
		http.MethodGet + " /api/owner/dashboard",
		http.MethodGet + " /api/owner/bookings/export",
		http.MethodGet + " /api/owner/ws/bookings",
		http.MethodGet + " /metrics",
	}
	for _, route := range want {
		if !routes[route] {
			t.Errorf("route %s not registered", route)
		}
	}
}

func TestUserBookingsAliasMatchesBookingsUser(t *testing.T) {
	routes := registeredRoutes(t)

	// both spellings of "my bookings" stay exposed
	if !routes["GET /api/user/bookings"] || !routes["GET /api/bookings/user"] {
		t.Fatal("expected both /api/user/bookings and /api/bookings/user")
	}
}
