package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KelMarrocos/CarRental/models"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "bookings": []models.Booking{}})
	}))
	defer srv.Close()

	c := New(srv.URL).WithToken("tok-123")
	if _, err := c.MyBookings(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want bearer token", gotAuth)
	}
}

func TestWithTokenDoesNotMutateReceiver(t *testing.T) {
	base := New("http://example.test")
	authed := base.WithToken("tok")

	if base.Token != "" {
		t.Fatal("base client must stay unauthenticated")
	}
	if authed.Token != "tok" {
		t.Fatalf("authed token = %q", authed.Token)
	}
}

func TestClientSurfacesFailureMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "Unauthorized"})
	}))
	defer srv.Close()

	err := New(srv.URL).ChangeBookingStatus("b1", models.BookingStatusConfirmed)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "Unauthorized" {
		t.Fatalf("message = %q, want Unauthorized", apiErr.Message)
	}
}

func TestCheckAvailabilityDecodesCars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bookings/check-availability" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":       true,
			"availableCars": []models.Car{{ID: "car-1", Brand: "BMW", Model: "X5"}},
		})
	}))
	defer srv.Close()

	cars, err := New(srv.URL).CheckAvailability("Lisbon", "2026-06-11", "2026-06-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cars) != 1 || cars[0].ID != "car-1" {
		t.Fatalf("unexpected cars: %+v", cars)
	}
}

func TestChangeBookingStatusOptimisticRollsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "Status change not allowed"})
	}))
	defer srv.Close()

	booking := models.Booking{ID: "b1", Status: models.BookingStatusCancelled}

	err := New(srv.URL).ChangeBookingStatusOptimistic(&booking, models.BookingStatusConfirmed)
	if err == nil {
		t.Fatal("expected an error")
	}
	if booking.Status != models.BookingStatusCancelled {
		t.Fatalf("status = %s, want rollback to cancelled", booking.Status)
	}
}

func TestChangeBookingStatusOptimisticKeepsOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "message": "Status Updated"})
	}))
	defer srv.Close()

	booking := models.Booking{ID: "b1", Status: models.BookingStatusPending}

	if err := New(srv.URL).ChangeBookingStatusOptimistic(&booking, models.BookingStatusConfirmed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Fatalf("status = %s, want confirmed retained without re-fetch", booking.Status)
	}
}
