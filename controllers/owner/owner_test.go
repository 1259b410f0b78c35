package ownerControllers

import (
	"testing"

	"github.com/KelMarrocos/CarRental/models"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestApplyCarUpdatesMutatesStructAndReportsColumns(t *testing.T) {
	ownerID := "owner-1"
	car := &models.Car{
		ID: "car-1", OwnerID: &ownerID,
		Brand: "BMW", Model: "X5", PricePerDay: 300, Location: "Lisbon",
	}

	changed := applyCarUpdates(car, UpdateCarPayload{
		Brand:       strPtr("Audi"),
		PricePerDay: floatPtr(250),
	})

	if car.Brand != "Audi" || car.PricePerDay != 250 {
		t.Fatalf("updates not applied to struct: %+v", car)
	}
	if len(changed) != 2 || changed[0] != "brand" || changed[1] != "price_per_day" {
		t.Fatalf("changed columns = %v", changed)
	}
	// absent fields stay untouched
	if car.Model != "X5" || car.Location != "Lisbon" {
		t.Fatalf("unrelated fields changed: %+v", car)
	}
	if car.OwnerID == nil || *car.OwnerID != "owner-1" {
		t.Fatal("ownership must never change through updates")
	}
}

func TestApplyCarUpdatesEmptyPayload(t *testing.T) {
	car := &models.Car{ID: "car-1", Brand: "BMW"}
	if changed := applyCarUpdates(car, UpdateCarPayload{}); len(changed) != 0 {
		t.Fatalf("expected no changes, got %v", changed)
	}
	if car.Brand != "BMW" {
		t.Fatal("car mutated by empty payload")
	}
}

func TestApplyCarUpdatesReplacesGallery(t *testing.T) {
	car := &models.Car{ID: "car-1", Images: []string{"old.jpg"}}
	gallery := []string{"a.jpg", "b.jpg"}

	changed := applyCarUpdates(car, UpdateCarPayload{Images: &gallery})

	if len(changed) != 1 || changed[0] != "images" {
		t.Fatalf("changed columns = %v", changed)
	}
	if len(car.Images) != 2 || car.Images[0] != "a.jpg" {
		t.Fatalf("gallery not replaced: %v", car.Images)
	}
}
