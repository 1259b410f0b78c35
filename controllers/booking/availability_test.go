package bookingControllers

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/KelMarrocos/CarRental/models"
)

func testCars(ids ...string) []models.Car {
	cars := make([]models.Car, len(ids))
	for i, id := range ids {
		cars[i] = models.Car{ID: id}
	}
	return cars
}

func TestFilterAvailableKeepsFreeCarsInOrder(t *testing.T) {
	cars := testCars("a", "b", "c", "d")

	got := filterAvailable(cars, func(car models.Car) (bool, error) {
		return car.ID != "b", nil
	})

	if len(got) != 3 {
		t.Fatalf("expected 3 cars, got %d", len(got))
	}
	for i, want := range []string{"a", "c", "d"} {
		if got[i].ID != want {
			t.Fatalf("result[%d] = %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestFilterAvailableIsolatesFailedChecks(t *testing.T) {
	cars := testCars("a", "b", "c")

	got := filterAvailable(cars, func(car models.Car) (bool, error) {
		if car.ID == "b" {
			return false, errors.New("store unavailable")
		}
		return true, nil
	})

	// the failing candidate is dropped, the rest of the batch survives
	if len(got) != 2 {
		t.Fatalf("expected 2 cars, got %d", len(got))
	}
	for _, car := range got {
		if car.ID == "b" {
			t.Fatal("failed candidate must not appear in results")
		}
	}
}

func TestFilterAvailableRunsEveryCheck(t *testing.T) {
	cars := testCars("a", "b", "c", "d", "e")

	var calls int64
	filterAvailable(cars, func(models.Car) (bool, error) {
		atomic.AddInt64(&calls, 1)
		return true, nil
	})

	if calls != int64(len(cars)) {
		t.Fatalf("expected %d checks, got %d", len(cars), calls)
	}
}

func TestFilterAvailableEmptyInput(t *testing.T) {
	got := filterAvailable(nil, func(models.Car) (bool, error) { return true, nil })
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
