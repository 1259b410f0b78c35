package client

import "github.com/KelMarrocos/CarRental/models"

// OptimisticUpdate applies a tentative value to a local record before the
// request completes, keeping perceived latency low. If send fails, the
// pre-change snapshot is restored and the error returned; on success the
// tentative value is kept and no re-fetch is needed. Only the record behind
// target is touched, so concurrent edits elsewhere in a list are never
// clobbered by a rollback.
func OptimisticUpdate[T any](target *T, tentative T, send func() error) error {
	snapshot := *target
	*target = tentative
	if err := send(); err != nil {
		*target = snapshot
		return err
	}
	return nil
}

// ChangeBookingStatusOptimistic updates the local booking's status first and
// rolls it back if the server rejects the change.
func (c *Client) ChangeBookingStatusOptimistic(booking *models.Booking, status models.BookingStatus) error {
	return OptimisticUpdate(&booking.Status, status, func() error {
		return c.ChangeBookingStatus(booking.ID, status)
	})
}

// ToggleCarOptimistic flips the local car's availability first and rolls it
// back if the server call fails.
func (c *Client) ToggleCarOptimistic(car *models.Car) error {
	return OptimisticUpdate(&car.IsAvailable, !car.IsAvailable, func() error {
		return c.ToggleCar(car.ID)
	})
}
