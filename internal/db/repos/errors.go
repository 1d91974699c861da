package repos

import "errors"

var (
	// ErrAdvertiseCapReached is returned when turning a ticket's advertised
	// flag on would exceed the concurrent advertisement cap.
	ErrAdvertiseCapReached = errors.New("advertised ticket cap reached")

	// ErrNotVendor is returned when a fraud mark targets a non-vendor user.
	ErrNotVendor = errors.New("user is not a vendor")
)
