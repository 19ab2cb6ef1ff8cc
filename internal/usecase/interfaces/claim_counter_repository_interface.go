package interfaces

import "context"

// IClaimCounterRepository abstracts the durable claim-number counter.
//
// Next must be a single atomic read-modify-write-and-persist unit: two
// concurrent calls can never observe the same prior value, and a value is
// only returned after it has been durably committed. When the write fails,
// no state advances and the error is returned as-is.

type IClaimCounterRepository interface {
	Next(ctx context.Context) (int64, error)
}
