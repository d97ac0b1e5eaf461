package port

import "errors"

// Sentinel errors used across ports. Handlers map these onto HTTP statuses;
// services wrap them with stage context via fmt.Errorf and %w.
var (
	// ErrInvalidRequest marks caller mistakes caught before any external call.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstream marks a failed or timed-out embedding/completion call that
	// is fatal to the request.
	ErrUpstream = errors.New("upstream service error")

	// ErrDataIntegrity marks an embedding dimensionality mismatch at load time.
	ErrDataIntegrity = errors.New("data integrity error")

	// ErrSnapshot marks a snapshot read or write failure.
	ErrSnapshot = errors.New("snapshot io error")
)
