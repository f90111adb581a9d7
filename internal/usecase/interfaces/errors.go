package interfaces

import "errors"

var (
	// ErrTicketNumberExists is returned by Create when the conditional put
	// hits an already-persisted ticket number. The use case retries with a
	// freshly allocated sequence.
	ErrTicketNumberExists = errors.New("ticket number already exists")

	// ErrBatchPrecondition is returned by SignBatch when any ticket in the
	// transaction failed its status condition. No ticket was mutated.
	ErrBatchPrecondition = errors.New("batch sign precondition failed")
)
