// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

import "errors"

// Client-visible admission errors. Both are recoverable at the caller's
// boundary: a client may resubmit with a higher tip. Neither is ever
// returned for an internal invariant violation, those abort the process
// instead, see assert.go.
var (
	// ErrLimitReachedAndCandidateNotBetter is returned when the pool is
	// full and the candidate's ratio does not strictly exceed the ratio of
	// the current least-profitable resident.
	ErrLimitReachedAndCandidateNotBetter = errors.New("txpool: limit reached and candidate is not better than the lowest resident")

	// ErrCollidedAndCollidersMoreProfitable is returned when the candidate
	// contends for inputs already held by residents whose aggregate ratio
	// is at least as good as the candidate's.
	ErrCollidedAndCollidersMoreProfitable = errors.New("txpool: collided with residents whose aggregate profitability is at least as good")
)
