// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

// PoolEvent is broadcast on Pool's event.Feed whenever a resident is
// admitted or leaves. Exactly one of the two fields is non-zero, the same
// tagged-union style used throughout this package rather than an open
// event struct with a Kind enum.
type PoolEvent struct {
	Inserted *InsertionOutcome
	Removed  *RemovalReceipt
}
