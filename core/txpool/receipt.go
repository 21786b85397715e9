// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

// RemovalCause is the closed sum of reasons a resident leaves the pool,
// named rather than left as a bare string so a receipt consumer can switch
// on it exhaustively.
type RemovalCause interface {
	isRemovalCause()
	String() string
}

// DisplacedByMoreProfitable means a newly admitted transaction's aggregate
// collision-set comparison evicted this resident.
type DisplacedByMoreProfitable struct {
	WinnerID TxID
}

// CrowdedOutBy means this resident was the least profitable one and was
// evicted to make gas room for WinnerID.
type CrowdedOutBy struct {
	WinnerID TxID
}

// Drained means the block builder consumed this transaction.
type Drained struct{}

func (DisplacedByMoreProfitable) isRemovalCause() {}
func (CrowdedOutBy) isRemovalCause()              {}
func (Drained) isRemovalCause()                   {}

func (c DisplacedByMoreProfitable) String() string { return "displaced_by:" + c.WinnerID.Hex() }
func (c CrowdedOutBy) String() string              { return "crowded_out_by:" + c.WinnerID.Hex() }
func (Drained) String() string                     { return "drained" }

// RemovalReceipt is emitted for every eviction cascaded by Insert and for
// every direct Remove. ReleasedUtxos names every upcoming utxo id the pool
// had registered for TxID, so a downstream child-resolution queue can
// invalidate pending children.
type RemovalReceipt struct {
	TxID          TxID
	ReleasedUtxos []UtxoID
	Cause         RemovalCause
}
