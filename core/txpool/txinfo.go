// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

// TxInfo is the resident bookkeeping record: it wraps an immutable *Tx with
// the insertion sequence number and cached ratio the engine and L1 need. The
// engine owns the TxInfo; L1 only ever sees it through the engine's calls,
// and L2 is given the *Tx rather than the TxInfo.
type TxInfo struct {
	Tx           *Tx
	InsertionSeq uint64
	Ratio        Ratio

	// heapIndex is maintained exclusively by ratioHeap's
	// container/heap.Interface implementation so ProfitabilityIndex.Remove
	// can locate this entry directly instead of by a linear scan.
	heapIndex int
}

// NewTxInfo wraps tx with the bookkeeping the engine attaches on admission.
func NewTxInfo(tx *Tx, seq uint64) *TxInfo {
	return &TxInfo{
		Tx:           tx,
		InsertionSeq: seq,
		Ratio:        NewRatio(tx.Tip(), tx.MaxGas()),
	}
}
