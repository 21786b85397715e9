// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

import mapset "github.com/deckarep/golang-set/v2"

// CollisionSet is the set of resident transaction ids that contend for at
// least one input with a candidate. Backed by mapset, the same "set of
// interesting transaction ids" container this corpus reaches for elsewhere
// (ancestor/family tracking in block-building code).
type CollisionSet = mapset.Set[TxID]

// CollisionDetector is L2: three injective maps, one per input variant,
// reporting which residents a candidate's inputs collide with. It is
// oblivious to profitability; the Admission Engine decides whether to evict
// the colliders or reject the candidate.
type CollisionDetector struct {
	coinIndex     map[UtxoID]TxID
	messageIndex  map[MessageID]TxID
	contractIndex map[ContractID]TxID

	// txs retains each indexed transaction by id so a later Remove(id) (the
	// Admission Engine only ever has the id at that point, having already
	// dropped its own TxInfo) knows which index entries belong to it.
	txs map[TxID]*Tx
}

// NewCollisionDetector returns an empty detector.
func NewCollisionDetector() *CollisionDetector {
	return &CollisionDetector{
		coinIndex:     make(map[UtxoID]TxID),
		messageIndex:  make(map[MessageID]TxID),
		contractIndex: make(map[ContractID]TxID),
		txs:           make(map[TxID]*Tx),
	}
}

// Insert walks tx's inputs and reports every resident they collide with. If
// the returned set is non-empty (ok == true), the detector's own maps are
// left unmutated: the caller decides whether to evict the colliders via
// ApplyAndRemoveCollided, or to reject the candidate and leave the indexes
// pointing at the incumbents. If no collision is found, the candidate's
// inputs are installed into the indexes immediately and ok is false.
func (d *CollisionDetector) Insert(tx *Tx) (collisions CollisionSet, ok bool) {
	found := mapset.NewThreadUnsafeSet[TxID]()
	for _, input := range tx.Inputs() {
		switch ref := input.(type) {
		case CoinRef:
			if owner, present := d.coinIndex[ref.UtxoID]; present {
				found.Add(owner)
			}
		case MessageRef:
			if owner, present := d.messageIndex[ref.MessageID]; present {
				found.Add(owner)
			}
		case ContractRef:
			if owner, present := d.contractIndex[ref.ContractID]; present {
				found.Add(owner)
			}
		}
	}
	if found.Cardinality() > 0 {
		return found, true
	}
	d.index(tx)
	return nil, false
}

// ApplyAndRemoveCollided unindexes every collider named by collisions and
// installs tx's own inputs in their place, atomically from the caller's
// point of view: no reader ever observes both the old and new owner
// indexed for the same input.
func (d *CollisionDetector) ApplyAndRemoveCollided(tx *Tx, collisions CollisionSet) {
	collisions.Each(func(id TxID) bool {
		d.Remove(id)
		return false
	})
	d.index(tx)
}

// Remove unindexes a transaction's inputs without reporting a collision; the
// Admission Engine calls this from its own removal path, by id alone.
func (d *CollisionDetector) Remove(id TxID) {
	tx, ok := d.txs[id]
	if !ok {
		return
	}
	delete(d.txs, id)
	for _, input := range tx.Inputs() {
		switch ref := input.(type) {
		case CoinRef:
			delete(d.coinIndex, ref.UtxoID)
		case MessageRef:
			delete(d.messageIndex, ref.MessageID)
		case ContractRef:
			delete(d.contractIndex, ref.ContractID)
		}
	}
}

func (d *CollisionDetector) index(tx *Tx) {
	id := tx.ID()
	d.txs[id] = tx
	for _, input := range tx.Inputs() {
		switch ref := input.(type) {
		case CoinRef:
			d.coinIndex[ref.UtxoID] = id
		case MessageRef:
			d.messageIndex[ref.MessageID] = id
		case ContractRef:
			d.contractIndex[ref.ContractID] = id
		}
	}
}
