// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

// CoinRegistry is L3: a map from the utxo id of a resident's Coin output to
// its compressed materialization, so a child transaction can resolve a
// CoinRef input before the producing transaction has executed. Change,
// Variable, Contract and ContractCreated outputs never appear here: their
// values are only known post-execution.
type CoinRegistry struct {
	coins map[UtxoID]CompressedCoin
}

// NewCoinRegistry returns an empty registry.
func NewCoinRegistry() *CoinRegistry {
	return &CoinRegistry{coins: make(map[UtxoID]CompressedCoin)}
}

// Register installs every Coin output of tx and returns the entries, so the
// caller can forward the same list both to an insertion outcome and to a
// higher-layer child-resolution queue.
func (r *CoinRegistry) Register(tx *Tx) []CoinEntry {
	entries := tx.upcomingCoins()
	for _, entry := range entries {
		r.coins[entry.UtxoID] = entry.Coin
	}
	return entries
}

// Unregister drops every Coin output of tx and returns their utxo ids, so
// the caller can report them in a removal receipt.
func (r *CoinRegistry) Unregister(tx *Tx) []UtxoID {
	entries := tx.upcomingCoins()
	ids := make([]UtxoID, 0, len(entries))
	for _, entry := range entries {
		delete(r.coins, entry.UtxoID)
		ids = append(ids, entry.UtxoID)
	}
	return ids
}

// Lookup returns the compressed coin registered for id, if any.
func (r *CoinRegistry) Lookup(id UtxoID) (CompressedCoin, bool) {
	coin, ok := r.coins[id]
	return coin, ok
}
