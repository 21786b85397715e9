// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

import "github.com/ethereum/go-ethereum/common"

// hash builds a deterministic 32-byte id from a small integer, so tests read
// as "tx 1 spends tx 2's coin 0" instead of drowning in literal hex.
func hash(n byte) TxID {
	var h TxID
	h[31] = n
	return h
}

func utxo(producer byte, index uint16) UtxoID {
	return UtxoID{TxID: hash(producer), OutputIndex: index}
}

func coinOutput(amount uint64) CoinOutput {
	return CoinOutput{Amount: amount, Owner: Address{}, AssetID: common.Hash{}}
}

// newCoinTx builds a transaction with a single coin input spending
// `spends` and a single coin output, with the given tip/maxGas.
func newCoinTx(id byte, spends UtxoID, tip, maxGas uint64) *Tx {
	return NewTx(hash(id), tip, maxGas,
		[]InputRef{CoinRef{UtxoID: spends}},
		[]Output{coinOutput(1)})
}

// newRootTx builds a transaction whose single input spends a utxo no other
// test transaction produces, so it never collides with anything.
func newRootTx(id byte, tip, maxGas uint64) *Tx {
	return newCoinTx(id, utxo(0xff-id, 0), tip, maxGas)
}
