// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// TxID, MessageID and ContractID are all 32-byte content identifiers, so we
// reuse go-ethereum's Hash type rather than reinvent it.
type (
	TxID       = common.Hash
	MessageID  = common.Hash
	ContractID = common.Hash
	AssetID    = common.Hash
)

// Address is the 32-byte owner identifier carried by Coin outputs. It is a
// distinct type from go-ethereum's 20-byte common.Address: this pool's
// transactions follow a UTXO model with 32-byte addresses, so a fresh type
// modeled on common.Hash's own API shape is warranted.
type Address [32]byte

// Bytes returns the raw bytes of a.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the hex string representation of a, with 0x prefix.
func (a Address) Hex() string { return fmt.Sprintf("%#x", a[:]) }

// String implements fmt.Stringer.
func (a Address) String() string { return a.Hex() }

// UtxoID is the identifier of a coin produced by a transaction: the producing
// transaction's id together with the index of the output within it.
//
// UtxoID is a plain comparable struct and can be used directly as a map key,
// with no need for reference counting or a synthesized hash. OutputIndex
// fits in 16 bits: a transaction cannot realistically produce more outputs
// than that.
type UtxoID struct {
	TxID        TxID
	OutputIndex uint16
}

// String renders the utxo id as "txid:index", the conventional UTXO notation.
func (u UtxoID) String() string {
	return fmt.Sprintf("%s:%d", u.TxID.Hex(), u.OutputIndex)
}
