// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

// InputRef is the closed sum of ways a transaction can reference something it
// spends or depends on. It is expressed as an interface with an unexported
// marker method rather than a "kind" field or an open class hierarchy, the
// same tagged-union idiom go-ethereum uses for types.TxData.
type InputRef interface {
	isInputRef()
}

// CoinRef spends a coin produced by an earlier (possibly still-pending)
// transaction.
type CoinRef struct {
	UtxoID UtxoID
}

// MessageRef spends a bridge/deposit message.
type MessageRef struct {
	MessageID MessageID
}

// ContractRef reads or invokes a deployed contract's state slot.
type ContractRef struct {
	ContractID ContractID
}

func (CoinRef) isInputRef()     {}
func (MessageRef) isInputRef()  {}
func (ContractRef) isInputRef() {}

// Output is the closed sum of transaction output kinds.
type Output interface {
	isOutput()
}

// CoinOutput is the only output kind that produces an upcoming coin: its
// value is known at submission time, so a dependent child transaction can
// resolve an input against it before the producing transaction executes.
type CoinOutput struct {
	Amount  uint64
	Owner   Address
	AssetID AssetID
}

// ChangeOutput's final amount depends on execution; it never yields an
// upcoming coin.
type ChangeOutput struct{}

// VariableOutput is populated post-execution; it never yields an upcoming
// coin.
type VariableOutput struct{}

// ContractOutput represents the state of a contract touched by the
// transaction; it is not a spendable coin.
type ContractOutput struct {
	Index uint16
}

// ContractCreatedOutput marks a contract deployment; the contract does not
// exist until the transaction executes, so it never yields an upcoming coin.
type ContractCreatedOutput struct{}

func (CoinOutput) isOutput()             {}
func (ChangeOutput) isOutput()           {}
func (VariableOutput) isOutput()         {}
func (ContractOutput) isOutput()         {}
func (ContractCreatedOutput) isOutput()  {}

// CompressedCoin is the minimal materialization of a Coin output that a
// dependent child transaction needs to resolve its own CoinRef input before
// the producing transaction has executed.
type CompressedCoin struct {
	Amount  uint64
	Owner   Address
	AssetID AssetID
}

// Tx is an immutable candidate or resident transaction. Exactly one Tx value
// exists per transaction id; the engine owns it and hands out index handles
// (ids) to L1/L2/L3 rather than sharing the value itself by reference count,
// so none of those components need their own copy or a cyclic back-pointer.
type Tx struct {
	id      TxID
	tip     uint64
	maxGas  uint64
	inputs  []InputRef
	outputs []Output
}

// NewTx constructs an immutable transaction. Callers are responsible for any
// upstream validation (signatures, script semantics, asset conservation,
// balances); none of that is repeated here.
func NewTx(id TxID, tip, maxGas uint64, inputs []InputRef, outputs []Output) *Tx {
	return &Tx{
		id:      id,
		tip:     tip,
		maxGas:  maxGas,
		inputs:  inputs,
		outputs: outputs,
	}
}

func (t *Tx) ID() TxID             { return t.id }
func (t *Tx) Tip() uint64          { return t.tip }
func (t *Tx) MaxGas() uint64       { return t.maxGas }
func (t *Tx) Inputs() []InputRef   { return t.inputs }
func (t *Tx) Outputs() []Output    { return t.outputs }

// CoinEntry pairs an upcoming coin's utxo id with its compressed value.
type CoinEntry struct {
	UtxoID UtxoID
	Coin   CompressedCoin
}

// upcomingCoins yields one CoinEntry per Coin-typed output, skipping Change,
// Variable, Contract and ContractCreated outputs: those values are only
// known after execution, so dependent transactions on them must wait in a
// separate resolution queue rather than live in this pool.
func (t *Tx) upcomingCoins() []CoinEntry {
	var out []CoinEntry
	for i, output := range t.outputs {
		coin, ok := output.(CoinOutput)
		if !ok {
			continue
		}
		out = append(out, CoinEntry{
			UtxoID: UtxoID{TxID: t.id, OutputIndex: uint16(i)},
			Coin: CompressedCoin{
				Amount:  coin.Amount,
				Owner:   coin.Owner,
				AssetID: coin.AssetID,
			},
		})
	}
	return out
}
