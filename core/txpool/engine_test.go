// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 1: simple admit.
func TestEngineScenarioSimpleAdmit(t *testing.T) {
	t.Parallel()

	e := NewEngine(Config{MaxPoolGas: 1000})
	u1 := utxo(0xaa, 0)
	t1 := NewTx(hash(1), 10, 100, []InputRef{CoinRef{UtxoID: u1}}, []Output{coinOutput(1)})

	outcome, err := e.Insert(t1)
	require.NoError(t, err)
	require.True(t, outcome.Admitted())
	require.Equal(t, []CoinEntry{{UtxoID: UtxoID{TxID: t1.ID(), OutputIndex: 0}, Coin: CompressedCoin{Amount: 1}}}, outcome.UpcomingCoins)

	current, _ := e.Gas()
	require.Equal(t, uint64(100), current)

	coin, ok := e.GetCoin(UtxoID{TxID: t1.ID(), OutputIndex: 0})
	require.True(t, ok)
	require.Equal(t, uint64(1), coin.Amount)
}

// Scenario 2: collision, candidate loses.
func TestEngineScenarioCollisionCandidateLoses(t *testing.T) {
	t.Parallel()

	e := NewEngine(Config{MaxPoolGas: 1000})
	u1 := utxo(0xaa, 0)
	t1 := newCoinTx(1, u1, 10, 100)
	_, err := e.Insert(t1)
	require.NoError(t, err)

	t2 := newCoinTx(2, u1, 5, 100)
	_, err = e.Insert(t2)
	require.True(t, errors.Is(err, ErrCollidedAndCollidersMoreProfitable))

	require.True(t, e.Contains(t1.ID()))
	require.False(t, e.Contains(t2.ID()))
	current, _ := e.Gas()
	require.Equal(t, uint64(100), current, "a failed insert must leave pool gas untouched")
}

// Scenario 3: collision, candidate wins.
func TestEngineScenarioCollisionCandidateWins(t *testing.T) {
	t.Parallel()

	e := NewEngine(Config{MaxPoolGas: 1000})
	u1 := utxo(0xaa, 0)
	t1 := newCoinTx(1, u1, 10, 100)
	_, err := e.Insert(t1)
	require.NoError(t, err)

	t3 := newCoinTx(3, u1, 20, 100)
	outcome, err := e.Insert(t3)
	require.NoError(t, err)
	require.False(t, outcome.Admitted())
	require.Len(t, outcome.Evictions, 1)
	require.Equal(t, t1.ID(), outcome.Evictions[0].TxID)
	require.Equal(t, DisplacedByMoreProfitable{WinnerID: t3.ID()}, outcome.Evictions[0].Cause)

	current, _ := e.Gas()
	require.Equal(t, uint64(100), current)
	require.False(t, e.Contains(t1.ID()))
	require.True(t, e.Contains(t3.ID()))
}

// Scenario 4: crowd-out under cap.
func TestEngineScenarioCrowdOut(t *testing.T) {
	t.Parallel()

	e := NewEngine(Config{MaxPoolGas: 200})
	t1 := newCoinTx(1, utxo(0xa1, 0), 1, 100)
	t2 := newCoinTx(2, utxo(0xa2, 0), 2, 100)
	_, err := e.Insert(t1)
	require.NoError(t, err)
	_, err = e.Insert(t2)
	require.NoError(t, err)

	t3 := newCoinTx(3, utxo(0xa3, 0), 100, 100)
	outcome, err := e.Insert(t3)
	require.NoError(t, err)
	require.Len(t, outcome.Evictions, 1)
	require.Equal(t, t1.ID(), outcome.Evictions[0].TxID, "t1 has the lowest ratio and must be crowded out")
	require.Equal(t, CrowdedOutBy{WinnerID: t3.ID()}, outcome.Evictions[0].Cause)

	current, _ := e.Gas()
	require.Equal(t, uint64(200), current)
	require.False(t, e.Contains(t1.ID()))
	require.True(t, e.Contains(t2.ID()))
	require.True(t, e.Contains(t3.ID()))
}

// Scenario 5: cap-reject.
func TestEngineScenarioCapReject(t *testing.T) {
	t.Parallel()

	e := NewEngine(Config{MaxPoolGas: 200})
	t1 := newCoinTx(1, utxo(0xa1, 0), 1, 100)
	t2 := newCoinTx(2, utxo(0xa2, 0), 2, 100)
	t3 := newCoinTx(3, utxo(0xa3, 0), 100, 100)
	for _, tx := range []*Tx{t1, t2, t3} {
		_, err := e.Insert(tx)
		require.NoError(t, err)
	}

	t4 := newCoinTx(4, utxo(0xa4, 0), 1, 100)
	before, _ := e.Gas()
	_, err := e.Insert(t4)
	require.True(t, errors.Is(err, ErrLimitReachedAndCandidateNotBetter))

	after, _ := e.Gas()
	require.Equal(t, before, after)
	require.False(t, e.Contains(t4.ID()))
}

// Scenario 6: upcoming-coin lookup skips non-Coin outputs.
func TestEngineScenarioUpcomingCoinLookup(t *testing.T) {
	t.Parallel()

	e := NewEngine(Config{MaxPoolGas: 1000})
	t5 := NewTx(hash(5), 10, 100, []InputRef{CoinRef{UtxoID: utxo(0xaa, 0)}}, []Output{
		coinOutput(1),
		ChangeOutput{},
		coinOutput(2),
	})
	_, err := e.Insert(t5)
	require.NoError(t, err)

	_, ok := e.GetCoin(UtxoID{TxID: t5.ID(), OutputIndex: 0})
	require.True(t, ok)
	_, ok = e.GetCoin(UtxoID{TxID: t5.ID(), OutputIndex: 1})
	require.False(t, ok)
	_, ok = e.GetCoin(UtxoID{TxID: t5.ID(), OutputIndex: 2})
	require.True(t, ok)
}

// Law L1: idempotent remove.
func TestEngineRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	e := NewEngine(Config{MaxPoolGas: 1000})
	tx := newRootTx(1, 10, 100)
	_, err := e.Insert(tx)
	require.NoError(t, err)

	_, ok := e.Remove(tx.ID(), Drained{})
	require.True(t, ok)
	_, ok = e.Remove(tx.ID(), Drained{})
	require.False(t, ok)
	require.False(t, e.Contains(tx.ID()))
	current, _ := e.Gas()
	require.Zero(t, current)
}

// Law L2: a failing insert leaves state bit-identical.
func TestEngineFailedInsertLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	e := NewEngine(Config{MaxPoolGas: 100})
	resident := newRootTx(1, 50, 100)
	_, err := e.Insert(resident)
	require.NoError(t, err)

	before, _ := e.Gas()
	beforeLen := e.Len()

	weak := newRootTx(2, 1, 100)
	_, err = e.Insert(weak)
	require.Error(t, err)

	after, _ := e.Gas()
	require.Equal(t, before, after)
	require.Equal(t, beforeLen, e.Len())
	require.True(t, e.Contains(resident.ID()))
	require.False(t, e.Contains(weak.ID()))
}

// Property P2: gas cap is never exceeded after a settled operation.
func TestEngineNeverExceedsGasCap(t *testing.T) {
	t.Parallel()

	e := NewEngine(Config{MaxPoolGas: 500})
	for i := byte(1); i <= 10; i++ {
		_, _ = e.Insert(newCoinTx(i, utxo(0xb0+i, 0), uint64(i), 100))
		current, max := e.Gas()
		require.LessOrEqual(t, current, max)
	}
}

// Property P5 / O2: IterBest never exceeds the requested budget and is
// ordered by descending ratio.
func TestEngineIterBestRespectsBudgetAndOrder(t *testing.T) {
	t.Parallel()

	e := NewEngine(Config{MaxPoolGas: 10_000})
	tips := []uint64{5, 50, 1, 30}
	for i, tip := range tips {
		tx := newCoinTx(byte(i+1), utxo(0xc0+byte(i), 0), tip, 100)
		_, err := e.Insert(tx)
		require.NoError(t, err)
	}

	best := e.IterBest(250)
	var cumulative uint64
	var lastRatio = NewRatio(^uint64(0), 1)
	for _, tx := range best {
		cumulative += tx.MaxGas()
		ratio := NewRatio(tx.Tip(), tx.MaxGas())
		require.True(t, ratio.GreaterOrEqual(NewRatio(0, 1)))
		require.False(t, lastRatio.Less(ratio), "IterBest must be non-increasing by ratio")
		lastRatio = ratio
	}
	require.LessOrEqual(t, cumulative, uint64(250))
}

func TestEngineRejectOversizedDefaultAllowsFullCrowdOut(t *testing.T) {
	t.Parallel()

	// With RejectOversized left at its default (false), a candidate whose
	// own max_gas exceeds max_pool_gas is still processed through the
	// ordinary crowd-out cascade: it can evict every resident and still be
	// admitted.
	e := NewEngine(Config{MaxPoolGas: 100})
	resident := newRootTx(1, 1, 50)
	_, err := e.Insert(resident)
	require.NoError(t, err)

	oversized := newRootTx(2, 1000, 150)
	outcome, err := e.Insert(oversized)
	require.NoError(t, err)
	require.Len(t, outcome.Evictions, 1)
	current, _ := e.Gas()
	require.Equal(t, uint64(150), current)
}
