// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/log"
)

// InsertionOutcome is the result of a successful Insert. Evictions is empty
// for a plain admission and lists the displaced residents otherwise;
// Admitted tells the two cases apart.
type InsertionOutcome struct {
	TxID          TxID
	UpcomingCoins []CoinEntry
	Evictions     []RemovalReceipt // nil unless residents were displaced
}

// Admitted reports whether the candidate displaced zero residents.
func (o InsertionOutcome) Admitted() bool { return len(o.Evictions) == 0 }

// Engine is L4, the Admission Engine: it composes the Profitability Index
// (L1), Collision Detector (L2) and Upcoming-Coin Registry (L3) into the
// insert/remove contract, enforces the gas cap, and emits removal receipts.
//
// Engine uses a coarse exclusive lock for its concurrency: a single
// sync.RWMutex protects all state, readers (IterBest) take the read lock,
// writers (Insert/Remove/Drain) take the write lock. Pool (pool.go) layers
// an actor on top of it for callers who want writers serialized without
// contending with readers.
type Engine struct {
	mu sync.RWMutex

	config Config
	log    log.Logger

	maxPoolGas     uint64
	currentPoolGas uint64
	nextSeq        uint64

	residents map[TxID]*TxInfo
	index     *ProfitabilityIndex
	collision *CollisionDetector
	coins     *CoinRegistry
}

// NewEngine constructs an empty engine with the given configuration.
func NewEngine(config Config) *Engine {
	config = config.sanitize()
	return &Engine{
		config:     config,
		log:        config.logger(),
		maxPoolGas: config.MaxPoolGas,
		residents:  make(map[TxID]*TxInfo),
		index:      NewProfitabilityIndex(),
		collision:  NewCollisionDetector(),
		coins:      NewCoinRegistry(),
	}
}

// Contains reports whether tx_id currently names a resident.
func (e *Engine) Contains(id TxID) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.residents[id]
	return ok
}

// GetCoin delegates to L3.
func (e *Engine) GetCoin(id UtxoID) (CompressedCoin, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.coins.Lookup(id)
}

// Gas returns the current and configured maximum pool gas, for observability.
func (e *Engine) Gas() (current, limit uint64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.currentPoolGas, e.maxPoolGas
}

// Len returns the resident count.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index.Len()
}

// IterBest returns residents in descending-ratio order whose cumulative
// MaxGas fits within budgetGas, the contract a block builder drives against.
func (e *Engine) IterBest(budgetGas uint64) []*Tx {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ordered := e.index.IterDesc()
	out := make([]*Tx, 0, len(ordered))
	var cumulative uint64
	for _, info := range ordered {
		next := cumulative + info.Tx.MaxGas()
		if next > budgetGas {
			continue
		}
		cumulative = next
		out = append(out, info.Tx)
	}
	return out
}

// Insert runs the four-step admission algorithm: cheap rejection against
// the current minimum, collision resolution, crowd-out, then commit.
// Insertion is atomic from the caller's perspective: either the whole
// cascade commits, or, on error, the engine is left bit-identical to its
// pre-call state.
func (e *Engine) Insert(tx *Tx) (InsertionOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidateRatio := NewRatio(tx.Tip(), tx.MaxGas())

	// Step 1: cheap-reject on a full pool. If the candidate cannot beat the
	// current worst resident, no crowd-out sequence can succeed: we would
	// only ever remove residents weakly better than the candidate, which
	// contradicts increasing average profitability.
	targetGas := saturatingSub(e.maxPoolGas, tx.MaxGas())
	if e.currentPoolGas > targetGas {
		lowest, ok := e.index.Lowest()
		assertInvariant(e.log, ok, "current pool gas is non-zero but profitability index is empty",
			"currentPoolGas", e.currentPoolGas)
		if lowest.Ratio.GreaterOrEqual(candidateRatio) {
			rejectedLimitMeter.Mark(1)
			return InsertionOutcome{}, fmt.Errorf("%w: tx %s", ErrLimitReachedAndCandidateNotBetter, tx.ID())
		}
	}

	// Step 2: collision resolution.
	evictions, err := e.resolveCollisions(tx, candidateRatio)
	if err != nil {
		rejectedCollideMeter.Mark(1)
		return InsertionOutcome{}, err
	}

	// Step 3: crowd-out. Below this point the insertion cannot fail, because
	// any collision already found was resolved in the candidate's favor.
	evictions = append(evictions, e.crowdOut(tx)...)

	// Step 4: commit.
	upcoming := e.commit(tx)

	if len(evictions) == 0 {
		admittedMeter.Mark(1)
	} else {
		admittedEvictedMeter.Mark(1)
	}
	e.refreshGauges()

	return InsertionOutcome{TxID: tx.ID(), UpcomingCoins: upcoming, Evictions: evictions}, nil
}

// resolveCollisions queries L2 and, if the candidate does not dominate the
// colliders on aggregate profitability, fails without mutating any state:
// L2's indexes are left pointing at the incumbents. Otherwise it cascades
// the eviction through L1-L3 and returns the accumulated receipts.
func (e *Engine) resolveCollisions(tx *Tx, candidateRatio Ratio) ([]RemovalReceipt, error) {
	collisions, collided := e.collision.Insert(tx)
	if !collided {
		return nil, nil
	}

	var totalTip, totalGas uint64
	collisions.Each(func(id TxID) bool {
		info, ok := e.residents[id]
		assertInvariant(e.log, ok, "collision set names a transaction absent from residents", "txID", id)
		totalTip = saturatingAdd(totalTip, info.Tx.Tip())
		totalGas = saturatingAdd(totalGas, info.Tx.MaxGas())
		return false
	})
	aggregateRatio := NewRatio(totalTip, totalGas)

	if candidateRatio.Cmp(aggregateRatio) <= 0 {
		// Leave L2 unmutated: the colliders keep their indexed inputs.
		return nil, fmt.Errorf("%w: tx %s", ErrCollidedAndCollidersMoreProfitable, tx.ID())
	}

	e.collision.ApplyAndRemoveCollided(tx, collisions)

	var receipts []RemovalReceipt
	collisions.Each(func(id TxID) bool {
		if receipt, ok := e.removeLocked(id, DisplacedByMoreProfitable{WinnerID: tx.ID()}); ok {
			receipts = append(receipts, receipt)
			evictedMeter.Mark(1)
		}
		return false
	})
	return receipts, nil
}

// crowdOut evicts the least profitable residents, one at a time, until
// candidate's MaxGas fits under the cap. Termination is guaranteed: each
// iteration strictly decreases currentPoolGas by the victim's MaxGas >= 1.
func (e *Engine) crowdOut(candidate *Tx) []RemovalReceipt {
	targetGas := saturatingSub(e.maxPoolGas, candidate.MaxGas())
	var receipts []RemovalReceipt
	for e.currentPoolGas > targetGas {
		victim, ok := e.index.Lowest()
		assertInvariant(e.log, ok, "current pool gas exceeds target but profitability index is empty",
			"currentPoolGas", e.currentPoolGas, "targetGas", targetGas)
		receipt, ok := e.removeLocked(victim.Tx.ID(), CrowdedOutBy{WinnerID: candidate.ID()})
		assertInvariant(e.log, ok, "lowest-ratio resident vanished mid crowd-out", "txID", victim.Tx.ID())
		receipts = append(receipts, receipt)
		crowdedOutMeter.Mark(1)
	}
	return receipts
}

// commit installs the candidate into L1 and L3 and accounts for its gas.
// It never fails: by this point any blocking collision has already been
// resolved in the candidate's favor.
func (e *Engine) commit(tx *Tx) []CoinEntry {
	e.nextSeq++
	info := NewTxInfo(tx, e.nextSeq)

	e.residents[tx.ID()] = info
	e.index.Insert(info)
	upcoming := e.coins.Register(tx)
	e.currentPoolGas = saturatingAdd(e.currentPoolGas, tx.MaxGas())

	return upcoming
}

// Remove unindexes tx_id from L1-L3 and accounts for its gas, reporting the
// cause in the returned receipt. Idempotent: removing an absent id is a
// no-op that returns ok=false.
func (e *Engine) Remove(id TxID, cause RemovalCause) (RemovalReceipt, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	receipt, ok := e.removeLocked(id, cause)
	if ok {
		if _, isDrain := cause.(Drained); isDrain {
			drainedMeter.Mark(1)
		}
		e.refreshGauges()
	}
	return receipt, ok
}

// Drain removes a transaction that was included in a block: equivalent to
// Remove(tx_id, Drained), invoked by the block builder after inclusion.
func (e *Engine) Drain(id TxID) (RemovalReceipt, bool) {
	return e.Remove(id, Drained{})
}

// removeLocked performs the actual removal; callers must hold e.mu.
func (e *Engine) removeLocked(id TxID, cause RemovalCause) (RemovalReceipt, bool) {
	info, ok := e.residents[id]
	if !ok {
		return RemovalReceipt{}, false
	}
	delete(e.residents, id)
	e.index.Remove(id)
	e.currentPoolGas = saturatingSub(e.currentPoolGas, info.Tx.MaxGas())
	released := e.coins.Unregister(info.Tx)
	e.collision.Remove(id)

	return RemovalReceipt{
		TxID:          id,
		ReleasedUtxos: released,
		Cause:         cause,
	}, true
}

func (e *Engine) refreshGauges() {
	residentsGauge.Update(int64(e.index.Len()))
	poolGasGauge.Update(int64(e.currentPoolGas))
	maxPoolGasGauge.Update(int64(e.maxPoolGas))
}

// Metrics returns a point-in-time snapshot without touching the Prometheus
// wiring, handy for tests.
func (e *Engine) Metrics() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Snapshot{
		Residents:       int64(e.index.Len()),
		CurrentGas:      e.currentPoolGas,
		MaxGas:          e.maxPoolGas,
		Admitted:        admittedMeter.Count() + admittedEvictedMeter.Count(),
		Evicted:         evictedMeter.Count(),
		CrowdedOut:      crowdedOutMeter.Count(),
		Drained:         drainedMeter.Count(),
		RejectedLimit:   rejectedLimitMeter.Count(),
		RejectedCollide: rejectedCollideMeter.Count(),
	}
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
