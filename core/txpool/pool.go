// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/log"
)

// ErrPoolClosed is returned by any Pool method invoked after Close.
var ErrPoolClosed = errors.New("txpool: pool is closed")

// Pool is an actor-model wrapper around Engine: a single goroutine owns
// every write, serialized through requests on a channel instead of letting
// callers drive the engine directly. Reads (Contains, GetCoin, IterBest,
// Metrics) bypass the actor and hit the Engine's RWMutex directly, since
// Engine is already safe for concurrent readers.
//
// Construct an Engine directly instead of a Pool when callers are content
// with coarse mutual exclusion and don't need an event feed or a single
// serialization point for writes.
type Pool struct {
	engine *Engine
	log    log.Logger

	reqCh chan poolRequest
	quit  chan chan error
	term  chan struct{}

	feed event.Feed
	subs event.SubscriptionScope
}

type poolRequest struct {
	insert *Tx
	remove *TxID
	cause  RemovalCause

	insertResp chan<- insertResult
	removeResp chan<- removeResult
}

type insertResult struct {
	outcome InsertionOutcome
	err     error
}

type removeResult struct {
	receipt RemovalReceipt
	ok      bool
}

// NewPool wraps a freshly constructed Engine in the actor and starts its
// serializing goroutine.
func NewPool(config Config) *Pool {
	engine := NewEngine(config)
	p := &Pool{
		engine: engine,
		log:    engine.log,
		reqCh:  make(chan poolRequest),
		quit:   make(chan chan error),
		term:   make(chan struct{}),
	}
	go p.loop()
	return p
}

// loop is the pool's sole writer goroutine: a select over inbound work and
// a quit channel that hands back an error and closes a termination marker
// other goroutines can watch.
func (p *Pool) loop() {
	defer close(p.term)

	for {
		select {
		case req := <-p.reqCh:
			p.serve(req)

		case errc := <-p.quit:
			errc <- nil
			return
		}
	}
}

func (p *Pool) serve(req poolRequest) {
	switch {
	case req.insert != nil:
		outcome, err := p.engine.Insert(req.insert)
		if err == nil {
			p.feed.Send(PoolEvent{Inserted: &outcome})
			for _, r := range outcome.Evictions {
				r := r
				p.feed.Send(PoolEvent{Removed: &r})
			}
		}
		req.insertResp <- insertResult{outcome: outcome, err: err}

	case req.remove != nil:
		receipt, ok := p.engine.Remove(*req.remove, req.cause)
		if ok {
			p.feed.Send(PoolEvent{Removed: &receipt})
		}
		req.removeResp <- removeResult{receipt: receipt, ok: ok}
	}
}

// Insert submits tx through the actor, blocking until it has been admitted
// or rejected. Safe for concurrent callers: requests are queued and served
// one at a time by the pool's loop goroutine.
func (p *Pool) Insert(tx *Tx) (InsertionOutcome, error) {
	respCh := make(chan insertResult, 1)
	select {
	case p.reqCh <- poolRequest{insert: tx, insertResp: respCh}:
	case <-p.term:
		return InsertionOutcome{}, ErrPoolClosed
	}
	select {
	case res := <-respCh:
		return res.outcome, res.err
	case <-p.term:
		return InsertionOutcome{}, ErrPoolClosed
	}
}

// Remove submits a removal through the actor.
func (p *Pool) Remove(id TxID, cause RemovalCause) (RemovalReceipt, bool) {
	respCh := make(chan removeResult, 1)
	select {
	case p.reqCh <- poolRequest{remove: &id, cause: cause, removeResp: respCh}:
	case <-p.term:
		return RemovalReceipt{}, false
	}
	select {
	case res := <-respCh:
		return res.receipt, res.ok
	case <-p.term:
		return RemovalReceipt{}, false
	}
}

// Drain is the block builder's post-inclusion notification.
func (p *Pool) Drain(id TxID) (RemovalReceipt, bool) {
	return p.Remove(id, Drained{})
}

// Contains, GetCoin, IterBest, Len and Metrics read through to the Engine
// directly: the Engine's RWMutex already makes them safe to call
// concurrently with the actor's writes.
func (p *Pool) Contains(id TxID) bool                    { return p.engine.Contains(id) }
func (p *Pool) GetCoin(id UtxoID) (CompressedCoin, bool) { return p.engine.GetCoin(id) }
func (p *Pool) IterBest(budgetGas uint64) []*Tx           { return p.engine.IterBest(budgetGas) }
func (p *Pool) Len() int                                  { return p.engine.Len() }
func (p *Pool) Metrics() Snapshot                         { return p.engine.Metrics() }

// Subscribe registers ch to receive PoolEvents until the returned
// Subscription is unsubscribed or the pool is closed.
func (p *Pool) Subscribe(ch chan<- PoolEvent) event.Subscription {
	return p.subs.Track(p.feed.Subscribe(ch))
}

// Close stops the actor goroutine and unsubscribes every listener:
// subscriptions first, then the loop, reporting any error the loop hands
// back.
func (p *Pool) Close() error {
	p.subs.Close()

	errc := make(chan error)
	select {
	case p.quit <- errc:
	case <-p.term:
		return nil // already closed
	}
	if err := <-errc; err != nil {
		return fmt.Errorf("txpool: close: %w", err)
	}
	return nil
}
