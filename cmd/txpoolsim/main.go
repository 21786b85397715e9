// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command txpoolsim feeds a synthetic stream of transactions into a pool and
// reports admission/eviction outcomes, a small harness for eyeballing the
// admission engine's behavior under a fixed gas cap without standing up a
// full node.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/pflag"

	"github.com/luxfi/exectxpool/core/txpool"
)

func main() {
	fs := pflag.NewFlagSet("txpoolsim", pflag.ContinueOnError)
	maxPoolGas := fs.Uint64("max-pool-gas", 1_000_000, "maximum aggregate max_gas the pool will hold")
	count := fs.Int("count", 20, "number of synthetic transactions to submit")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.SetDefault(log.NewLogger(log.NewTerminalHandler(os.Stderr, true)))

	pool := txpool.NewPool(txpool.Config{MaxPoolGas: *maxPoolGas})
	defer pool.Close()

	events := make(chan txpool.PoolEvent, 64)
	sub := pool.Subscribe(events)
	defer sub.Unsubscribe()
	go func() {
		for ev := range events {
			switch {
			case ev.Inserted != nil:
				fmt.Printf("admitted tx=%s evictions=%d\n", ev.Inserted.TxID.Hex(), len(ev.Inserted.Evictions))
			case ev.Removed != nil:
				fmt.Printf("removed  tx=%s cause=%s\n", ev.Removed.TxID.Hex(), ev.Removed.Cause)
			}
		}
	}()

	for i := 0; i < *count; i++ {
		tx := syntheticTx(i)
		if _, err := pool.Insert(tx); err != nil {
			fmt.Printf("rejected tx=%s: %v\n", tx.ID().Hex(), err)
		}
	}

	snap := pool.Metrics()
	fmt.Printf("\nfinal: residents=%d gas=%d/%d admitted=%d evicted=%d crowded_out=%d rejected_limit=%d rejected_collide=%d\n",
		snap.Residents, snap.CurrentGas, snap.MaxGas, snap.Admitted, snap.Evicted, snap.CrowdedOut, snap.RejectedLimit, snap.RejectedCollide)
}

// syntheticTx builds a deterministic single-input, single-output transaction
// whose tip (10..16) and max_gas (50,000..90,000) cycle with i, so ratios
// vary across submissions and, once the cap fills, later submissions are
// either rejected or crowd out cheaper residents.
func syntheticTx(i int) *txpool.Tx {
	id := common.BigToHash(big.NewInt(int64(i)))
	input := txpool.CoinRef{UtxoID: txpool.UtxoID{TxID: common.BigToHash(big.NewInt(int64(i + 1_000_000))), OutputIndex: 0}}
	output := txpool.CoinOutput{
		Amount:  uint64(1_000 + i),
		Owner:   ownerFor(i),
		AssetID: common.Hash{},
	}
	tip := uint64(10 + i%7)
	maxGas := uint64(50_000 + (i%5)*10_000)
	return txpool.NewTx(id, tip, maxGas, []txpool.InputRef{input}, []txpool.Output{output})
}

func ownerFor(i int) txpool.Address {
	var a txpool.Address
	a[31] = byte(i)
	return a
}
