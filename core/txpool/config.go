// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

import "github.com/ethereum/go-ethereum/log"

// Config holds the pool's tunables: the hard gas cap, plus a couple of
// ambient knobs a deployment can wire in alongside it.
type Config struct {
	// MaxPoolGas is the hard cap on the sum of resident max_gas values.
	MaxPoolGas uint64

	// RejectOversized is carried with the configuration but Engine.Insert
	// does not read it: whatever its value, a candidate whose MaxGas alone
	// exceeds MaxPoolGas goes through the ordinary crowd-out, can evict
	// every resident, and is still admitted.
	RejectOversized bool

	// Logger overrides the package-level logger. Nil means use log.Root().
	Logger log.Logger
}

// DefaultConfig is a ready-to-use zero-friction value callers can copy and
// adjust.
var DefaultConfig = Config{
	MaxPoolGas:      30_000_000,
	RejectOversized: false,
}

// sanitize returns a copy of c with a zero MaxPoolGas replaced by the
// default, logging a warning rather than admitting a pool that can never
// hold anything, instead of panicking. The logger is chosen by logger().
func (c Config) sanitize() Config {
	conf := c
	if conf.MaxPoolGas == 0 {
		log.Warn("Sanitizing invalid txpool max gas", "provided", conf.MaxPoolGas, "updated", DefaultConfig.MaxPoolGas)
		conf.MaxPoolGas = DefaultConfig.MaxPoolGas
	}
	return conf
}

func (c Config) logger() log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Root()
}
