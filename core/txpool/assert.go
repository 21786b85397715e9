// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

import "github.com/ethereum/go-ethereum/log"

// assertInvariant reports an internal invariant violation: a programmer
// error, never a client-facing error. Go has no separate debug/release
// assertion profile, so this checks unconditionally. It logs the offending
// context at Crit, so an operator has a forensic trail; the panic after it
// runs only if the given logger's Crit returns.
func assertInvariant(l log.Logger, ok bool, msg string, ctx ...interface{}) {
	if ok {
		return
	}
	l.Crit(msg, ctx...) // Crit terminates the process once the handler returns
	panic("txpool: invariant violated: " + msg)
}
