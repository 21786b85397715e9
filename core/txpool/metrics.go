// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

import "github.com/ethereum/go-ethereum/metrics"

// Metric names follow a "subsystem/name" convention.
var (
	residentsGauge  = metrics.NewRegisteredGauge("txpool/residents", nil)
	poolGasGauge    = metrics.NewRegisteredGauge("txpool/gas/current", nil)
	maxPoolGasGauge = metrics.NewRegisteredGauge("txpool/gas/max", nil)

	admittedMeter        = metrics.NewRegisteredMeter("txpool/admitted", nil)
	admittedEvictedMeter = metrics.NewRegisteredMeter("txpool/admitted_with_evictions", nil)
	evictedMeter         = metrics.NewRegisteredMeter("txpool/evicted", nil)
	crowdedOutMeter      = metrics.NewRegisteredMeter("txpool/crowded_out", nil)
	drainedMeter         = metrics.NewRegisteredMeter("txpool/drained", nil)
	rejectedLimitMeter   = metrics.NewRegisteredMeter("txpool/rejected/limit", nil)
	rejectedCollideMeter = metrics.NewRegisteredMeter("txpool/rejected/collision", nil)
)

// Snapshot is a point-in-time read of the engine's metrics, for tests and
// callers that would rather not scrape a Prometheus registry.
type Snapshot struct {
	Residents     int64
	CurrentGas    uint64
	MaxGas        uint64
	Admitted      int64
	Evicted       int64
	CrowdedOut    int64
	Drained       int64
	RejectedLimit int64
	RejectedCollide int64
}
