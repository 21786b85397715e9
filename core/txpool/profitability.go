// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

import (
	"container/heap"
	"sort"
)

// ratioHeap is a min-heap over *TxInfo ordered by ascending Ratio, so the
// root is always the least profitable resident, exactly what the crowd-out
// and cheap-reject paths need to fetch in O(1). Ties on ratio favor the
// incumbent: an earlier insertion sorts as "lower", so a new candidate with
// an identical ratio never displaces an existing resident.
//
// github.com/ethereum/go-ethereum/common/prque was evaluated for this and
// rejected: its generic priority is a single cmp.Ordered scalar, which would
// force the ratio down to a lossy fixed-point or float encoding. Comparing
// by cross-multiplication (see Ratio.Cmp) needs an arbitrary comparator,
// which only container/heap's Less(i, j) can express.
type ratioHeap []*TxInfo

func (h ratioHeap) Len() int { return len(h) }

func (h ratioHeap) Less(i, j int) bool {
	if cmp := h[i].Ratio.Cmp(h[j].Ratio); cmp != 0 {
		return cmp < 0
	}
	return h[i].InsertionSeq < h[j].InsertionSeq
}

func (h ratioHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}

func (h *ratioHeap) Push(x any) {
	info := x.(*TxInfo)
	info.heapIndex = len(*h)
	*h = append(*h, info)
}

func (h *ratioHeap) Pop() any {
	old := *h
	n := len(old)
	info := old[n-1]
	old[n-1] = nil
	info.heapIndex = -1
	*h = old[:n-1]
	return info
}

// ProfitabilityIndex is L1: an ordered multiset of residents keyed by the
// tip/maxGas ratio, descending being "more profitable".
type ProfitabilityIndex struct {
	heap ratioHeap
	byID map[TxID]*TxInfo
}

// NewProfitabilityIndex returns an empty index.
func NewProfitabilityIndex() *ProfitabilityIndex {
	return &ProfitabilityIndex{byID: make(map[TxID]*TxInfo)}
}

// Insert adds info to the index. Callers must not insert the same tx id
// twice without an intervening Remove.
func (p *ProfitabilityIndex) Insert(info *TxInfo) {
	p.byID[info.Tx.ID()] = info
	heap.Push(&p.heap, info)
}

// Remove drops the resident with the given id, if present.
func (p *ProfitabilityIndex) Remove(id TxID) {
	info, ok := p.byID[id]
	if !ok {
		return
	}
	delete(p.byID, id)
	heap.Remove(&p.heap, info.heapIndex)
}

// Lowest returns the least profitable resident, or ok=false if the index is
// empty. Constant time: the root of the min-heap.
func (p *ProfitabilityIndex) Lowest() (info *TxInfo, ok bool) {
	if len(p.heap) == 0 {
		return nil, false
	}
	return p.heap[0], true
}

// Len reports the number of residents.
func (p *ProfitabilityIndex) Len() int { return len(p.heap) }

// Contains reports whether id is currently indexed.
func (p *ProfitabilityIndex) Contains(id TxID) bool {
	_, ok := p.byID[id]
	return ok
}

// IterDesc returns a fresh snapshot of residents ordered from most to least
// profitable, tie-broken by insertion sequence. Callers get a point-in-time
// copy rather than a live, restartable iterator, so a sorted copy built on
// demand from the heap's backing slice is sufficient; the index does not
// also maintain a second, separately-sorted structure just to serve this
// one occasional read path.
func (p *ProfitabilityIndex) IterDesc() []*TxInfo {
	out := make([]*TxInfo, len(p.heap))
	copy(out, p.heap)
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].Ratio.Cmp(out[j].Ratio); cmp != 0 {
			return cmp > 0
		}
		return out[i].InsertionSeq < out[j].InsertionSeq
	})
	return out
}
