// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txpool

import "github.com/holiman/uint256"

// Ratio is the rational tip/maxGas profitability key used to rank residents.
// It is never reduced to a float: every comparison cross-multiplies the two
// fractions' numerators and denominators and compares the products, so no
// precision is lost and no overflow occurs even when both tip and maxGas are
// near the uint64 range. uint256 carries the 128-bit-or-wider products
// safely.
type Ratio struct {
	Tip    uint64
	MaxGas uint64
}

// NewRatio builds a Ratio. It does not check maxGas: a zero maxGas is kept
// as is, and under Cmp such a ratio with a positive tip ranks above every
// ratio whose maxGas is non-zero.
func NewRatio(tip, maxGas uint64) Ratio {
	return Ratio{Tip: tip, MaxGas: maxGas}
}

// Cmp returns -1, 0 or +1 as a compares below, equal to, or above b, using
// a*b.MaxGas vs b*a.MaxGas cross-multiplication.
func (a Ratio) Cmp(b Ratio) int {
	left := new(uint256.Int).Mul(uint256.NewInt(a.Tip), uint256.NewInt(b.MaxGas))
	right := new(uint256.Int).Mul(uint256.NewInt(b.Tip), uint256.NewInt(a.MaxGas))
	return left.Cmp(right)
}

// Less reports whether a is strictly less profitable than b.
func (a Ratio) Less(b Ratio) bool { return a.Cmp(b) < 0 }

// GreaterOrEqual reports whether a is at least as profitable as b.
func (a Ratio) GreaterOrEqual(b Ratio) bool { return a.Cmp(b) >= 0 }
