// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"fmt"

	"github.com/scenicviz/scenic/math32"
	"github.com/scenicviz/scenic/math32/minmax"
)

// ErrInvalidDomain is returned when a scale is constructed with a
// domain it cannot represent.
var ErrInvalidDomain = errors.New("invalid scale domain")

// Scale maps a scalar data domain to the normalized 0..1 range and back,
// and generates tick values and labels for axes.
type Scale interface {

	// Normalize maps a domain value to the 0..1 range. Values outside
	// the domain map outside 0..1; callers use that for extrapolation
	// and clipping decisions.
	Normalize(value float32) float32

	// Denormalize is the exact inverse of Normalize for any input,
	// including inputs outside 0..1.
	Denormalize(normalized float32) float32

	// Ticks returns count tick values evenly spaced across the domain,
	// inclusive of both endpoints, for count >= 2. Ticks(1) returns
	// just the domain minimum; count <= 0 returns nil.
	Ticks(count int) []float32

	// TickLabels renders the given tick values as display labels.
	TickLabels(ticks []float32) []string
}

// LinearScale is a linear mapping from [DomainMin, DomainMax] to 0..1.
// A degenerate domain (DomainMin == DomainMax) normalizes every value
// to 0.5 rather than dividing by zero.
type LinearScale struct {
	DomainMin float32
	DomainMax float32
}

// NewLinearScale returns a new [LinearScale] with the given domain.
func NewLinearScale(domainMin, domainMax float32) *LinearScale {
	return &LinearScale{DomainMin: domainMin, DomainMax: domainMax}
}

// LinearScaleFromData returns a new [LinearScale] spanning the given
// data values, expanded by a 5% margin on each end. Empty data yields
// the unit domain.
func LinearScaleFromData(data []float32) *LinearScale {
	if len(data) == 0 {
		return NewLinearScale(0, 1)
	}
	var mr minmax.F32
	mr.SetInfinity()
	for _, v := range data {
		mr.FitValInRange(v)
	}
	margin := mr.Range() * 0.05
	return NewLinearScale(mr.Min-margin, mr.Max+margin)
}

func (ls *LinearScale) Normalize(value float32) float32 {
	if ls.DomainMax == ls.DomainMin {
		return 0.5
	}
	return (value - ls.DomainMin) / (ls.DomainMax - ls.DomainMin)
}

func (ls *LinearScale) Denormalize(normalized float32) float32 {
	return ls.DomainMin + normalized*(ls.DomainMax-ls.DomainMin)
}

func (ls *LinearScale) Ticks(count int) []float32 {
	return evenTicks(ls.DomainMin, ls.DomainMax, count, func(t float32) float32 { return t })
}

func (ls *LinearScale) TickLabels(ticks []float32) []string {
	labels := make([]string, len(ticks))
	for i, tick := range ticks {
		labels[i] = fmt.Sprintf("%.2f", tick)
	}
	return labels
}

// LogScale is a logarithmic mapping with the given base. The domain
// must be strictly positive and the base positive and not 1.
type LogScale struct {
	DomainMin float32
	DomainMax float32
	Base      float32
}

// NewLogScale returns a new [LogScale] with the given domain and base.
// It returns an error wrapping [ErrInvalidDomain] if either domain bound
// is not positive, or the base is not positive, or the base is 1.
func NewLogScale(domainMin, domainMax, base float32) (*LogScale, error) {
	if domainMin <= 0 || domainMax <= 0 {
		return nil, fmt.Errorf("%w: log scale domain [%g, %g] must be strictly positive", ErrInvalidDomain, domainMin, domainMax)
	}
	if base <= 0 || base == 1 {
		return nil, fmt.Errorf("%w: log scale base %g must be positive and not 1", ErrInvalidDomain, base)
	}
	return &LogScale{DomainMin: domainMin, DomainMax: domainMax, Base: base}, nil
}

// NewLogScaleBase10 returns a new base-10 [LogScale] with the given domain.
func NewLogScaleBase10(domainMin, domainMax float32) (*LogScale, error) {
	return NewLogScale(domainMin, domainMax, 10)
}

func (ls *LogScale) logBase(v float32) float32 {
	return math32.Log(v) / math32.Log(ls.Base)
}

func (ls *LogScale) Normalize(value float32) float32 {
	if value <= 0 {
		return 0
	}
	logMin := ls.logBase(ls.DomainMin)
	logMax := ls.logBase(ls.DomainMax)
	if logMax == logMin {
		return 0.5
	}
	return (ls.logBase(value) - logMin) / (logMax - logMin)
}

func (ls *LogScale) Denormalize(normalized float32) float32 {
	logMin := ls.logBase(ls.DomainMin)
	logMax := ls.logBase(ls.DomainMax)
	return math32.Pow(ls.Base, logMin+normalized*(logMax-logMin))
}

func (ls *LogScale) Ticks(count int) []float32 {
	logMin := ls.logBase(ls.DomainMin)
	logMax := ls.logBase(ls.DomainMax)
	return evenTicks(logMin, logMax, count, func(t float32) float32 {
		return math32.Pow(ls.Base, t)
	})
}

// TickLabels uses scientific notation for very large or very small
// values, fixed-point otherwise.
func (ls *LogScale) TickLabels(ticks []float32) []string {
	labels := make([]string, len(ticks))
	for i, tick := range ticks {
		if tick >= 1000 || tick < 0.01 {
			labels[i] = fmt.Sprintf("%.1e", tick)
		} else {
			labels[i] = fmt.Sprintf("%.2f", tick)
		}
	}
	return labels
}

// evenTicks returns count values evenly spaced in [lo, hi] inclusive,
// passed through the given transform.
func evenTicks(lo, hi float32, count int, f func(float32) float32) []float32 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []float32{f(lo)}
	}
	step := (hi - lo) / float32(count-1)
	ticks := make([]float32, count)
	for i := range ticks {
		ticks[i] = f(lo + float32(i)*step)
	}
	return ticks
}
