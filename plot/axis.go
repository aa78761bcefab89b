// Copyright (c) 2025, The Scenic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"github.com/scenicviz/scenic/colors"
	"github.com/scenicviz/scenic/math32"
)

// AxisDirections are the orientations an [Axis] can have.
type AxisDirections int32

const (
	Horizontal AxisDirections = iota
	Vertical
)

// AxisStyle has the colors and sizes for rendering one axis.
type AxisStyle struct {
	AxisColor  colors.Color
	TickColor  colors.Color
	LabelColor colors.Color
	TickLength float32
	LabelSize  float32
	TitleSize  float32
}

func (as *AxisStyle) Defaults() {
	as.AxisColor = colors.RGB(0.2, 0.2, 0.2)
	as.TickColor = colors.RGB(0.4, 0.4, 0.4)
	as.LabelColor = colors.RGB(0.1, 0.1, 0.1)
	as.TickLength = 5
	as.LabelSize = 12
	as.TitleSize = 14
}

// Axis renders one axis: a shaft line along its direction, one tick
// line and one tick label per tick value from its [Scale], and an
// optional title. The tick position along the shaft is
// anchor + Normalize(tick) * length. An axis is configured once and
// then queried for primitives; it is not mutated afterward.
type Axis struct {

	// Direction is the axis orientation.
	Direction AxisDirections

	// Scale provides tick values and the data-to-position mapping.
	Scale Scale

	// Position is the screen anchor: the start point of the shaft.
	Position math32.Vector2

	// Length is the shaft length in pixels.
	Length float32

	// Title is the optional axis title.
	Title string

	// TickCount is the number of ticks requested from the Scale.
	TickCount int

	// Style has the axis colors and sizes.
	Style AxisStyle
}

// NewAxis returns a new [Axis] with the given direction, scale, screen
// anchor and length, 5 ticks, and default styling.
func NewAxis(dir AxisDirections, scale Scale, position math32.Vector2, length float32) *Axis {
	ax := &Axis{Direction: dir, Scale: scale, Position: position, Length: length, TickCount: 5}
	ax.Style.Defaults()
	return ax
}

// SetTitle sets the axis title and returns the axis for chaining.
func (ax *Axis) SetTitle(title string) *Axis {
	ax.Title = title
	return ax
}

// SetTickCount sets the number of ticks and returns the axis for chaining.
func (ax *Axis) SetTickCount(count int) *Axis {
	ax.TickCount = count
	return ax
}

// SetStyle sets the axis style and returns the axis for chaining.
func (ax *Axis) SetStyle(style AxisStyle) *Axis {
	ax.Style = style
	return ax
}

// Primitives returns the primitive set for this axis: the shaft line,
// then a tick line and a tick label for each tick, then the title if
// set. With n ticks that is exactly 1 + 2n + 1-if-titled primitives.
func (ax *Axis) Primitives() []Primitive {
	prims := []Primitive{}

	start, end := ax.shaftPoints()
	prims = append(prims, Line{Start: start, End: end})

	for _, tick := range ax.Scale.Ticks(ax.TickCount) {
		pos := ax.valueToPosition(tick)
		tickStart, tickEnd := ax.tickPoints(pos)
		prims = append(prims, Line{Start: tickStart, End: tickEnd})
		prims = append(prims, ax.tickLabel(pos, tick))
	}

	if ax.Title != "" {
		prims = append(prims, ax.titleText())
	}
	return prims
}

// valueToPosition returns the coordinate along the shaft direction for
// the given data value.
func (ax *Axis) valueToPosition(value float32) float32 {
	norm := ax.Scale.Normalize(value)
	if ax.Direction == Horizontal {
		return ax.Position.X + norm*ax.Length
	}
	return ax.Position.Y + norm*ax.Length
}

func (ax *Axis) shaftPoints() (start, end math32.Vector2) {
	start = ax.Position
	if ax.Direction == Horizontal {
		end = math32.Vec2(ax.Position.X+ax.Length, ax.Position.Y)
	} else {
		end = math32.Vec2(ax.Position.X, ax.Position.Y+ax.Length)
	}
	return start, end
}

func (ax *Axis) tickPoints(pos float32) (start, end math32.Vector2) {
	if ax.Direction == Horizontal {
		start = math32.Vec2(pos, ax.Position.Y)
		end = math32.Vec2(pos, ax.Position.Y-ax.Style.TickLength)
	} else {
		start = math32.Vec2(ax.Position.X, pos)
		end = math32.Vec2(ax.Position.X-ax.Style.TickLength, pos)
	}
	return start, end
}

// tickLabel positions and aligns a label for the tick at pos:
// horizontal axes center labels below the shaft, vertical axes
// right-align labels to the left of the shaft.
func (ax *Axis) tickLabel(pos, value float32) Text {
	txt := Text{
		Content: fmt.Sprintf("%.1f", value),
		Size:    ax.Style.LabelSize,
		Color:   ax.Style.LabelColor,
	}
	if ax.Direction == Horizontal {
		txt.Position = math32.Vec2(pos, ax.Position.Y-ax.Style.TickLength-ax.Style.LabelSize)
		txt.HAlign = Center
		txt.VAlign = Top
	} else {
		txt.Position = math32.Vec2(ax.Position.X-ax.Style.TickLength-30, pos)
		txt.HAlign = Right
		txt.VAlign = Middle
	}
	return txt
}

// titleText places the centered title beyond the tick labels.
func (ax *Axis) titleText() Text {
	txt := Text{
		Content: ax.Title,
		Size:    ax.Style.TitleSize,
		Color:   ax.Style.LabelColor,
	}
	if ax.Direction == Horizontal {
		txt.Position = math32.Vec2(
			ax.Position.X+ax.Length/2,
			ax.Position.Y-ax.Style.TickLength-ax.Style.LabelSize-ax.Style.TitleSize-10,
		)
		txt.HAlign = Center
		txt.VAlign = Top
	} else {
		txt.Position = math32.Vec2(
			ax.Position.X-ax.Style.TickLength-60,
			ax.Position.Y+ax.Length/2,
		)
		txt.HAlign = Right
		txt.VAlign = Middle
	}
	return txt
}
