package series

import (
	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/ukaji3/charming-go/pkg/charming/element"
)

type ProgressiveChunkMode string

const (
	ProgressiveChunkModeSequential ProgressiveChunkMode = "sequential"
	ProgressiveChunkModeMod        ProgressiveChunkMode = "mod"
)

// Parallel draws each data item as a polyline across the axes of a parallel
// coordinate system.
type Parallel struct {
	Type                 string                   `json:"type"`
	ID                   *string                  `json:"id,omitempty"`
	CoordinateSystem     element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	ParallelIndex        *float64                 `json:"parallelIndex,omitempty"`
	Name                 *string                  `json:"name,omitempty"`
	ColorBy              element.ColorBy          `json:"colorBy,omitempty"`
	LineStyle            *element.LineStyle       `json:"lineStyle,omitempty"`
	Emphasis             *element.Emphasis        `json:"emphasis,omitempty"`
	InactiveOpacity      *float64                 `json:"inactiveOpacity,omitempty"`
	ActiveOpacity        *float64                 `json:"activeOpacity,omitempty"`
	Realtime             *bool                    `json:"realtime,omitempty"`
	Smooth               *float64                 `json:"smooth,omitempty"`
	Progressive          *float64                 `json:"progressive,omitempty"`
	ProgressiveThreshold *float64                 `json:"progressiveThreshold,omitempty"`
	ProgressiveChunkMode ProgressiveChunkMode     `json:"progressiveChunkMode,omitempty"`
	Data                 datatype.DataFrame       `json:"data,omitempty"`
}

func NewParallel() *Parallel {
	return &Parallel{Type: "parallel"}
}

func (p *Parallel) SeriesType() string {
	return p.Type
}

func (p *Parallel) WithID(v string) *Parallel {
	p.ID = &v
	return p
}

func (p *Parallel) WithCoordinateSystem(v element.CoordinateSystem) *Parallel {
	p.CoordinateSystem = v
	return p
}

func (p *Parallel) WithParallelIndex(v float64) *Parallel {
	p.ParallelIndex = &v
	return p
}

func (p *Parallel) WithName(v string) *Parallel {
	p.Name = &v
	return p
}

func (p *Parallel) WithColorBy(v element.ColorBy) *Parallel {
	p.ColorBy = v
	return p
}

func (p *Parallel) WithLineStyle(v *element.LineStyle) *Parallel {
	p.LineStyle = v
	return p
}

func (p *Parallel) WithEmphasis(v *element.Emphasis) *Parallel {
	p.Emphasis = v
	return p
}

func (p *Parallel) WithInactiveOpacity(v float64) *Parallel {
	p.InactiveOpacity = &v
	return p
}

func (p *Parallel) WithActiveOpacity(v float64) *Parallel {
	p.ActiveOpacity = &v
	return p
}

func (p *Parallel) WithRealtime(v bool) *Parallel {
	p.Realtime = &v
	return p
}

func (p *Parallel) WithSmooth(v float64) *Parallel {
	p.Smooth = &v
	return p
}

func (p *Parallel) WithProgressive(v float64) *Parallel {
	p.Progressive = &v
	return p
}

func (p *Parallel) WithProgressiveThreshold(v float64) *Parallel {
	p.ProgressiveThreshold = &v
	return p
}

func (p *Parallel) WithProgressiveChunkMode(v ProgressiveChunkMode) *Parallel {
	p.ProgressiveChunkMode = v
	return p
}

func (p *Parallel) WithData(v datatype.DataFrame) *Parallel {
	p.Data = v
	return p
}
