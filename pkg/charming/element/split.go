package element

type SplitArea struct {
	Show      *bool      `json:"show,omitempty"`
	Interval  *float64   `json:"interval,omitempty"`
	AreaStyle *AreaStyle `json:"areaStyle,omitempty"`
}

func NewSplitArea() *SplitArea {
	return &SplitArea{}
}

func (s *SplitArea) WithShow(v bool) *SplitArea {
	s.Show = &v
	return s
}

func (s *SplitArea) WithInterval(v float64) *SplitArea {
	s.Interval = &v
	return s
}

func (s *SplitArea) WithAreaStyle(v *AreaStyle) *SplitArea {
	s.AreaStyle = v
	return s
}

type SplitLine struct {
	Show      *bool      `json:"show,omitempty"`
	Interval  *float64   `json:"interval,omitempty"`
	Distance  *float64   `json:"distance,omitempty"`
	Length    *float64   `json:"length,omitempty"`
	LineStyle *LineStyle `json:"lineStyle,omitempty"`
}

func NewSplitLine() *SplitLine {
	return &SplitLine{}
}

func (s *SplitLine) WithShow(v bool) *SplitLine {
	s.Show = &v
	return s
}

func (s *SplitLine) WithInterval(v float64) *SplitLine {
	s.Interval = &v
	return s
}

func (s *SplitLine) WithDistance(v float64) *SplitLine {
	s.Distance = &v
	return s
}

func (s *SplitLine) WithLength(v float64) *SplitLine {
	s.Length = &v
	return s
}

func (s *SplitLine) WithLineStyle(v *LineStyle) *SplitLine {
	s.LineStyle = v
	return s
}

type MinorSplitLine struct {
	Show      *bool      `json:"show,omitempty"`
	LineStyle *LineStyle `json:"lineStyle,omitempty"`
}

func NewMinorSplitLine() *MinorSplitLine {
	return &MinorSplitLine{}
}

func (m *MinorSplitLine) WithShow(v bool) *MinorSplitLine {
	m.Show = &v
	return m
}

func (m *MinorSplitLine) WithLineStyle(v *LineStyle) *MinorSplitLine {
	m.LineStyle = v
	return m
}
