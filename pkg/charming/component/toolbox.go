package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

type SaveAsImageType string

const (
	SaveAsImageTypePNG SaveAsImageType = "png"
	SaveAsImageTypeJPG SaveAsImageType = "jpg"
	SaveAsImageTypeSVG SaveAsImageType = "svg"
)

type SaveAsImage struct {
	Show            *bool           `json:"show,omitempty"`
	Type            SaveAsImageType `json:"type,omitempty"`
	Name            *string         `json:"name,omitempty"`
	BackgroundColor element.Color   `json:"backgroundColor,omitempty"`
	PixelRatio      *float64        `json:"pixelRatio,omitempty"`
	Title           *string         `json:"title,omitempty"`
}

func NewSaveAsImage() *SaveAsImage {
	return &SaveAsImage{}
}

func (s *SaveAsImage) WithShow(v bool) *SaveAsImage {
	s.Show = &v
	return s
}

func (s *SaveAsImage) WithType(v SaveAsImageType) *SaveAsImage {
	s.Type = v
	return s
}

func (s *SaveAsImage) WithName(v string) *SaveAsImage {
	s.Name = &v
	return s
}

func (s *SaveAsImage) WithBackgroundColor(v element.Color) *SaveAsImage {
	s.BackgroundColor = v
	return s
}

func (s *SaveAsImage) WithPixelRatio(v float64) *SaveAsImage {
	s.PixelRatio = &v
	return s
}

func (s *SaveAsImage) WithTitle(v string) *SaveAsImage {
	s.Title = &v
	return s
}

type Restore struct {
	Show  *bool   `json:"show,omitempty"`
	Title *string `json:"title,omitempty"`
}

func NewRestore() *Restore {
	return &Restore{}
}

func (r *Restore) WithShow(v bool) *Restore {
	r.Show = &v
	return r
}

func (r *Restore) WithTitle(v string) *Restore {
	r.Title = &v
	return r
}

type DataView struct {
	Show     *bool    `json:"show,omitempty"`
	Title    *string  `json:"title,omitempty"`
	ReadOnly *bool    `json:"readOnly,omitempty"`
	Lang     []string `json:"lang,omitempty"`
}

func NewDataView() *DataView {
	return &DataView{}
}

func (d *DataView) WithShow(v bool) *DataView {
	d.Show = &v
	return d
}

func (d *DataView) WithTitle(v string) *DataView {
	d.Title = &v
	return d
}

func (d *DataView) WithReadOnly(v bool) *DataView {
	d.ReadOnly = &v
	return d
}

func (d *DataView) WithLang(v ...string) *DataView {
	d.Lang = v
	return d
}

type MagicTypeType string

const (
	MagicTypeTypeLine  MagicTypeType = "line"
	MagicTypeTypeBar   MagicTypeType = "bar"
	MagicTypeTypeStack MagicTypeType = "stack"
)

// MagicType switches the series between line, bar and stacked modes.
type MagicType struct {
	Show  *bool           `json:"show,omitempty"`
	Type  []MagicTypeType `json:"type,omitempty"`
	Title *string         `json:"title,omitempty"`
}

func NewMagicType() *MagicType {
	return &MagicType{}
}

func (m *MagicType) WithShow(v bool) *MagicType {
	m.Show = &v
	return m
}

func (m *MagicType) WithType(v ...MagicTypeType) *MagicType {
	m.Type = v
	return m
}

func (m *MagicType) WithTitle(v string) *MagicType {
	m.Title = &v
	return m
}

type BrushType string

const (
	BrushTypeRect    BrushType = "rect"
	BrushTypePolygon BrushType = "polygon"
	BrushTypeLineX   BrushType = "lineX"
	BrushTypeLineY   BrushType = "lineY"
	BrushTypeKeep    BrushType = "keep"
	BrushTypeClear   BrushType = "clear"
)

type Brush struct {
	Type []BrushType `json:"type,omitempty"`
}

func NewBrush() *Brush {
	return &Brush{}
}

func (b *Brush) WithType(v ...BrushType) *Brush {
	b.Type = v
	return b
}

type ToolboxDataZoom struct {
	Show       *bool                  `json:"show,omitempty"`
	XAxisIndex element.CompositeValue `json:"xAxisIndex,omitempty"`
	YAxisIndex element.CompositeValue `json:"yAxisIndex,omitempty"`
}

func NewToolboxDataZoom() *ToolboxDataZoom {
	return &ToolboxDataZoom{}
}

func (t *ToolboxDataZoom) WithShow(v bool) *ToolboxDataZoom {
	t.Show = &v
	return t
}

func (t *ToolboxDataZoom) WithXAxisIndex(v element.CompositeValue) *ToolboxDataZoom {
	t.XAxisIndex = v
	return t
}

func (t *ToolboxDataZoom) WithYAxisIndex(v element.CompositeValue) *ToolboxDataZoom {
	t.YAxisIndex = v
	return t
}

// Feature holds the tools shown in a toolbox.
type Feature struct {
	SaveAsImage *SaveAsImage     `json:"saveAsImage,omitempty"`
	Restore     *Restore         `json:"restore,omitempty"`
	DataView    *DataView        `json:"dataView,omitempty"`
	MagicType   *MagicType       `json:"magicType,omitempty"`
	DataZoom    *ToolboxDataZoom `json:"dataZoom,omitempty"`
	Brush       *Brush           `json:"brush,omitempty"`
}

func NewFeature() *Feature {
	return &Feature{}
}

func (f *Feature) WithSaveAsImage(v *SaveAsImage) *Feature {
	f.SaveAsImage = v
	return f
}

func (f *Feature) WithRestore(v *Restore) *Feature {
	f.Restore = v
	return f
}

func (f *Feature) WithDataView(v *DataView) *Feature {
	f.DataView = v
	return f
}

func (f *Feature) WithMagicType(v *MagicType) *Feature {
	f.MagicType = v
	return f
}

func (f *Feature) WithDataZoom(v *ToolboxDataZoom) *Feature {
	f.DataZoom = v
	return f
}

func (f *Feature) WithBrush(v *Brush) *Feature {
	f.Brush = v
	return f
}

// Toolbox is the tool bar with export, data view, zoom and chart type tools.
type Toolbox struct {
	ID       *string                `json:"id,omitempty"`
	Show     *bool                  `json:"show,omitempty"`
	Feature  *Feature               `json:"feature,omitempty"`
	Orient   element.Orient         `json:"orient,omitempty"`
	ItemSize *float64               `json:"itemSize,omitempty"`
	ItemGap  *float64               `json:"itemGap,omitempty"`
	Left     element.CompositeValue `json:"left,omitempty"`
	Top      element.CompositeValue `json:"top,omitempty"`
	Right    element.CompositeValue `json:"right,omitempty"`
	Bottom   element.CompositeValue `json:"bottom,omitempty"`
}

func NewToolbox() *Toolbox {
	return &Toolbox{}
}

func (t *Toolbox) WithID(v string) *Toolbox {
	t.ID = &v
	return t
}

func (t *Toolbox) WithShow(v bool) *Toolbox {
	t.Show = &v
	return t
}

func (t *Toolbox) WithFeature(v *Feature) *Toolbox {
	t.Feature = v
	return t
}

func (t *Toolbox) WithOrient(v element.Orient) *Toolbox {
	t.Orient = v
	return t
}

func (t *Toolbox) WithItemSize(v float64) *Toolbox {
	t.ItemSize = &v
	return t
}

func (t *Toolbox) WithItemGap(v float64) *Toolbox {
	t.ItemGap = &v
	return t
}

func (t *Toolbox) WithLeft(v element.CompositeValue) *Toolbox {
	t.Left = v
	return t
}

func (t *Toolbox) WithTop(v element.CompositeValue) *Toolbox {
	t.Top = v
	return t
}

func (t *Toolbox) WithRight(v element.CompositeValue) *Toolbox {
	t.Right = v
	return t
}

func (t *Toolbox) WithBottom(v element.CompositeValue) *Toolbox {
	t.Bottom = v
	return t
}
