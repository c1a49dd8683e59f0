// Package component holds the top level option components of a chart:
// title, legend, grids, axes, coordinate systems, data zoom, visual maps
// and the toolbox.
package component

import "github.com/ukaji3/charming-go/pkg/charming/element"

// Title is the chart title, with an optional subtitle.
type Title struct {
	ID   *string `json:"id,omitempty"`
	Show *bool   `json:"show,omitempty"`
	// Text is the main title. \n starts a new line.
	Text *string `json:"text,omitempty"`
	// Link is the hyperlink opened when the main title is clicked.
	Link *string `json:"link,omitempty"`
	// Target is "self" or "blank".
	Target       *string            `json:"target,omitempty"`
	TextStyle    *element.TextStyle `json:"textStyle,omitempty"`
	Subtext      *string            `json:"subtext,omitempty"`
	Sublink      *string            `json:"sublink,omitempty"`
	SubTarget    *string            `json:"subtarget,omitempty"`
	SubtextStyle *element.TextStyle `json:"subtextStyle,omitempty"`
	// TextAlign aligns the main title and subtitle horizontally.
	TextAlign         element.TextAlign         `json:"textAlign,omitempty"`
	TextVerticalAlign element.TextVerticalAlign `json:"textVerticalAlign,omitempty"`
	// ItemGap is the gap between the main title and the subtitle.
	ItemGap         *float64               `json:"itemGap,omitempty"`
	Padding         element.Padding        `json:"padding,omitempty"`
	ZLevel          *float64               `json:"zlevel,omitempty"`
	Z               *float64               `json:"z,omitempty"`
	Left            element.CompositeValue `json:"left,omitempty"`
	Top             element.CompositeValue `json:"top,omitempty"`
	Right           element.CompositeValue `json:"right,omitempty"`
	Bottom          element.CompositeValue `json:"bottom,omitempty"`
	BackgroundColor element.Color          `json:"backgroundColor,omitempty"`
	BorderColor     element.Color          `json:"borderColor,omitempty"`
	BorderWidth     *float64               `json:"borderWidth,omitempty"`
	BorderRadius    element.CompositeValue `json:"borderRadius,omitempty"`
}

func NewTitle() *Title {
	return &Title{}
}

func (t *Title) WithID(v string) *Title {
	t.ID = &v
	return t
}

func (t *Title) WithShow(v bool) *Title {
	t.Show = &v
	return t
}

func (t *Title) WithText(v string) *Title {
	t.Text = &v
	return t
}

func (t *Title) WithLink(v string) *Title {
	t.Link = &v
	return t
}

func (t *Title) WithTarget(v string) *Title {
	t.Target = &v
	return t
}

func (t *Title) WithTextStyle(v *element.TextStyle) *Title {
	t.TextStyle = v
	return t
}

func (t *Title) WithSubtext(v string) *Title {
	t.Subtext = &v
	return t
}

func (t *Title) WithSublink(v string) *Title {
	t.Sublink = &v
	return t
}

func (t *Title) WithSubTarget(v string) *Title {
	t.SubTarget = &v
	return t
}

func (t *Title) WithSubtextStyle(v *element.TextStyle) *Title {
	t.SubtextStyle = v
	return t
}

func (t *Title) WithTextAlign(v element.TextAlign) *Title {
	t.TextAlign = v
	return t
}

func (t *Title) WithTextVerticalAlign(v element.TextVerticalAlign) *Title {
	t.TextVerticalAlign = v
	return t
}

func (t *Title) WithItemGap(v float64) *Title {
	t.ItemGap = &v
	return t
}

func (t *Title) WithPadding(v ...float64) *Title {
	t.Padding = element.Padding(v)
	return t
}

func (t *Title) WithZLevel(v float64) *Title {
	t.ZLevel = &v
	return t
}

func (t *Title) WithZ(v float64) *Title {
	t.Z = &v
	return t
}

func (t *Title) WithLeft(v element.CompositeValue) *Title {
	t.Left = v
	return t
}

func (t *Title) WithTop(v element.CompositeValue) *Title {
	t.Top = v
	return t
}

func (t *Title) WithRight(v element.CompositeValue) *Title {
	t.Right = v
	return t
}

func (t *Title) WithBottom(v element.CompositeValue) *Title {
	t.Bottom = v
	return t
}

func (t *Title) WithBackgroundColor(v element.Color) *Title {
	t.BackgroundColor = v
	return t
}

func (t *Title) WithBorderColor(v element.Color) *Title {
	t.BorderColor = v
	return t
}

func (t *Title) WithBorderWidth(v float64) *Title {
	t.BorderWidth = &v
	return t
}

func (t *Title) WithBorderRadius(v element.CompositeValue) *Title {
	t.BorderRadius = v
	return t
}
