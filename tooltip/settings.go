// Package tooltip holds the session-wide tooltip settings and the
// screen-space placement engine: pure coordinate math from SVG
// user-space geometry to clamped container-relative positions.
package tooltip

import (
	"errors"
	"fmt"
)

// Trigger selects how tooltips are activated for the whole session.
type Trigger string

const (
	TriggerHover Trigger = "hover"
	TriggerClick Trigger = "click"
)

// hoverShadePercent darkens the base region color into its hover
// variant.
const hoverShadePercent = -10

// Settings are the global tooltip settings, replaced wholesale through
// the host's settings callback. The hover color is derived, never
// stored, so it cannot drift from RegionColor.
type Settings struct {
	Trigger             Trigger `json:"trigger"`
	BackgroundColor     string  `json:"backgroundColor"`
	TextColor           string  `json:"textColor"`
	TitleFontSize       int     `json:"titleFontSize"`
	DescriptionFontSize int     `json:"descriptionFontSize"`
	RegionColor         string  `json:"defaultRegionColor"`
}

// DefaultSettings mirrors the editor's initial state.
func DefaultSettings() Settings {
	return Settings{
		Trigger:             TriggerHover,
		BackgroundColor:     "#1f2937",
		TextColor:           "#ffffff",
		TitleFontSize:       16,
		DescriptionFontSize: 13,
		RegionColor:         "#fbbf24",
	}
}

// RegionHoverColor is the derived hover fill: RegionColor darkened by
// a fixed percentage. Falls back to the base color when it cannot be
// parsed as hex.
func (s Settings) RegionHoverColor() string {
	c, err := Shade(s.RegionColor, hoverShadePercent)
	if err != nil {
		return s.RegionColor
	}
	return c
}

var errBadTrigger = errors.New("tooltip: trigger must be hover or click")

// Validate checks the replaceable fields.
func (s Settings) Validate() error {
	if s.Trigger != TriggerHover && s.Trigger != TriggerClick {
		return errBadTrigger
	}
	if s.TitleFontSize <= 0 || s.DescriptionFontSize <= 0 {
		return fmt.Errorf("tooltip: font sizes must be positive, got %d/%d",
			s.TitleFontSize, s.DescriptionFontSize)
	}
	return nil
}
