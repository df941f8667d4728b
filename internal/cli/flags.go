package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/hueforge/internal/colour"
	"github.com/jmylchreest/hueforge/internal/palette"
)

// strategyValue adapts palette.Strategy to a command-line flag.
type strategyValue struct {
	strategy *palette.Strategy
}

var _ pflag.Value = (*strategyValue)(nil)

func newStrategyValue(def palette.Strategy, p *palette.Strategy) *strategyValue {
	*p = def
	return &strategyValue{strategy: p}
}

func (v *strategyValue) String() string {
	if v.strategy == nil {
		return ""
	}
	return v.strategy.String()
}

func (v *strategyValue) Set(s string) error {
	parsed, err := palette.ParseStrategy(s)
	if err != nil {
		return err
	}
	*v.strategy = parsed
	return nil
}

func (v *strategyValue) Type() string {
	return "strategy"
}

// colourValue adapts colour.RGBA to a command-line flag accepting hex
// (RRGGBB or AARRGGBB, '#' optional) or a colour name.
type colourValue struct {
	colour *colour.RGBA
}

var _ pflag.Value = (*colourValue)(nil)

func newColourValue(def colour.RGBA, p *colour.RGBA) *colourValue {
	*p = def
	return &colourValue{colour: p}
}

func (v *colourValue) String() string {
	if v.colour == nil {
		return ""
	}
	return "#" + colour.FormatText(*v.colour)
}

func (v *colourValue) Set(s string) error {
	c, err := colour.Resolve(s, nil)
	if err != nil {
		return err
	}
	*v.colour = c
	return nil
}

func (v *colourValue) Type() string {
	return "colour"
}
