package palette

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/hueforge/internal/colour"
)

// MaxSize is the largest palette the colour picker can hold.
// Generate itself does not enforce it; front ends validate against it.
const MaxSize = 256

// Request describes a palette to generate.
type Request struct {
	Strategy Strategy    `json:"strategy"`
	Amount   int         `json:"amount"`
	Primary  colour.RGBA `json:"primary"`

	// Secondary is only read by PrimaryToSecondary.
	Secondary colour.RGBA `json:"secondary"`
}

// Validate checks the request can be generated.
func (r Request) Validate() error {
	if r.Amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative, got %d", ErrInvalidArgument, r.Amount)
	}
	if !r.Strategy.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(r.Strategy))
	}
	return nil
}

// Generator produces palettes. The zero value is not usable; call NewGenerator.
// A Generator holds no mutable state and is safe for concurrent use.
type Generator struct {
	logger hclog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for debug and trace output.
func WithLogger(logger hclog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator. Without options it logs nothing.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate produces amount colours using the given strategy with a silent generator.
func Generate(strategy Strategy, amount int, primary, secondary colour.RGBA) (*Palette, error) {
	return defaultGenerator.Generate(Request{
		Strategy:  strategy,
		Amount:    amount,
		Primary:   primary,
		Secondary: secondary,
	})
}

// Generate produces the palette described by req. The result always holds
// exactly req.Amount colours. A negative amount or an undeclared strategy
// returns an error wrapping ErrInvalidArgument.
func (g *Generator) Generate(req Request) (*Palette, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	log := g.logger.With("strategy", req.Strategy.String(), "amount", req.Amount)

	var colours []colour.RGBA
	switch req.Strategy {
	case PrimaryToSecondary:
		colours = ramp(make([]colour.RGBA, 0, req.Amount), req.Primary, req.Secondary, req.Amount)
	case LightToDark:
		colours = lightToDark(req.Primary, req.Amount)
	case Similar3, Similar4, Complement, Triadic, Square, SplitComplement:
		colours = accentRamps(log, req)
	}

	log.Debug("generated palette", "colours", len(colours))
	return NewPalette(req.Strategy, colours), nil
}

// ramp appends n colours sampling [from, to) at fractions i/n.
// The endpoint to is never emitted.
func ramp(dst []colour.RGBA, from, to colour.RGBA, n int) []colour.RGBA {
	for i := 0; i < n; i++ {
		dst = append(dst, colour.Lerp(from, to, float64(i)/float64(n)))
	}
	return dst
}

// lightToDark ramps black to primary over the first half of the palette and
// primary to white over the rest. Black and white take the primary's alpha.
func lightToDark(primary colour.RGBA, amount int) []colour.RGBA {
	half := amount / 2
	black := colour.Black.WithAlpha(primary.A)
	white := colour.White.WithAlpha(primary.A)

	colours := make([]colour.RGBA, 0, amount)
	colours = ramp(colours, black, primary, half)
	return ramp(colours, primary, white, amount-half)
}

// accentRamps emits one chunk per accent hue. The first half of a chunk
// (rounded down) ramps dark to base, the rest ramps base to bright.
func accentRamps(log hclog.Logger, req Request) []colour.RGBA {
	colours := make([]colour.RGBA, 0, req.Amount)

	for i, accent := range PlanAccents(req.Strategy, req.Amount, req.Primary) {
		half := accent.Size / 2
		log.Trace("accent chunk", "index", i, "offset", accent.Offset, "hue", accent.Hue, "size", accent.Size)

		colours = ramp(colours, accent.Dark, accent.Base, half)
		colours = ramp(colours, accent.Base, accent.Bright, accent.Size-half)
	}

	return colours
}
