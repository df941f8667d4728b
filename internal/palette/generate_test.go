package palette

import (
	"errors"
	"io"
	"reflect"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/hueforge/internal/colour"
)

var (
	red  = colour.RGBA{R: 255, A: 255}
	blue = colour.RGBA{B: 255, A: 255}
)

func grey(v uint8) colour.RGBA {
	return colour.RGBA{R: v, G: v, B: v, A: 255}
}

func TestGenerateScenarios(t *testing.T) {
	tests := []struct {
		name      string
		strategy  Strategy
		amount    int
		primary   colour.RGBA
		secondary colour.RGBA
		want      []colour.RGBA
	}{
		{
			name:      "primary to secondary grey ramp",
			strategy:  PrimaryToSecondary,
			amount:    4,
			primary:   colour.Black,
			secondary: colour.White,
			want:      []colour.RGBA{grey(0), grey(64), grey(128), grey(191)},
		},
		{
			name:      "primary to secondary interpolates alpha",
			strategy:  PrimaryToSecondary,
			amount:    2,
			primary:   colour.RGBA{R: 255, A: 255},
			secondary: colour.RGBA{B: 255, A: 0},
			want:      []colour.RGBA{{R: 255, A: 255}, {R: 128, B: 128, A: 128}},
		},
		{
			name:     "light to dark red",
			strategy: LightToDark,
			amount:   10,
			primary:  red,
			want: []colour.RGBA{
				{A: 255}, {R: 51, A: 255}, {R: 102, A: 255}, {R: 153, A: 255}, {R: 204, A: 255},
				{R: 255, A: 255}, {R: 255, G: 51, B: 51, A: 255}, {R: 255, G: 102, B: 102, A: 255},
				{R: 255, G: 153, B: 153, A: 255}, {R: 255, G: 204, B: 204, A: 255},
			},
		},
		{
			name:     "light to dark single colour starts at primary",
			strategy: LightToDark,
			amount:   1,
			primary:  red,
			want:     []colour.RGBA{red},
		},
		{
			name:     "complement of blue",
			strategy: Complement,
			amount:   6,
			primary:  blue,
			want: []colour.RGBA{
				{B: 128, A: 255}, {B: 255, A: 255}, {R: 64, G: 64, B: 255, A: 255},
				{R: 128, G: 128, A: 255}, {R: 255, G: 255, A: 255}, {R: 255, G: 255, B: 64, A: 255},
			},
		},
		{
			name:     "similar three of red emits accent bases",
			strategy: Similar3,
			amount:   3,
			primary:  red,
			want:     []colour.RGBA{{R: 255, B: 255, A: 255}, red, {R: 255, G: 255, A: 255}},
		},
		{
			name:     "triadic odd last chunk",
			strategy: Triadic,
			amount:   5,
			primary:  blue,
			want: []colour.RGBA{
				{B: 255, A: 255},
				{R: 255, A: 255},
				{G: 128, A: 255}, {G: 255, A: 255}, {R: 64, G: 255, B: 64, A: 255},
			},
		},
		{
			name:     "zero amount",
			strategy: Square,
			amount:   0,
			primary:  red,
			want:     []colour.RGBA{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Generate(tt.strategy, tt.amount, tt.primary, tt.secondary)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(p.Colours, tt.want) {
				t.Errorf("Generate() = %v, want %v", p.Colours, tt.want)
			}
			if p.Strategy != tt.strategy {
				t.Errorf("Generate() strategy = %v, want %v", p.Strategy, tt.strategy)
			}
		})
	}
}

func TestGenerateLength(t *testing.T) {
	primaries := []colour.RGBA{
		red,
		colour.Black,
		colour.White,
		{R: 12, G: 200, B: 99, A: 40},
		{R: 128, G: 128, B: 128, A: 0},
	}

	for _, s := range Strategies() {
		for _, primary := range primaries {
			for amount := 0; amount <= MaxSize; amount++ {
				p, err := Generate(s, amount, primary, colour.White)
				if err != nil {
					t.Fatalf("Generate(%s, %d) unexpected error: %v", s, amount, err)
				}
				if p.Len() != amount {
					t.Fatalf("Generate(%s, %d, %v) returned %d colours", s, amount, primary, p.Len())
				}
			}
		}
	}
}

func TestGenerateKeepsPrimaryAlpha(t *testing.T) {
	primary := colour.RGBA{R: 30, G: 140, B: 220, A: 77}

	for _, s := range Strategies() {
		if s == PrimaryToSecondary {
			continue
		}
		p, err := Generate(s, 37, primary, colour.White)
		if err != nil {
			t.Fatalf("Generate(%s) unexpected error: %v", s, err)
		}
		for i, c := range p.All() {
			if c.A != primary.A {
				t.Errorf("Generate(%s)[%d].A = %d, want %d", s, i, c.A, primary.A)
			}
		}
	}
}

func TestGenerateFirstEntries(t *testing.T) {
	p, err := Generate(PrimaryToSecondary, 9, red, blue)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if p.Colours[0] != red {
		t.Errorf("first colour = %v, want primary %v", p.Colours[0], red)
	}
	for _, c := range p.Colours {
		if c == blue {
			t.Errorf("secondary %v emitted, want half-open ramp", blue)
		}
	}

	p, err = Generate(LightToDark, 10, red, colour.RGBA{})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if p.Colours[0] != colour.Black {
		t.Errorf("LightToDark first colour = %v, want black", p.Colours[0])
	}
	if p.Colours[5] != red {
		t.Errorf("LightToDark middle colour = %v, want primary", p.Colours[5])
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		amount   int
		wantErr  error
	}{
		{name: "negative amount", strategy: Triadic, amount: -1, wantErr: ErrInvalidArgument},
		{name: "unknown strategy", strategy: Strategy(99), amount: 4, wantErr: ErrUnknownStrategy},
		{name: "negative strategy", strategy: Strategy(-1), amount: 4, wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Generate(tt.strategy, tt.amount, red, blue)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Generate() error = %v, want %v", err, tt.wantErr)
			}
			if p != nil {
				t.Errorf("Generate() palette = %v, want nil", p)
			}
		})
	}
}

func TestGeneratorWithLogger(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Output: io.Discard,
		Level:  hclog.Off,
	})

	g := NewGenerator(WithLogger(logger), WithLogger(nil))
	if g.logger != logger {
		t.Error("WithLogger(nil) replaced the configured logger")
	}

	p, err := g.Generate(Request{Strategy: SplitComplement, Amount: 12, Primary: red})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if p.Len() != 12 {
		t.Errorf("Generate() returned %d colours, want 12", p.Len())
	}
}

func TestGenerateConcurrent(t *testing.T) {
	want, err := Generate(Similar4, 64, red, blue)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	g := NewGenerator()
	var wg sync.WaitGroup
	results := make([]*Palette, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = g.Generate(Request{Strategy: Similar4, Amount: 64, Primary: red, Secondary: blue})
		}()
	}
	wg.Wait()

	for i, got := range results {
		if got == nil || !reflect.DeepEqual(got.Colours, want.Colours) {
			t.Errorf("concurrent result %d differs from sequential result", i)
		}
	}
}
