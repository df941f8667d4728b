// Package palette generates ordered colour palettes from a primary and
// secondary colour using gradient and hue-harmony strategies.
package palette

import (
	"fmt"
	"strings"
)

// Strategy selects how a palette is generated.
type Strategy int

const (
	// PrimaryToSecondary blends from the primary colour towards the secondary.
	PrimaryToSecondary Strategy = iota

	// LightToDark ramps black to the primary colour, then the primary to white.
	LightToDark

	// Similar3 builds lightness ramps around three analogous hues.
	Similar3

	// Similar4 builds lightness ramps around four analogous hues, skipping the primary hue.
	Similar4

	// Complement builds lightness ramps around the primary hue and its opposite.
	Complement

	// Triadic builds lightness ramps around three hues 120 degrees apart.
	Triadic

	// Square builds lightness ramps around four hues 90 degrees apart.
	Square

	// SplitComplement builds lightness ramps around a split-complementary set of four hues.
	SplitComplement
)

type strategyInfo struct {
	name        string
	description string
}

var strategyTable = map[Strategy]strategyInfo{
	PrimaryToSecondary: {"primary-to-secondary", "gradient from the primary colour to the secondary colour"},
	LightToDark:        {"light-to-dark", "black to primary, then primary to white"},
	Similar3:           {"similar-3", "three analogous hues 60 degrees apart"},
	Similar4:           {"similar-4", "four analogous hues 40 degrees apart around the primary"},
	Complement:         {"complement", "primary hue and its complement"},
	Triadic:            {"triadic", "three hues 120 degrees apart"},
	Square:             {"square", "four hues 90 degrees apart"},
	SplitComplement:    {"split-complement", "four hues in a split-complementary pattern"},
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{
		PrimaryToSecondary,
		LightToDark,
		Similar3,
		Similar4,
		Complement,
		Triadic,
		Square,
		SplitComplement,
	}
}

// IsValid reports whether s is one of the declared strategies.
func (s Strategy) IsValid() bool {
	_, ok := strategyTable[s]
	return ok
}

// String returns the kebab-case name of the strategy.
func (s Strategy) String() string {
	if info, ok := strategyTable[s]; ok {
		return info.name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Description returns a short human-readable summary of the strategy.
func (s Strategy) Description() string {
	return strategyTable[s].description
}

// Accents returns the number of hue groups the strategy produces.
// Gradient strategies have no accents and return 0.
func (s Strategy) Accents() int {
	plan, ok := accentPlanFor(s)
	if !ok {
		return 0
	}
	return plan.chunks
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStrategy looks up a strategy by name. Matching ignores case and
// separators, so "split-complement", "SplitComplement" and "split_complement"
// are equivalent.
func ParseStrategy(name string) (Strategy, error) {
	key := canonicalName(name)
	for _, s := range Strategies() {
		if canonicalName(s.String()) == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownStrategy, name, strings.Join(StrategyNames(), ", "))
}

// StrategyNames returns the names of all strategies in declaration order.
func StrategyNames() []string {
	all := Strategies()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.String()
	}
	return names
}

func canonicalName(name string) string {
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(name)))
}
