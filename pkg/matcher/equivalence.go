package matcher

import (
	"fmt"

	"github.com/ChrisMcGann/modmatch/pkg/calc"
	"github.com/ChrisMcGann/modmatch/pkg/core"
	"github.com/ChrisMcGann/modmatch/pkg/sequence"
)

// labeled is implemented by calculators that know their isotope label type.
type labeled interface {
	LabelType() string
}

// Verification is the outcome of a mass equivalence check.
type Verification struct {
	Matched bool
	// LabelType is the heavy label type that explained the heavy
	// annotations; empty when the light view alone matched.
	LabelType string
	// Failed is the first site whose annotated mass disagreed with the
	// calculators, and Fragment its unmatched fragment in the original
	// sequence. Both are unset when Matched.
	Failed   *ModSite
	Fragment string
}

// Checker verifies that calculators explain the annotations of a sequence.
type Checker struct {
	matcher  *Matcher
	settings *core.Settings
}

// NewChecker creates a checker looking up named annotations in settings.
func NewChecker(m *Matcher, settings *core.Settings) *Checker {
	return &Checker{matcher: m, settings: settings}
}

// Verify checks seq against a light calculator and an optional heavy one.
func (c *Checker) Verify(seq string, light, heavy Calculator) (Verification, error) {
	var heavies []Calculator
	if heavy != nil {
		heavies = append(heavies, heavy)
	}
	return c.verify(seq, light, heavies)
}

// Check runs Verify and records the failing fragment in the matcher's
// tracker.
func (c *Checker) Check(seq string, light, heavy Calculator) (bool, error) {
	v, err := c.Verify(seq, light, heavy)
	if err != nil {
		return false, err
	}
	if !v.Matched {
		c.matcher.tracker.Add(v.Fragment)
	}
	return v.Matched, nil
}

// MatchSettings checks seq against the calculators of the checker's
// settings: the light one, then each heavy label type in order.
func (c *Checker) MatchSettings(seq string) (Verification, error) {
	light := calc.NewLight(c.settings)
	var heavies []Calculator
	for _, label := range c.settings.LabelTypes() {
		heavy, err := calc.NewHeavy(c.settings, label)
		if err != nil {
			return Verification{}, err
		}
		heavies = append(heavies, heavy)
	}
	return c.verify(seq, light, heavies)
}

func (c *Checker) verify(seq string, light Calculator, heavies []Calculator) (Verification, error) {
	simplified, err := c.matcher.SimplifyUniMod(seq)
	if err != nil {
		return Verification{}, err
	}
	lightView, err := sequence.LightView(simplified)
	if err != nil {
		return Verification{}, err
	}
	heavyView, err := sequence.HeavyView(simplified)
	if err != nil {
		return Verification{}, err
	}

	failed, err := c.equals(lightView, light, nil)
	if err != nil {
		return Verification{}, err
	}
	if failed != nil {
		return c.failure(seq, failed)
	}
	if lightView == simplified {
		return Verification{Matched: true}, nil
	}

	for _, heavy := range heavies {
		failed, err = c.equals(heavyView, heavy, light)
		if err != nil {
			return Verification{}, err
		}
		if failed == nil {
			v := Verification{Matched: true}
			if l, ok := heavy.(labeled); ok {
				v.LabelType = l.LabelType()
			}
			return v, nil
		}
	}
	if failed == nil {
		// heavy annotations and no heavy calculator to explain them
		failed, err = c.firstHeavy(simplified)
		if err != nil {
			return Verification{}, err
		}
	}
	return c.failure(seq, failed)
}

// equals walks every residue of view and returns the first site whose mass
// the calculator does not reproduce. With lightCalc set, mc is a heavy
// calculator and only its difference from lightCalc is compared.
func (c *Checker) equals(view string, mc, lightCalc Calculator) (*ModSite, error) {
	label := ""
	if lightCalc != nil {
		if l, ok := mc.(labeled); ok {
			label = l.LabelType()
		}
	}
	it := c.matcher.enumerate(view, true)
	length := len(it.Stripped())
	for it.Next() {
		site := it.Site()
		key := site.Key
		roundedTo := key.RoundedTo
		massKey := key.Mass
		if key.Kind == KeyName {
			mod, ok := c.namedMod(key.Name, lightCalc != nil, label)
			if !ok {
				return &site, nil
			}
			roundedTo = MaxRoundingDigits
			massKey = core.RoundFloat(mod.MassFor(key.AA), roundedTo)
		}
		massMod := core.RoundFloat(mc.GetAAModMass(key.AA, site.IndexAA, length), roundedTo)
		if lightCalc != nil {
			massLight := core.RoundFloat(lightCalc.GetAAModMass(key.AA, site.IndexAA, length), roundedTo)
			massMod = core.RoundFloat(massMod-massLight, roundedTo)
		}
		if massKey != massMod {
			return &site, nil
		}
	}
	return nil, it.Err()
}

// namedMod finds a configured mod by name: a structural one, or for heavy
// views one of the label type (any label type when unknown).
func (c *Checker) namedMod(name string, heavy bool, label string) (core.StaticMod, bool) {
	if !heavy {
		return c.settings.FindStatic(name)
	}
	if label != "" {
		return c.settings.FindHeavy(label, name)
	}
	for _, l := range c.settings.LabelTypes() {
		if m, ok := c.settings.FindHeavy(l, name); ok {
			return m, true
		}
	}
	return core.StaticMod{}, false
}

func (c *Checker) firstHeavy(simplified string) (*ModSite, error) {
	it := c.matcher.enumerate(simplified, false)
	for it.Next() {
		site := it.Site()
		if site.Annotation.Family == sequence.Curly {
			return &site, nil
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("no heavy annotation in %s", simplified)
}

// failure locates the failing residue in the original sequence.
func (c *Checker) failure(seq string, failed *ModSite) (Verification, error) {
	offsets, err := sequence.ResidueOffsets(seq)
	if err != nil {
		return Verification{}, err
	}
	if failed.IndexAA >= len(offsets) {
		return Verification{}, fmt.Errorf("residue %d out of range in %s", failed.IndexAA, seq)
	}
	return Verification{
		Failed:   failed,
		Fragment: sequence.UnmatchedFragment(seq, offsets[failed.IndexAA]),
	}, nil
}
