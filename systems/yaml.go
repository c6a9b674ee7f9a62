package systems

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Neumenon/numeral/chinese"
	"github.com/Neumenon/numeral/numeral"
)

// YAML definition file layout:
//
//	systems:
//	  - name: ternary
//	    kind: positional
//	    symbols: ["0", "1", "2"]
//	  - name: tally
//	    kind: bijective
//	    symbols: ["|"]
//	  - name: royal
//	    kind: additive
//	    numerals:
//	      - {symbol: "X", weight: 10}
//	      - {symbol: "I", weight: 1}
//	  - name: money
//	    kind: chinese
//	    variant: simple
//	    case: upper
type defFile struct {
	Systems []defEntry `yaml:"systems"`
}

type defEntry struct {
	Name     string       `yaml:"name"`
	Kind     string       `yaml:"kind"`
	Symbols  []string     `yaml:"symbols"`
	Numerals []defNumeral `yaml:"numerals"`
	Variant  string       `yaml:"variant"`
	Case     string       `yaml:"case"`
}

type defNumeral struct {
	Symbol string `yaml:"symbol"`
	Weight uint64 `yaml:"weight"`
}

// Load reads user-defined numeral systems from a YAML document. Every
// definition is verified; a malformed entry fails the whole load.
func Load(r io.Reader) (map[string]numeral.System, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("systems: read definitions: %w", err)
	}

	var file defFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("systems: parse definitions: %w", err)
	}

	defs := make(map[string]numeral.System, len(file.Systems))
	for i, entry := range file.Systems {
		if entry.Name == "" {
			return nil, fmt.Errorf("systems: definition %d has no name", i)
		}
		if _, dup := defs[entry.Name]; dup {
			return nil, fmt.Errorf("systems: duplicate definition %q", entry.Name)
		}
		sys, err := buildEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("systems: %s: %w", entry.Name, err)
		}
		if err := sys.Verify(); err != nil {
			return nil, fmt.Errorf("systems: %s: %w", entry.Name, err)
		}
		defs[entry.Name] = sys
	}
	return defs, nil
}

// LoadFile reads user-defined numeral systems from a YAML file.
func LoadFile(path string) (map[string]numeral.System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("systems: open definitions: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func buildEntry(entry defEntry) (numeral.System, error) {
	switch entry.Kind {
	case "positional":
		if len(entry.Symbols) < 2 {
			return numeral.System{}, fmt.Errorf("positional systems need at least two symbols")
		}
		return numeral.Positional(entry.Symbols...), nil

	case "bijective", "symbolic", "fixed", "fixed-nonzero":
		if len(entry.Symbols) == 0 {
			return numeral.System{}, fmt.Errorf("%s systems need at least one symbol", entry.Kind)
		}
		switch entry.Kind {
		case "bijective":
			return numeral.Bijective(entry.Symbols...), nil
		case "symbolic":
			return numeral.Symbolic(entry.Symbols...), nil
		case "fixed":
			return numeral.ZeroableFixed(entry.Symbols...), nil
		default:
			return numeral.NonZeroableFixed(entry.Symbols...), nil
		}

	case "additive":
		if len(entry.Numerals) == 0 {
			return numeral.System{}, fmt.Errorf("additive systems need at least one numeral")
		}
		numerals := make([]numeral.Weighted, len(entry.Numerals))
		for i, wn := range entry.Numerals {
			numerals[i] = numeral.Weighted{Symbol: wn.Symbol, Weight: wn.Weight}
		}
		return numeral.Additive(numerals...), nil

	case "chinese":
		variant, err := parseVariant(entry.Variant)
		if err != nil {
			return numeral.System{}, err
		}
		chCase, err := parseCase(entry.Case)
		if err != nil {
			return numeral.System{}, err
		}
		return numeral.Chinese(variant, chCase), nil

	case "":
		return numeral.System{}, fmt.Errorf("missing kind")

	default:
		return numeral.System{}, fmt.Errorf("unknown kind %q", entry.Kind)
	}
}

func parseVariant(s string) (chinese.Variant, error) {
	switch s {
	case "simple", "":
		return chinese.Simple, nil
	case "traditional":
		return chinese.Traditional, nil
	default:
		return 0, fmt.Errorf("unknown chinese variant %q", s)
	}
}

func parseCase(s string) (chinese.Case, error) {
	switch s {
	case "lower", "":
		return chinese.Lower, nil
	case "upper":
		return chinese.Upper, nil
	default:
		return 0, fmt.Errorf("unknown chinese case %q", s)
	}
}
