package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// modEntry is the on-disk form of a StaticMod shared by TOML and YAML files.
type modEntry struct {
	Name      string  `toml:"name" yaml:"name"`
	Mass      float64 `toml:"mass,omitempty" yaml:"mass,omitempty"`
	AAs       string  `toml:"aas,omitempty" yaml:"aas,omitempty"`
	Terminus  string  `toml:"terminus,omitempty" yaml:"terminus,omitempty"`
	UniMod    int     `toml:"unimod,omitempty" yaml:"unimod,omitempty"`
	Labels    string  `toml:"labels,omitempty" yaml:"labels,omitempty"`
	LabelType string  `toml:"label_type,omitempty" yaml:"label_type,omitempty"`
}

type catalogFile struct {
	Mods []modEntry `toml:"mods" yaml:"mods"`
}

func entryFor(m StaticMod) modEntry {
	return modEntry{
		Name:      m.Name,
		Mass:      m.MonoMass,
		AAs:       m.AAs,
		Terminus:  m.Terminus.String(),
		UniMod:    m.UniModID,
		Labels:    m.Labels.String(),
		LabelType: m.LabelType,
	}
}

func (c *Catalog) file() catalogFile {
	f := catalogFile{Mods: make([]modEntry, 0, len(c.mods))}
	for _, m := range c.mods {
		f.Mods = append(f.Mods, entryFor(m))
	}
	return f
}

// EncodeTOML writes the catalog as a [[mods]] table array LoadFromTOML reads.
func (c *Catalog) EncodeTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c.file())
}

// EncodeYAML writes the catalog as a mods: list LoadFromYAML reads.
func (c *Catalog) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.file()); err != nil {
		return err
	}
	return enc.Close()
}

func (e modEntry) staticMod() (StaticMod, error) {
	term, err := ParseTerminus(e.Terminus)
	if err != nil {
		return StaticMod{}, err
	}
	labels, err := ParseLabelAtoms(e.Labels)
	if err != nil {
		return StaticMod{}, err
	}
	m := StaticMod{
		Name:      strings.TrimSpace(e.Name),
		AAs:       NormalizeAAs(e.AAs),
		Terminus:  term,
		UniModID:  e.UniMod,
		MonoMass:  e.Mass,
		Labels:    labels,
		LabelType: strings.TrimSpace(e.LabelType),
	}
	if m.Labels != 0 && m.LabelType == "" {
		m.LabelType = LabelTypeHeavy
	}
	return m, m.Validate()
}

// LoadFromCSV loads modifications from a CSV file
// (format: name,mass,aas,terminus,unimod,labels,label_type; all but the
// first two columns optional).
func (c *Catalog) LoadFromCSV(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	// Skip header line
	scanner.Scan()

	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			return fmt.Errorf("line %d: invalid format, expected at least 2 comma-separated fields", lineNum)
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		field := func(i int) string {
			if i < len(parts) {
				return parts[i]
			}
			return ""
		}

		e := modEntry{
			Name:      field(0),
			AAs:       field(2),
			Terminus:  field(3),
			Labels:    strings.ReplaceAll(field(5), ";", ","),
			LabelType: field(6),
		}
		if s := field(1); s != "" {
			mass, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("line %d: invalid mass value '%s': %w", lineNum, s, err)
			}
			e.Mass = mass
		}
		if s := field(4); s != "" {
			id, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("line %d: invalid UniMod id '%s': %w", lineNum, s, err)
			}
			e.UniMod = id
		}

		m, err := e.staticMod()
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
		c.Add(m)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading CSV: %w", err)
	}

	return nil
}

// LoadFromTOML loads a [[mods]] table array.
func (c *Catalog) LoadFromTOML(data []byte) error {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing TOML catalog: %w", err)
	}
	return c.addEntries(f.Mods)
}

// LoadFromYAML loads a mods: list.
func (c *Catalog) LoadFromYAML(data []byte) error {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing YAML catalog: %w", err)
	}
	return c.addEntries(f.Mods)
}

func (c *Catalog) addEntries(entries []modEntry) error {
	for i, e := range entries {
		m, err := e.staticMod()
		if err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
		c.Add(m)
	}
	return nil
}

// LoadFile loads a catalog file, choosing the format from its extension
// (.csv, .toml, .yaml or .yml). Entries are added on top of the current ones.
func (c *Catalog) LoadFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".csv" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open catalog: %w", err)
		}
		defer f.Close()
		if err := c.LoadFromCSV(f); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}
	switch ext {
	case ".toml":
		err = c.LoadFromTOML(data)
	case ".yaml", ".yml":
		err = c.LoadFromYAML(data)
	default:
		return fmt.Errorf("cannot detect catalog format from extension '%s'", ext)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
