// Package catalog loads named stream formats from YAML so that deployments
// can refer to "aaf-48k-8ch" instead of a raw 64-bit value.
//
//	formats:
//	  - name: milan-aaf-8ch
//	    value: 0x0205_0220_0200_6000
//	    description: AAF INT32 48 kHz, 8 channels
//
// TOML documents use the same keys under [[formats]] tables. TOML integers
// are decimal by the time they reach the decoder, so values must be quoted.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ugparu/avtp/streamformat"
	"github.com/ugparu/avtp/utils/logger"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyName is returned for an entry without a name.
	ErrEmptyName = errors.New("catalog: entry without name")
	// ErrDuplicateName is returned when two entries share a name.
	ErrDuplicateName = errors.New("catalog: duplicate entry name")
)

// Entry is one named stream format.
type Entry struct {
	Name        string             `yaml:"name" toml:"name" json:"name"`
	Value       streamformat.Value `yaml:"value" toml:"value" json:"value"`
	Description string             `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
}

// Format decodes the entry's value.
func (e Entry) Format() streamformat.Format {
	return streamformat.Decode(e.Value)
}

type document struct {
	Formats []Entry `yaml:"formats" toml:"formats"`
}

// Catalog is an immutable, ordered set of entries.
type Catalog struct {
	entries []Entry
	byName  map[string]int
}

// Load reads a catalogue document from r.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return build(doc)
}

// LoadTOML reads a TOML catalogue document from r.
func LoadTOML(r io.Reader) (*Catalog, error) {
	var doc document
	meta, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("catalog: unknown key %q", undecoded[0].String())
	}
	return build(doc)
}

func build(doc document) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(doc.Formats)),
		byName:  make(map[string]int, len(doc.Formats)),
	}
	for i, e := range doc.Formats {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyName, i)
		}
		if _, ok := c.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		c.byName[e.Name] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	logger.Debugf("CATALOG", "loaded %d stream formats", len(c.entries))
	return c, nil
}

// LoadFile reads a catalogue document from path. Files ending in .toml are
// read as TOML, everything else as YAML.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	load := Load
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		load = LoadTOML
	}
	c, err := load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of the entries in file order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	return append([]Entry(nil), c.entries...)
}

// Lookup returns the entry called name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Filter returns the entries whose decoded format satisfies keep.
func (c *Catalog) Filter(keep func(streamformat.Format) bool) []Entry {
	var out []Entry
	for _, e := range c.Entries() {
		if keep(e.Format()) {
			out = append(out, e)
		}
	}
	return out
}

// BySampleRate returns the entries whose sample rate is known and equal to
// rate.
func (c *Catalog) BySampleRate(rate int) []Entry {
	return c.Filter(func(f streamformat.Format) bool {
		r, ok := f.SampleRate()
		return ok && r == rate
	})
}
