package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/avtp/streamformat"
	"gopkg.in/yaml.v3"
)

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	c, err := LoadFile("testdata/formats.yaml")
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())
	require.Equal(t, []string{"milan-aaf-8ch", "aaf-cd-stereo", "iec-am824-8ch", "crf"}, names(c.Entries()))

	e, ok := c.Lookup("milan-aaf-8ch")
	require.True(t, ok)
	require.Equal(t, streamformat.Value(0x0205_0220_0200_6000), e.Value)
	require.Equal(t, "AAF INT32 48000Hz 8ch 32bit 6spf", e.Format().String())

	e, ok = c.Lookup("aaf-cd-stereo")
	require.True(t, ok)
	require.Equal(t, streamformat.Value(0x0204_0410_0080_6000), e.Value)

	e, ok = c.Lookup("crf")
	require.True(t, ok)
	require.Empty(t, e.Description)

	_, ok = c.Lookup("missing")
	require.False(t, ok)
}

func TestCatalog_Queries(t *testing.T) {
	t.Parallel()

	c, err := LoadFile("testdata/formats.yaml")
	require.NoError(t, err)

	require.Equal(t, []string{"milan-aaf-8ch", "iec-am824-8ch"}, names(c.BySampleRate(48000)))
	require.Equal(t, []string{"aaf-cd-stereo"}, names(c.BySampleRate(44100)))
	require.Empty(t, c.BySampleRate(96000))

	aaf := c.Filter(func(f streamformat.Format) bool {
		_, ok := f.AAF()
		return ok
	})
	require.Equal(t, []string{"milan-aaf-8ch", "aaf-cd-stereo"}, names(aaf))
}

func TestCatalog_EntriesIsACopy(t *testing.T) {
	t.Parallel()

	c, err := Load(strings.NewReader("formats:\n  - name: a\n    value: 0x1\n"))
	require.NoError(t, err)

	entries := c.Entries()
	entries[0].Name = "changed"
	e, ok := c.Lookup("a")
	require.True(t, ok)
	require.Equal(t, "a", e.Name)
	require.Equal(t, "a", c.Entries()[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		doc    string
		target error
	}{
		{
			name:   "empty_name",
			doc:    "formats:\n  - value: 0x1\n",
			target: ErrEmptyName,
		},
		{
			name:   "duplicate_name",
			doc:    "formats:\n  - name: a\n    value: 0x1\n  - name: a\n    value: 0x2\n",
			target: ErrDuplicateName,
		},
		{
			name:   "bad_value",
			doc:    "formats:\n  - name: a\n    value: 0xZZ\n",
			target: streamformat.ErrInvalidValue,
		},
		{
			name: "unknown_field",
			doc:  "formats:\n  - name: a\n    value: 0x1\n    rate: 48000\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	t.Parallel()

	c, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Zero(t, c.Len())
	require.Empty(t, c.Entries())
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile("testdata/missing.yaml")
	require.Error(t, err)
}

func TestEntry_MarshalYAML(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(Entry{Name: "crf", Value: 0x0400000000000000})
	require.NoError(t, err)
	require.Equal(t, "name: crf\nvalue: \"0x0400000000000000\"\n", string(out))
}

func TestNilCatalog(t *testing.T) {
	t.Parallel()

	var c *Catalog
	require.Zero(t, c.Len())
	require.Nil(t, c.Entries())
	_, ok := c.Lookup("a")
	require.False(t, ok)
	require.Empty(t, c.BySampleRate(48000))
}

func TestLoadFile_TOML(t *testing.T) {
	t.Parallel()

	c, err := LoadFile("testdata/formats.toml")
	require.NoError(t, err)
	require.Equal(t, []string{"milan-aaf-8ch", "iec-am824-8ch"}, names(c.Entries()))

	e, ok := c.Lookup("iec-am824-8ch")
	require.True(t, ok)
	require.Equal(t, streamformat.Value(0x00A0_0208_4000_0800), e.Value)
	require.Equal(t, []string{"milan-aaf-8ch", "iec-am824-8ch"}, names(c.BySampleRate(48000)))
}

func TestLoadTOML_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		doc    string
		target error
	}{
		{
			name:   "duplicate_name",
			doc:    "[[formats]]\nname = \"a\"\nvalue = \"0x1\"\n[[formats]]\nname = \"a\"\nvalue = \"0x2\"\n",
			target: ErrDuplicateName,
		},
		{
			name:   "empty_name",
			doc:    "[[formats]]\nvalue = \"0x1\"\n",
			target: ErrEmptyName,
		},
		{
			name: "unknown_key",
			doc:  "[[formats]]\nname = \"a\"\nvalue = \"0x1\"\nrate = 48000\n",
		},
		{
			name: "bad_value",
			doc:  "[[formats]]\nname = \"a\"\nvalue = \"0xZZ\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadTOML(strings.NewReader(tt.doc))
			require.Error(t, err)
			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
			}
		})
	}
}
