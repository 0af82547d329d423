package streamformat

import (
	"fmt"
	"strings"
)

// family is implemented by the subtype-specific views. It is selected once
// in Decode so accessors never re-test the subtype.
type family interface {
	SampleRate() (int, bool)
	ChannelsPerFrame() (int, bool)
	BitDepth() (int, bool)
	SamplesPerFrame() (int, bool)
	IsFloatingPoint() (bool, bool)
	String() string
}

// unknownFamily stands for every subtype without decoding rules.
type unknownFamily struct{}

func (unknownFamily) SampleRate() (int, bool)       { return 0, false }
func (unknownFamily) ChannelsPerFrame() (int, bool) { return 0, false }
func (unknownFamily) BitDepth() (int, bool)         { return 0, false }
func (unknownFamily) SamplesPerFrame() (int, bool)  { return 0, false }
func (unknownFamily) IsFloatingPoint() (bool, bool) { return false, false }
func (unknownFamily) String() string                { return "" }

// Format is the decoded view of a stream format value. The zero Format is
// not useful; use Decode.
type Format struct {
	value Value
	fam   family
}

// Decode classifies v by subtype. It never fails: fields the decoder cannot
// determine are reported as absent by the accessors.
func Decode(v Value) Format {
	f := Format{value: v, fam: unknownFamily{}}
	st, ok := v.Subtype()
	if !ok {
		return f
	}
	switch st {
	case IEC61883IIDC:
		f.fam = IEC61883Fields{v: v}
	case AAF:
		f.fam = AAFFields{v: v}
	case MMAStream, CVF, CRF, TSCF, SVC, RVF:
	}
	return f
}

// Value returns the raw stream format.
func (f Format) Value() Value { return f.value }

func (f Format) Version() (Version, bool) { return f.value.Version() }

func (f Format) Subtype() (Subtype, bool) { return f.value.Subtype() }

// IEC61883 returns the IEC 61883 view when the subtype is IEC61883_IIDC.
func (f Format) IEC61883() (IEC61883Fields, bool) {
	view, ok := f.family().(IEC61883Fields)
	return view, ok
}

// AAF returns the AAF view when the subtype is AAF.
func (f Format) AAF() (AAFFields, bool) {
	view, ok := f.family().(AAFFields)
	return view, ok
}

// SampleRate returns the sample rate in Hz.
func (f Format) SampleRate() (int, bool) { return f.family().SampleRate() }

// ChannelsPerFrame returns the number of audio channels in each frame.
func (f Format) ChannelsPerFrame() (int, bool) { return f.family().ChannelsPerFrame() }

// BitDepth returns the significant bits per sample.
func (f Format) BitDepth() (int, bool) { return f.family().BitDepth() }

// SamplesPerFrame returns the number of samples per channel in each AVTPDU.
func (f Format) SamplesPerFrame() (int, bool) { return f.family().SamplesPerFrame() }

// IsFloatingPoint reports whether samples are floating point. ok is false
// when the encoding is unknown.
func (f Format) IsFloatingPoint() (floating bool, ok bool) { return f.family().IsFloatingPoint() }

func (f Format) family() family {
	if f.fam == nil {
		return unknownFamily{}
	}
	return f.fam
}

// String describes the format on one line, omitting absent fields.
func (f Format) String() string {
	var sb strings.Builder
	if name := f.family().String(); name != "" {
		sb.WriteString(name)
	} else if st, ok := f.Subtype(); ok {
		sb.WriteString(st.String())
	} else {
		fmt.Fprintf(&sb, "SUBTYPE(0x%02X)", f.value.subtypeCode())
	}
	if rate, ok := f.SampleRate(); ok {
		fmt.Fprintf(&sb, " %dHz", rate)
	}
	if ch, ok := f.ChannelsPerFrame(); ok {
		fmt.Fprintf(&sb, " %dch", ch)
	}
	if depth, ok := f.BitDepth(); ok {
		fmt.Fprintf(&sb, " %dbit", depth)
	}
	if spf, ok := f.SamplesPerFrame(); ok {
		fmt.Fprintf(&sb, " %dspf", spf)
	}
	return sb.String()
}

// Info is a serialisable snapshot of a decoded format. Nil fields are absent.
type Info struct {
	Value            Value    `json:"value" yaml:"value"`
	Version          *Version `json:"version,omitempty" yaml:"version,omitempty"`
	Subtype          *Subtype `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	SampleRate       *int     `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
	ChannelsPerFrame *int     `json:"channels_per_frame,omitempty" yaml:"channels_per_frame,omitempty"`
	BitDepth         *int     `json:"bit_depth,omitempty" yaml:"bit_depth,omitempty"`
	SamplesPerFrame  *int     `json:"samples_per_frame,omitempty" yaml:"samples_per_frame,omitempty"`
	IsFloatingPoint  *bool    `json:"is_floating_point,omitempty" yaml:"is_floating_point,omitempty"`
	Description      string   `json:"description" yaml:"description"`
}

// Info snapshots every accessor of f.
func (f Format) Info() Info {
	return Info{
		Value:            f.value,
		Version:          optional(f.Version()),
		Subtype:          optional(f.Subtype()),
		SampleRate:       optional(f.SampleRate()),
		ChannelsPerFrame: optional(f.ChannelsPerFrame()),
		BitDepth:         optional(f.BitDepth()),
		SamplesPerFrame:  optional(f.SamplesPerFrame()),
		IsFloatingPoint:  optional(f.IsFloatingPoint()),
		Description:      f.String(),
	}
}

func optional[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}
