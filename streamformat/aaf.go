package streamformat

import "fmt"

const (
	aafNSRShift      = 48
	aafFormatShift   = 40
	aafBitDepthShift = 32
	aafChannelsShift = 22
	aafSamplesShift  = 12

	aafNibbleMask = 0xF
	aafCountMask  = 0x3FF
)

// AAFFormat is the AAF sample format code.
type AAFFormat uint8

const (
	AAFUser    AAFFormat = 0
	AAFFloat32 AAFFormat = 1
	AAFInt32   AAFFormat = 2
	AAFInt24   AAFFormat = 3
	AAFInt16   AAFFormat = 4
	AAFAES3_32 AAFFormat = 5 //nolint:revive,stylecheck // matches the standard's name
)

func lookupAAFFormat(code uint8) (AAFFormat, bool) {
	switch AAFFormat(code) {
	case AAFUser, AAFFloat32, AAFInt32, AAFInt24, AAFInt16, AAFAES3_32:
		return AAFFormat(code), true
	default:
		return 0, false
	}
}

// NominalBitDepth returns the sample width implied by the format code.
// User and AES3 formats have none.
func (f AAFFormat) NominalBitDepth() (int, bool) {
	switch f {
	case AAFFloat32, AAFInt32:
		return 32, true
	case AAFInt24:
		return 24, true
	case AAFInt16:
		return 16, true
	default:
		return 0, false
	}
}

func (f AAFFormat) String() string {
	switch f {
	case AAFUser:
		return "USER"
	case AAFFloat32:
		return "FLOAT32"
	case AAFInt32:
		return "INT32"
	case AAFInt24:
		return "INT24"
	case AAFInt16:
		return "INT16"
	case AAFAES3_32:
		return "AES3_32"
	default:
		return fmt.Sprintf("FORMAT(%d)", uint8(f))
	}
}

// aafSampleRate maps the nominal sample rate code to Hz. Code 0 is user
// specified and codes 11-15 are reserved.
func aafSampleRate(nsr uint8) (int, bool) {
	switch nsr {
	case 1:
		return 8000, true
	case 2:
		return 16000, true
	case 3:
		return 32000, true
	case 4:
		return 44100, true
	case 5:
		return 48000, true
	case 6:
		return 88200, true
	case 7:
		return 96000, true
	case 8:
		return 176400, true
	case 9:
		return 192000, true
	case 10:
		return 24000, true
	default:
		return 0, false
	}
}

// AAFFields is the view of a stream format whose subtype is AAF.
type AAFFields struct {
	v Value
}

// NSR returns the raw nominal sample rate code.
func (f AAFFields) NSR() uint8 { return uint8(f.v>>aafNSRShift) & aafNibbleMask }

// FormatCode returns the raw format code.
func (f AAFFields) FormatCode() uint8 { return uint8(f.v>>aafFormatShift) & aafNibbleMask }

// RawBitDepth returns the bit depth field as transmitted.
func (f AAFFields) RawBitDepth() uint8 { return f.v.byteAt(aafBitDepthShift) }

// RawChannelsPerFrame returns the 10-bit channels field as transmitted.
func (f AAFFields) RawChannelsPerFrame() uint16 {
	return uint16(f.v>>aafChannelsShift) & aafCountMask
}

// RawSamplesPerFrame returns the 10-bit samples field as transmitted.
func (f AAFFields) RawSamplesPerFrame() uint16 {
	return uint16(f.v>>aafSamplesShift) & aafCountMask
}

// Format returns the sample format code.
func (f AAFFields) Format() (AAFFormat, bool) {
	return lookupAAFFormat(f.FormatCode())
}

func (f AAFFields) SampleRate() (int, bool) {
	return aafSampleRate(f.NSR())
}

// IsFloatingPoint is known for every AAF value: only FLOAT32 is floating
// point, whether or not the format code is assigned.
func (f AAFFields) IsFloatingPoint() (bool, bool) {
	return AAFFormat(f.FormatCode()) == AAFFloat32, true
}

// BitDepth is the nominal depth of the format capped by the transmitted field.
func (f AAFFields) BitDepth() (int, bool) {
	format, ok := f.Format()
	if !ok {
		return 0, false
	}
	nominal, ok := format.NominalBitDepth()
	if !ok {
		return 0, false
	}
	raw := int(f.RawBitDepth())
	// A zero field would make min(nominal, raw) report 0 bits as if it were
	// a real depth, so it is treated as absent instead.
	if raw == 0 {
		return 0, false
	}
	return min(nominal, raw), true
}

// ChannelsPerFrame is unavailable for AES3 payloads, which lay the field out
// differently.
func (f AAFFields) ChannelsPerFrame() (int, bool) {
	if f.isAES3() {
		return 0, false
	}
	return int(f.RawChannelsPerFrame()), true
}

func (f AAFFields) SamplesPerFrame() (int, bool) {
	if f.isAES3() {
		return 0, false
	}
	return int(f.RawSamplesPerFrame()), true
}

func (f AAFFields) isAES3() bool {
	format, ok := f.Format()
	return ok && format == AAFAES3_32
}

func (f AAFFields) String() string {
	if format, ok := f.Format(); ok {
		return "AAF " + format.String()
	}
	return "AAF"
}
