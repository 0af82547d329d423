package streamformat

import "fmt"

// Value is a raw 64-bit AVDECC stream format as carried in stream descriptors.
type Value uint64

const (
	versionShift = 63
	subtypeShift = 56
	subtypeMask  = 0x7F
)

// Version is the AVTP version bit of a stream format.
type Version uint8

// Version0 is the only defined stream format version.
const Version0 Version = 0

func (ver Version) String() string {
	if ver == Version0 {
		return "version_0"
	}
	return fmt.Sprintf("version(%d)", uint8(ver))
}

// Subtype is the 7-bit AVTP subtype of a stream format.
type Subtype uint8

const (
	IEC61883IIDC Subtype = 0x00
	MMAStream    Subtype = 0x01
	AAF          Subtype = 0x02
	CVF          Subtype = 0x03
	CRF          Subtype = 0x04
	TSCF         Subtype = 0x05
	SVC          Subtype = 0x06
	RVF          Subtype = 0x07
)

// lookupSubtype maps a raw subtype code to a named subtype.
func lookupSubtype(code uint8) (Subtype, bool) {
	switch Subtype(code) {
	case IEC61883IIDC, MMAStream, AAF, CVF, CRF, TSCF, SVC, RVF:
		return Subtype(code), true
	default:
		return 0, false
	}
}

func (st Subtype) String() string {
	switch st {
	case IEC61883IIDC:
		return "IEC61883_IIDC"
	case MMAStream:
		return "MMA_STREAM"
	case AAF:
		return "AAF"
	case CVF:
		return "CVF"
	case CRF:
		return "CRF"
	case TSCF:
		return "TSCF"
	case SVC:
		return "SVC"
	case RVF:
		return "RVF"
	default:
		return fmt.Sprintf("SUBTYPE(0x%02X)", uint8(st))
	}
}

// Version returns the stream format version. ok is false if the version bit
// does not name a defined version.
func (v Value) Version() (ver Version, ok bool) {
	if raw := Version(v >> versionShift); raw == Version0 {
		return Version0, true
	}
	return 0, false
}

// Subtype returns the AVTP subtype. ok is false for unassigned codes.
func (v Value) Subtype() (Subtype, bool) {
	return lookupSubtype(v.subtypeCode())
}

func (v Value) subtypeCode() uint8 {
	return uint8(v>>subtypeShift) & subtypeMask
}

// byteAt returns the byte starting at bit offset shift.
func (v Value) byteAt(shift uint) uint8 {
	return uint8(v >> shift)
}

// String renders the value the way it is usually written in entity models.
func (v Value) String() string {
	return fmt.Sprintf("0x%016X", uint64(v))
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
