package avtp

// CodecType identifies the AVTP audio encapsulation a stream uses.
type CodecType uint32

// Known encapsulations. The zero value is an unknown codec.
const (
	IEC61883_6 CodecType = iota + 1 //nolint:revive,stylecheck // matches the standard's name
	AAF
)

// String returns the human-readable string representation of a CodecType.
func (ct CodecType) String() string {
	switch ct {
	case IEC61883_6:
		return "IEC61883_6"
	case AAF:
		return "AAF"
	}
	return "UNKNOWN"
}
