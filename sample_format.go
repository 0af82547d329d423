package avtp

// SampleFormat represents the audio sample formats carried by AVTP audio streams.
type SampleFormat uint8

// Constants representing the supported sample formats. All are interleaved.
const (
	S16 = SampleFormat(iota + 1) // signed 16-bit integer
	S24                          // signed 24-bit integer
	S32                          // signed 32-bit integer
	FLT                          // 32-bit float
)

// BytesPerSample returns the number of bytes per audio sample for the given sample format.
func (sf SampleFormat) BytesPerSample() int {
	switch sf {
	case S16:
		return 2 //nolint:mnd
	case S24:
		return 3 //nolint:mnd
	case S32, FLT:
		return 4 //nolint:mnd
	default:
		return 0
	}
}

// BitsPerSample returns the sample width in bits.
func (sf SampleFormat) BitsPerSample() int {
	const bitsPerByte = 8
	return sf.BytesPerSample() * bitsPerByte
}

// IsFloat reports whether samples are IEEE 754 floating point.
func (sf SampleFormat) IsFloat() bool {
	return sf == FLT
}

// String returns a human-readable string representation of the sample format.
func (sf SampleFormat) String() string {
	switch sf {
	case S16:
		return "S16"
	case S24:
		return "S24"
	case S32:
		return "S32"
	case FLT:
		return "FLT"
	default:
		return "?"
	}
}
