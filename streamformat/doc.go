// Package streamformat decodes the 64-bit AVDECC stream format values that
// IEEE 1722.1 entities advertise in their stream descriptors.
//
// A value is classified by its AVTP subtype. IEC 61883-6 and AAF formats
// expose sample rate, channel count, bit depth, samples per frame and the
// floating point flag; every other subtype decodes but reports these fields
// as absent:
//
//	f := streamformat.Decode(0x00A0020840000800)
//	rate, ok := f.SampleRate() // 48000, true
//
// Decoding never fails. Unknown subtypes, reserved rate codes and
// unrecognised encodings surface as ok == false from the accessors, which
// callers should treat as "unknown" rather than substituting defaults.
// Format values are immutable and safe for concurrent use.
package streamformat
