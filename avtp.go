// Package avtp holds the shared vocabulary of the AVTP audio toolkit: codec
// types, sample formats and the codec parameter interfaces implemented by the
// codec subpackages.
package avtp

// CodecParameters defines the interface for stream codec configuration.
type CodecParameters interface {
	Type() CodecType      // Returns the AVTP encapsulation of the stream.
	Tag() string          // Returns the codec identifier string.
	StreamIndex() uint8   // Returns the index of the stream on its entity.
	SetStreamIndex(uint8) // Sets the stream index value.
	Bitrate() uint        // Returns the payload bitrate in bits per second.
	SetBitrate(uint)      // Sets the payload bitrate.
}

// AudioCodecParameters extends CodecParameters with audio-specific properties.
type AudioCodecParameters interface {
	CodecParameters             // Inherits all CodecParameters methods.
	SampleRate() uint64         // Returns the audio sampling frequency in Hz.
	SampleFormat() SampleFormat // Returns the format of audio samples.
	Channels() uint8            // Returns the number of audio channels.
}
