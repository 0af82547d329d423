// Package aiff records AVTP audio into AIFF files. AIFF keeps samples
// big-endian, the same byte order AVTP uses on the wire.
package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/ugparu/avtp"
	"github.com/ugparu/avtp/utils"
	"github.com/ugparu/avtp/utils/logger"
)

var (
	// ErrPartialFrame is returned when a write does not hold whole frames.
	ErrPartialFrame = errors.New("aiff: sample count is not a multiple of the channel count")
	// ErrClosed is returned by writes after Close.
	ErrClosed = errors.New("aiff: writer is closed")
)

// Writer appends interleaved integer samples to an AIFF file.
type Writer struct {
	enc    *aiff.Encoder
	buf    audio.IntBuffer
	tag    string
	frames int
	closed bool
}

// New writes an AIFF header for par to w. The header is completed by Close.
func New(w io.WriteSeeker, par avtp.AudioCodecParameters) (*Writer, error) {
	if par == nil {
		return nil, fmt.Errorf("aiff: %w", utils.NilParametersError{})
	}
	sf := par.SampleFormat()
	if sf.IsFloat() || sf.BitsPerSample() == 0 {
		return nil, fmt.Errorf("aiff: %w", utils.UnsupportedSampleFormatError{SampleFormat: sf})
	}
	channels, rate := int(par.Channels()), int(par.SampleRate()) //nolint:gosec
	if channels == 0 || rate == 0 {
		return nil, fmt.Errorf("aiff: invalid parameters: %d channels at %d Hz", channels, rate)
	}

	wr := &Writer{
		enc: aiff.NewEncoder(w, rate, sf.BitsPerSample(), channels),
		buf: audio.IntBuffer{
			Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
			SourceBitDepth: sf.BitsPerSample(),
		},
		tag: par.Tag(),
	}
	logger.Debugf(wr, "recording %d channels at %d Hz", channels, rate)
	return wr, nil
}

// Write appends interleaved samples. Values must fit the writer's sample width.
func (wr *Writer) Write(samples []int) error {
	if wr.closed {
		return ErrClosed
	}
	channels := wr.buf.Format.NumChannels
	if len(samples)%channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrPartialFrame, len(samples), channels)
	}
	if len(samples) == 0 {
		return nil
	}
	wr.buf.Data = samples
	if err := wr.enc.Write(&wr.buf); err != nil {
		return fmt.Errorf("aiff: write samples: %w", err)
	}
	wr.frames += len(samples) / channels
	return nil
}

// Frames returns the number of frames written so far.
func (wr *Writer) Frames() int {
	return wr.frames
}

// Close finalises the header. The underlying writer stays open.
func (wr *Writer) Close() error {
	if wr.closed {
		return nil
	}
	wr.closed = true
	if err := wr.enc.Close(); err != nil {
		return fmt.Errorf("aiff: finalize: %w", err)
	}
	logger.Debugf(wr, "closed after %d frames", wr.frames)
	return nil
}

func (wr *Writer) String() string {
	return "AIFF_" + wr.tag
}
