package wav

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ugparu/avtp"
	"github.com/ugparu/avtp/utils"
	"github.com/ugparu/avtp/utils/logger"
)

// wavFormatPCM is the WAVE_FORMAT_PCM tag.
const wavFormatPCM = 1

var (
	// ErrPartialFrame is returned when a write does not hold whole frames.
	ErrPartialFrame = errors.New("wav: sample count is not a multiple of the channel count")
	// ErrClosed is returned by writes after Close.
	ErrClosed = errors.New("wav: writer is closed")
)

// Writer appends interleaved integer samples to a WAV file.
type Writer struct {
	enc    *wav.Encoder
	format *audio.Format
	depth  int
	tag    string
	frames int
	closed bool
}

// New writes a WAV header for par to w. w must be seekable so the header
// sizes can be patched on Close.
func New(w io.WriteSeeker, par avtp.AudioCodecParameters) (*Writer, error) {
	if par == nil {
		return nil, fmt.Errorf("wav: %w", utils.NilParametersError{})
	}
	sf := par.SampleFormat()
	if sf.IsFloat() || sf.BitsPerSample() == 0 {
		return nil, fmt.Errorf("wav: %w", utils.UnsupportedSampleFormatError{SampleFormat: sf})
	}
	if par.Channels() == 0 || par.SampleRate() == 0 {
		return nil, fmt.Errorf("wav: invalid parameters: %d channels at %d Hz", par.Channels(), par.SampleRate())
	}

	format := &audio.Format{
		NumChannels: int(par.Channels()),
		SampleRate:  int(par.SampleRate()), //nolint:gosec // AVTP rates fit an int
	}
	wr := &Writer{
		enc:    wav.NewEncoder(w, format.SampleRate, sf.BitsPerSample(), format.NumChannels, wavFormatPCM),
		format: format,
		depth:  sf.BitsPerSample(),
		tag:    par.Tag(),
	}
	logger.Debugf(wr, "recording %d channels at %d Hz, %d bit", format.NumChannels, format.SampleRate, wr.depth)
	return wr, nil
}

// Write appends interleaved samples. Values must fit the writer's sample width.
func (wr *Writer) Write(samples []int) error {
	if wr.closed {
		return ErrClosed
	}
	if len(samples)%wr.format.NumChannels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrPartialFrame, len(samples), wr.format.NumChannels)
	}
	if len(samples) == 0 {
		return nil
	}
	buf := &audio.IntBuffer{
		Format:         wr.format,
		Data:           samples,
		SourceBitDepth: wr.depth,
	}
	if err := wr.enc.Write(buf); err != nil {
		return fmt.Errorf("wav: write samples: %w", err)
	}
	wr.frames += len(samples) / wr.format.NumChannels
	return nil
}

// Frames returns the number of frames written so far.
func (wr *Writer) Frames() int {
	return wr.frames
}

// Duration returns the playback time of the frames written so far.
func (wr *Writer) Duration() time.Duration {
	return time.Duration(wr.frames) * time.Second / time.Duration(wr.format.SampleRate)
}

// Close patches the header sizes. It does not close the underlying writer.
func (wr *Writer) Close() error {
	if wr.closed {
		return nil
	}
	wr.closed = true
	if err := wr.enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize: %w", err)
	}
	logger.Debugf(wr, "closed after %d frames (%v)", wr.frames, wr.Duration())
	return nil
}

func (wr *Writer) String() string {
	return "WAV_" + wr.tag
}
