package pcm

import (
	"fmt"

	"github.com/ugparu/avtp"
	"github.com/ugparu/avtp/codec"
	"github.com/ugparu/avtp/streamformat"
	"github.com/ugparu/avtp/utils"
)

// CodecParameters describes the linear audio carried by an AVTP stream.
type CodecParameters struct {
	codec.BaseParameters
	sampleFmt       avtp.SampleFormat
	chCount         uint8
	sampleRate      uint64
	samplesPerFrame int
}

func NewCodecParameters(index uint8, ct avtp.CodecType, sf avtp.SampleFormat,
	channelCount uint8, sr uint64) *CodecParameters {
	return &CodecParameters{
		BaseParameters: codec.BaseParameters{
			Index:     index,
			BRate:     uint(sr) * uint(sf.BitsPerSample()) * uint(channelCount), //nolint:gosec
			CodecType: ct,
		},
		sampleFmt:  sf,
		sampleRate: sr,
		chCount:    channelCount,
	}
}

// FromStreamFormat builds codec parameters from a decoded stream format. The
// format must name its sample rate, channel count and bit depth.
func FromStreamFormat(index uint8, f streamformat.Format) (*CodecParameters, error) {
	incomplete := func(field string) error {
		return fmt.Errorf("pcm: %w", utils.IncompleteFormatError{Format: f.Value().String(), Field: field})
	}

	st, ok := f.Subtype()
	if !ok {
		return nil, incomplete("known subtype")
	}
	var ct avtp.CodecType
	switch st { //nolint:exhaustive // other subtypes carry no linear audio
	case streamformat.IEC61883IIDC:
		ct = avtp.IEC61883_6
	case streamformat.AAF:
		ct = avtp.AAF
	default:
		return nil, fmt.Errorf("pcm: %w", utils.UnsupportedSampleFormatError{SampleFormat: st})
	}

	rate, ok := f.SampleRate()
	if !ok {
		return nil, incomplete("sample rate")
	}
	channels, ok := f.ChannelsPerFrame()
	if !ok || channels == 0 {
		return nil, incomplete("channel count")
	}
	if channels > 255 { //nolint:mnd
		return nil, fmt.Errorf("pcm: %d channels exceed the supported maximum of 255", channels)
	}
	depth, ok := f.BitDepth()
	if !ok {
		return nil, incomplete("bit depth")
	}
	floating, ok := f.IsFloatingPoint()
	if !ok {
		return nil, incomplete("sample encoding")
	}

	sf, err := sampleFormatFor(depth, floating)
	if err != nil {
		return nil, err
	}

	par := NewCodecParameters(index, ct, sf, uint8(channels), uint64(rate)) //nolint:gosec // bounds checked above
	par.Format = f.Value()
	if spf, ok := f.SamplesPerFrame(); ok {
		par.samplesPerFrame = spf
	}
	return par, nil
}

// sampleFormatFor picks the container for depth significant bits. Depths
// that do not fill a container are carried in the next wider one.
func sampleFormatFor(depth int, floating bool) (avtp.SampleFormat, error) {
	if floating {
		if depth != 32 { //nolint:mnd
			return 0, fmt.Errorf("pcm: %d-bit floating point: %w", depth, utils.UnsupportedSampleFormatError{})
		}
		return avtp.FLT, nil
	}
	switch {
	case depth <= 0:
		return 0, fmt.Errorf("pcm: bit depth %d: %w", depth, utils.UnsupportedSampleFormatError{})
	case depth <= 16: //nolint:mnd
		return avtp.S16, nil
	case depth <= 24: //nolint:mnd
		return avtp.S24, nil
	case depth <= 32: //nolint:mnd
		return avtp.S32, nil
	default:
		return 0, fmt.Errorf("pcm: bit depth %d: %w", depth, utils.UnsupportedSampleFormatError{})
	}
}

func (p *CodecParameters) SampleFormat() avtp.SampleFormat {
	return p.sampleFmt
}

func (p *CodecParameters) SampleRate() uint64 {
	return p.sampleRate
}

func (p *CodecParameters) Channels() uint8 {
	return p.chCount
}

// SamplesPerFrame is the per-channel sample count of one AVTPDU, or 0 when
// the stream format does not fix it.
func (p *CodecParameters) SamplesPerFrame() int {
	return p.samplesPerFrame
}

// Tag names the payload the way RTP and AES67 tooling does.
func (p *CodecParameters) Tag() string {
	if p.CodecType == avtp.IEC61883_6 && p.sampleFmt == avtp.S24 {
		return "AM824"
	}
	switch p.sampleFmt {
	case avtp.S16:
		return "L16"
	case avtp.S24:
		return "L24"
	case avtp.S32:
		return "L32"
	case avtp.FLT:
		return "FLT32"
	default:
		return "pcm"
	}
}

func (p *CodecParameters) String() string {
	return fmt.Sprintf("PCM_CODEC_PARAMETERS tag=%s rate=%d channels=%d", p.Tag(), p.sampleRate, p.chCount)
}
