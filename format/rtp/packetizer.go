// Package rtp bridges AVTP linear audio onto RTP as L16/L24 payloads, the
// way AES67 senders carry it.
package rtp

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	pionrtp "github.com/pion/rtp"
	"github.com/ugparu/avtp"
	"github.com/ugparu/avtp/codec/pcm"
	"github.com/ugparu/avtp/utils"
	"github.com/ugparu/avtp/utils/sdp"
)

const (
	rtpVersion = 2
	// maxPayloadSize keeps a packet inside a single Ethernet frame.
	maxPayloadSize = 1460 - 12
)

var (
	// ErrPartialFrame is returned when samples do not hold whole frames.
	ErrPartialFrame = errors.New("rtp: sample count is not a multiple of the channel count")
	// ErrPayloadTooLarge is returned when one packet would not fit an Ethernet frame.
	ErrPayloadTooLarge = errors.New("rtp: packet payload exceeds the ethernet MTU")
)

// Packetizer cuts interleaved samples into RTP packets. It is not safe for
// concurrent use.
type Packetizer struct {
	payloadType     uint8
	ssrc            uint32
	sequence        uint16
	timestamp       uint32
	channels        int
	bytesPerSample  int
	framesPerPacket int
	clockRate       int
	encoding        string
	started         bool
}

// NewPacketizer prepares a packetizer for par. framesPerPacket of 0 uses the
// samples per frame of the source stream format, so each AVTPDU maps to one
// RTP packet. Only 16 and 24 bit integer formats can be carried.
func NewPacketizer(par *pcm.CodecParameters, payloadType uint8, ssrc uint32,
	framesPerPacket int) (*Packetizer, error) {
	if par == nil {
		return nil, fmt.Errorf("rtp: %w", utils.NilParametersError{})
	}

	var encoding string
	switch par.SampleFormat() { //nolint:exhaustive // only L16/L24 have an RTP mapping here
	case avtp.S16:
		encoding = "L16"
	case avtp.S24:
		encoding = "L24"
	default:
		return nil, fmt.Errorf("rtp: %w", utils.UnsupportedSampleFormatError{SampleFormat: par.SampleFormat()})
	}

	if framesPerPacket == 0 {
		framesPerPacket = par.SamplesPerFrame()
	}
	if framesPerPacket <= 0 {
		return nil, fmt.Errorf("rtp: no frames per packet given and %v does not fix one", par.StreamFormat())
	}

	p := &Packetizer{
		payloadType:     payloadType,
		ssrc:            ssrc,
		channels:        int(par.Channels()),
		bytesPerSample:  par.SampleFormat().BytesPerSample(),
		framesPerPacket: framesPerPacket,
		clockRate:       int(par.SampleRate()), //nolint:gosec // AVTP rates fit an int
		encoding:        encoding,
	}
	if p.channels == 0 || p.clockRate == 0 {
		return nil, fmt.Errorf("rtp: invalid parameters: %d channels at %d Hz", p.channels, p.clockRate)
	}
	if size := framesPerPacket * p.channels * p.bytesPerSample; size > maxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, size)
	}

	// Start sequence and timestamp at random values to avoid collisions.
	p.sequence = uint16(rand.UintN(1 << 16)) //nolint:gosec // non-crypto random is sufficient here
	p.timestamp = rand.Uint32()              //nolint:gosec
	return p, nil
}

// Packetize converts interleaved samples into packets. The last packet may
// carry fewer frames than the others.
func (p *Packetizer) Packetize(samples []int32) ([]*pionrtp.Packet, error) {
	if len(samples)%p.channels != 0 {
		return nil, fmt.Errorf("%w: %d samples for %d channels", ErrPartialFrame, len(samples), p.channels)
	}

	perPacket := p.framesPerPacket * p.channels
	packets := make([]*pionrtp.Packet, 0, (len(samples)+perPacket-1)/perPacket)
	for start := 0; start < len(samples); start += perPacket {
		chunk := samples[start:min(start+perPacket, len(samples))]
		packets = append(packets, p.packet(chunk))
	}
	return packets, nil
}

func (p *Packetizer) packet(chunk []int32) *pionrtp.Packet {
	payload := make([]byte, len(chunk)*p.bytesPerSample)
	for i, s := range chunk {
		off := i * p.bytesPerSample
		if p.bytesPerSample == 3 { //nolint:mnd
			payload[off] = byte(s >> 16)
			payload[off+1] = byte(s >> 8)
			payload[off+2] = byte(s)
		} else {
			payload[off] = byte(s >> 8)
			payload[off+1] = byte(s)
		}
	}

	pkt := &pionrtp.Packet{
		Header: pionrtp.Header{
			Version:        rtpVersion,
			Marker:         !p.started,
			PayloadType:    p.payloadType,
			SequenceNumber: p.sequence,
			Timestamp:      p.timestamp,
			SSRC:           p.ssrc,
		},
		Payload: payload,
	}
	p.started = true
	p.sequence++
	p.timestamp += uint32(len(chunk) / p.channels) //nolint:gosec
	return pkt
}

// Write packetizes samples and writes each packet with a single Write call,
// as a datagram socket expects.
func (p *Packetizer) Write(w io.Writer, samples []int32) error {
	packets, err := p.Packetize(samples)
	if err != nil {
		return err
	}
	for _, pkt := range packets {
		raw, err := pkt.Marshal()
		if err != nil {
			return fmt.Errorf("rtp: marshal packet %d: %w", pkt.SequenceNumber, err)
		}
		if _, err = w.Write(raw); err != nil {
			return fmt.Errorf("rtp: write packet %d: %w", pkt.SequenceNumber, err)
		}
	}
	return nil
}

// PacketTime returns the audio duration carried by a full packet.
func (p *Packetizer) PacketTime() time.Duration {
	return time.Duration(p.framesPerPacket) * time.Second / time.Duration(p.clockRate)
}

// Media describes the RTP stream for an SDP announcement.
func (p *Packetizer) Media(port int) sdp.Media {
	return sdp.Media{
		Port:         port,
		PayloadType:  int(p.payloadType),
		Encoding:     p.encoding,
		ClockRate:    p.clockRate,
		ChannelCount: p.channels,
		PacketTime:   p.PacketTime(),
	}
}
