// Package sdp generates and parses the session descriptions that announce an
// AVTP audio stream bridged onto RTP, in the AES67 style: one linear PCM
// media section per stream with rtpmap, ptime and an optional multicast
// connection line.
package sdp

import "time"

// Session represents the information related to an SDP session.
type Session struct {
	Name              string
	URI               string
	ConnectionAddress string
}

// Media represents the information related to an audio stream in an SDP session.
type Media struct {
	Port         int
	PayloadType  int
	Encoding     string
	ClockRate    int
	ChannelCount int
	PacketTime   time.Duration
	Control      string
}
