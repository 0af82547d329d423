package sdp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	defaultSessionName = "avtp"
	defaultPayloadType = 96
	multicastTTL       = 32
)

// Generate builds an SDP for the given session. Output is deterministic and
// roundtrippable by Parse().
func Generate(sess Session, medias []Media) string {
	lines := make([]string, 0, 16)

	name := sess.Name
	if name == "" {
		name = defaultSessionName
	}
	lines = append(lines,
		"v=0",
		"o=- 0 0 IN IP4 127.0.0.1",
		"s="+name,
	)
	if sess.ConnectionAddress != "" {
		lines = append(lines, fmt.Sprintf("c=IN IP4 %s/%d", sess.ConnectionAddress, multicastTTL))
	}
	lines = append(lines, "t=0 0")
	if sess.URI != "" {
		lines = append(lines, "u="+sess.URI)
	}

	// Deterministic output: sort by payload type.
	mediasCopy := append([]Media(nil), medias...)
	sort.SliceStable(mediasCopy, func(i, j int) bool {
		return mediasCopy[i].PayloadType < mediasCopy[j].PayloadType
	})

	for _, m := range mediasCopy {
		lines = append(lines, marshalMedia(m)...)
	}

	return strings.Join(lines, "\r\n") + "\r\n"
}

func marshalMedia(m Media) []string {
	pt := m.PayloadType
	if pt == 0 {
		pt = defaultPayloadType
	}
	ch := m.ChannelCount
	if ch == 0 {
		ch = 1
	}

	lines := make([]string, 0, 4) //nolint:mnd
	lines = append(lines,
		fmt.Sprintf("m=audio %d RTP/AVP %d", m.Port, pt),
		fmt.Sprintf("a=rtpmap:%d %s/%d/%d", pt, m.Encoding, m.ClockRate, ch),
	)
	if m.PacketTime > 0 {
		lines = append(lines, "a=ptime:"+formatPacketTime(m.PacketTime))
	}
	if m.Control != "" {
		lines = append(lines, "a=control:"+m.Control)
	}
	return lines
}

// formatPacketTime renders milliseconds without trailing zeros, e.g. 0.125.
func formatPacketTime(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', -1, 64)
}
