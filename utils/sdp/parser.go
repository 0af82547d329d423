package sdp

import (
	"strconv"
	"strings"
	"time"
)

// parseMediaDescription parses the fields of an m= line.
func parseMediaDescription(value string) (*Media, bool) {
	fields := strings.Fields(value)
	if len(fields) < 4 || fields[0] != "audio" { //nolint:mnd
		return nil, false
	}
	media := Media{}
	media.Port, _ = strconv.Atoi(fields[1])
	media.PayloadType, _ = strconv.Atoi(fields[3])
	return &media, true
}

// parseRtpmap handles "<pt> <encoding>/<clock>[/<channels>]".
func parseRtpmap(media *Media, value string) {
	pt, desc, ok := strings.Cut(value, " ")
	if !ok {
		return
	}
	if n, err := strconv.Atoi(pt); err != nil || n != media.PayloadType {
		return
	}
	parts := strings.Split(strings.TrimSpace(desc), "/")
	media.Encoding = strings.ToUpper(parts[0])
	if len(parts) > 1 {
		media.ClockRate, _ = strconv.Atoi(parts[1])
	}
	media.ChannelCount = 1
	if len(parts) > 2 { //nolint:mnd
		if ch, err := strconv.Atoi(parts[2]); err == nil {
			media.ChannelCount = ch
		}
	}
}

// parseAttribute processes a media level a= line.
func parseAttribute(media *Media, value string) {
	key, val, _ := strings.Cut(value, ":")
	switch key {
	case "rtpmap":
		parseRtpmap(media, val)
	case "ptime":
		if ms, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil && ms > 0 {
			media.PacketTime = time.Duration(ms * float64(time.Millisecond))
		}
	case "control":
		media.Control = val
	}
}

// parseConnection extracts the address from "IN IP4 <addr>[/<ttl>]".
func parseConnection(value string) string {
	fields := strings.Fields(value)
	if len(fields) != 3 { //nolint:mnd
		return ""
	}
	addr, _, _ := strings.Cut(fields[2], "/")
	return addr
}

// Parse parses the SDP content and returns Session and Media information.
// Non-audio media sections are skipped.
func Parse(content string) (sess Session, medias []Media) {
	var media *Media
	inMedia := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		typ, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		switch typ {
		case "m":
			inMedia = true
			if newMedia, valid := parseMediaDescription(value); valid {
				medias = append(medias, *newMedia)
				media = &medias[len(medias)-1]
			} else {
				media = nil
			}
		case "s":
			if !inMedia {
				sess.Name = value
			}
		case "u":
			sess.URI = value
		case "c":
			if !inMedia {
				sess.ConnectionAddress = parseConnection(value)
			}
		case "a":
			if media != nil {
				parseAttribute(media, value)
			}
		}
	}
	return
}
