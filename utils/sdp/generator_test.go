package sdp

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerate_ParseRoundtrip_Session(t *testing.T) {
	t.Parallel()

	sess := Session{Name: "stage box", URI: "rtsp://example.com/avb", ConnectionAddress: "239.69.1.10"}
	out := Generate(sess, nil)
	gotSess, medias := Parse(out)
	require.Equal(t, sess, gotSess)
	require.Empty(t, medias)
	require.Contains(t, out, "c=IN IP4 239.69.1.10/32\r\n")
}

func TestGenerate_DefaultName(t *testing.T) {
	t.Parallel()

	out := Generate(Session{}, nil)
	require.True(t, strings.HasPrefix(out, "v=0\r\no=- 0 0 IN IP4 127.0.0.1\r\ns=avtp\r\nt=0 0\r\n"), out)
}

func TestGenerate_ParseRoundtrip_Media(t *testing.T) {
	t.Parallel()

	in := []Media{
		{
			Port:         5004,
			PayloadType:  98,
			Encoding:     "L24",
			ClockRate:    48000,
			ChannelCount: 8,
			PacketTime:   125 * time.Microsecond,
			Control:      "trackID=1",
		},
		{
			Port:         5006,
			PayloadType:  97,
			Encoding:     "L16",
			ClockRate:    44100,
			ChannelCount: 2,
			PacketTime:   time.Millisecond,
		},
	}
	out := Generate(Session{}, in)
	require.Contains(t, out, "m=audio 5004 RTP/AVP 98\r\na=rtpmap:98 L24/48000/8\r\na=ptime:0.125\r\na=control:trackID=1\r\n")
	require.Contains(t, out, "a=ptime:1\r\n")

	_, medias := Parse(out)
	require.Len(t, medias, 2)
	require.Equal(t, in[1], medias[0], "medias are sorted by payload type")
	require.Equal(t, in[0], medias[1])
}

func TestGenerate_MediaDefaults(t *testing.T) {
	t.Parallel()

	out := Generate(Session{}, []Media{{Encoding: "L16", ClockRate: 48000}})
	require.Contains(t, out, "m=audio 0 RTP/AVP 96\r\na=rtpmap:96 L16/48000/1\r\n")
	require.NotContains(t, out, "ptime")
}

func TestParse_SkipsOtherMedia(t *testing.T) {
	t.Parallel()

	content := strings.Join([]string{
		"v=0",
		"s=mixed",
		"c=IN IP4 239.1.2.3/16",
		"m=video 5000 RTP/AVP 96",
		"a=rtpmap:96 H264/90000",
		"m=audio 5004 RTP/AVP 96",
		"c=IN IP4 239.9.9.9/16",
		"a=rtpmap:96 l24/96000",
		"a=rtpmap:97 L16/8000/2",
		"a=ptime:bogus",
	}, "\n")

	sess, medias := Parse(content)
	require.Equal(t, "mixed", sess.Name)
	require.Equal(t, "239.1.2.3", sess.ConnectionAddress)
	require.Len(t, medias, 1)
	require.Equal(t, Media{
		Port:         5004,
		PayloadType:  96,
		Encoding:     "L24",
		ClockRate:    96000,
		ChannelCount: 1,
	}, medias[0])
}
