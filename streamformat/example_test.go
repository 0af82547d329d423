package streamformat_test

import (
	"fmt"

	"github.com/ugparu/avtp/streamformat"
)

func ExampleDecode() {
	f := streamformat.Decode(0x00A0_0208_4000_0800)

	rate, _ := f.SampleRate()
	ch, _ := f.ChannelsPerFrame()
	depth, _ := f.BitDepth()
	fmt.Println(rate, ch, depth)

	if _, ok := f.SamplesPerFrame(); !ok {
		fmt.Println("samples per frame unknown")
	}
	// Output:
	// 48000 8 24
	// samples per frame unknown
}

func ExampleParse() {
	v, err := streamformat.Parse("0x0205_0220_0040_6000")
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	fmt.Println(streamformat.Decode(v))
	// Output:
	// 0x0205022000406000
	// AAF INT32 48000Hz 1ch 32bit 6spf
}
