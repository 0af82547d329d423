package codec

import (
	"fmt"
	"math"

	"github.com/ugparu/avtp"
	"github.com/ugparu/avtp/streamformat"
)

// BaseParameters carries the fields every AVTP codec parameter type shares:
// the stream's index on its entity, its payload bitrate, the encapsulation and
// the stream format the parameters were derived from.
type BaseParameters struct {
	Index  uint8
	BRate  uint
	Format streamformat.Value
	avtp.CodecType
}

func (par *BaseParameters) SetStreamIndex(idx uint8) {
	par.Index = idx
}

// StreamIndex returns math.MaxUint8 for nil parameters, which no stream
// descriptor uses.
func (par *BaseParameters) StreamIndex() uint8 {
	if par == nil {
		return math.MaxUint8
	}
	return par.Index
}

func (par *BaseParameters) Type() avtp.CodecType {
	if par == nil {
		return 0
	}
	return par.CodecType
}

func (par *BaseParameters) SetBitrate(br uint) {
	par.BRate = br
}

func (par *BaseParameters) Bitrate() uint {
	if par == nil {
		return 0
	}
	return par.BRate
}

// StreamFormat returns the stream format the parameters were built from, or
// 0 for parameters constructed directly.
func (par *BaseParameters) StreamFormat() streamformat.Value {
	if par == nil {
		return 0
	}
	return par.Format
}

// Matches reports whether v describes the same stream as the parameters. A
// listener uses it to decide whether a GET_STREAM_FORMAT answer requires the
// pipeline to be rebuilt. Parameters without a recorded format match nothing.
func (par *BaseParameters) Matches(v streamformat.Value) bool {
	return par != nil && par.Format != 0 && par.Format == v
}

func (par *BaseParameters) String() string {
	if par == nil {
		return "EMPTY_CODEC_PARAMETERS"
	}
	if par.Format == 0 {
		return fmt.Sprintf("CODEC_PARAMETERS codec=%v stream=%d", par.CodecType, par.Index)
	}
	return fmt.Sprintf("CODEC_PARAMETERS codec=%v stream=%d format=%v", par.CodecType, par.Index, par.Format)
}
