// Package wav records the audio of an AVTP stream into a WAV file.
//
// The writer is configured from codec parameters, typically built with
// pcm.FromStreamFormat from a listener's current stream format:
//
//	par, err := pcm.FromStreamFormat(0, streamformat.Decode(current))
//	w, err := wav.New(file, par)
//	defer w.Close()
//	err = w.Write(interleaved)
//
// Encoding is delegated to github.com/go-audio/wav. Only integer sample
// formats are supported.
package wav
