package vertex

import (
	webgl "github.com/seqsense/webgl-go"
)

// Bytes returns the memory of buf as a byte slice without copying, in the
// layout expected by GPU buffer uploads.
func Bytes(buf []float32) []byte {
	if len(buf) == 0 {
		return nil
	}
	return webgl.Float32ArrayBuffer(buf).Bytes()
}
