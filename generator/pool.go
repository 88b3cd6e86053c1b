package generator

import (
	"bytes"
	"sync"
)

// Render buffer tiers by binding count. A binding with its doc comment and
// example renders to roughly 1KB.
const (
	smallBufferSize = 16 * 1024  // up to 16 bindings
	largeBufferSize = 256 * 1024 // full reference documents
	maxPooledSize   = 1 << 20
)

var bufferPools = [2]sync.Pool{
	{New: func() any { return bytes.NewBuffer(make([]byte, 0, smallBufferSize)) }},
	{New: func() any { return bytes.NewBuffer(make([]byte, 0, largeBufferSize)) }},
}

func poolTier(bindingCount int) int {
	if bindingCount <= 16 {
		return 0
	}
	return 1
}

// getRenderBuffer returns an empty buffer sized for bindingCount bindings.
func getRenderBuffer(bindingCount int) *bytes.Buffer {
	buf := bufferPools[poolTier(bindingCount)].Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putRenderBuffer returns a buffer to its pool. Oversized buffers are dropped.
func putRenderBuffer(buf *bytes.Buffer, bindingCount int) {
	if buf == nil || buf.Cap() > maxPooledSize {
		return
	}
	bufferPools[poolTier(bindingCount)].Put(buf)
}
