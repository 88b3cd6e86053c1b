package generator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBufferPool(t *testing.T) {
	for _, n := range []int{0, 16, 17, 500} {
		buf := getRenderBuffer(n)
		assert.Equal(t, 0, buf.Len())
		buf.WriteString("leftover")
		putRenderBuffer(buf, n)

		again := getRenderBuffer(n)
		assert.Equal(t, 0, again.Len(), "buffers must come back empty")
		putRenderBuffer(again, n)
	}
}

func TestRenderBufferPool_DropsOversized(t *testing.T) {
	big := bytes.NewBuffer(make([]byte, 0, maxPooledSize+1))
	putRenderBuffer(big, 1)
	putRenderBuffer(nil, 1)
	assert.Equal(t, 1, poolTier(100))
	assert.Equal(t, 0, poolTier(3))
}
