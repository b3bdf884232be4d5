package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapWhileServing(t *testing.T) {
	old := Current()
	t.Cleanup(func() { Swap(*old) })

	first := Swap(NewServiceGroup())
	require.Same(t, first, Current())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				g := Current()
				assert.NotNil(t, g.Agent)
				assert.NotNil(t, g.Tool)
			}
		}()
	}
	for j := 0; j < 20; j++ {
		Swap(NewServiceGroup())
	}
	wg.Wait()

	assert.NotSame(t, first, Current())
	// 旧值仍然完整, 进行中的请求可以继续使用
	assert.NotNil(t, first.Agent.Classifier())
}
