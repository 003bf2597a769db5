package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenConcurrentRefresh(t *testing.T) {
	svc := &LLMService{}
	svc.setToken("initial")

	// Readers and refreshers run together; under the race detector
	// this fails if token access is unguarded.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if i%2 == 0 {
					svc.setToken(fmt.Sprintf("refreshed-%d-%d", i, j))
				} else {
					_ = svc.token()
				}
			}
		}(i)
	}
	wg.Wait()

	assert.NotEmpty(t, svc.token())
}
