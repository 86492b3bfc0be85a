package id

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnique(t *testing.T) {
	gen := NewGenerator()
	assert.NotEqual(t, gen.Generate(), gen.Generate())
}

func TestGenerateString(t *testing.T) {
	gen := NewGenerator()
	assert.Len(t, gen.GenerateString(), 26)
}

func TestGenerateMonotonic(t *testing.T) {
	gen := NewGenerator()
	fixed := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	gen.now = func() time.Time { return fixed }

	prev := gen.GenerateString()
	for i := 0; i < 100; i++ {
		next := gen.GenerateString()
		require.Less(t, prev, next)
		prev = next
	}
}

func TestNewRequestID(t *testing.T) {
	rid := NewRequestID()

	assert.True(t, strings.HasPrefix(rid.String(), RequestPrefix+"_"))
	assert.True(t, IsValid(rid.String()))

	ts, err := Timestamp(rid.String())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestIsValid(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("req_not-a-ulid"))
	assert.True(t, IsValid(NewGenerator().GenerateString()))
}

func TestConcurrentGeneration(t *testing.T) {
	gen := NewGenerator()
	const workers, per = 8, 200

	var mu sync.Mutex
	seen := make(map[string]bool, workers*per)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				s := gen.GenerateString()
				mu.Lock()
				seen[s] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*per)
}
