package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)

	_, exists := cache.Get("missing")
	assert.False(t, exists)

	cache.Set("token", "user-id-hex")
	value, exists := cache.Get("token")
	assert.True(t, exists)
	assert.Equal(t, "user-id-hex", value)
}

func TestCache_CleanupClearsEntries(t *testing.T) {
	cache := NewCache(10*time.Millisecond, 20*time.Millisecond)
	cache.Set("token", "value")

	// Sau chu kỳ cleanup, entry phải bị dọn
	assert.Eventually(t, func() bool {
		_, exists := cache.Get("token")
		return !exists
	}, time.Second, 10*time.Millisecond)
}
