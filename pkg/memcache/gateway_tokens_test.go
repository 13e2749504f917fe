package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	store := NewGatewayTokens()
	store.Set("gw", "abc", time.Minute)

	assert.Equal(t, "abc", store.Get("gw"))
	assert.Equal(t, "", store.Get("unknown"))
}

func TestTokenExpires(t *testing.T) {
	store := NewGatewayTokens()
	store.Set("gw", "abc", -time.Second)

	assert.Equal(t, "", store.Get("gw"))
}
