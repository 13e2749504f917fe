package memcache_fx

import (
	"go.uber.org/fx"
	mem "stylishtype/pkg/memcache"
)

var Module = fx.Provide(provideTokenStore)

func provideTokenStore() mem.TokenStore {
	return mem.NewGatewayTokens()
}
