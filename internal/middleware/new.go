package middleware

import (
	"library-catalog/config"
	"library-catalog/pkg/log"
)

type Middleware struct {
	l         log.Logger
	apiKeys   map[string]string
	rateLimit config.RateLimitConfig
}

func New(l log.Logger, authConfig config.AuthConfig, rateLimitConfig config.RateLimitConfig) Middleware {
	return Middleware{
		l:         l,
		apiKeys:   authConfig.APIKeys,
		rateLimit: rateLimitConfig,
	}
}
