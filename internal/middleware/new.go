package middleware

import (
	"smap-engine/pkg/log"
)

type Middleware struct {
	logger      log.Logger
	internalKey string
}

func New(logger log.Logger, internalKey string) Middleware {
	return Middleware{
		logger:      logger,
		internalKey: internalKey,
	}
}
