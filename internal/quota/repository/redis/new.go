package redis

import (
	"smap-engine/internal/quota/repository"
	pkgLog "smap-engine/pkg/log"
	pkgRedis "smap-engine/pkg/redis"
)

type implCounterRepository struct {
	l     pkgLog.Logger
	redis pkgRedis.IRedis
}

var _ repository.CounterRepository = &implCounterRepository{}

func New(l pkgLog.Logger, redis pkgRedis.IRedis) *implCounterRepository {
	return &implCounterRepository{
		l:     l,
		redis: redis,
	}
}
