package usecase

import (
	"time"

	"smap-engine/internal/quota"
	"smap-engine/internal/quota/repository"
	"smap-engine/pkg/criteria"
	pkgLog "smap-engine/pkg/log"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	counters repository.CounterRepository
	matcher  *criteria.Matcher
	clock    func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, counters repository.CounterRepository) quota.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		counters: counters,
		matcher:  criteria.New(l),
		clock:    time.Now,
	}
}
