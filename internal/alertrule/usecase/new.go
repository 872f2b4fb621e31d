package usecase

import (
	"time"

	"smap-engine/internal/action"
	"smap-engine/internal/alertrule"
	"smap-engine/internal/alertrule/repository"
	pkgLog "smap-engine/pkg/log"
)

type usecase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	dispatcher action.UseCase
	clock      func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, dispatcher action.UseCase) alertrule.UseCase {
	return &usecase{
		l:          l,
		repo:       repo,
		dispatcher: dispatcher,
		clock:      time.Now,
	}
}
