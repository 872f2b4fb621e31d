package usecase

import (
	"time"

	"smap-engine/internal/action"
	alertruleRepo "smap-engine/internal/alertrule/repository"
	"smap-engine/internal/spike"
	pkgLog "smap-engine/pkg/log"
)

type usecase struct {
	l          pkgLog.Logger
	rules      alertruleRepo.Repository
	dispatcher action.UseCase
	clock      func() time.Time
}

func New(l pkgLog.Logger, rules alertruleRepo.Repository, dispatcher action.UseCase) spike.UseCase {
	return &usecase{
		l:          l,
		rules:      rules,
		dispatcher: dispatcher,
		clock:      time.Now,
	}
}
