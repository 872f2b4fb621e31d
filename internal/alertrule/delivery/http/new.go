package http

import (
	"smap-engine/internal/alertrule"
	"smap-engine/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc alertrule.UseCase
}

func New(l log.Logger, uc alertrule.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
