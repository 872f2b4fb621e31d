package http

import (
	"smap-engine/internal/quota"
	"smap-engine/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc quota.UseCase
}

func New(l log.Logger, uc quota.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
