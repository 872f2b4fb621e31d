package usecase

import (
	"context"
	"time"

	"smap-engine/internal/action"
	"smap-engine/internal/action/repository"
	"smap-engine/internal/model"
	pkgLog "smap-engine/pkg/log"
	"smap-engine/pkg/mailer"
	"smap-engine/pkg/notifier"
	"smap-engine/pkg/webhook"
)

type handlerFunc func(ctx context.Context, ip action.DispatchInput, cfg model.ActionConfig) error

type usecase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	notifier  notifier.INotifier
	mailer    mailer.IMailer
	webhook   webhook.IWebhook
	webappURL string
	clock     func() time.Time

	// handlers maps each action kind to its executor. Adding a kind means
	// adding a model.ActionType constant and an entry here.
	handlers map[model.ActionType]handlerFunc
}

func New(
	l pkgLog.Logger,
	repo repository.Repository,
	ntf notifier.INotifier,
	ml mailer.IMailer,
	wh webhook.IWebhook,
	webappURL string,
) action.UseCase {
	uc := &usecase{
		l:         l,
		repo:      repo,
		notifier:  ntf,
		mailer:    ml,
		webhook:   wh,
		webappURL: webappURL,
		clock:     time.Now,
	}

	uc.handlers = map[model.ActionType]handlerFunc{
		model.ActionNotification: uc.sendNotification,
		model.ActionEmail:        uc.sendEmail,
		model.ActionCtlAlert:     uc.createCtlAlert,
		model.ActionTicket:       uc.createTicket,
		model.ActionWebhook:      uc.postWebhook,
	}

	return uc
}
