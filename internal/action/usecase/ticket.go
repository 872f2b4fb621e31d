package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"smap-engine/internal/action"
	"smap-engine/internal/action/repository"
	"smap-engine/internal/model"
)

func (uc *usecase) createTicket(ctx context.Context, ip action.DispatchInput, cfg model.ActionConfig) error {
	priority := cfg.Priority
	if priority == "" {
		priority = model.TicketPriorityMedium
	}

	title, _ := summarize(ip)

	sc := model.Scope{TenantID: ip.Rule.TenantID, UserID: ip.Rule.CreatedBy}
	if _, err := uc.repo.CreateTicket(ctx, sc, repository.CreateTicketOptions{
		Code:        uc.ticketCode(),
		Title:       title,
		Description: buildTicketDescription(ip),
		Priority:    priority,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.action.usecase.createTicket.CreateTicket: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) ticketCode() string {
	return fmt.Sprintf("TCK-%d-%04d", uc.clock().Unix(), rand.Intn(10000))
}

func buildTicketDescription(ip action.DispatchInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Triggered by rule %q (%s).\n", ip.Rule.Name, ip.Rule.RuleType)

	if ip.Mention != nil {
		fmt.Fprintf(&b, "Platform: %s\n", ip.Mention.Platform)
		fmt.Fprintf(&b, "Author: %s (@%s)\n", ip.Mention.AuthorName, ip.Mention.AuthorHandle)
		if ip.Mention.Sentiment != nil {
			sentiment := *ip.Mention.Sentiment
			if ip.Mention.SentimentScore != nil {
				sentiment = fmt.Sprintf("%s (%.2f)", sentiment, *ip.Mention.SentimentScore)
			}
			fmt.Fprintf(&b, "Sentiment: %s\n", sentiment)
		}
		fmt.Fprintf(&b, "Content: %s\n", excerpt(ip.Mention.Content, 500))
	} else {
		fmt.Fprintf(&b, "Event type: %s\n", ip.Event.EventType)
	}

	return b.String()
}
