package usecase

import (
	"context"

	"smap-engine/internal/alertrule"
	"smap-engine/internal/alertrule/repository"
	"smap-engine/internal/model"
)

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip alertrule.CreateInput) (alertrule.RuleOutput, error) {
	conditions, err := alertrule.ValidateConditions(ip.RuleType, ip.Conditions)
	if err != nil {
		return alertrule.RuleOutput{}, err
	}

	if err := alertrule.ValidateActions(ip.Actions); err != nil {
		return alertrule.RuleOutput{}, err
	}

	rule, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Rule: model.AlertRule{
			TenantID:        sc.TenantID,
			Name:            ip.Name,
			RuleType:        ip.RuleType,
			Conditions:      conditions,
			Actions:         ip.Actions,
			Platforms:       ip.Platforms,
			IsActive:        ip.IsActive,
			CooldownMinutes: ip.CooldownMinutes,
			CreatedBy:       sc.UserID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alertrule.usecase.Create: %v", err)
		return alertrule.RuleOutput{}, err
	}

	return alertrule.RuleOutput{Rule: rule}, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip alertrule.UpdateInput) (alertrule.RuleOutput, error) {
	existing, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return alertrule.RuleOutput{}, alertrule.ErrRuleNotFound
		}
		uc.l.Errorf(ctx, "internal.alertrule.usecase.Update.Detail: %v", err)
		return alertrule.RuleOutput{}, err
	}

	// The rule type is immutable; conditions are validated against it.
	conditions, err := alertrule.ValidateConditions(existing.RuleType, ip.Conditions)
	if err != nil {
		return alertrule.RuleOutput{}, err
	}

	if err := alertrule.ValidateActions(ip.Actions); err != nil {
		return alertrule.RuleOutput{}, err
	}

	existing.Name = ip.Name
	existing.Conditions = conditions
	existing.Actions = ip.Actions
	existing.Platforms = ip.Platforms
	existing.IsActive = ip.IsActive
	existing.CooldownMinutes = ip.CooldownMinutes

	rule, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Rule: existing})
	if err != nil {
		if err == repository.ErrNotFound {
			return alertrule.RuleOutput{}, alertrule.ErrRuleNotFound
		}
		uc.l.Errorf(ctx, "internal.alertrule.usecase.Update: %v", err)
		return alertrule.RuleOutput{}, err
	}

	return alertrule.RuleOutput{Rule: rule}, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip alertrule.GetInput) (alertrule.GetRuleOutput, error) {
	rules, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: repository.Filter{
			IDs:      ip.Filter.IDs,
			RuleType: ip.Filter.RuleType,
			IsActive: ip.Filter.IsActive,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alertrule.usecase.Get: %v", err)
		return alertrule.GetRuleOutput{}, err
	}

	return alertrule.GetRuleOutput{Rules: rules, Paginator: pag}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (alertrule.RuleOutput, error) {
	rule, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return alertrule.RuleOutput{}, alertrule.ErrRuleNotFound
		}
		uc.l.Errorf(ctx, "internal.alertrule.usecase.Detail: %v", err)
		return alertrule.RuleOutput{}, err
	}

	return alertrule.RuleOutput{Rule: rule}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return alertrule.ErrRuleNotFound
		}
		uc.l.Errorf(ctx, "internal.alertrule.usecase.Delete: %v", err)
		return err
	}

	return nil
}
