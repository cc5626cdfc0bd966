package usecase

import (
	"context"
	"fmt"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
)

// CampaignsQuery filters the campaign listing.
type CampaignsQuery struct {
	CampaignIds    []int64  `json:"campaign_ids"`
	States         []string `json:"states"`
	Statuses       []string `json:"statuses"`
	Types          []string `json:"types"`
	Limit          int64    `json:"limit"`
	Offset         int64    `json:"offset"`
	ResponseFormat string   `json:"response_format"`
}

// CampaignAction identifies campaigns for a bulk state change.
type CampaignAction struct {
	CampaignIds []int64 `json:"campaign_ids"`
}

// CampaignUpdate carries the fields to change on a single campaign.
// Unset fields are left untouched on the vendor side.
type CampaignUpdate struct {
	CampaignId        int64     `json:"campaign_id"`
	Name              string    `json:"name"`
	DailyBudgetAmount *float64  `json:"daily_budget_amount"`
	DailyBudgetMode   string    `json:"daily_budget_mode"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	NegativeKeywords  *[]string `json:"negative_keywords"`
}

func (c *Catalog) GetCampaigns(ctx context.Context, in CampaignsQuery) (string, error) {
	criteria := map[string]any{}
	sel := domain.CampaignSelection
	putInt64s(criteria, sel.Wire("campaign_ids"), in.CampaignIds)
	putStrings(criteria, sel.Wire("states"), in.States)
	putStrings(criteria, sel.Wire("statuses"), in.Statuses)
	putStrings(criteria, sel.Wire("types"), in.Types)

	result, err := c.direct.DirectRequest(ctx, "campaigns", "get", map[string]any{
		"SelectionCriteria":      criteria,
		"FieldNames":             domain.CampaignFieldNames,
		"TextCampaignFieldNames": domain.TextCampaignFieldNames,
		"Page":                   page(in.Limit, in.Offset),
	}, false)
	if err != nil {
		return "", err
	}

	campaigns := resultList(result, "Campaigns")
	if in.ResponseFormat == domain.FormatJSON {
		return jsonDump(map[string]any{"campaigns": campaigns, "total": len(campaigns)})
	}
	return formatCampaigns(campaigns), nil
}

func (c *Catalog) SuspendCampaigns(ctx context.Context, in CampaignAction) (string, error) {
	return c.manageCampaigns(ctx, "suspend", "SuspendResults", "suspended", in.CampaignIds)
}

func (c *Catalog) ResumeCampaigns(ctx context.Context, in CampaignAction) (string, error) {
	return c.manageCampaigns(ctx, "resume", "ResumeResults", "resumed", in.CampaignIds)
}

func (c *Catalog) ArchiveCampaigns(ctx context.Context, in CampaignAction) (string, error) {
	return c.manageCampaigns(ctx, "archive", "ArchiveResults", "archived", in.CampaignIds)
}

func (c *Catalog) UnarchiveCampaigns(ctx context.Context, in CampaignAction) (string, error) {
	return c.manageCampaigns(ctx, "unarchive", "UnarchiveResults", "unarchived", in.CampaignIds)
}

func (c *Catalog) DeleteCampaigns(ctx context.Context, in CampaignAction) (string, error) {
	return c.manageCampaigns(ctx, "delete", "DeleteResults", "deleted", in.CampaignIds)
}

func (c *Catalog) manageCampaigns(ctx context.Context, method, resultKey, verb string, ids []int64) (string, error) {
	result, err := c.direct.DirectRequest(ctx, "campaigns", method, map[string]any{
		"SelectionCriteria": map[string]any{"Ids": ids},
	}, false)
	if err != nil {
		return "", err
	}

	succeeded, errLines := actionOutcome(resultList(result, resultKey))
	c.logger.Info("campaign bulk action finished",
		"method", method, "succeeded", len(succeeded), "failed", len(errLines))
	return summary(fmt.Sprintf("Successfully %s %d campaign(s).", verb, len(succeeded)), errLines), nil
}

func (c *Catalog) UpdateCampaign(ctx context.Context, in CampaignUpdate) (string, error) {
	update := map[string]any{"Id": in.CampaignId}
	if in.Name != "" {
		update["Name"] = in.Name
	}
	if in.DailyBudgetAmount != nil {
		mode := in.DailyBudgetMode
		if mode == "" {
			mode = "DISTRIBUTED"
		}
		update["DailyBudget"] = map[string]any{
			"Amount": domain.ToMicros(*in.DailyBudgetAmount),
			"Mode":   mode,
		}
	}
	if in.StartDate != "" {
		update["StartDate"] = in.StartDate
	}
	if in.EndDate != "" {
		update["EndDate"] = in.EndDate
	}
	if in.NegativeKeywords != nil {
		update["NegativeKeywords"] = map[string]any{"Items": *in.NegativeKeywords}
	}

	result, err := c.direct.DirectRequest(ctx, "campaigns", "update", map[string]any{
		"Campaigns": []any{update},
	}, false)
	if err != nil {
		return "", err
	}

	if issues := updateIssues(resultList(result, "UpdateResults")); len(issues) > 0 {
		return "Update completed with issues:\n" + bulleted(issues), nil
	}
	return fmt.Sprintf("Campaign %d updated successfully.", in.CampaignId), nil
}
