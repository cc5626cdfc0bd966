package usecase

import (
	"context"
	"fmt"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
)

// AdsQuery filters the ad listing.
type AdsQuery struct {
	CampaignIds    []int64  `json:"campaign_ids"`
	AdGroupIds     []int64  `json:"adgroup_ids"`
	AdIds          []int64  `json:"ad_ids"`
	States         []string `json:"states"`
	Statuses       []string `json:"statuses"`
	Limit          int64    `json:"limit"`
	Offset         int64    `json:"offset"`
	ResponseFormat string   `json:"response_format"`
}

// TextAdCreate describes a new text ad. The ad lands in DRAFT status and
// must be moderated separately.
type TextAdCreate struct {
	AdGroupId int64  `json:"adgroup_id"`
	Title     string `json:"title"`
	Title2    string `json:"title2"`
	Text      string `json:"text"`
	Href      string `json:"href"`
	Mobile    bool   `json:"mobile"`
}

// TextAdUpdate carries the fields to change on a single text ad.
type TextAdUpdate struct {
	AdId   int64  `json:"ad_id"`
	Title  string `json:"title"`
	Title2 string `json:"title2"`
	Text   string `json:"text"`
	Href   string `json:"href"`
}

// AdAction identifies ads for a bulk state change.
type AdAction struct {
	AdIds []int64 `json:"ad_ids"`
}

func (c *Catalog) GetAds(ctx context.Context, in AdsQuery) (string, error) {
	criteria := map[string]any{}
	sel := domain.AdSelection
	putInt64s(criteria, sel.Wire("campaign_ids"), in.CampaignIds)
	putInt64s(criteria, sel.Wire("adgroup_ids"), in.AdGroupIds)
	putInt64s(criteria, sel.Wire("ad_ids"), in.AdIds)
	putStrings(criteria, sel.Wire("states"), in.States)
	putStrings(criteria, sel.Wire("statuses"), in.Statuses)

	result, err := c.direct.DirectRequest(ctx, "ads", "get", map[string]any{
		"SelectionCriteria": criteria,
		"FieldNames":        domain.AdFieldNames,
		"TextAdFieldNames":  domain.TextAdFieldNames,
		"Page":              page(in.Limit, in.Offset),
	}, false)
	if err != nil {
		return "", err
	}

	ads := resultList(result, "Ads")
	if in.ResponseFormat == domain.FormatJSON {
		return jsonDump(map[string]any{"ads": ads, "total": len(ads)})
	}
	return formatAds(ads), nil
}

func (c *Catalog) CreateTextAd(ctx context.Context, in TextAdCreate) (string, error) {
	mobile := "NO"
	if in.Mobile {
		mobile = "YES"
	}
	textAd := map[string]any{
		"Title":  in.Title,
		"Text":   in.Text,
		"Href":   in.Href,
		"Mobile": mobile,
	}
	if in.Title2 != "" {
		textAd["Title2"] = in.Title2
	}

	result, err := c.direct.DirectRequest(ctx, "ads", "add", map[string]any{
		"Ads": []any{map[string]any{
			"AdGroupId": in.AdGroupId,
			"TextAd":    textAd,
		}},
	}, false)
	if err != nil {
		return "", err
	}

	items := resultList(result, "AddResults")
	if len(items) > 0 {
		if id, ok := asInt64(items[0]["Id"]); ok && id != 0 {
			return fmt.Sprintf("Ad created successfully. ID: %d\n\nNote: Submit for moderation using direct_moderate_ads.", id), nil
		}
	}

	var errLines []string
	for _, item := range items {
		if errs, ok := item["Errors"].([]any); ok {
			for _, e := range errs {
				errLines = append(errLines, errorMessage(e))
			}
		}
	}
	return "Failed to create ad:\n" + bulleted(errLines), nil
}

func (c *Catalog) UpdateAd(ctx context.Context, in TextAdUpdate) (string, error) {
	textAd := map[string]any{}
	if in.Title != "" {
		textAd["Title"] = in.Title
	}
	if in.Title2 != "" {
		textAd["Title2"] = in.Title2
	}
	if in.Text != "" {
		textAd["Text"] = in.Text
	}
	if in.Href != "" {
		textAd["Href"] = in.Href
	}
	if len(textAd) == 0 {
		return "No fields specified for update.", nil
	}

	result, err := c.direct.DirectRequest(ctx, "ads", "update", map[string]any{
		"Ads": []any{map[string]any{
			"Id":     in.AdId,
			"TextAd": textAd,
		}},
	}, false)
	if err != nil {
		return "", err
	}

	if issues := updateIssues(resultList(result, "UpdateResults")); len(issues) > 0 {
		return "Update completed with issues:\n" + bulleted(issues), nil
	}
	return fmt.Sprintf("Ad %d updated successfully. Note: Submit for moderation using direct_moderate_ads.", in.AdId), nil
}

func (c *Catalog) ModerateAds(ctx context.Context, in AdAction) (string, error) {
	result, err := c.direct.DirectRequest(ctx, "ads", "moderate", map[string]any{
		"SelectionCriteria": map[string]any{"Ids": in.AdIds},
	}, false)
	if err != nil {
		return "", err
	}
	succeeded, errLines := actionOutcome(resultList(result, "ModerateResults"))
	return summary(fmt.Sprintf("Successfully submitted %d ad(s) for moderation.", len(succeeded)), errLines), nil
}

func (c *Catalog) SuspendAds(ctx context.Context, in AdAction) (string, error) {
	return c.manageAds(ctx, "suspend", "SuspendResults", "suspended", in.AdIds)
}

func (c *Catalog) ResumeAds(ctx context.Context, in AdAction) (string, error) {
	return c.manageAds(ctx, "resume", "ResumeResults", "resumed", in.AdIds)
}

func (c *Catalog) ArchiveAds(ctx context.Context, in AdAction) (string, error) {
	return c.manageAds(ctx, "archive", "ArchiveResults", "archived", in.AdIds)
}

func (c *Catalog) UnarchiveAds(ctx context.Context, in AdAction) (string, error) {
	return c.manageAds(ctx, "unarchive", "UnarchiveResults", "unarchived", in.AdIds)
}

func (c *Catalog) DeleteAds(ctx context.Context, in AdAction) (string, error) {
	return c.manageAds(ctx, "delete", "DeleteResults", "deleted", in.AdIds)
}

func (c *Catalog) manageAds(ctx context.Context, method, resultKey, verb string, ids []int64) (string, error) {
	result, err := c.direct.DirectRequest(ctx, "ads", method, map[string]any{
		"SelectionCriteria": map[string]any{"Ids": ids},
	}, false)
	if err != nil {
		return "", err
	}

	succeeded, errLines := actionOutcome(resultList(result, resultKey))
	c.logger.Info("ad bulk action finished",
		"method", method, "succeeded", len(succeeded), "failed", len(errLines))
	return summary(fmt.Sprintf("Successfully %s %d ad(s).", verb, len(succeeded)), errLines), nil
}
