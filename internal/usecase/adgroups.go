package usecase

import (
	"context"
	"fmt"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
)

// AdGroupsQuery filters the ad group listing.
type AdGroupsQuery struct {
	CampaignIds    []int64 `json:"campaign_ids"`
	AdGroupIds     []int64 `json:"adgroup_ids"`
	Limit          int64   `json:"limit"`
	Offset         int64   `json:"offset"`
	ResponseFormat string  `json:"response_format"`
}

// AdGroupCreate describes a new ad group.
type AdGroupCreate struct {
	Name             string   `json:"name"`
	CampaignId       int64    `json:"campaign_id"`
	RegionIds        []int64  `json:"region_ids"`
	NegativeKeywords []string `json:"negative_keywords"`
}

// AdGroupUpdate carries the fields to change on a single ad group.
type AdGroupUpdate struct {
	AdGroupId        int64     `json:"adgroup_id"`
	Name             string    `json:"name"`
	RegionIds        []int64   `json:"region_ids"`
	NegativeKeywords *[]string `json:"negative_keywords"`
	TrackingParams   string    `json:"tracking_params"`
}

func (c *Catalog) GetAdGroups(ctx context.Context, in AdGroupsQuery) (string, error) {
	criteria := map[string]any{}
	sel := domain.AdGroupSelection
	putInt64s(criteria, sel.Wire("campaign_ids"), in.CampaignIds)
	putInt64s(criteria, sel.Wire("adgroup_ids"), in.AdGroupIds)

	result, err := c.direct.DirectRequest(ctx, "adgroups", "get", map[string]any{
		"SelectionCriteria": criteria,
		"FieldNames":        domain.AdGroupFieldNames,
		"Page":              page(in.Limit, in.Offset),
	}, false)
	if err != nil {
		return "", err
	}

	groups := resultList(result, "AdGroups")
	if in.ResponseFormat == domain.FormatJSON {
		return jsonDump(map[string]any{"ad_groups": groups, "total": len(groups)})
	}
	return formatAdGroups(groups), nil
}

func (c *Catalog) CreateAdGroup(ctx context.Context, in AdGroupCreate) (string, error) {
	adgroup := map[string]any{
		"Name":       in.Name,
		"CampaignId": in.CampaignId,
		"RegionIds":  in.RegionIds,
	}
	if len(in.NegativeKeywords) > 0 {
		adgroup["NegativeKeywords"] = map[string]any{"Items": in.NegativeKeywords}
	}

	result, err := c.direct.DirectRequest(ctx, "adgroups", "add", map[string]any{
		"AdGroups": []any{adgroup},
	}, false)
	if err != nil {
		return "", err
	}

	items := resultList(result, "AddResults")
	if len(items) > 0 {
		if id, ok := asInt64(items[0]["Id"]); ok && id != 0 {
			return fmt.Sprintf("Ad group created successfully. ID: %d", id), nil
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
	return "Failed to create ad group:\n" + bulleted(errLines), nil
}

func (c *Catalog) UpdateAdGroup(ctx context.Context, in AdGroupUpdate) (string, error) {
	update := map[string]any{"Id": in.AdGroupId}
	if in.Name != "" {
		update["Name"] = in.Name
	}
	if len(in.RegionIds) > 0 {
		update["RegionIds"] = in.RegionIds
	}
	if in.NegativeKeywords != nil {
		update["NegativeKeywords"] = map[string]any{"Items": *in.NegativeKeywords}
	}
	if in.TrackingParams != "" {
		update["TrackingParams"] = in.TrackingParams
	}

	result, err := c.direct.DirectRequest(ctx, "adgroups", "update", map[string]any{
		"AdGroups": []any{update},
	}, false)
	if err != nil {
		return "", err
	}

	if issues := updateIssues(resultList(result, "UpdateResults")); len(issues) > 0 {
		return "Update completed with issues:\n" + bulleted(issues), nil
	}
	return fmt.Sprintf("Ad group %d updated successfully.", in.AdGroupId), nil
}
