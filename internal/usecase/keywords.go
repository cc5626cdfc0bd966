package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
)

// KeywordsQuery filters the keyword listing.
type KeywordsQuery struct {
	CampaignIds    []int64 `json:"campaign_ids"`
	AdGroupIds     []int64 `json:"adgroup_ids"`
	KeywordIds     []int64 `json:"keyword_ids"`
	Limit          int64   `json:"limit"`
	Offset         int64   `json:"offset"`
	ResponseFormat string  `json:"response_format"`
}

// KeywordsAdd describes keywords to create in one ad group, all sharing an
// optional starting bid.
type KeywordsAdd struct {
	AdGroupId int64    `json:"adgroup_id"`
	Keywords  []string `json:"keywords"`
	Bid       *float64 `json:"bid"`
}

// KeywordAction identifies keywords for a bulk state change.
type KeywordAction struct {
	KeywordIds []int64 `json:"keyword_ids"`
}

// KeywordBid sets search and/or network bids for one keyword.
type KeywordBid struct {
	KeywordId  int64    `json:"keyword_id"`
	SearchBid  *float64 `json:"search_bid"`
	NetworkBid *float64 `json:"network_bid"`
}

// KeywordBidsSet is a batch of bid changes.
type KeywordBidsSet struct {
	KeywordBids []KeywordBid `json:"keyword_bids"`
}

func (c *Catalog) GetKeywords(ctx context.Context, in KeywordsQuery) (string, error) {
	criteria := map[string]any{}
	sel := domain.KeywordSelection
	putInt64s(criteria, sel.Wire("campaign_ids"), in.CampaignIds)
	putInt64s(criteria, sel.Wire("adgroup_ids"), in.AdGroupIds)
	putInt64s(criteria, sel.Wire("keyword_ids"), in.KeywordIds)

	result, err := c.direct.DirectRequest(ctx, "keywords", "get", map[string]any{
		"SelectionCriteria": criteria,
		"FieldNames":        domain.KeywordFieldNames,
		"Page":              page(in.Limit, in.Offset),
	}, false)
	if err != nil {
		return "", err
	}

	keywords := resultList(result, "Keywords")
	if in.ResponseFormat == domain.FormatJSON {
		return jsonDump(map[string]any{"keywords": keywords, "total": len(keywords)})
	}
	return formatKeywords(keywords), nil
}

func (c *Catalog) AddKeywords(ctx context.Context, in KeywordsAdd) (string, error) {
	items := make([]any, 0, len(in.Keywords))
	for _, kw := range in.Keywords {
		keyword := map[string]any{
			"Keyword":   kw,
			"AdGroupId": in.AdGroupId,
		}
		if in.Bid != nil {
			keyword["Bid"] = domain.ToMicros(*in.Bid)
		}
		items = append(items, keyword)
	}

	result, err := c.direct.DirectRequest(ctx, "keywords", "add", map[string]any{
		"Keywords": items,
	}, false)
	if err != nil {
		return "", err
	}

	var errLines []string
	var ids []string
	for _, item := range resultList(result, "AddResults") {
		id, hasID := asInt64(item["Id"])
		itemErrs, _ := item["Errors"].([]any)
		if len(itemErrs) > 0 {
			for _, e := range itemErrs {
				errLines = append(errLines, errorMessage(e))
			}
			continue
		}
		if hasID {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
	}

	response := fmt.Sprintf("Successfully added %d keyword(s).", len(ids))
	if len(ids) > 0 {
		response += "\nIDs: " + strings.Join(ids, ", ")
	}
	return summary(response, errLines), nil
}

func (c *Catalog) SuspendKeywords(ctx context.Context, in KeywordAction) (string, error) {
	return c.manageKeywords(ctx, "suspend", "SuspendResults", "suspended", in.KeywordIds)
}

func (c *Catalog) ResumeKeywords(ctx context.Context, in KeywordAction) (string, error) {
	return c.manageKeywords(ctx, "resume", "ResumeResults", "resumed", in.KeywordIds)
}

func (c *Catalog) DeleteKeywords(ctx context.Context, in KeywordAction) (string, error) {
	return c.manageKeywords(ctx, "delete", "DeleteResults", "deleted", in.KeywordIds)
}

func (c *Catalog) manageKeywords(ctx context.Context, method, resultKey, verb string, ids []int64) (string, error) {
	result, err := c.direct.DirectRequest(ctx, "keywords", method, map[string]any{
		"SelectionCriteria": map[string]any{"Ids": ids},
	}, false)
	if err != nil {
		return "", err
	}

	succeeded, errLines := actionOutcome(resultList(result, resultKey))
	c.logger.Info("keyword bulk action finished",
		"method", method, "succeeded", len(succeeded), "failed", len(errLines))
	return summary(fmt.Sprintf("Successfully %s %d keyword(s).", verb, len(succeeded)), errLines), nil
}

func (c *Catalog) SetKeywordBids(ctx context.Context, in KeywordBidsSet) (string, error) {
	bids := make([]any, 0, len(in.KeywordBids))
	for _, kb := range in.KeywordBids {
		item := map[string]any{"KeywordId": kb.KeywordId}
		if kb.SearchBid != nil {
			item["SearchBid"] = domain.ToMicros(*kb.SearchBid)
		}
		if kb.NetworkBid != nil {
			item["NetworkBid"] = domain.ToMicros(*kb.NetworkBid)
		}
		bids = append(bids, item)
	}

	result, err := c.direct.DirectRequest(ctx, "keywordbids", "set", map[string]any{
		"KeywordBids": bids,
	}, false)
	if err != nil {
		return "", err
	}

	succeeded, errLines := actionOutcomeKey(resultList(result, "SetResults"), "KeywordId")
	return summary(fmt.Sprintf("Successfully updated bids for %d keyword(s).", len(succeeded)), errLines), nil
}
