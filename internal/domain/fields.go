package domain

// FieldMap translates tool-facing selection field names into the vendor's
// wire names for one entity kind. Request builders and renderers read the
// same table so the two sides cannot drift apart.
type FieldMap map[string]string

// Wire returns the vendor wire name for a tool field.
func (m FieldMap) Wire(field string) string { return m[field] }

var (
	CampaignSelection = FieldMap{
		"campaign_ids": "Ids",
		"states":       "States",
		"statuses":     "Statuses",
		"types":        "Types",
	}

	AdGroupSelection = FieldMap{
		"campaign_ids": "CampaignIds",
		"adgroup_ids":  "Ids",
	}

	AdSelection = FieldMap{
		"campaign_ids": "CampaignIds",
		"adgroup_ids":  "AdGroupIds",
		"ad_ids":       "Ids",
		"states":       "States",
		"statuses":     "Statuses",
	}

	KeywordSelection = FieldMap{
		"campaign_ids": "CampaignIds",
		"adgroup_ids":  "AdGroupIds",
		"keyword_ids":  "Ids",
	}
)

// FieldNames requested from the vendor per entity kind. The renderers read
// exactly these attributes back out of the response.
var (
	CampaignFieldNames = []string{
		"Id", "Name", "Type", "State", "Status", "StatusPayment",
		"StartDate", "EndDate", "DailyBudget", "Statistics",
	}

	TextCampaignFieldNames = []string{"BiddingStrategy", "Settings"}

	AdGroupFieldNames = []string{"Id", "Name", "CampaignId", "RegionIds", "Type", "Status", "ServingStatus"}

	AdFieldNames = []string{"Id", "AdGroupId", "CampaignId", "Type", "State", "Status", "StatusClarification"}

	TextAdFieldNames = []string{"Title", "Title2", "Text", "Href", "Mobile", "DisplayDomain"}

	KeywordFieldNames = []string{"Id", "Keyword", "AdGroupId", "CampaignId", "Bid", "State", "Status"}
)
