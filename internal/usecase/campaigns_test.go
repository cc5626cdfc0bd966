package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adtech-tools/yandex-mcp/internal/usecase"
)

func TestGetCampaignsMarkdown(t *testing.T) {
	direct := &fakeDirect{result: directResult("Campaigns",
		map[string]any{
			"Id": 101.0, "Name": "Spring Sale", "Type": "TEXT_CAMPAIGN",
			"State": "ON", "Status": "ACCEPTED",
			"DailyBudget": map[string]any{"Amount": 300_000_000.0, "Mode": "DISTRIBUTED"},
			"Statistics":  map[string]any{"Clicks": 1200.0, "Impressions": 45000.0},
		},
		map[string]any{"Id": 102.0},
	)}
	catalog := newTestCatalog(direct, nil)

	out, err := catalog.GetCampaigns(context.Background(), usecase.CampaignsQuery{
		CampaignIds: []int64{101, 102}, States: []string{"ON"},
		Limit: 100, Offset: 0, ResponseFormat: "markdown",
	})
	require.NoError(t, err)

	assert.Equal(t, "campaigns", direct.service)
	assert.Equal(t, "get", direct.method)
	criteria := direct.params["SelectionCriteria"].(map[string]any)
	assert.Equal(t, []int64{101, 102}, criteria["Ids"])
	assert.Equal(t, []string{"ON"}, criteria["States"])
	page := direct.params["Page"].(map[string]any)
	assert.Equal(t, int64(100), page["Limit"])

	assert.Contains(t, out, "# Campaigns\n")
	assert.Contains(t, out, "## Spring Sale (ID: 101)")
	assert.Contains(t, out, "- **Daily Budget**: 300.00 (DISTRIBUTED)")
	assert.Contains(t, out, "- **Clicks**: 1200")
	assert.Contains(t, out, "- **Impressions**: 45000")
	// Second campaign has no name and no optional blocks.
	assert.Contains(t, out, "## Unnamed (ID: 102)")
	assert.Contains(t, out, "- **Type**: N/A")
}

func TestGetCampaignsJSONEnvelope(t *testing.T) {
	direct := &fakeDirect{result: directResult("Campaigns",
		map[string]any{"Id": 1.0, "Name": "A"},
		map[string]any{"Id": 2.0, "Name": "B"},
	)}
	catalog := newTestCatalog(direct, nil)

	out, err := catalog.GetCampaigns(context.Background(), usecase.CampaignsQuery{
		Limit: 100, ResponseFormat: "json",
	})
	require.NoError(t, err)

	var envelope struct {
		Campaigns []map[string]any `json:"campaigns"`
		Total     int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Len(t, envelope.Campaigns, 2)
	assert.Equal(t, 2, envelope.Total)
}

func TestGetCampaignsEmpty(t *testing.T) {
	catalog := newTestCatalog(&fakeDirect{result: directResult("Campaigns")}, nil)

	out, err := catalog.GetCampaigns(context.Background(), usecase.CampaignsQuery{Limit: 100, ResponseFormat: "markdown"})
	require.NoError(t, err)
	assert.Equal(t, "No campaigns found.", out)
}

func TestSuspendCampaignsPartialFailure(t *testing.T) {
	direct := &fakeDirect{result: directResult("SuspendResults",
		map[string]any{"Id": 11.0},
		map[string]any{"Id": 12.0},
		map[string]any{"Errors": []any{map[string]any{"Message": "Campaign not found"}}},
	)}
	catalog := newTestCatalog(direct, nil)

	out, err := catalog.SuspendCampaigns(context.Background(), usecase.CampaignAction{CampaignIds: []int64{11, 12, 13}})
	require.NoError(t, err)

	assert.Equal(t, "campaigns", direct.service)
	assert.Equal(t, "suspend", direct.method)
	assert.Contains(t, out, "Successfully suspended 2 campaign(s).")
	assert.Contains(t, out, "\n\nErrors:\n")
	assert.Contains(t, out, "- ID ?: Campaign not found")
}

func TestManageCampaignVerbs(t *testing.T) {
	tests := []struct {
		name   string
		invoke func(c *usecase.Catalog, ctx context.Context, in usecase.CampaignAction) (string, error)
		method string
		want   string
	}{
		{"resume", (*usecase.Catalog).ResumeCampaigns, "resume", "Successfully resumed 1 campaign(s)."},
		{"archive", (*usecase.Catalog).ArchiveCampaigns, "archive", "Successfully archived 1 campaign(s)."},
		{"unarchive", (*usecase.Catalog).UnarchiveCampaigns, "unarchive", "Successfully unarchived 1 campaign(s)."},
		{"delete", (*usecase.Catalog).DeleteCampaigns, "delete", "Successfully deleted 1 campaign(s)."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key := map[string]string{
				"resume": "ResumeResults", "archive": "ArchiveResults",
				"unarchive": "UnarchiveResults", "delete": "DeleteResults",
			}[tc.name]
			direct := &fakeDirect{result: directResult(key, map[string]any{"Id": 5.0})}
			catalog := newTestCatalog(direct, nil)

			out, err := tc.invoke(catalog, context.Background(), usecase.CampaignAction{CampaignIds: []int64{5}})
			require.NoError(t, err)
			assert.Equal(t, tc.method, direct.method)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestUpdateCampaign(t *testing.T) {
	t.Run("budget converts to micros", func(t *testing.T) {
		direct := &fakeDirect{result: directResult("UpdateResults", map[string]any{"Id": 7.0})}
		catalog := newTestCatalog(direct, nil)

		amount := 150.5
		out, err := catalog.UpdateCampaign(context.Background(), usecase.CampaignUpdate{
			CampaignId: 7, Name: "Renamed", DailyBudgetAmount: &amount,
		})
		require.NoError(t, err)
		assert.Equal(t, "Campaign 7 updated successfully.", out)

		update := direct.params["Campaigns"].([]any)[0].(map[string]any)
		assert.Equal(t, "Renamed", update["Name"])
		budget := update["DailyBudget"].(map[string]any)
		assert.Equal(t, int64(150_500_000), budget["Amount"])
		assert.Equal(t, "DISTRIBUTED", budget["Mode"])
	})

	t.Run("empty negative keywords clears the list", func(t *testing.T) {
		direct := &fakeDirect{result: directResult("UpdateResults", map[string]any{"Id": 7.0})}
		catalog := newTestCatalog(direct, nil)

		empty := []string{}
		_, err := catalog.UpdateCampaign(context.Background(), usecase.CampaignUpdate{
			CampaignId: 7, NegativeKeywords: &empty,
		})
		require.NoError(t, err)

		update := direct.params["Campaigns"].([]any)[0].(map[string]any)
		nk := update["NegativeKeywords"].(map[string]any)
		assert.Equal(t, []string{}, nk["Items"])
	})

	t.Run("absent negative keywords stay off the wire", func(t *testing.T) {
		direct := &fakeDirect{result: directResult("UpdateResults", map[string]any{"Id": 7.0})}
		catalog := newTestCatalog(direct, nil)

		_, err := catalog.UpdateCampaign(context.Background(), usecase.CampaignUpdate{CampaignId: 7})
		require.NoError(t, err)

		update := direct.params["Campaigns"].([]any)[0].(map[string]any)
		assert.NotContains(t, update, "NegativeKeywords")
		assert.NotContains(t, update, "DailyBudget")
	})

	t.Run("warnings and errors are itemized", func(t *testing.T) {
		direct := &fakeDirect{result: directResult("UpdateResults", map[string]any{
			"Id":       7.0,
			"Errors":   []any{map[string]any{"Message": "Name too long"}},
			"Warnings": []any{map[string]any{"Message": "Budget rounded"}},
		})}
		catalog := newTestCatalog(direct, nil)

		out, err := catalog.UpdateCampaign(context.Background(), usecase.CampaignUpdate{CampaignId: 7, Name: "x"})
		require.NoError(t, err)
		assert.Contains(t, out, "Update completed with issues:\n")
		assert.Contains(t, out, "- Name too long")
		assert.Contains(t, out, "- Warning: Budget rounded")
	})
}
