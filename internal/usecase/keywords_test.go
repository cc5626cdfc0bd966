package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adtech-tools/yandex-mcp/internal/usecase"
)

func TestGetKeywordsMarkdown(t *testing.T) {
	direct := &fakeDirect{result: directResult("Keywords",
		map[string]any{
			"Id": 501.0, "Keyword": "buy flowers", "AdGroupId": 42.0,
			"Bid": 2_330_000.0, "State": "ON", "Status": "ACCEPTED",
		},
		map[string]any{"Id": 502.0, "Keyword": "cheap flowers", "AdGroupId": 42.0, "Bid": 0.0},
	)}
	catalog := newTestCatalog(direct, nil)

	out, err := catalog.GetKeywords(context.Background(), usecase.KeywordsQuery{
		AdGroupIds: []int64{42}, Limit: 100, ResponseFormat: "markdown",
	})
	require.NoError(t, err)

	criteria := direct.params["SelectionCriteria"].(map[string]any)
	assert.Equal(t, []int64{42}, criteria["AdGroupIds"])

	assert.Contains(t, out, "## buy flowers (ID: 501)")
	assert.Contains(t, out, "- **Bid**: 2.33")
	// Zero bid line is omitted entirely.
	assert.Contains(t, out, "## cheap flowers (ID: 502)")
	assert.Equal(t, 1, strings.Count(out, "- **Bid**:"))
}

func TestAddKeywords(t *testing.T) {
	direct := &fakeDirect{result: directResult("AddResults",
		map[string]any{"Id": 1.0},
		map[string]any{"Id": 2.0},
		map[string]any{"Errors": []any{map[string]any{"Message": "Duplicate keyword"}}},
	)}
	catalog := newTestCatalog(direct, nil)

	bid := 1.5
	out, err := catalog.AddKeywords(context.Background(), usecase.KeywordsAdd{
		AdGroupId: 42, Keywords: []string{"a", "b", "c"}, Bid: &bid,
	})
	require.NoError(t, err)

	items := direct.params["Keywords"].([]any)
	require.Len(t, items, 3)
	first := items[0].(map[string]any)
	assert.Equal(t, "a", first["Keyword"])
	assert.Equal(t, int64(42), first["AdGroupId"])
	assert.Equal(t, int64(1_500_000), first["Bid"])

	assert.Contains(t, out, "Successfully added 2 keyword(s).")
	assert.Contains(t, out, "\nIDs: 1, 2")
	assert.Contains(t, out, "- Duplicate keyword")
}

func TestAddKeywordsWithoutBid(t *testing.T) {
	direct := &fakeDirect{result: directResult("AddResults", map[string]any{"Id": 1.0})}
	catalog := newTestCatalog(direct, nil)

	_, err := catalog.AddKeywords(context.Background(), usecase.KeywordsAdd{
		AdGroupId: 42, Keywords: []string{"a"},
	})
	require.NoError(t, err)

	first := direct.params["Keywords"].([]any)[0].(map[string]any)
	assert.NotContains(t, first, "Bid")
}

func TestManageKeywords(t *testing.T) {
	direct := &fakeDirect{result: directResult("DeleteResults",
		map[string]any{"Id": 9.0},
		map[string]any{"Id": 10.0, "Errors": []any{map[string]any{"Message": "Already deleted"}}},
	)}
	catalog := newTestCatalog(direct, nil)

	out, err := catalog.DeleteKeywords(context.Background(), usecase.KeywordAction{KeywordIds: []int64{9, 10}})
	require.NoError(t, err)

	assert.Equal(t, "keywords", direct.service)
	assert.Equal(t, "delete", direct.method)
	assert.Contains(t, out, "Successfully deleted 1 keyword(s).")
	assert.Contains(t, out, "- ID 10: Already deleted")
}

func TestSuspendResumeKeywords(t *testing.T) {
	direct := &fakeDirect{result: directResult("SuspendResults", map[string]any{"Id": 9.0})}
	catalog := newTestCatalog(direct, nil)

	out, err := catalog.SuspendKeywords(context.Background(), usecase.KeywordAction{KeywordIds: []int64{9}})
	require.NoError(t, err)
	assert.Equal(t, "suspend", direct.method)
	assert.Equal(t, "Successfully suspended 1 keyword(s).", out)

	direct.result = directResult("ResumeResults", map[string]any{"Id": 9.0})
	out, err = catalog.ResumeKeywords(context.Background(), usecase.KeywordAction{KeywordIds: []int64{9}})
	require.NoError(t, err)
	assert.Equal(t, "resume", direct.method)
	assert.Equal(t, "Successfully resumed 1 keyword(s).", out)
}

func TestSetKeywordBids(t *testing.T) {
	direct := &fakeDirect{result: directResult("SetResults",
		map[string]any{"KeywordId": 100.0},
		map[string]any{"KeywordId": 101.0, "Errors": []any{map[string]any{"Message": "Bid too low"}}},
	)}
	catalog := newTestCatalog(direct, nil)

	search := 1.5
	network := 0.5
	out, err := catalog.SetKeywordBids(context.Background(), usecase.KeywordBidsSet{
		KeywordBids: []usecase.KeywordBid{
			{KeywordId: 100, SearchBid: &search, NetworkBid: &network},
			{KeywordId: 101, SearchBid: &search},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "keywordbids", direct.service)
	assert.Equal(t, "set", direct.method)
	bids := direct.params["KeywordBids"].([]any)
	first := bids[0].(map[string]any)
	assert.Equal(t, int64(100), first["KeywordId"])
	assert.Equal(t, int64(1_500_000), first["SearchBid"])
	assert.Equal(t, int64(500_000), first["NetworkBid"])
	second := bids[1].(map[string]any)
	assert.NotContains(t, second, "NetworkBid")

	assert.Contains(t, out, "Successfully updated bids for 1 keyword(s).")
	assert.Contains(t, out, "- ID 101: Bid too low")
}
