package validate_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adtech-tools/yandex-mcp/internal/validate"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func listSchema() validate.Schema {
	return validate.New(
		validate.Field{Name: "campaign_ids", Kind: validate.IntList, Desc: "ids"},
		validate.Field{Name: "limit", Kind: validate.Int, Min: validate.F(1), Max: validate.F(10000), Default: int64(100)},
		validate.Field{Name: "offset", Kind: validate.Int, Min: validate.F(0), Default: int64(0)},
		validate.Field{Name: "response_format", Kind: validate.String, Enum: []string{"markdown", "json"}, Default: "markdown"},
	)
}

func TestParseDefaults(t *testing.T) {
	out, err := listSchema().Parse(map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, int64(100), out["limit"])
	assert.Equal(t, int64(0), out["offset"])
	assert.Equal(t, "markdown", out["response_format"])
	assert.NotContains(t, out, "campaign_ids")
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := listSchema().Parse(map[string]any{"campaing_ids": []any{1.0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unexpected field "campaing_ids"`)
}

func TestParseMissingRequired(t *testing.T) {
	s := validate.New(
		validate.Field{Name: "counter_id", Kind: validate.Int, Required: true},
	)
	_, err := s.Parse(map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required field "counter_id"`)
}

func TestParseRanges(t *testing.T) {
	s := listSchema()

	_, err := s.Parse(map[string]any{"limit": 0.0})
	assert.Error(t, err)

	_, err = s.Parse(map[string]any{"limit": 10001.0})
	assert.Error(t, err)

	out, err := s.Parse(map[string]any{"limit": 42.0})
	require.NoError(t, err)
	assert.Equal(t, int64(42), out["limit"])

	// JSON numbers with a fractional part never satisfy an Int field.
	_, err = s.Parse(map[string]any{"limit": 4.5})
	assert.Error(t, err)
}

func TestParseExclusiveMin(t *testing.T) {
	s := validate.New(
		validate.Field{Name: "bid", Kind: validate.Number, Min: validate.F(0), ExclusiveMin: true},
	)
	_, err := s.Parse(map[string]any{"bid": 0.0})
	assert.Error(t, err)

	out, err := s.Parse(map[string]any{"bid": 0.01})
	require.NoError(t, err)
	assert.Equal(t, 0.01, out["bid"])
}

func TestParseStringConstraints(t *testing.T) {
	s := validate.New(
		validate.Field{Name: "title", Kind: validate.String, Required: true, MinLen: 1, MaxLen: 5},
		dateFieldForTest("start_date"),
	)

	out, err := s.Parse(map[string]any{"title": "  ok  "})
	require.NoError(t, err)
	assert.Equal(t, "ok", out["title"])

	_, err = s.Parse(map[string]any{"title": "too long"})
	assert.Error(t, err)

	_, err = s.Parse(map[string]any{"title": "   "})
	assert.Error(t, err)

	_, err = s.Parse(map[string]any{"title": "ok", "start_date": "2025-1-1"})
	assert.Error(t, err)

	out, err = s.Parse(map[string]any{"title": "ok", "start_date": "2025-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", out["start_date"])
}

func dateFieldForTest(name string) validate.Field {
	return validate.Field{Name: name, Kind: validate.String, Pattern: dateRe}
}

func TestParseEnums(t *testing.T) {
	s := listSchema()

	_, err := s.Parse(map[string]any{"response_format": "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of markdown, json")

	states := validate.New(
		validate.Field{Name: "states", Kind: validate.StringList, Enum: []string{"ON", "OFF"}},
	)
	_, err = states.Parse(map[string]any{"states": []any{"ON", "BROKEN"}})
	assert.Error(t, err)

	out, err := states.Parse(map[string]any{"states": []any{"ON", "OFF"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ON", "OFF"}, out["states"])
}

func TestParseIntList(t *testing.T) {
	s := validate.New(
		validate.Field{Name: "ids", Kind: validate.IntList, Required: true, MinItems: 1, MaxItems: 3},
	)

	out, err := s.Parse(map[string]any{"ids": []any{1.0, 2.0}})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, out["ids"])

	_, err = s.Parse(map[string]any{"ids": []any{}})
	assert.Error(t, err)

	_, err = s.Parse(map[string]any{"ids": []any{1.0, 2.0, 3.0, 4.0}})
	assert.Error(t, err)

	_, err = s.Parse(map[string]any{"ids": []any{"1"}})
	assert.Error(t, err)
}

func TestParseObjectList(t *testing.T) {
	bid := validate.New(
		validate.Field{Name: "keyword_id", Kind: validate.Int, Required: true},
		validate.Field{Name: "search_bid", Kind: validate.Number, Min: validate.F(0), ExclusiveMin: true},
	)
	s := validate.New(
		validate.Field{Name: "keyword_bids", Kind: validate.ObjectList, Required: true, MinItems: 1, Object: &bid},
	)

	out, err := s.Parse(map[string]any{"keyword_bids": []any{
		map[string]any{"keyword_id": 7.0, "search_bid": 1.5},
	}})
	require.NoError(t, err)
	parsed := out["keyword_bids"].([]map[string]any)
	require.Len(t, parsed, 1)
	assert.Equal(t, int64(7), parsed[0]["keyword_id"])
	assert.Equal(t, 1.5, parsed[0]["search_bid"])

	_, err = s.Parse(map[string]any{"keyword_bids": []any{
		map[string]any{"search_bid": 1.5},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 0")

	_, err = s.Parse(map[string]any{"keyword_bids": []any{
		map[string]any{"keyword_id": 7.0, "typo": true},
	}})
	assert.Error(t, err)
}

func TestInputSchema(t *testing.T) {
	schema := listSchema().InputSchema()

	assert.Equal(t, "object", schema.Type)
	assert.Empty(t, schema.Required)

	limit, ok := schema.Properties["limit"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "integer", limit["type"])
	assert.Equal(t, int64(100), limit["default"])

	format, ok := schema.Properties["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"markdown", "json"}, format["enum"])

	ids, ok := schema.Properties["campaign_ids"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", ids["type"])
	assert.Equal(t, map[string]any{"type": "integer"}, ids["items"])

	withReq := validate.New(
		validate.Field{Name: "counter_id", Kind: validate.Int, Required: true},
	).InputSchema()
	assert.Equal(t, []string{"counter_id"}, withReq.Required)
}
