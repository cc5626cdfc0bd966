package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adtech-tools/yandex-mcp/internal/usecase"
)

func metrikaReportFixture() map[string]any {
	return map[string]any{
		"query": map[string]any{
			"date1":      "2024-01-01",
			"date2":      "2024-01-31",
			"dimensions": []any{"ym:s:trafficSource"},
			"metrics":    []any{"ym:s:visits", "ym:s:users"},
		},
		"totals": []any{1234567.891, 890.0},
		"data": []any{
			map[string]any{
				"dimensions": []any{map[string]any{"name": "Direct traffic", "id": "direct"}},
				"metrics":    []any{1000.5, 700.0},
			},
			map[string]any{
				"dimensions": []any{map[string]any{"name": "Search engine traffic"}},
				"metrics":    []any{234067.391, 190.0},
			},
		},
	}
}

func TestGetMetrikaReport(t *testing.T) {
	t.Run("query parameters", func(t *testing.T) {
		metrika := &fakeMetrika{result: metrikaReportFixture()}
		catalog := newTestCatalog(nil, metrika)

		_, err := catalog.GetMetrikaReport(context.Background(), usecase.MetrikaReportQuery{
			CounterId:  111,
			Metrics:    []string{"ym:s:visits", "ym:s:users"},
			Dimensions: []string{"ym:s:trafficSource"},
			Date1:      "2024-01-01",
			Date2:      "2024-01-31",
			Filters:    "ym:s:isRobot=='No'",
			Sort:       "-ym:s:visits",
			Limit:      100,
		})
		require.NoError(t, err)

		assert.Equal(t, "/stat/v1/data", metrika.endpoint)
		assert.Equal(t, "111", metrika.query.Get("id"))
		assert.Equal(t, "ym:s:visits,ym:s:users", metrika.query.Get("metrics"))
		assert.Equal(t, "ym:s:trafficSource", metrika.query.Get("dimensions"))
		assert.Equal(t, "100", metrika.query.Get("limit"))
		assert.Equal(t, "ym:s:isRobot=='No'", metrika.query.Get("filters"))
		assert.Equal(t, "-ym:s:visits", metrika.query.Get("sort"))
	})

	t.Run("optional parameters stay off the wire", func(t *testing.T) {
		metrika := &fakeMetrika{result: metrikaReportFixture()}
		catalog := newTestCatalog(nil, metrika)

		_, err := catalog.GetMetrikaReport(context.Background(), usecase.MetrikaReportQuery{
			CounterId: 111, Metrics: []string{"ym:s:visits"}, Limit: 100,
		})
		require.NoError(t, err)
		_, hasDims := metrika.query["dimensions"]
		assert.False(t, hasDims)
		_, hasDate := metrika.query["date1"]
		assert.False(t, hasDate)
	})

	t.Run("markdown rendering", func(t *testing.T) {
		metrika := &fakeMetrika{result: metrikaReportFixture()}
		catalog := newTestCatalog(nil, metrika)

		out, err := catalog.GetMetrikaReport(context.Background(), usecase.MetrikaReportQuery{
			CounterId: 111, Metrics: []string{"ym:s:visits", "ym:s:users"}, Limit: 100,
		})
		require.NoError(t, err)

		assert.Contains(t, out, "# Metrika Report\n")
		assert.Contains(t, out, "- **Period**: 2024-01-01 — 2024-01-31")
		assert.Contains(t, out, "- **Metrics**: ym:s:visits, ym:s:users")
		assert.Contains(t, out, "- **ym:s:visits**: 1,234,567.89")
		assert.Contains(t, out, "## Data (2 rows)")
		assert.Contains(t, out, "- **Direct traffic**: 1,000.50, 700.00")
		assert.Contains(t, out, "- **Search engine traffic**: 234,067.39, 190.00")
	})

	t.Run("markdown row cap", func(t *testing.T) {
		rows := make([]any, 60)
		for i := range rows {
			rows[i] = map[string]any{
				"dimensions": []any{map[string]any{"name": fmt.Sprintf("Source %d", i)}},
				"metrics":    []any{float64(i)},
			}
		}
		metrika := &fakeMetrika{result: map[string]any{
			"query": map[string]any{"metrics": []any{"ym:s:visits"}},
			"data":  rows,
		}}
		catalog := newTestCatalog(nil, metrika)

		out, err := catalog.GetMetrikaReport(context.Background(), usecase.MetrikaReportQuery{
			CounterId: 111, Metrics: []string{"ym:s:visits"}, Limit: 100,
		})
		require.NoError(t, err)
		assert.Contains(t, out, "*...and 10 more rows*")
		assert.NotContains(t, out, "Source 51")
	})

	t.Run("json passthrough", func(t *testing.T) {
		metrika := &fakeMetrika{result: metrikaReportFixture()}
		catalog := newTestCatalog(nil, metrika)

		out, err := catalog.GetMetrikaReport(context.Background(), usecase.MetrikaReportQuery{
			CounterId: 111, Metrics: []string{"ym:s:visits"}, Limit: 100, ResponseFormat: "json",
		})
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &payload))
		assert.Contains(t, payload, "query")
		assert.Contains(t, payload, "data")
	})
}

func TestGetMetrikaReportByTime(t *testing.T) {
	metrika := &fakeMetrika{result: map[string]any{
		"query": map[string]any{"date1": "2024-01-01", "date2": "2024-01-03"},
		"time_intervals": []any{
			[]any{"2024-01-01", "2024-01-01"},
			[]any{"2024-01-02", "2024-01-02"},
		},
		"data": []any{
			map[string]any{
				"dimensions": []any{},
				"metrics":    []any{[]any{10.0, 20.5}},
			},
		},
	}}
	catalog := newTestCatalog(nil, metrika)

	out, err := catalog.GetMetrikaReportByTime(context.Background(), usecase.MetrikaByTimeQuery{
		CounterId: 111, Metrics: []string{"ym:s:visits"},
		Date1: "2024-01-01", Date2: "2024-01-03", Group: "day",
	})
	require.NoError(t, err)

	assert.Equal(t, "/stat/v1/data/bytime", metrika.endpoint)
	assert.Equal(t, "day", metrika.query.Get("group"))

	assert.Contains(t, out, "# Time-Based Report\n")
	assert.Contains(t, out, "**Period**: 2024-01-01 — 2024-01-03")
	assert.Contains(t, out, "**Grouping**: day\n")
	assert.Contains(t, out, "## Total")
	assert.Contains(t, out, "- 2024-01-01 — 2024-01-01: 10.00")
	assert.Contains(t, out, "- 2024-01-02 — 2024-01-02: 20.50")
}
