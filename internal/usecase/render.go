package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
)

const markdownRowCap = 50

var reportPrinter = message.NewPrinter(language.English)

// grouped renders a metric value with thousands separators and two decimals.
func grouped(v any) string {
	f, ok := v.(float64)
	if !ok {
		if n, isInt := asInt64(v); isInt {
			f = float64(n)
		} else {
			return "N/A"
		}
	}
	return reportPrinter.Sprint(number.Decimal(f, number.Scale(2)))
}

// num renders a numeric field without a trailing ".000000" when the vendor
// sent an integral value through JSON.
func num(v any) string {
	if n, ok := asInt64(v); ok {
		return strconv.FormatInt(n, 10)
	}
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if v == nil {
		return "N/A"
	}
	return fmt.Sprint(v)
}

func text(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func formatCampaigns(campaigns []map[string]any) string {
	if len(campaigns) == 0 {
		return "No campaigns found."
	}
	lines := []string{"# Campaigns\n"}
	for _, camp := range campaigns {
		lines = append(lines,
			fmt.Sprintf("## %s (ID: %s)", text(camp, "Name", "Unnamed"), num(camp["Id"])),
			"- **Type**: "+text(camp, "Type", "N/A"),
			"- **State**: "+text(camp, "State", "N/A"),
			"- **Status**: "+text(camp, "Status", "N/A"),
		)
		if budget, ok := camp["DailyBudget"].(map[string]any); ok {
			amount, _ := asInt64(budget["Amount"])
			lines = append(lines, fmt.Sprintf("- **Daily Budget**: %s (%s)",
				domain.FromMicros(amount), text(budget, "Mode", "N/A")))
		}
		if stats, ok := camp["Statistics"].(map[string]any); ok {
			clicks, _ := asInt64(stats["Clicks"])
			impressions, _ := asInt64(stats["Impressions"])
			lines = append(lines,
				fmt.Sprintf("- **Clicks**: %d", clicks),
				fmt.Sprintf("- **Impressions**: %d", impressions),
			)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func formatAds(ads []map[string]any) string {
	if len(ads) == 0 {
		return "No ads found."
	}
	lines := []string{"# Ads\n"}
	for _, ad := range ads {
		lines = append(lines,
			"## Ad ID: "+num(ad["Id"]),
			"- **AdGroup ID**: "+num(ad["AdGroupId"]),
			"- **Campaign ID**: "+num(ad["CampaignId"]),
			"- **State**: "+text(ad, "State", "N/A"),
			"- **Status**: "+text(ad, "Status", "N/A"),
		)
		if textAd, ok := ad["TextAd"].(map[string]any); ok {
			lines = append(lines,
				"- **Title**: "+text(textAd, "Title", "N/A"),
				"- **Title2**: "+text(textAd, "Title2", "N/A"),
				"- **Text**: "+text(textAd, "Text", "N/A"),
				"- **Href**: "+text(textAd, "Href", "N/A"),
			)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func formatAdGroups(groups []map[string]any) string {
	if len(groups) == 0 {
		return "No ad groups found."
	}
	lines := []string{"# Ad Groups\n"}
	for _, group := range groups {
		lines = append(lines,
			fmt.Sprintf("## %s (ID: %s)", text(group, "Name", "Unnamed"), num(group["Id"])),
			"- **Campaign ID**: "+num(group["CampaignId"]),
			"- **Type**: "+text(group, "Type", "N/A"),
			"- **Status**: "+text(group, "Status", "N/A"),
		)
		if regions, ok := group["RegionIds"].([]any); ok && len(regions) > 0 {
			ids := make([]string, len(regions))
			for i, r := range regions {
				ids[i] = num(r)
			}
			lines = append(lines, "- **Regions**: "+strings.Join(ids, ", "))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func formatKeywords(keywords []map[string]any) string {
	if len(keywords) == 0 {
		return "No keywords found."
	}
	lines := []string{"# Keywords\n"}
	for _, kw := range keywords {
		lines = append(lines,
			fmt.Sprintf("## %s (ID: %s)", text(kw, "Keyword", "N/A"), num(kw["Id"])),
			"- **AdGroup ID**: "+num(kw["AdGroupId"]),
			"- **State**: "+text(kw, "State", "N/A"),
			"- **Status**: "+text(kw, "Status", "N/A"),
		)
		if bid, ok := asInt64(kw["Bid"]); ok && bid > 0 {
			lines = append(lines, "- **Bid**: "+domain.FromMicros(bid))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func formatCounters(counters []map[string]any) string {
	if len(counters) == 0 {
		return "No counters found."
	}
	lines := []string{"# Metrika Counters\n"}
	for _, counter := range counters {
		site := "N/A"
		if site2, ok := counter["site2"].(map[string]any); ok {
			site = text(site2, "site", "N/A")
		}
		lines = append(lines,
			fmt.Sprintf("## %s (ID: %s)", text(counter, "name", "Unnamed"), num(counter["id"])),
			"- **Site**: "+site,
			"- **Status**: "+text(counter, "status", "N/A"),
			"- **Code Status**: "+text(counter, "code_status", "N/A"),
			"- **Owner**: "+text(counter, "owner_login", "N/A"),
		)
		if fav, ok := counter["favorite"].(bool); ok && fav {
			lines = append(lines, "- **Favorite**: ⭐")
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// dimensionLabel flattens a Metrika dimension cell, which arrives either as
// an object with name/id or as a bare value.
func dimensionLabel(dims []any) string {
	if len(dims) == 0 {
		return "Total"
	}
	parts := make([]string, len(dims))
	for i, d := range dims {
		if m, ok := d.(map[string]any); ok {
			if name, ok := m["name"].(string); ok && name != "" {
				parts[i] = name
			} else if id, ok := m["id"]; ok && id != nil {
				parts[i] = fmt.Sprint(id)
			} else {
				parts[i] = "N/A"
			}
			continue
		}
		parts[i] = fmt.Sprint(d)
	}
	return strings.Join(parts, " / ")
}

func formatMetrikaReport(data map[string]any) string {
	lines := []string{"# Metrika Report\n"}

	query, _ := data["query"].(map[string]any)
	lines = append(lines,
		"## Query Parameters",
		fmt.Sprintf("- **Period**: %s — %s", text(query, "date1", "N/A"), text(query, "date2", "N/A")),
	)
	var metricNames []string
	if dims, ok := query["dimensions"].([]any); ok && len(dims) > 0 {
		lines = append(lines, "- **Dimensions**: "+joinAny(dims))
	}
	if metrics, ok := query["metrics"].([]any); ok && len(metrics) > 0 {
		for _, m := range metrics {
			metricNames = append(metricNames, fmt.Sprint(m))
		}
		lines = append(lines, "- **Metrics**: "+strings.Join(metricNames, ", "))
	}
	lines = append(lines, "")

	if totals, ok := data["totals"].([]any); ok && len(totals) > 0 {
		lines = append(lines, "## Totals")
		for i, total := range totals {
			name := fmt.Sprintf("Metric %d", i+1)
			if i < len(metricNames) {
				name = metricNames[i]
			}
			lines = append(lines, fmt.Sprintf("- **%s**: %s", name, grouped(total)))
		}
		lines = append(lines, "")
	}

	if rows, ok := data["data"].([]any); ok && len(rows) > 0 {
		lines = append(lines, fmt.Sprintf("## Data (%d rows)", len(rows)))
		shown := rows
		if len(shown) > markdownRowCap {
			shown = shown[:markdownRowCap]
		}
		for _, raw := range shown {
			row, _ := raw.(map[string]any)
			dims, _ := row["dimensions"].([]any)
			vals, _ := row["metrics"].([]any)
			rendered := make([]string, len(vals))
			for i, v := range vals {
				rendered[i] = grouped(v)
			}
			lines = append(lines, fmt.Sprintf("- **%s**: %s", dimensionLabel(dims), strings.Join(rendered, ", ")))
		}
		if len(rows) > markdownRowCap {
			lines = append(lines, fmt.Sprintf("\n*...and %d more rows*", len(rows)-markdownRowCap))
		}
	}
	return strings.Join(lines, "\n")
}

func formatMetrikaByTime(data map[string]any, group string) string {
	lines := []string{"# Time-Based Report\n"}

	query, _ := data["query"].(map[string]any)
	lines = append(lines,
		fmt.Sprintf("**Period**: %s — %s", text(query, "date1", "N/A"), text(query, "date2", "N/A")),
		fmt.Sprintf("**Grouping**: %s\n", group),
	)

	intervals, _ := data["time_intervals"].([]any)
	rows, _ := data["data"].([]any)
	for _, raw := range rows {
		row, _ := raw.(map[string]any)
		dims, _ := row["dimensions"].([]any)
		series, _ := row["metrics"].([]any)

		lines = append(lines, "## "+dimensionLabel(dims))
		if len(intervals) > 0 && len(series) > 0 {
			for i, interval := range intervals {
				vals := make([]string, len(series))
				for j, metric := range series {
					points, _ := metric.([]any)
					var v any = float64(0)
					if i < len(points) {
						v = points[i]
					}
					vals[j] = grouped(v)
				}
				lines = append(lines, fmt.Sprintf("- %s: %s", intervalLabel(interval), strings.Join(vals, ", ")))
			}
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func intervalLabel(interval any) string {
	if parts, ok := interval.([]any); ok {
		return joinAnySep(parts, " — ")
	}
	return fmt.Sprint(interval)
}

func joinAny(items []any) string {
	return joinAnySep(items, ", ")
}

func joinAnySep(items []any, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, sep)
}
