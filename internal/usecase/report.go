package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
)

const statisticsRowCap = 100

// StatisticsQuery describes one Direct report run.
type StatisticsQuery struct {
	DateFrom       string   `json:"date_from"`
	DateTo         string   `json:"date_to"`
	ReportType     string   `json:"report_type"`
	FieldNames     []string `json:"field_names"`
	CampaignIds    []int64  `json:"campaign_ids"`
	IncludeVAT     bool     `json:"include_vat"`
	ResponseFormat string   `json:"response_format"`
}

// GetStatistics runs a synchronous Direct report and renders the returned
// TSV. A 201 or 202 means the report is still building server-side; the
// report name is salted with a UUID so a retry starts a fresh run instead of
// colliding with the previous definition.
func (c *Catalog) GetStatistics(ctx context.Context, in StatisticsQuery) (string, error) {
	includeVAT := "NO"
	if in.IncludeVAT {
		includeVAT = "YES"
	}

	criteria := map[string]any{
		"DateFrom": in.DateFrom,
		"DateTo":   in.DateTo,
	}
	if len(in.CampaignIds) > 0 {
		values := make([]string, len(in.CampaignIds))
		for i, id := range in.CampaignIds {
			values[i] = strconv.FormatInt(id, 10)
		}
		criteria["Filter"] = []any{map[string]any{
			"Field":    "CampaignId",
			"Operator": "IN",
			"Values":   values,
		}}
	}

	definition := map[string]any{
		"SelectionCriteria": criteria,
		"FieldNames":        in.FieldNames,
		"ReportName":        fmt.Sprintf("Report_%s_%s_%s", in.DateFrom, in.DateTo, uuid.NewString()),
		"ReportType":        in.ReportType,
		"DateRangeType":     "CUSTOM_DATE",
		"Format":            "TSV",
		"IncludeVAT":        includeVAT,
		"IncludeDiscount":   "NO",
	}

	body, status, err := c.direct.DirectReport(ctx, definition)
	if err != nil {
		return "", err
	}
	if status == 201 || status == 202 {
		return "Report is being generated. Please try again in a few seconds.", nil
	}

	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) < 2 {
		return "No data found for the specified period.", nil
	}

	header := strings.Split(lines[0], "\t")
	var rows [][]string
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}

	if in.ResponseFormat == domain.FormatJSON {
		records := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			record := map[string]any{}
			for i, col := range header {
				if i < len(row) {
					record[col] = row[i]
				}
			}
			records = append(records, record)
		}
		return jsonDump(map[string]any{"data": records, "total": len(records)})
	}

	md := []string{
		"# Direct Statistics Report\n",
		fmt.Sprintf("**Period**: %s — %s", in.DateFrom, in.DateTo),
		fmt.Sprintf("**Report type**: %s\n", in.ReportType),
		"| " + strings.Join(header, " | ") + " |",
		"| " + strings.Join(dashes(len(header)), " | ") + " |",
	}
	shown := rows
	if len(shown) > statisticsRowCap {
		shown = shown[:statisticsRowCap]
	}
	for _, row := range shown {
		md = append(md, "| "+strings.Join(row, " | ")+" |")
	}
	if len(rows) > statisticsRowCap {
		md = append(md, fmt.Sprintf("\n*...and %d more rows*", len(rows)-statisticsRowCap))
	}
	return strings.Join(md, "\n"), nil
}

func dashes(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "---"
	}
	return out
}
