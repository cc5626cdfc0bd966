package mcptool

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/adtech-tools/yandex-mcp/internal/usecase"
	"github.com/adtech-tools/yandex-mcp/internal/validate"
)

func statisticsQuerySchema() validate.Schema {
	return validate.New(
		validate.Field{
			Name: "report_type", Kind: validate.String,
			Default: "CAMPAIGN_PERFORMANCE_REPORT",
			Desc:    "Report type: ACCOUNT_PERFORMANCE_REPORT, CAMPAIGN_PERFORMANCE_REPORT, AD_PERFORMANCE_REPORT, etc.",
		},
		validate.Field{
			Name: "date_from", Kind: validate.String, Required: true, Pattern: dateRe,
			Desc: "Report start date (YYYY-MM-DD)",
		},
		validate.Field{
			Name: "date_to", Kind: validate.String, Required: true, Pattern: dateRe,
			Desc: "Report end date (YYYY-MM-DD)",
		},
		validate.Field{
			Name: "field_names", Kind: validate.StringList,
			Default: []string{"CampaignName", "Impressions", "Clicks", "Cost"},
			Desc:    "Fields to include in report",
		},
		idList("campaign_ids", "Filter by campaign IDs"),
		validate.Field{
			Name: "include_vat", Kind: validate.Bool, Default: true,
			Desc: "Include VAT in cost values",
		},
		formatField(),
	)
}

func registerReportTools(srv *server.MCPServer, catalog *usecase.Catalog, logger *slog.Logger) {
	register(srv, logger, toolDef{
		name:  "direct_get_statistics",
		title: "Get Yandex Direct Statistics",
		desc: "Get campaign statistics report from Yandex Direct. Retrieves performance " +
			"statistics for campaigns, ads, or keywords. Common fields: CampaignName, " +
			"CampaignId, Impressions, Clicks, Cost, Ctr, AvgCpc, ConversionRate, Date.",
		schema:   statisticsQuerySchema(),
		readOnly: true, idempotent: true,
	}, catalog.GetStatistics)
}
