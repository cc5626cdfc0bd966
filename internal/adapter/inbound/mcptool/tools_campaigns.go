package mcptool

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
	"github.com/adtech-tools/yandex-mcp/internal/usecase"
	"github.com/adtech-tools/yandex-mcp/internal/validate"
)

func campaignsQuerySchema() validate.Schema {
	return validate.New(
		idList("campaign_ids", "Filter by specific campaign IDs"),
		validate.Field{
			Name: "states", Kind: validate.StringList, Enum: domain.CampaignStates,
			Desc: "Filter by campaign states: ON, OFF, SUSPENDED, ENDED, CONVERTED, ARCHIVED",
		},
		validate.Field{
			Name: "statuses", Kind: validate.StringList, Enum: domain.CampaignStatuses,
			Desc: "Filter by campaign statuses: ACCEPTED, DRAFT, MODERATION, REJECTED",
		},
		validate.Field{
			Name: "types", Kind: validate.StringList, Enum: domain.CampaignTypes,
			Desc: "Filter by campaign types",
		},
		limitField(10000, "Maximum number of campaigns to return"),
		offsetField(),
		formatField(),
	)
}

func campaignActionSchema() validate.Schema {
	return validate.New(
		requiredIDList("campaign_ids", "Campaign IDs to manage (max 10 per request)", 10),
	)
}

func campaignUpdateSchema() validate.Schema {
	return validate.New(
		validate.Field{Name: "campaign_id", Kind: validate.Int, Required: true, Desc: "Campaign ID to update"},
		validate.Field{Name: "name", Kind: validate.String, MaxLen: 255, Desc: "New campaign name"},
		validate.Field{
			Name: "daily_budget_amount", Kind: validate.Number,
			Min: validate.F(0), ExclusiveMin: true,
			Desc: "Daily budget in currency units (will be converted to micros)",
		},
		validate.Field{
			Name: "daily_budget_mode", Kind: validate.String, Enum: domain.BudgetModes,
			Desc: "Daily budget mode: STANDARD or DISTRIBUTED",
		},
		dateField("start_date", "Campaign start date (YYYY-MM-DD)"),
		dateField("end_date", "Campaign end date (YYYY-MM-DD)"),
		validate.Field{Name: "negative_keywords", Kind: validate.StringList, Desc: "Campaign-level negative keywords"},
	)
}

func registerCampaignTools(srv *server.MCPServer, catalog *usecase.Catalog, logger *slog.Logger) {
	register(srv, logger, toolDef{
		name:  "direct_get_campaigns",
		title: "Get Yandex Direct Campaigns",
		desc: "Get list of advertising campaigns from Yandex Direct. " +
			"Retrieves campaigns with their settings, statistics, and current status. " +
			"Supports filtering by IDs, states, statuses, and types.",
		schema:   campaignsQuerySchema(),
		readOnly: true, idempotent: true,
	}, catalog.GetCampaigns)

	register(srv, logger, toolDef{
		name:  "direct_suspend_campaigns",
		title: "Suspend Yandex Direct Campaigns",
		desc: "Suspend (pause) advertising campaigns. Suspended campaigns stop showing ads " +
			"but retain all settings. Can be resumed later with direct_resume_campaigns.",
		schema:     campaignActionSchema(),
		idempotent: true,
	}, catalog.SuspendCampaigns)

	register(srv, logger, toolDef{
		name:  "direct_resume_campaigns",
		title: "Resume Yandex Direct Campaigns",
		desc: "Resume suspended advertising campaigns. " +
			"Campaigns will start showing ads again.",
		schema:     campaignActionSchema(),
		idempotent: true,
	}, catalog.ResumeCampaigns)

	register(srv, logger, toolDef{
		name:  "direct_archive_campaigns",
		title: "Archive Yandex Direct Campaigns",
		desc: "Archive advertising campaigns. Archived campaigns are hidden from the main " +
			"list but can be restored.",
		schema:     campaignActionSchema(),
		idempotent: true,
	}, catalog.ArchiveCampaigns)

	register(srv, logger, toolDef{
		name:       "direct_unarchive_campaigns",
		title:      "Unarchive Yandex Direct Campaigns",
		desc:       "Restore archived campaigns and make them visible in the main campaign list.",
		schema:     campaignActionSchema(),
		idempotent: true,
	}, catalog.UnarchiveCampaigns)

	register(srv, logger, toolDef{
		name:  "direct_delete_campaigns",
		title: "Delete Yandex Direct Campaigns",
		desc: "Delete advertising campaigns permanently. WARNING: This action is irreversible. " +
			"Consider archiving campaigns instead if you might need them later.",
		schema:      campaignActionSchema(),
		destructive: true,
	}, catalog.DeleteCampaigns)

	register(srv, logger, toolDef{
		name:  "direct_update_campaign",
		title: "Update Yandex Direct Campaign",
		desc: "Update campaign settings: name, daily budget, dates, and negative keywords. " +
			"Only specified fields will be updated.",
		schema:     campaignUpdateSchema(),
		idempotent: true,
	}, catalog.UpdateCampaign)
}
