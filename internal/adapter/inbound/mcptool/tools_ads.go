package mcptool

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
	"github.com/adtech-tools/yandex-mcp/internal/usecase"
	"github.com/adtech-tools/yandex-mcp/internal/validate"
)

func adsQuerySchema() validate.Schema {
	return validate.New(
		idList("campaign_ids", "Filter by campaign IDs"),
		idList("adgroup_ids", "Filter by ad group IDs"),
		idList("ad_ids", "Filter by specific ad IDs"),
		validate.Field{Name: "states", Kind: validate.StringList, Enum: domain.AdStates, Desc: "Filter by ad states"},
		validate.Field{Name: "statuses", Kind: validate.StringList, Enum: domain.AdStatuses, Desc: "Filter by ad statuses"},
		limitField(10000, "Maximum number of ads to return"),
		offsetField(),
		formatField(),
	)
}

func textAdCreateSchema() validate.Schema {
	return validate.New(
		validate.Field{Name: "adgroup_id", Kind: validate.Int, Required: true, Desc: "Ad group ID to create ad in"},
		validate.Field{Name: "title", Kind: validate.String, Required: true, MinLen: 1, MaxLen: 56, Desc: "Ad title (max 56 characters)"},
		validate.Field{Name: "title2", Kind: validate.String, MaxLen: 30, Desc: "Second title (max 30 characters)"},
		validate.Field{Name: "text", Kind: validate.String, Required: true, MinLen: 1, MaxLen: 81, Desc: "Ad text (max 81 characters)"},
		validate.Field{Name: "href", Kind: validate.String, Required: true, Desc: "Landing page URL"},
		validate.Field{Name: "mobile", Kind: validate.Bool, Default: false, Desc: "Whether this is a mobile ad"},
	)
}

func textAdUpdateSchema() validate.Schema {
	return validate.New(
		validate.Field{Name: "ad_id", Kind: validate.Int, Required: true, Desc: "Ad ID to update"},
		validate.Field{Name: "title", Kind: validate.String, MaxLen: 56, Desc: "New ad title (max 56 characters)"},
		validate.Field{Name: "title2", Kind: validate.String, MaxLen: 30, Desc: "New second title (max 30 characters)"},
		validate.Field{Name: "text", Kind: validate.String, MaxLen: 81, Desc: "New ad text (max 81 characters)"},
		validate.Field{Name: "href", Kind: validate.String, Desc: "New landing page URL"},
	)
}

func adActionSchema() validate.Schema {
	return validate.New(
		requiredIDList("ad_ids", "Ad IDs to manage", 1000),
	)
}

func registerAdTools(srv *server.MCPServer, catalog *usecase.Catalog, logger *slog.Logger) {
	register(srv, logger, toolDef{
		name:     "direct_get_ads",
		title:    "Get Yandex Direct Ads",
		desc:     "Get list of ads from Yandex Direct with their content and moderation status.",
		schema:   adsQuerySchema(),
		readOnly: true, idempotent: true,
	}, catalog.GetAds)

	register(srv, logger, toolDef{
		name:  "direct_create_text_ad",
		title: "Create Yandex Direct Text Ad",
		desc: "Create a new text ad in the specified ad group. " +
			"The ad will be in DRAFT status until moderated.",
		schema: textAdCreateSchema(),
	}, catalog.CreateTextAd)

	register(srv, logger, toolDef{
		name:  "direct_update_ad",
		title: "Update Yandex Direct Ad",
		desc: "Update a text ad: title, text, and landing page URL. Only specified fields " +
			"will be updated. Note: Updated ad will need to be re-moderated.",
		schema:     textAdUpdateSchema(),
		idempotent: true,
	}, catalog.UpdateAd)

	register(srv, logger, toolDef{
		name:       "direct_moderate_ads",
		title:      "Submit Ads for Moderation",
		desc:       "Submit ads with DRAFT status to Yandex moderators for review.",
		schema:     adActionSchema(),
		idempotent: true,
	}, catalog.ModerateAds)

	register(srv, logger, toolDef{
		name:       "direct_suspend_ads",
		title:      "Suspend Yandex Direct Ads",
		desc:       "Suspend (pause) ads.",
		schema:     adActionSchema(),
		idempotent: true,
	}, catalog.SuspendAds)

	register(srv, logger, toolDef{
		name:       "direct_resume_ads",
		title:      "Resume Yandex Direct Ads",
		desc:       "Resume suspended ads.",
		schema:     adActionSchema(),
		idempotent: true,
	}, catalog.ResumeAds)

	register(srv, logger, toolDef{
		name:       "direct_archive_ads",
		title:      "Archive Yandex Direct Ads",
		desc:       "Archive ads. Archived ads are hidden from the main list but can be restored.",
		schema:     adActionSchema(),
		idempotent: true,
	}, catalog.ArchiveAds)

	register(srv, logger, toolDef{
		name:       "direct_unarchive_ads",
		title:      "Unarchive Yandex Direct Ads",
		desc:       "Restore archived ads and make them visible in the main ad list.",
		schema:     adActionSchema(),
		idempotent: true,
	}, catalog.UnarchiveAds)

	register(srv, logger, toolDef{
		name:  "direct_delete_ads",
		title: "Delete Yandex Direct Ads",
		desc: "Delete ads permanently. WARNING: This action is irreversible. " +
			"Consider archiving ads instead if you might need them later.",
		schema:      adActionSchema(),
		destructive: true,
	}, catalog.DeleteAds)
}
