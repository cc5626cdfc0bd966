package mcptool

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/adtech-tools/yandex-mcp/internal/usecase"
	"github.com/adtech-tools/yandex-mcp/internal/validate"
)

func adGroupsQuerySchema() validate.Schema {
	return validate.New(
		idList("campaign_ids", "Filter by campaign IDs"),
		idList("adgroup_ids", "Filter by specific ad group IDs"),
		limitField(10000, "Maximum number of ad groups to return"),
		offsetField(),
		formatField(),
	)
}

func adGroupCreateSchema() validate.Schema {
	return validate.New(
		validate.Field{Name: "campaign_id", Kind: validate.Int, Required: true, Desc: "Campaign ID to create ad group in"},
		validate.Field{Name: "name", Kind: validate.String, Required: true, MinLen: 1, MaxLen: 255, Desc: "Ad group name"},
		validate.Field{
			Name: "region_ids", Kind: validate.IntList, Required: true, MinItems: 1,
			Desc: "List of region IDs for targeting (e.g., 225 for Russia, 213 for Moscow)",
		},
		validate.Field{Name: "negative_keywords", Kind: validate.StringList, Desc: "Group-level negative keywords"},
	)
}

func adGroupUpdateSchema() validate.Schema {
	return validate.New(
		validate.Field{Name: "adgroup_id", Kind: validate.Int, Required: true, Desc: "Ad group ID to update"},
		validate.Field{Name: "name", Kind: validate.String, MaxLen: 255, Desc: "New ad group name"},
		validate.Field{Name: "region_ids", Kind: validate.IntList, MinItems: 1, Desc: "New list of region IDs for targeting"},
		validate.Field{Name: "negative_keywords", Kind: validate.StringList, Desc: "Group-level negative keywords"},
		validate.Field{Name: "tracking_params", Kind: validate.String, Desc: "Tracking parameters for all ads in group"},
	)
}

func registerAdGroupTools(srv *server.MCPServer, catalog *usecase.Catalog, logger *slog.Logger) {
	register(srv, logger, toolDef{
		name:  "direct_get_adgroups",
		title: "Get Yandex Direct Ad Groups",
		desc: "Get list of ad groups from Yandex Direct with their settings " +
			"and targeting information.",
		schema:   adGroupsQuerySchema(),
		readOnly: true, idempotent: true,
	}, catalog.GetAdGroups)

	register(srv, logger, toolDef{
		name:   "direct_create_adgroup",
		title:  "Create Yandex Direct Ad Group",
		desc:   "Create a new ad group in a campaign with specified name and targeting regions.",
		schema: adGroupCreateSchema(),
	}, catalog.CreateAdGroup)

	register(srv, logger, toolDef{
		name:  "direct_update_adgroup",
		title: "Update Yandex Direct Ad Group",
		desc: "Update ad group settings: name, regions, negative keywords, and tracking params. " +
			"Only specified fields will be updated.",
		schema:     adGroupUpdateSchema(),
		idempotent: true,
	}, catalog.UpdateAdGroup)
}
