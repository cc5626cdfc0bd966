package mcptool

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/adtech-tools/yandex-mcp/internal/usecase"
	"github.com/adtech-tools/yandex-mcp/internal/validate"
)

func keywordsQuerySchema() validate.Schema {
	return validate.New(
		idList("campaign_ids", "Filter by campaign IDs"),
		idList("adgroup_ids", "Filter by ad group IDs"),
		idList("keyword_ids", "Filter by specific keyword IDs"),
		limitField(10000, "Maximum number of keywords to return"),
		offsetField(),
		formatField(),
	)
}

func keywordsAddSchema() validate.Schema {
	return validate.New(
		validate.Field{Name: "adgroup_id", Kind: validate.Int, Required: true, Desc: "Ad group ID to add keywords to"},
		validate.Field{
			Name: "keywords", Kind: validate.StringList, Required: true,
			MinItems: 1, MaxItems: 200, Desc: "List of keywords to add",
		},
		validate.Field{
			Name: "bid", Kind: validate.Number, Min: validate.F(0), ExclusiveMin: true,
			Desc: "Bid for all keywords in currency units",
		},
	)
}

func keywordActionSchema() validate.Schema {
	return validate.New(
		requiredIDList("keyword_ids", "Keyword IDs to manage", 10000),
	)
}

func keywordBidSchema() validate.Schema {
	return validate.New(
		validate.Field{Name: "keyword_id", Kind: validate.Int, Required: true, Desc: "Keyword ID"},
		validate.Field{
			Name: "search_bid", Kind: validate.Number, Min: validate.F(0), ExclusiveMin: true,
			Desc: "Search bid in currency units",
		},
		validate.Field{
			Name: "network_bid", Kind: validate.Number, Min: validate.F(0), ExclusiveMin: true,
			Desc: "Network bid in currency units",
		},
	)
}

func keywordBidsSetSchema() validate.Schema {
	bid := keywordBidSchema()
	return validate.New(
		validate.Field{
			Name: "keyword_bids", Kind: validate.ObjectList, Required: true,
			MinItems: 1, MaxItems: 10000, Object: &bid,
			Desc: "List of keyword bid settings: [{'keyword_id': 123, 'search_bid': 1.5, 'network_bid': 0.5}]",
		},
	)
}

func registerKeywordTools(srv *server.MCPServer, catalog *usecase.Catalog, logger *slog.Logger) {
	register(srv, logger, toolDef{
		name:     "direct_get_keywords",
		title:    "Get Yandex Direct Keywords",
		desc:     "Get list of keywords from Yandex Direct with their bids and status.",
		schema:   keywordsQuerySchema(),
		readOnly: true, idempotent: true,
	}, catalog.GetKeywords)

	register(srv, logger, toolDef{
		name:   "direct_add_keywords",
		title:  "Add Keywords to Yandex Direct",
		desc:   "Add keywords to an ad group, optionally with a shared starting bid.",
		schema: keywordsAddSchema(),
	}, catalog.AddKeywords)

	register(srv, logger, toolDef{
		name:       "direct_suspend_keywords",
		title:      "Suspend Yandex Direct Keywords",
		desc:       "Suspend (pause) keywords. Suspended keywords stop triggering ad impressions.",
		schema:     keywordActionSchema(),
		idempotent: true,
	}, catalog.SuspendKeywords)

	register(srv, logger, toolDef{
		name:       "direct_resume_keywords",
		title:      "Resume Yandex Direct Keywords",
		desc:       "Resume suspended keywords.",
		schema:     keywordActionSchema(),
		idempotent: true,
	}, catalog.ResumeKeywords)

	register(srv, logger, toolDef{
		name:        "direct_delete_keywords",
		title:       "Delete Yandex Direct Keywords",
		desc:        "Delete keywords permanently. WARNING: This action is irreversible.",
		schema:      keywordActionSchema(),
		destructive: true,
	}, catalog.DeleteKeywords)

	register(srv, logger, toolDef{
		name:       "direct_set_keyword_bids",
		title:      "Set Keyword Bids",
		desc:       "Set search and/or network bids for specified keywords.",
		schema:     keywordBidsSetSchema(),
		idempotent: true,
	}, catalog.SetKeywordBids)
}
