package mcptool

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
	"github.com/adtech-tools/yandex-mcp/internal/usecase"
	"github.com/adtech-tools/yandex-mcp/internal/validate"
)

func counterIDField() validate.Field {
	return validate.Field{Name: "counter_id", Kind: validate.Int, Required: true, Desc: "Metrika counter ID"}
}

func countersQuerySchema() validate.Schema {
	return validate.New(
		validate.Field{Name: "favorite", Kind: validate.Bool, Desc: "Filter by favorite status"},
		validate.Field{Name: "search_string", Kind: validate.String, Desc: "Search string to filter counters by name or site"},
		formatField(),
	)
}

func counterRefSchema() validate.Schema {
	return validate.New(counterIDField(), formatField())
}

func counterCreateSchema() validate.Schema {
	return validate.New(
		validate.Field{Name: "name", Kind: validate.String, Required: true, MinLen: 1, MaxLen: 255, Desc: "Counter name"},
		validate.Field{Name: "site", Kind: validate.String, Required: true, Desc: "Website URL"},
	)
}

func goalCreateSchema() validate.Schema {
	return validate.New(
		counterIDField(),
		validate.Field{Name: "name", Kind: validate.String, Required: true, MinLen: 1, MaxLen: 255, Desc: "Goal name"},
		validate.Field{
			Name: "goal_type", Kind: validate.String, Required: true,
			Desc: "Goal type: url, action, phone, email, messenger, etc.",
		},
		validate.Field{
			Name: "conditions", Kind: validate.ObjectList, Required: true,
			Desc: "Goal conditions, e.g., [{'type': 'exact', 'url': '/thank-you'}]",
		},
	)
}

func metrikaReportSchema() validate.Schema {
	return validate.New(
		counterIDField(),
		validate.Field{
			Name: "metrics", Kind: validate.StringList,
			Default: []string{"ym:s:visits", "ym:s:users", "ym:s:bounceRate"},
			Desc:    "Metrics to retrieve (e.g., ym:s:visits, ym:s:users, ym:s:pageviews)",
		},
		validate.Field{Name: "dimensions", Kind: validate.StringList, Desc: "Dimensions for grouping (e.g., ym:s:date, ym:s:trafficSource)"},
		dateField("date1", "Start date (YYYY-MM-DD), defaults to 7 days ago"),
		dateField("date2", "End date (YYYY-MM-DD), defaults to today"),
		validate.Field{Name: "filters", Kind: validate.String, Desc: "Filter expression (e.g., ym:s:trafficSource=='organic')"},
		validate.Field{Name: "sort", Kind: validate.String, Desc: "Sort field with optional '-' prefix for descending"},
		limitField(100000, "Maximum rows to return"),
		formatField(),
	)
}

func metrikaByTimeSchema() validate.Schema {
	return validate.New(
		counterIDField(),
		validate.Field{
			Name: "metrics", Kind: validate.StringList,
			Default: []string{"ym:s:visits"},
			Desc:    "Metrics to retrieve",
		},
		validate.Field{Name: "dimensions", Kind: validate.StringList, Desc: "Dimensions for grouping"},
		dateField("date1", "Start date (YYYY-MM-DD)"),
		dateField("date2", "End date (YYYY-MM-DD)"),
		validate.Field{
			Name: "group", Kind: validate.String, Enum: domain.MetrikaGroups, Default: "day",
			Desc: "Time grouping: day, week, month, quarter, year, hour, minute",
		},
		formatField(),
	)
}

func registerMetrikaTools(srv *server.MCPServer, catalog *usecase.Catalog, logger *slog.Logger) {
	register(srv, logger, toolDef{
		name:     "metrika_get_counters",
		title:    "Get Yandex Metrika Counters",
		desc:     "Get list of Metrika counters (tags) accessible to the user.",
		schema:   countersQuerySchema(),
		readOnly: true, idempotent: true,
	}, catalog.GetCounters)

	register(srv, logger, toolDef{
		name:  "metrika_get_counter",
		title: "Get Yandex Metrika Counter Details",
		desc: "Get detailed information about a specific counter including code options, " +
			"webvisor, and goals.",
		schema:   counterRefSchema(),
		readOnly: true, idempotent: true,
	}, catalog.GetCounter)

	register(srv, logger, toolDef{
		name:   "metrika_create_counter",
		title:  "Create Yandex Metrika Counter",
		desc:   "Create a new Metrika counter for tracking website statistics.",
		schema: counterCreateSchema(),
	}, catalog.CreateCounter)

	register(srv, logger, toolDef{
		name:  "metrika_delete_counter",
		title: "Delete Yandex Metrika Counter",
		desc: "Delete a Metrika counter. WARNING: This action is irreversible. " +
			"All historical data will be lost.",
		schema:      counterRefSchema(),
		destructive: true, idempotent: true,
	}, catalog.DeleteCounter)

	register(srv, logger, toolDef{
		name:     "metrika_get_goals",
		title:    "Get Yandex Metrika Goals",
		desc:     "Get all configured conversion goals for a Metrika counter.",
		schema:   counterRefSchema(),
		readOnly: true, idempotent: true,
	}, catalog.GetGoals)

	register(srv, logger, toolDef{
		name:  "metrika_create_goal",
		title: "Create Yandex Metrika Goal",
		desc: "Create a new goal for a Metrika counter. Goals track conversions like " +
			"page visits, form submissions, clicks, etc.",
		schema: goalCreateSchema(),
	}, catalog.CreateGoal)

	register(srv, logger, toolDef{
		name:  "metrika_get_report",
		title: "Get Yandex Metrika Statistics Report",
		desc: "Get statistics report from Yandex Metrika with customizable metrics and " +
			"dimensions. Common metrics: ym:s:visits, ym:s:users, ym:s:pageviews, " +
			"ym:s:bounceRate. Common dimensions: ym:s:date, ym:s:trafficSource, " +
			"ym:s:deviceCategory.",
		schema:   metrikaReportSchema(),
		readOnly: true, idempotent: true,
	}, catalog.GetMetrikaReport)

	register(srv, logger, toolDef{
		name:  "metrika_get_report_by_time",
		title: "Get Yandex Metrika Time-Based Report",
		desc: "Get statistics grouped by time periods (day, week, month, etc.). " +
			"Useful for tracking trends and building charts.",
		schema:   metrikaByTimeSchema(),
		readOnly: true, idempotent: true,
	}, catalog.GetMetrikaReportByTime)
}
