package domain

// Closed value sets accepted by tool input filters. The vendor rejects
// anything else, so validation catches bad values before the network.

// Response format for every read tool.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

var ResponseFormats = []string{FormatMarkdown, FormatJSON}

var CampaignStates = []string{"ON", "OFF", "SUSPENDED", "ENDED", "CONVERTED", "ARCHIVED"}

var CampaignStatuses = []string{"ACCEPTED", "DRAFT", "MODERATION", "REJECTED"}

var CampaignTypes = []string{
	"TEXT_CAMPAIGN",
	"DYNAMIC_TEXT_CAMPAIGN",
	"MOBILE_APP_CAMPAIGN",
	"CPM_BANNER_CAMPAIGN",
	"SMART_CAMPAIGN",
	"UNIFIED_CAMPAIGN",
}

var AdStates = []string{"ON", "OFF", "OFF_BY_MONITORING", "SUSPENDED", "ARCHIVED"}

var AdStatuses = []string{"ACCEPTED", "DRAFT", "MODERATION", "PREACCEPTED", "REJECTED"}

var BudgetModes = []string{"STANDARD", "DISTRIBUTED"}

// Time groupings supported by the Metrika by-time report.
var MetrikaGroups = []string{"day", "week", "month", "quarter", "year", "hour", "minute"}
