package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
)

// CountersQuery filters the counter listing. Favorite is a tri-state: nil
// means no filtering on the flag.
type CountersQuery struct {
	Favorite       *bool  `json:"favorite"`
	SearchString   string `json:"search_string"`
	ResponseFormat string `json:"response_format"`
}

// CounterRef addresses a single counter.
type CounterRef struct {
	CounterId      int64  `json:"counter_id"`
	ResponseFormat string `json:"response_format"`
}

// CounterCreate describes a new counter.
type CounterCreate struct {
	Name string `json:"name"`
	Site string `json:"site"`
}

const trackingSnippet = `<!-- Yandex.Metrika counter -->
<script type="text/javascript">
   (function(m,e,t,r,i,k,a){m[i]=m[i]||function(){(m[i].a=m[i].a||[]).push(arguments)};
   m[i].l=1*new Date();
   for (var j = 0; j < document.scripts.length; j++) {if (document.scripts[j].src === r) { return; }}
   k=e.createElement(t),a=e.getElementsByTagName(t)[0],k.async=1,k.src=r,a.parentNode.insertBefore(k,a)})
   (window, document, "script", "https://mc.yandex.ru/metrika/tag.js", "ym");

   ym(%s, "init", {
        clickmap:true,
        trackLinks:true,
        accurateTrackBounce:true
   });
</script>`

func (c *Catalog) GetCounters(ctx context.Context, in CountersQuery) (string, error) {
	query := url.Values{}
	if in.Favorite != nil {
		query.Set("favorite", strconv.FormatBool(*in.Favorite))
	}
	if in.SearchString != "" {
		query.Set("search_string", in.SearchString)
	}

	result, err := c.metrika.MetrikaRequest(ctx, http.MethodGet, "/management/v1/counters", query, nil)
	if err != nil {
		return "", err
	}

	raw, _ := result["counters"].([]any)
	counters := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			counters = append(counters, m)
		}
	}

	if in.ResponseFormat == domain.FormatJSON {
		var total any = len(counters)
		if rows, ok := result["rows"]; ok && rows != nil {
			total = rows
		}
		return jsonDump(map[string]any{"counters": counters, "total": total})
	}
	return formatCounters(counters), nil
}

func (c *Catalog) GetCounter(ctx context.Context, in CounterRef) (string, error) {
	endpoint := fmt.Sprintf("/management/v1/counter/%d", in.CounterId)
	result, err := c.metrika.MetrikaRequest(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return "", err
	}

	counter, _ := result["counter"].(map[string]any)
	if in.ResponseFormat == domain.FormatJSON {
		return jsonDump(counter)
	}

	site := "N/A"
	if site2, ok := counter["site2"].(map[string]any); ok {
		site = text(site2, "site", "N/A")
	}
	lines := []string{
		fmt.Sprintf("# Counter: %s (ID: %s)", text(counter, "name", "Unnamed"), num(counter["id"])),
		"\n## Basic Info",
		"- **Site**: " + site,
		"- **Status**: " + text(counter, "status", "N/A"),
		"- **Code Status**: " + text(counter, "code_status", "N/A"),
		"- **Owner**: " + text(counter, "owner_login", "N/A"),
		"- **Created**: " + text(counter, "create_time", "N/A"),
	}

	if webvisor, ok := counter["webvisor"].(map[string]any); ok {
		enabled, _ := webvisor["arch_enabled"].(bool)
		lines = append(lines,
			"\n## Webvisor",
			"- **Version**: "+text(webvisor, "wv_version", "N/A"),
			fmt.Sprintf("- **Enabled**: %t", enabled),
		)
	}

	if goals, ok := counter["goals"].([]any); ok && len(goals) > 0 {
		lines = append(lines, fmt.Sprintf("\n## Goals (%d)", len(goals)))
		shown := goals
		if len(shown) > 10 {
			shown = shown[:10]
		}
		for _, raw := range shown {
			goal, _ := raw.(map[string]any)
			lines = append(lines, fmt.Sprintf("- %s (ID: %s)", text(goal, "name", "Unnamed"), num(goal["id"])))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func (c *Catalog) CreateCounter(ctx context.Context, in CounterCreate) (string, error) {
	body := map[string]any{
		"counter": map[string]any{
			"name":  in.Name,
			"site2": map[string]any{"site": in.Site},
		},
	}

	result, err := c.metrika.MetrikaRequest(ctx, http.MethodPost, "/management/v1/counters", nil, body)
	if err != nil {
		return "", err
	}

	counter, _ := result["counter"].(map[string]any)
	id := num(counter["id"])
	site := "N/A"
	if site2, ok := counter["site2"].(map[string]any); ok {
		site = text(site2, "site", "N/A")
	}
	c.logger.Info("counter created", "id", id, "site", site)

	return fmt.Sprintf(`Counter created successfully!

**ID**: %s
**Name**: %s
**Site**: %s

Add this tracking code to your website:
`+"```html\n"+trackingSnippet+"\n```", id, text(counter, "name", "N/A"), site, id), nil
}

func (c *Catalog) DeleteCounter(ctx context.Context, in CounterRef) (string, error) {
	endpoint := fmt.Sprintf("/management/v1/counter/%d", in.CounterId)
	if _, err := c.metrika.MetrikaRequest(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return "", err
	}
	return fmt.Sprintf("Counter %d deleted successfully.", in.CounterId), nil
}
