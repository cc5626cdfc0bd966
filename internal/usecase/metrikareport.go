package usecase

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
)

// MetrikaReportQuery describes one /stat/v1/data request.
type MetrikaReportQuery struct {
	CounterId      int64    `json:"counter_id"`
	Metrics        []string `json:"metrics"`
	Dimensions     []string `json:"dimensions"`
	Date1          string   `json:"date1"`
	Date2          string   `json:"date2"`
	Filters        string   `json:"filters"`
	Sort           string   `json:"sort"`
	Limit          int64    `json:"limit"`
	ResponseFormat string   `json:"response_format"`
}

// MetrikaByTimeQuery describes one /stat/v1/data/bytime request.
type MetrikaByTimeQuery struct {
	CounterId      int64    `json:"counter_id"`
	Metrics        []string `json:"metrics"`
	Dimensions     []string `json:"dimensions"`
	Date1          string   `json:"date1"`
	Date2          string   `json:"date2"`
	Group          string   `json:"group"`
	ResponseFormat string   `json:"response_format"`
}

func (c *Catalog) GetMetrikaReport(ctx context.Context, in MetrikaReportQuery) (string, error) {
	query := url.Values{}
	query.Set("id", strconv.FormatInt(in.CounterId, 10))
	query.Set("metrics", strings.Join(in.Metrics, ","))
	query.Set("limit", strconv.FormatInt(in.Limit, 10))
	if len(in.Dimensions) > 0 {
		query.Set("dimensions", strings.Join(in.Dimensions, ","))
	}
	if in.Date1 != "" {
		query.Set("date1", in.Date1)
	}
	if in.Date2 != "" {
		query.Set("date2", in.Date2)
	}
	if in.Filters != "" {
		query.Set("filters", in.Filters)
	}
	if in.Sort != "" {
		query.Set("sort", in.Sort)
	}

	result, err := c.metrika.MetrikaRequest(ctx, http.MethodGet, "/stat/v1/data", query, nil)
	if err != nil {
		return "", err
	}

	if in.ResponseFormat == domain.FormatJSON {
		return jsonDump(result)
	}
	return formatMetrikaReport(result), nil
}

func (c *Catalog) GetMetrikaReportByTime(ctx context.Context, in MetrikaByTimeQuery) (string, error) {
	query := url.Values{}
	query.Set("id", strconv.FormatInt(in.CounterId, 10))
	query.Set("metrics", strings.Join(in.Metrics, ","))
	query.Set("group", in.Group)
	if len(in.Dimensions) > 0 {
		query.Set("dimensions", strings.Join(in.Dimensions, ","))
	}
	if in.Date1 != "" {
		query.Set("date1", in.Date1)
	}
	if in.Date2 != "" {
		query.Set("date2", in.Date2)
	}

	result, err := c.metrika.MetrikaRequest(ctx, http.MethodGet, "/stat/v1/data/bytime", query, nil)
	if err != nil {
		return "", err
	}

	if in.ResponseFormat == domain.FormatJSON {
		return jsonDump(result)
	}
	return formatMetrikaByTime(result, in.Group), nil
}
