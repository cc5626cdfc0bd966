package usecase_test

import (
	"context"
	"log/slog"
	"net/url"
	"os"

	"github.com/adtech-tools/yandex-mcp/internal/usecase"
)

// fakeDirect records the last Direct call and plays back canned responses.
type fakeDirect struct {
	service string
	method  string
	params  map[string]any
	useV501 bool
	result  map[string]any
	err     error

	reportDef    map[string]any
	reportBody   string
	reportStatus int
	reportErr    error
}

func (f *fakeDirect) DirectRequest(_ context.Context, service, method string, params map[string]any, useV501 bool) (map[string]any, error) {
	f.service = service
	f.method = method
	f.params = params
	f.useV501 = useV501
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return map[string]any{}, nil
	}
	return f.result, nil
}

func (f *fakeDirect) DirectReport(_ context.Context, definition map[string]any) (string, int, error) {
	f.reportDef = definition
	if f.reportErr != nil {
		return "", 0, f.reportErr
	}
	if f.reportStatus == 0 {
		return f.reportBody, 200, nil
	}
	return f.reportBody, f.reportStatus, nil
}

// fakeMetrika records the last Metrika call and plays back canned responses.
type fakeMetrika struct {
	httpMethod string
	endpoint   string
	query      url.Values
	body       any
	result     map[string]any
	err        error
}

func (f *fakeMetrika) MetrikaRequest(_ context.Context, httpMethod, endpoint string, query url.Values, body any) (map[string]any, error) {
	f.httpMethod = httpMethod
	f.endpoint = endpoint
	f.query = query
	f.body = body
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return map[string]any{}, nil
	}
	return f.result, nil
}

func newTestCatalog(direct *fakeDirect, metrika *fakeMetrika) *usecase.Catalog {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return usecase.NewCatalog(direct, metrika, logger)
}

// directResult wraps per-item results under the usual response envelope.
func directResult(key string, items ...map[string]any) map[string]any {
	list := make([]any, len(items))
	for i, item := range items {
		list[i] = item
	}
	return map[string]any{"result": map[string]any{key: list}}
}
