// Package mcptool registers the advertising tool catalog on an MCP server.
// Each tool validates its arguments against a constraint table, decodes them
// into the operation's typed input, and renders upstream failures as
// diagnostic text rather than protocol errors.
package mcptool

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
	"github.com/adtech-tools/yandex-mcp/internal/usecase"
	"github.com/adtech-tools/yandex-mcp/internal/validate"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// toolDef is the static description of one catalog entry.
type toolDef struct {
	name        string
	title       string
	desc        string
	schema      validate.Schema
	readOnly    bool
	destructive bool
	idempotent  bool
}

// Register adds every Direct and Metrika tool to srv.
func Register(srv *server.MCPServer, catalog *usecase.Catalog, logger *slog.Logger) {
	logger = logger.With("component", "mcptool")
	registerCampaignTools(srv, catalog, logger)
	registerAdGroupTools(srv, catalog, logger)
	registerAdTools(srv, catalog, logger)
	registerKeywordTools(srv, catalog, logger)
	registerReportTools(srv, catalog, logger)
	registerMetrikaTools(srv, catalog, logger)
}

func register[T any](srv *server.MCPServer, logger *slog.Logger, def toolDef, op func(context.Context, T) (string, error)) {
	tool := mcp.Tool{
		Name:        def.name,
		Description: def.desc,
		InputSchema: def.schema.InputSchema(),
		Annotations: mcp.ToolAnnotation{
			Title:           def.title,
			ReadOnlyHint:    mcp.ToBoolPtr(def.readOnly),
			DestructiveHint: mcp.ToBoolPtr(def.destructive),
			IdempotentHint:  mcp.ToBoolPtr(def.idempotent),
			OpenWorldHint:   mcp.ToBoolPtr(false),
		},
	}
	srv.AddTool(tool, handle(def.schema, logger, op))
}

func handle[T any](schema validate.Schema, logger *slog.Logger, op func(context.Context, T) (string, error)) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := schema.Parse(req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError("Invalid parameters: " + err.Error()), nil
		}
		var in T
		if err := decode(args, &in); err != nil {
			logger.Error("argument decode failed", "tool", req.Params.Name, "error", err)
			return mcp.NewToolResultError("Invalid parameters: " + err.Error()), nil
		}
		out, err := op(ctx, in)
		if err != nil {
			logger.Warn("tool call failed", "tool", req.Params.Name, "error", err)
			return mcp.NewToolResultText(domain.Classify(err)), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

// decode maps validated arguments onto the operation input through a JSON
// round trip so optional fields keep pointer semantics.
func decode(args map[string]any, out any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// Shared constraint rows.

func formatField() validate.Field {
	return validate.Field{
		Name: "response_format", Kind: validate.String,
		Enum: domain.ResponseFormats, Default: domain.FormatMarkdown,
		Desc: "Output format: 'markdown' or 'json'",
	}
}

func limitField(max float64, desc string) validate.Field {
	return validate.Field{
		Name: "limit", Kind: validate.Int,
		Min: validate.F(1), Max: validate.F(max), Default: int64(100),
		Desc: desc,
	}
}

func offsetField() validate.Field {
	return validate.Field{
		Name: "offset", Kind: validate.Int,
		Min: validate.F(0), Default: int64(0),
		Desc: "Offset for pagination",
	}
}

func dateField(name, desc string) validate.Field {
	return validate.Field{Name: name, Kind: validate.String, Pattern: dateRe, Desc: desc}
}

func idList(name, desc string) validate.Field {
	return validate.Field{Name: name, Kind: validate.IntList, Desc: desc}
}

func requiredIDList(name, desc string, maxItems int) validate.Field {
	return validate.Field{
		Name: name, Kind: validate.IntList, Required: true,
		MinItems: 1, MaxItems: maxItems, Desc: desc,
	}
}
