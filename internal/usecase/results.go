package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// resultList extracts the named per-item result array from a Direct response
// envelope ({"result": {"<key>": [...]}}).
func resultList(res map[string]any, key string) []map[string]any {
	inner, _ := res["result"].(map[string]any)
	raw, _ := inner[key].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// actionOutcome partitions per-item vendor results into succeeded ids and
// rendered error lines. An item counts as succeeded only when the vendor
// returned its Id without item-level errors.
func actionOutcome(items []map[string]any) (ids []int64, errLines []string) {
	return actionOutcomeKey(items, "Id")
}

func actionOutcomeKey(items []map[string]any, idKey string) (ids []int64, errLines []string) {
	for _, item := range items {
		id, hasID := asInt64(item[idKey])
		itemErrs, _ := item["Errors"].([]any)
		if len(itemErrs) > 0 {
			label := "?"
			if hasID {
				label = strconv.FormatInt(id, 10)
			}
			for _, e := range itemErrs {
				errLines = append(errLines, fmt.Sprintf("ID %s: %s", label, errorMessage(e)))
			}
			continue
		}
		if hasID {
			ids = append(ids, id)
		}
	}
	return ids, errLines
}

// updateIssues collects item-level errors and warnings from an update result,
// warnings prefixed so the caller can tell them apart.
func updateIssues(items []map[string]any) []string {
	var issues []string
	for _, item := range items {
		if errs, ok := item["Errors"].([]any); ok {
			for _, e := range errs {
				issues = append(issues, errorMessage(e))
			}
		}
		if warns, ok := item["Warnings"].([]any); ok {
			for _, w := range warns {
				issues = append(issues, "Warning: "+messageOr(w, "Unknown warning"))
			}
		}
	}
	return issues
}

func errorMessage(e any) string {
	return messageOr(e, "Unknown error")
}

func messageOr(e any, fallback string) string {
	if m, ok := e.(map[string]any); ok {
		if s, ok := m["Message"].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// summary appends an itemized error list to a success line when any item
// failed inside an otherwise successful call.
func summary(line string, errLines []string) string {
	if len(errLines) == 0 {
		return line
	}
	return line + "\n\nErrors:\n" + bulleted(errLines)
}

func bulleted(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

// jsonDump renders v as indented JSON without HTML escaping, matching the
// structured response format of every read tool.
func jsonDump(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	}
	return 0, false
}

// putInt64s copies a list field into a vendor criteria object only when the
// caller supplied it; absent optionals never reach the wire.
func putInt64s(criteria map[string]any, wire string, values []int64) {
	if len(values) > 0 {
		criteria[wire] = values
	}
}

func putStrings(criteria map[string]any, wire string, values []string) {
	if len(values) > 0 {
		criteria[wire] = values
	}
}

// page builds the vendor pagination block.
func page(limit, offset int64) map[string]any {
	return map[string]any{"Limit": limit, "Offset": offset}
}
