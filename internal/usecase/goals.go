package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
)

// GoalsQuery addresses the goal list of one counter.
type GoalsQuery struct {
	CounterId      int64  `json:"counter_id"`
	ResponseFormat string `json:"response_format"`
}

// GoalCreate describes a new conversion goal.
type GoalCreate struct {
	CounterId  int64            `json:"counter_id"`
	Name       string           `json:"name"`
	GoalType   string           `json:"goal_type"`
	Conditions []map[string]any `json:"conditions"`
}

func (c *Catalog) GetGoals(ctx context.Context, in GoalsQuery) (string, error) {
	endpoint := fmt.Sprintf("/management/v1/counter/%d/goals", in.CounterId)
	result, err := c.metrika.MetrikaRequest(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return "", err
	}

	raw, _ := result["goals"].([]any)
	goals := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			goals = append(goals, m)
		}
	}

	if in.ResponseFormat == domain.FormatJSON {
		return jsonDump(map[string]any{"goals": goals, "total": len(goals)})
	}
	if len(goals) == 0 {
		return "No goals configured for this counter.", nil
	}

	lines := []string{fmt.Sprintf("# Goals for Counter %d\n", in.CounterId)}
	for _, goal := range goals {
		lines = append(lines,
			fmt.Sprintf("## %s (ID: %s)", text(goal, "name", "Unnamed"), num(goal["id"])),
			"- **Type**: "+text(goal, "type", "N/A"),
		)
		if conditions, ok := goal["conditions"].([]any); ok && len(conditions) > 0 {
			lines = append(lines, "- **Conditions**:")
			for _, raw := range conditions {
				cond, _ := raw.(map[string]any)
				value := text(cond, "url", "")
				if value == "" {
					value = text(cond, "value", "N/A")
				}
				lines = append(lines, fmt.Sprintf("  - %s: %s", text(cond, "type", "N/A"), value))
			}
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n"), nil
}

func (c *Catalog) CreateGoal(ctx context.Context, in GoalCreate) (string, error) {
	endpoint := fmt.Sprintf("/management/v1/counter/%d/goals", in.CounterId)
	body := map[string]any{
		"goal": map[string]any{
			"name":       in.Name,
			"type":       in.GoalType,
			"conditions": in.Conditions,
		},
	}

	result, err := c.metrika.MetrikaRequest(ctx, http.MethodPost, endpoint, nil, body)
	if err != nil {
		return "", err
	}

	goal, _ := result["goal"].(map[string]any)
	return fmt.Sprintf("Goal created successfully!\n\n**ID**: %s\n**Name**: %s\n**Type**: %s",
		num(goal["id"]), text(goal, "name", "N/A"), text(goal, "type", "N/A")), nil
}
