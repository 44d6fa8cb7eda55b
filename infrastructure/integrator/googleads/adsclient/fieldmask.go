package adsclient

import (
	"strings"

	adsdomain "github.com/vfg2006/ads-mcp-api/infrastructure/integrator/googleads/domain"
)

// flattenBatch turns each result of a searchStream batch into a Row keyed by
// the snake_case field-mask paths. The REST payload itself is camelCase, so
// each path segment is converted before walking the result JSON.
func flattenBatch(results []map[string]any, fieldMask string) []adsdomain.Row {
	paths := fieldMaskPaths(fieldMask)

	rows := make([]adsdomain.Row, 0, len(results))
	for _, result := range results {
		row := make(adsdomain.Row, len(paths))
		for _, path := range paths {
			row[path] = resolvePath(result, path)
		}
		rows = append(rows, row)
	}

	return rows
}

func fieldMaskPaths(fieldMask string) []string {
	parts := strings.Split(fieldMask, ",")
	paths := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			paths = append(paths, trimmed)
		}
	}
	return paths
}

// resolvePath walks a decoded result following a snake_case path such as
// "campaign.campaign_budget". Missing segments yield nil.
func resolvePath(value any, path string) any {
	current := value
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		next, found := node[camelCase(segment)]
		if !found {
			// Some fields come through verbatim, try the raw segment.
			next, found = node[segment]
			if !found {
				return nil
			}
		}
		current = next
	}

	return current
}

func camelCase(segment string) string {
	parts := strings.Split(segment, "_")
	if len(parts) == 1 {
		return segment
	}

	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
