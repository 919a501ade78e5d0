package postgres

import (
	"yasen/internal/domain/repository"
)

// filterUpdateFields keeps only the recognized columns of a partial update.
// Unknown keys are silently dropped so a stray request field can never turn
// into an arbitrary column write.
func filterUpdateFields(fields repository.UpdateFields, allowed []string) map[string]any {
	filtered := make(map[string]any, len(fields))
	for _, column := range allowed {
		if value, ok := fields[column]; ok {
			filtered[column] = value
		}
	}

	return filtered
}
