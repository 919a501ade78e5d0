package postgres

import (
	"testing"

	"yasen/internal/domain/repository"

	"github.com/stretchr/testify/assert"
)

func TestFilterUpdateFields(t *testing.T) {
	allowed := []string{"title", "status", "progress"}

	t.Run("keeps only recognized columns", func(t *testing.T) {
		filtered := filterUpdateFields(repository.UpdateFields{
			"title":   "Ремонт кухни",
			"status":  "in_progress",
			"phone":   "+79991234567",
			"is_used": true,
		}, allowed)

		assert.Equal(t, map[string]any{
			"title":  "Ремонт кухни",
			"status": "in_progress",
		}, filtered)
	})

	t.Run("returns empty map when nothing matches", func(t *testing.T) {
		filtered := filterUpdateFields(repository.UpdateFields{"phone": "x"}, allowed)

		assert.Empty(t, filtered)
	})
}
