package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/academy-functions/internal/records"
)

func TestCategory(t *testing.T) {
	for _, c := range records.AllCategories {
		assert.True(t, c.IsValid(), "%s should be valid", c)
		assert.Equal(t, string(c), c.Table())
	}
	assert.False(t, records.Category("users").IsValid())
	assert.Equal(t, []records.Category{"lessons", "sprints", "modules"}, records.AllCategories)
}
