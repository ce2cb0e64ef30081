package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationsOrder(t *testing.T) {
	var names []string
	for _, m := range Migrations() {
		assert.NotNil(t, m.Up, m.Name)
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{
		"create_resume_analytics",
		"add_created_at_to_resume_analytics",
		"index_resume_analytics_usage",
	}, names)
}
