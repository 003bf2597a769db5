package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQueryOrdersByWeekAscending(t *testing.T) {
	sql, args, err := listLogsQuery("user-1", "Diabetes")
	require.NoError(t, err)

	// Weeks may be logged out of order; the listing always comes back
	// sorted ascending, scoped to exactly one (user, condition) pair.
	assert.Contains(t, sql, "FROM progress_logs")
	assert.Contains(t, sql, "condition = $")
	assert.Contains(t, sql, "user_id = $")
	assert.Contains(t, sql, "ORDER BY week ASC")
	assert.ElementsMatch(t, []interface{}{"user-1", "Diabetes"}, args)
}

func TestProgressLogIDUniquePerInstant(t *testing.T) {
	now := time.Now()

	a := progressLogID("user-1", "Diabetes", 3, now)
	b := progressLogID("user-1", "Diabetes", 3, now)
	assert.Equal(t, a, b)

	// The same week logged again later gets its own id.
	c := progressLogID("user-1", "Diabetes", 3, now.Add(time.Nanosecond))
	assert.NotEqual(t, a, c)

	d := progressLogID("user-2", "Diabetes", 3, now)
	assert.NotEqual(t, a, d)
}
