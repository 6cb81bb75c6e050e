package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "revision").
		From("booking_drafts").
		Where(squirrel.Eq{"id": "abc", "revision": 3}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, revision FROM booking_drafts WHERE id = $1 AND revision = $2", query)
	assert.Equal(t, []interface{}{"abc", 3}, args)
}

func TestUpdate_DollarPlaceholders(t *testing.T) {
	query, _, err := Update("checkout_attempts").
		Set("status", "verified").
		Where(squirrel.Eq{"order_id": "order_1"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE checkout_attempts SET status = $1 WHERE order_id = $2", query)
}
