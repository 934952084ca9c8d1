package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "amalapuram", escapeLike("amalapuram"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}

func TestSchoolSearchQuery(t *testing.T) {
	sb := statementBuilder()
	query := sb.Select(schoolColumns...).From("schools").
		Where(squirrel.Eq{"mandal_id": "mandal-razole"}).
		Where(squirrel.ILike{"name": "%" + escapeLike("zphs") + "%"})

	sql, args, err := query.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "mandal_id = $1")
	assert.Contains(t, sql, "name ILIKE $2")
	assert.Equal(t, []interface{}{"mandal-razole", "%zphs%"}, args)
}

func TestNonNil(t *testing.T) {
	assert.Equal(t, []string{}, nonNil(nil))
	assert.Equal(t, []string{"Library"}, nonNil([]string{"Library"}))
	assert.Equal(t, "id, name", joinColumns([]string{"id", "name"}))
}
