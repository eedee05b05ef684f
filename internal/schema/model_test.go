package schema_test

import (
	"errors"
	"testing"

	"db-compare/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func col(table, name, typ string, nullable bool) schema.ColumnDescriptor {
	return schema.ColumnDescriptor{TableName: table, ColumnName: name, DataType: typ, Nullable: nullable}
}

func TestTables_FirstSeenOrder(t *testing.T) {
	s := schema.New("DB_1", []schema.ColumnDescriptor{
		col("zeta", "id", "INT", false),
		col("alpha", "id", "INT", false),
		col("zeta", "name", "TEXT", true),
		col("mid", "id", "INT", false),
	})

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, s.Tables())
	assert.Equal(t, 4, s.Len())
}

func TestColumnsOf(t *testing.T) {
	s := schema.New("DB_1", []schema.ColumnDescriptor{
		col("users", "id", "INT", false),
		col("orders", "id", "INT", false),
		col("users", "name", "VARCHAR(50)", true),
	})

	t.Run("keeps snapshot order", func(t *testing.T) {
		cols, err := s.ColumnsOf("users")
		require.NoError(t, err)
		require.Len(t, cols, 2)
		assert.Equal(t, "id", cols[0].ColumnName)
		assert.Equal(t, "name", cols[1].ColumnName)
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := s.ColumnsOf("missing")
		var nf *schema.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "missing", nf.Table)
	})

	t.Run("table names are case-sensitive", func(t *testing.T) {
		assert.False(t, s.HasTable("Users"))
		assert.True(t, s.HasTable("users"))
	})
}

func TestColumnNames(t *testing.T) {
	s := schema.New("DB_1", []schema.ColumnDescriptor{
		col("users", "id", "INT", false),
		col("users", "email", "TEXT", true),
	})

	names, err := s.ColumnNames("users")
	require.NoError(t, err)
	assert.Len(t, names, 2)
	assert.Contains(t, names, "email")

	_, err = s.ColumnNames("nope")
	assert.Error(t, err)
}

func TestNew_CopiesInput(t *testing.T) {
	in := []schema.ColumnDescriptor{col("users", "id", "INT", false)}
	s := schema.New("DB_1", in)
	in[0].DataType = "BIGINT"

	cols, err := s.ColumnsOf("users")
	require.NoError(t, err)
	assert.Equal(t, "INT", cols[0].DataType)

	out := s.Columns()
	out[0].DataType = "TEXT"
	assert.Equal(t, "INT", s.Columns()[0].DataType)
}

func TestValidate(t *testing.T) {
	t.Run("unique pairs", func(t *testing.T) {
		s := schema.New("DB_1", []schema.ColumnDescriptor{
			col("a", "id", "INT", false),
			col("b", "id", "INT", false),
		})
		assert.NoError(t, s.Validate())
	})

	t.Run("duplicate pair", func(t *testing.T) {
		s := schema.New("DB_2", []schema.ColumnDescriptor{
			col("a", "id", "INT", false),
			col("a", "id", "BIGINT", false),
		})
		err := s.Validate()
		var inv *schema.InvalidSchemaError
		require.True(t, errors.As(err, &inv))
		assert.Equal(t, "a", inv.Table)
		assert.Equal(t, "id", inv.Column)
		assert.Contains(t, err.Error(), "DB_2")
	})
}
