package dialect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordSetUpdate(t *testing.T) {
	d := New("test")
	set := d.Sets("unreserved_keywords")

	require.NoError(t, set.Update("select", " FROM ", "Where"))
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains("SELECT"))
	assert.True(t, set.Contains("from"))
	assert.True(t, set.Contains("wHeRe"))

	// Re-adding is a no-op.
	require.NoError(t, set.Update("SELECT"))
	assert.Equal(t, 3, set.Len())
}

func TestKeywordSetDifferenceUpdate(t *testing.T) {
	d := New("test")
	set := d.Sets("reserved_keywords")
	require.NoError(t, set.Update("SELECT", "FROM"))

	require.NoError(t, set.DifferenceUpdate("select"))
	assert.False(t, set.Contains("SELECT"))

	// Removing an absent keyword is a no-op, not an error.
	require.NoError(t, set.DifferenceUpdate("NEVER_ADDED"))
	assert.Equal(t, 1, set.Len())
}

func TestExclusiveSetsRejectDoubleMembership(t *testing.T) {
	d := New("test")
	require.NoError(t, d.ExclusiveSets("reserved_keywords", "unreserved_keywords"))
	require.NoError(t, d.Sets("reserved_keywords").Update("SELECT"))

	err := d.Sets("unreserved_keywords").Update("SELECT")
	require.Error(t, err)

	var classErr *KeywordClassificationError
	require.ErrorAs(t, err, &classErr)
	assert.Equal(t, "SELECT", classErr.Keyword)
	assert.Equal(t, "unreserved_keywords", classErr.Set)
	assert.Equal(t, "reserved_keywords", classErr.ConflictSet)
}

func TestExclusiveUpdateIsAtomic(t *testing.T) {
	d := New("test")
	require.NoError(t, d.ExclusiveSets("reserved_keywords", "unreserved_keywords"))
	require.NoError(t, d.Sets("reserved_keywords").Update("FROM"))

	unreserved := d.Sets("unreserved_keywords")
	err := unreserved.Update("TOP", "FROM", "PRINT")
	require.Error(t, err)

	// Nothing from the failed batch landed, not even the valid keywords.
	assert.Equal(t, 0, unreserved.Len())
}

func TestReclassifyAcrossExclusiveSets(t *testing.T) {
	d := New("test")
	require.NoError(t, d.ExclusiveSets("reserved_keywords", "unreserved_keywords"))
	require.NoError(t, d.Sets("unreserved_keywords").Update("IDENTITY"))

	// Demote from the source set first, then promote.
	require.NoError(t, d.Sets("unreserved_keywords").DifferenceUpdate("IDENTITY"))
	require.NoError(t, d.Sets("reserved_keywords").Update("IDENTITY"))

	assert.True(t, d.Sets("reserved_keywords").Contains("IDENTITY"))
	assert.False(t, d.Sets("unreserved_keywords").Contains("IDENTITY"))
}

func TestKeywordEditsAfterPublish(t *testing.T) {
	d := New("test")
	set := d.Sets("reserved_keywords")
	require.NoError(t, set.Update("SELECT"))
	require.NoError(t, d.Publish())

	assert.ErrorIs(t, set.Update("INSERT"), ErrPublished)
	assert.ErrorIs(t, set.DifferenceUpdate("SELECT"), ErrPublished)
	assert.True(t, set.Contains("SELECT"))
}

func TestReadKeywords(t *testing.T) {
	input := "SELECT\n\n  from  \nWhere\n"
	kws, err := ReadKeywords(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"SELECT", "FROM", "WHERE"}, kws)
}
