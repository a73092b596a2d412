package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentimentscope/internal/models"
)

func items(texts ...string) []models.BatchItem {
	out := make([]models.BatchItem, len(texts))
	for i, text := range texts {
		out[i] = models.BatchItem{Text: text}
	}
	return out
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	in := items("great product", "bad packaging")
	assert.Equal(t, in, Filter(in, ""))
	assert.Equal(t, in, Filter(in, "   "))
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	in := items("great product", "bad packaging", "great value")

	got := Filter(in, "GREAT")
	require.Len(t, got, 2)
	assert.Equal(t, "great product", got[0].Text)
	assert.Equal(t, "great value", got[1].Text)

	assert.Empty(t, Filter(in, "terrible"))
}

func TestFilterScenarioFromBatch(t *testing.T) {
	in := items("great product", "bad packaging", "great value")
	got := Filter(in, "great")
	assert.Equal(t, items("great product", "great value"), got)
}

func TestFilterIdempotent(t *testing.T) {
	in := items("Great product", "bad packaging", "great value")
	once := Filter(in, "great")
	twice := Filter(once, "great")
	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := items("alpha", "beta", "alphabet")
	Filter(in, "beta")
	assert.Equal(t, items("alpha", "beta", "alphabet"), in)
}

func TestFilterHandlesEmptyTexts(t *testing.T) {
	in := items("", "something")
	assert.Len(t, Filter(in, "some"), 1)
	assert.Empty(t, Filter(items(""), "x"))
}
