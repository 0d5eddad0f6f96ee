package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClientRecordsBatches(t *testing.T) {
	client := NewMemoryClient()
	params := map[string]any{"id": 1}

	err := client.WriteBatch(context.Background(), []Statement{{Cypher: "CREATE (a)", Params: params}})
	require.NoError(t, err)
	params["id"] = 2

	stmts := client.Statements()
	require.Len(t, stmts, 1)
	assert.Equal(t, 1, stmts[0].Params["id"], "params must be cloned")
}

func TestMemoryClientFailAfter(t *testing.T) {
	boom := errors.New("boom")
	client := NewMemoryClient().FailAfter(1, boom)
	ctx := context.Background()

	require.NoError(t, client.WriteBatch(ctx, []Statement{{Cypher: "A"}}))
	assert.ErrorIs(t, client.WriteBatch(ctx, []Statement{{Cypher: "B"}}), boom)
	assert.Len(t, client.Batches(), 1)
}

func TestMemoryClientReadsQueuedResults(t *testing.T) {
	client := NewMemoryClient()
	client.PushReadResult(Result{Records: []Record{{"total": int64(1)}}})

	first, err := client.Read(context.Background(), Statement{Cypher: "MATCH (a) RETURN count(a) AS total"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Records[0]["total"])

	second, err := client.Read(context.Background(), Statement{Cypher: "MATCH (a) RETURN a"})
	require.NoError(t, err)
	assert.Empty(t, second.Records)
	assert.Len(t, client.Reads(), 2)
}

func TestOptionsRequireURI(t *testing.T) {
	_, err := NewNeo4jClient(context.Background(), Options{})
	assert.ErrorIs(t, err, ErrMissingURI)
}
