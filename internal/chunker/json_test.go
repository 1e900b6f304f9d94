package chunker

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/smartchunk-mcp/pkg/types"
)

func TestSplitJSONRejectsInvalid(t *testing.T) {
	budget := types.SizeBudget{TargetSize: 100, MinSize: 20, MaxSize: 200}

	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"truncated array", `[1, 2,`},
		{"bad object", `{"a": }`},
		{"scalar", `42`},
		{"string", `"hello"`},
		{"trailing garbage", `{"a": 1} extra`},
		{"prose", "not json at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, ok := SplitJSON(tt.content, budget)
			assert.False(t, ok)
			assert.Nil(t, chunks)
		})
	}
}

func TestSplitJSONEmptyContainers(t *testing.T) {
	budget := types.SizeBudget{TargetSize: 100, MinSize: 20, MaxSize: 200}

	chunks, ok := SplitJSON(`[]`, budget)
	require.True(t, ok)
	require.Len(t, chunks, 1)
	assert.Equal(t, types.ReasonSingleChunk, chunks[0].SplitReason)
	assert.Equal(t, [2]int{0, 0}, chunks[0].ItemRange)

	chunks, ok = SplitJSON(`{}`, budget)
	require.True(t, ok)
	require.Len(t, chunks, 1)
	assert.Empty(t, chunks[0].Keys)
	assert.NotNil(t, chunks[0].Keys)
}

func TestSplitJSONSmallDocumentSingleChunk(t *testing.T) {
	content := `{"name": "test", "value": 42}`
	budget := types.SizeBudget{TargetSize: 1000, MinSize: 100, MaxSize: 2000}

	chunks, ok := SplitJSON(content, budget)

	require.True(t, ok)
	require.Len(t, chunks, 1)
	assert.Equal(t, types.ReasonSingleChunk, chunks[0].SplitReason)
	assert.Equal(t, []string{"name", "value"}, chunks[0].Keys)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(chunks[0].Payload), &got))
	assert.Equal(t, map[string]any{"name": "test", "value": float64(42)}, got)
}

func TestSplitJSONArrayScenario(t *testing.T) {
	// 100 objects {"id": i}
	elems := make([]string, 100)
	for i := range elems {
		elems[i] = fmt.Sprintf(`{"id": %d}`, i)
	}
	content := "[" + strings.Join(elems, ", ") + "]"
	budget := types.SizeBudget{TargetSize: 300, MinSize: 100, MaxSize: 600}

	chunks, ok := SplitJSON(content, budget)

	require.True(t, ok)
	require.Greater(t, len(chunks), 1)

	// Index ranges tile [0, 100) and ids come back in order
	var ids []int
	next := 0
	for _, c := range chunks {
		assert.Equal(t, next, c.ItemRange[0])
		next = c.ItemRange[1]
		assert.LessOrEqual(t, len(c.Payload), budget.MaxSize)

		var part []struct {
			ID int `json:"id"`
		}
		require.NoError(t, json.Unmarshal([]byte(c.Payload), &part))
		for _, e := range part {
			ids = append(ids, e.ID)
		}
	}
	assert.Equal(t, 100, next)
	require.Len(t, ids, 100)
	for i, id := range ids {
		assert.Equal(t, i, id)
	}

	assert.Equal(t, types.ReasonStart, chunks[0].SplitReason)
	lastReason := chunks[len(chunks)-1].SplitReason
	assert.Contains(t, []types.SplitReason{types.ReasonEnd, types.ReasonElementBoundary}, lastReason)
	for _, c := range chunks[1 : len(chunks)-1] {
		assert.Equal(t, types.ReasonElementBoundary, c.SplitReason)
	}
}

func TestSplitJSONObjectKeys(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("{")
	for i := 0; i < 50; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, `"key_%02d": "%s"`, i, strings.Repeat("v", 20))
	}
	sb.WriteString("}")
	content := sb.String()
	budget := types.SizeBudget{TargetSize: 300, MinSize: 100, MaxSize: 600}

	chunks, ok := SplitJSON(content, budget)

	require.True(t, ok)
	require.Greater(t, len(chunks), 1)

	// Keys preserve document order across chunks
	var keys []string
	for _, c := range chunks {
		assert.Equal(t, c.ItemRange[1]-c.ItemRange[0], len(c.Keys))
		keys = append(keys, c.Keys...)
	}
	require.Len(t, keys, 50)
	for i, k := range keys {
		assert.Equal(t, fmt.Sprintf("key_%02d", i), k)
	}

	// Middle chunks split at key boundaries
	for _, c := range chunks[1 : len(chunks)-1] {
		assert.Equal(t, types.ReasonKeyBoundary, c.SplitReason)
	}
}

func TestSplitJSONReconstruction(t *testing.T) {
	elems := make([]string, 40)
	for i := range elems {
		elems[i] = fmt.Sprintf(`{"id": %d, "data": "%s"}`, i, strings.Repeat("d", 30))
	}
	content := "[" + strings.Join(elems, ",") + "]"
	budget := types.SizeBudget{TargetSize: 250, MinSize: 80, MaxSize: 500}

	chunks, ok := SplitJSON(content, budget)
	require.True(t, ok)
	require.Greater(t, len(chunks), 1)

	// Concatenating parsed payloads by index order rebuilds the array
	var rebuilt []any
	for _, c := range chunks {
		var part []any
		require.NoError(t, json.Unmarshal([]byte(c.Payload), &part))
		assert.Len(t, part, c.ItemRange[1]-c.ItemRange[0])
		rebuilt = append(rebuilt, part...)
	}

	var original []any
	require.NoError(t, json.Unmarshal([]byte(content), &original))
	assert.Equal(t, original, rebuilt)
}

func TestSplitJSONOversizedSingleElement(t *testing.T) {
	big := fmt.Sprintf(`[{"data": "%s"}]`, strings.Repeat("x", 5000))
	budget := types.SizeBudget{TargetSize: 1000, MinSize: 200, MaxSize: 2000}

	chunks, ok := SplitJSON(big, budget)

	require.True(t, ok)
	require.Len(t, chunks, 1)
	// A single atomic element may exceed max size; that is accepted
	assert.Greater(t, len(chunks[0].Payload), budget.MaxSize)
	assert.Equal(t, [2]int{0, 1}, chunks[0].ItemRange)
}

func TestSplitJSONNestedStructuresStayIntact(t *testing.T) {
	elems := make([]string, 30)
	for i := range elems {
		elems[i] = fmt.Sprintf(`{"id": %d, "nested": {"list": [1, 2, 3], "deep": {"a": "b"}}}`, i)
	}
	content := "[" + strings.Join(elems, ",") + "]"
	budget := types.SizeBudget{TargetSize: 400, MinSize: 100, MaxSize: 800}

	chunks, ok := SplitJSON(content, budget)
	require.True(t, ok)
	require.Greater(t, len(chunks), 1)

	for _, c := range chunks {
		assert.True(t, json.Valid([]byte(c.Payload)), "chunk payload must be valid JSON")
	}
}

func TestSplitJSONDeterministic(t *testing.T) {
	elems := make([]string, 60)
	for i := range elems {
		elems[i] = fmt.Sprintf(`{"n": %d}`, i)
	}
	content := "[" + strings.Join(elems, ",") + "]"
	budget := types.SizeBudget{TargetSize: 200, MinSize: 60, MaxSize: 400}

	first, ok1 := SplitJSON(content, budget)
	second, ok2 := SplitJSON(content, budget)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}
