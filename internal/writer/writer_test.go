package writer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/smartchunk-mcp/internal/chunker"
	"github.com/dshills/smartchunk-mcp/pkg/types"
)

func chunkFixture(t *testing.T, content, pathHint string, budget types.SizeBudget) *chunker.Result {
	t.Helper()
	res, err := chunker.New().Chunk(context.Background(), content, pathHint, budget)
	require.NoError(t, err)
	return res
}

func TestWriteChunksRoundTrip(t *testing.T) {
	content := strings.Repeat("Some sentence here. ", 40) + "\n\n" + strings.Repeat("More text. ", 40)
	budget := types.SizeBudget{TargetSize: 300, MinSize: 100, MaxSize: 600}
	res := chunkFixture(t, content, "notes.txt", budget)
	require.Greater(t, len(res.Chunks), 1)

	outDir := filepath.Join(t.TempDir(), "chunks")
	paths, err := New().WriteChunks(content, res, outDir)
	require.NoError(t, err)
	require.Len(t, paths, len(res.Chunks))

	// Concatenating the chunk files rebuilds the content exactly
	var rebuilt strings.Builder
	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		rebuilt.Write(data)
	}
	assert.Equal(t, content, rebuilt.String())
}

func TestWriteChunksManifestFile(t *testing.T) {
	content := "# Title\n\nBody.\n"
	budget := types.SizeBudget{TargetSize: 100, MinSize: 10, MaxSize: 200}
	res := chunkFixture(t, content, "doc.md", budget)

	outDir := t.TempDir()
	_, err := New().WriteChunks(content, res, outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "manifest.json"))
	require.NoError(t, err)

	var m types.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, types.FormatMarkdown, m.Format)
	assert.Equal(t, "smart_markdown", m.ChunkingMethod)
	require.Len(t, m.Chunks, 1)
	assert.Equal(t, "chunk_0000.txt", m.Chunks[0].File)
	assert.NotEmpty(t, m.Chunks[0].Preview)
	require.NotNil(t, m.Chunks[0].Hints)
	assert.Equal(t, []string{"# Title"}, m.Chunks[0].Hints.SectionHeaders)
}

func TestWriteChunksJSONExtension(t *testing.T) {
	content := `{"a": 1, "b": 2}`
	budget := types.SizeBudget{TargetSize: 100, MinSize: 10, MaxSize: 200}
	res := chunkFixture(t, content, "data.json", budget)

	outDir := t.TempDir()
	paths, err := New().WriteChunks(content, res, outDir)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.True(t, strings.HasSuffix(paths[0], "chunk_0000.json"))

	// The written payload is itself valid JSON
	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestWriteChunksWithoutHints(t *testing.T) {
	content := "# Title\n\nBody.\n"
	budget := types.SizeBudget{TargetSize: 100, MinSize: 10, MaxSize: 200}
	res := chunkFixture(t, content, "doc.md", budget)

	_, err := New(WithoutHints()).WriteChunks(content, res, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, res.Manifest.Chunks[0].Preview)
	assert.Nil(t, res.Manifest.Chunks[0].Hints)
}

func TestWriteChunksCreatesNestedDir(t *testing.T) {
	content := "small"
	budget := types.SizeBudget{TargetSize: 100, MinSize: 10, MaxSize: 200}
	res := chunkFixture(t, content, "a.txt", budget)

	outDir := filepath.Join(t.TempDir(), "deep", "nested", "dir")
	_, err := New().WriteChunks(content, res, outDir)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "manifest.json"))
	assert.NoError(t, err)
}

func TestPreview(t *testing.T) {
	short := "one\ntwo"
	assert.Equal(t, short, Preview(short, 5))

	long := "1\n2\n3\n4\n5\n6\n7"
	assert.Equal(t, "1\n2\n3\n4\n5\n...", Preview(long, 5))
}

func TestContentHints(t *testing.T) {
	t.Run("headers", func(t *testing.T) {
		h := ContentHints("# One\ntext\n## Two\nmore\n")
		require.NotNil(t, h)
		assert.Equal(t, []string{"# One", "## Two"}, h.SectionHeaders)
	})

	t.Run("code blocks", func(t *testing.T) {
		h := ContentHints("intro\n```go\ncode\n```\nmiddle\n```\nmore\n```\n")
		require.NotNil(t, h)
		assert.True(t, h.HasCodeBlocks)
		assert.Equal(t, 2, h.CodeBlockCount)
	})

	t.Run("likely code", func(t *testing.T) {
		h := ContentHints("func main() { x := []int{1}; fmt.Println(x) }")
		require.NotNil(t, h)
		assert.True(t, h.LikelyCode)
	})

	t.Run("likely json", func(t *testing.T) {
		h := ContentHints(`{"key": "value"}`)
		require.NotNil(t, h)
		assert.True(t, h.LikelyJSON)
	})

	t.Run("density", func(t *testing.T) {
		dense := ContentHints("a\nb\nc\nd\ne")
		require.NotNil(t, dense)
		assert.Equal(t, "dense", dense.Density)

		sparse := ContentHints("a\n\n\n\n\nb\n\n\n\n\n")
		require.NotNil(t, sparse)
		assert.Equal(t, "sparse", sparse.Density)
	})
}
