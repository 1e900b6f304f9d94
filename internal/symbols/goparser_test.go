package symbols

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goFixture = `package sample

import "fmt"

const MaxRetries = 3

var debug = false

// Widget is a sample type
type Widget struct {
	Name string
}

// Renderer draws things
type Renderer interface {
	Render() string
}

func NewWidget(name string) *Widget {
	return &Widget{Name: name}
}

func (w *Widget) Render() string {
	return fmt.Sprintf("widget %s", w.Name)
}

func internalHelper() {}
`

func writeGoFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.go")
	require.NoError(t, os.WriteFile(path, []byte(goFixture), 0644))
	return path
}

func TestGoProviderResolveSymbols(t *testing.T) {
	path := writeGoFixture(t)
	syms, err := NewGoProvider().ResolveSymbols(context.Background(), path)
	require.NoError(t, err)

	byName := map[string]string{}
	for _, s := range syms {
		byName[s.Name] = s.Kind
	}
	assert.Equal(t, "const", byName["MaxRetries"])
	assert.Equal(t, "var", byName["debug"])
	assert.Equal(t, "struct", byName["Widget"])
	assert.Equal(t, "interface", byName["Renderer"])
	assert.Equal(t, "function", byName["NewWidget"])
	assert.Equal(t, "method", byName["Render"])
	assert.Equal(t, "function", byName["internalHelper"])

	// Sorted by start line
	for i := 0; i < len(syms)-1; i++ {
		assert.LessOrEqual(t, syms[i].StartLine, syms[i+1].StartLine)
	}
}

func TestGoProviderSignatures(t *testing.T) {
	path := writeGoFixture(t)
	syms, err := NewGoProvider().ResolveSymbols(context.Background(), path)
	require.NoError(t, err)

	sigs := map[string]string{}
	for _, s := range syms {
		sigs[s.Name] = s.Signature
	}
	assert.Equal(t, "func NewWidget(name string) *Widget", sigs["NewWidget"])
	assert.Equal(t, "func (*Widget) Render() string", sigs["Render"])
}

func TestGoProviderExported(t *testing.T) {
	path := writeGoFixture(t)
	syms, err := NewGoProvider().ResolveSymbols(context.Background(), path)
	require.NoError(t, err)

	exported := map[string]bool{}
	for _, s := range syms {
		exported[s.Name] = s.Exported
	}
	assert.True(t, exported["NewWidget"])
	assert.True(t, exported["Widget"])
	assert.False(t, exported["debug"])
	assert.False(t, exported["internalHelper"])
}

func TestGoProviderParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.go")
	require.NoError(t, os.WriteFile(path, []byte("package broken\nfunc {{{"), 0644))

	_, err := NewGoProvider().ResolveSymbols(context.Background(), path)
	assert.Error(t, err)
}

func TestGoProviderMissingFile(t *testing.T) {
	_, err := NewGoProvider().ResolveSymbols(context.Background(), "/no/such/file.go")
	assert.Error(t, err)
}

func TestGoProviderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewGoProvider().ResolveSymbols(ctx, writeGoFixture(t))
	assert.Error(t, err)
}

func TestChainDispatchesGoFiles(t *testing.T) {
	path := writeGoFixture(t)
	chain := NewChain(nil)

	syms, err := chain.ResolveSymbols(context.Background(), path)
	require.NoError(t, err)
	assert.NotEmpty(t, syms)
}

func TestChainWithoutExternalProvider(t *testing.T) {
	chain := NewChain(nil)
	_, err := chain.ResolveSymbols(context.Background(), "/src/app.py")
	assert.ErrorIs(t, err, ErrUnavailable)
}
