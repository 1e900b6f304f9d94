package symbols

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/dshills/smartchunk-mcp/pkg/types"
)

// EnvCodemapPath overrides codemap binary discovery
const EnvCodemapPath = "SMARTCHUNK_CODEMAP_PATH"

// probeTimeout bounds each availability probe during detection
const probeTimeout = 2 * time.Second

// CodemapProvider shells out to the codemap tool for tree-sitter symbol
// boundaries. The zero value is not usable; construct via DetectCodemap.
type CodemapProvider struct {
	command []string
}

// Detector memoizes codemap discovery for the process lifetime. Detection
// runs subprocess probes, so callers share one Detector rather than
// re-probing per file.
type Detector struct {
	once     sync.Once
	provider *CodemapProvider
}

// Provider returns the detected codemap provider, or nil when codemap is
// not installed. The first call performs detection; later calls return the
// memoized result.
func (d *Detector) Provider(ctx context.Context) *CodemapProvider {
	d.once.Do(func() {
		d.provider = DetectCodemap(ctx)
	})
	return d.provider
}

// DetectCodemap probes for a usable codemap installation: an explicit
// binary path from the environment, then codemap on PATH, then npx.
// Returns nil when none respond.
func DetectCodemap(ctx context.Context) *CodemapProvider {
	if p := os.Getenv(EnvCodemapPath); p != "" {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return &CodemapProvider{command: []string{p}}
		}
	}
	if probeCommand(ctx, "codemap") {
		return &CodemapProvider{command: []string{"codemap"}}
	}
	if probeCommand(ctx, "npx", "codemap") {
		return &CodemapProvider{command: []string{"npx", "codemap"}}
	}
	return nil
}

func probeCommand(ctx context.Context, name string, args ...string) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, name, append(args, "--version")...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}

// ResolveSymbols implements Provider by invoking codemap on the file and
// parsing its JSON report
func (p *CodemapProvider) ResolveSymbols(ctx context.Context, path string) ([]types.Symbol, error) {
	args := make([]string, 0, len(p.command)+1)
	args = append(args, p.command[1:]...)
	args = append(args, "--json", path)

	cmd := exec.CommandContext(ctx, p.command[0], args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = nil
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("codemap invocation failed: %w", err)
	}

	syms, err := parseCodemapOutput(stdout.Bytes(), path)
	if err != nil {
		return nil, fmt.Errorf("codemap output for %s: %w", path, err)
	}
	return syms, nil
}

// codemapFile mirrors one file entry in codemap's JSON report
type codemapFile struct {
	Path    string          `json:"path"`
	Symbols []codemapSymbol `json:"symbols"`
}

type codemapSymbol struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Lines     []int  `json:"lines"`
	Signature string `json:"signature"`
	Exported  bool   `json:"exported"`
}

// parseCodemapOutput accepts both report shapes codemap emits: an object
// with a "files" array, or a bare top-level array of file entries. The
// entry for path is matched exactly first, then by basename.
func parseCodemapOutput(output []byte, path string) ([]types.Symbol, error) {
	var files []codemapFile
	if err := json.Unmarshal(output, &files); err != nil {
		var wrapper struct {
			Files []codemapFile `json:"files"`
		}
		if err := json.Unmarshal(output, &wrapper); err != nil {
			return nil, fmt.Errorf("unrecognized report shape: %w", err)
		}
		files = wrapper.Files
	}

	entry := matchFile(files, path)
	if entry == nil {
		return nil, nil
	}

	syms := make([]types.Symbol, 0, len(entry.Symbols))
	for _, cs := range entry.Symbols {
		if len(cs.Lines) != 2 {
			continue
		}
		s := types.Symbol{
			Name:      cs.Name,
			Kind:      cs.Kind,
			Signature: cs.Signature,
			StartLine: cs.Lines[0],
			EndLine:   cs.Lines[1],
			Exported:  cs.Exported,
		}
		if err := s.Validate(); err != nil {
			continue
		}
		syms = append(syms, s)
	}
	sort.SliceStable(syms, func(i, j int) bool {
		return syms[i].StartLine < syms[j].StartLine
	})
	return syms, nil
}

func matchFile(files []codemapFile, path string) *codemapFile {
	for i := range files {
		if files[i].Path == path {
			return &files[i]
		}
	}
	base := filepath.Base(path)
	for i := range files {
		if filepath.Base(files[i].Path) == base {
			return &files[i]
		}
	}
	return nil
}
