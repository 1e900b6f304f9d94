package chunker

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/dshills/smartchunk-mcp/pkg/types"
)

// jsonItem is one top-level element of a JSON array, or one key/value
// pair of a JSON object. Raw holds the item's own serialization.
type jsonItem struct {
	key string
	raw json.RawMessage
}

// SplitJSON divides a JSON document along its top-level structure: array
// elements or object keys. Chunk payloads are the re-serialized groups
// (pretty, two-space indent), so parsing every payload and concatenating
// by index range reconstructs a value equal to the original.
//
// Returns ok=false when the content is not valid JSON or its top-level
// value is neither an array nor an object; callers fall back to text
// chunking.
//
// Group boundaries are found by greedy grow/shrink with mandatory
// re-serialization at each step, since punctuation and indentation are
// not purely additive. That makes a boundary O(n) in group size, which is
// fine for the intended document scales.
func SplitJSON(content string, budget types.SizeBudget) ([]types.Chunk, bool) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, false
	}

	var container types.Container
	var items []jsonItem
	var ok bool
	switch trimmed[0] {
	case '[':
		container = types.ContainerArray
		items, ok = parseArrayItems(trimmed)
	case '{':
		container = types.ContainerObject
		items, ok = parseObjectItems(trimmed)
	default:
		return nil, false
	}
	if !ok {
		return nil, false
	}

	return groupItems(container, items, budget), true
}

// parseArrayItems splits a top-level JSON array into raw elements
func parseArrayItems(content string) ([]jsonItem, bool) {
	var raws []json.RawMessage
	if err := json.Unmarshal([]byte(content), &raws); err != nil {
		return nil, false
	}
	items := make([]jsonItem, len(raws))
	for i, raw := range raws {
		items[i] = jsonItem{raw: raw}
	}
	return items, true
}

// parseObjectItems splits a top-level JSON object into key/value pairs in
// document order. A map round-trip would lose ordering, so this walks the
// token stream instead.
func parseObjectItems(content string) ([]jsonItem, bool) {
	dec := json.NewDecoder(strings.NewReader(content))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, false
	}

	var items []jsonItem
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, false
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, false
		}
		items = append(items, jsonItem{key: key, raw: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}
	return items, true
}

// groupItems assembles items into size-bounded groups
func groupItems(container types.Container, items []jsonItem, budget types.SizeBudget) []types.Chunk {
	whole := serializeItems(container, items)
	if len(items) == 0 || len(whole) <= budget.MaxSize {
		return []types.Chunk{structuralChunk(container, items, 0, len(items), whole, types.ReasonSingleChunk)}
	}

	perChunk := estimateItemsPerChunk(items, budget)
	boundaryReason := types.ReasonElementBoundary
	if container == types.ContainerObject {
		boundaryReason = types.ReasonKeyBoundary
	}

	var chunks []types.Chunk
	start := 0
	for start < len(items) {
		end := start + perChunk
		if end > len(items) {
			end = len(items)
		}
		payload := serializeItems(container, items[start:end])

		// Shrink while over the hard limit, but never below one item;
		// a single oversized item is an accepted atomic overflow.
		for len(payload) > budget.MaxSize && end-start > 1 {
			end--
			payload = serializeItems(container, items[start:end])
		}
		// Grow toward the target while room remains under the hard limit
		for end < len(items) && len(payload) < budget.TargetSize {
			next := serializeItems(container, items[start:end+1])
			if len(next) > budget.MaxSize {
				break
			}
			end++
			payload = next
		}

		reason := boundaryReason
		if start == 0 {
			reason = types.ReasonStart
		}
		chunks = append(chunks, structuralChunk(container, items, start, end, payload, reason))
		start = end
	}

	if len(chunks) == 1 {
		// A lone atomic item can exceed the max size; it still counts as
		// a single chunk
		chunks[0].SplitReason = types.ReasonSingleChunk
		return chunks
	}
	chunks[len(chunks)-1].SplitReason = types.ReasonEnd
	return mergeTrailingJSON(container, items, chunks, budget)
}

// mergeTrailingJSON folds an undersized final group into its predecessor
// when the re-serialized union fits. The merged chunk keeps the
// predecessor's reason since its start boundary is unchanged.
func mergeTrailingJSON(container types.Container, items []jsonItem, chunks []types.Chunk, budget types.SizeBudget) []types.Chunk {
	if len(chunks) < 2 {
		return chunks
	}
	last := chunks[len(chunks)-1]
	prev := &chunks[len(chunks)-2]
	if len(last.Payload) >= budget.MinSize {
		return chunks
	}
	union := serializeItems(container, items[prev.ItemRange[0]:last.ItemRange[1]])
	if len(union) > budget.MaxSize {
		return chunks
	}
	merged := structuralChunk(container, items, prev.ItemRange[0], last.ItemRange[1], union, prev.SplitReason)
	chunks[len(chunks)-2] = merged
	chunks = chunks[:len(chunks)-1]
	if len(chunks) == 1 {
		chunks[0].SplitReason = types.ReasonSingleChunk
	}
	return chunks
}

func structuralChunk(container types.Container, items []jsonItem, start, end int, payload string, reason types.SplitReason) types.Chunk {
	c := types.Chunk{
		Payload:     payload,
		Container:   container,
		ItemRange:   [2]int{start, end},
		SplitReason: reason,
	}
	if container == types.ContainerObject {
		keys := make([]string, 0, end-start)
		for _, it := range items[start:end] {
			keys = append(keys, it.key)
		}
		c.Keys = keys
	}
	return c
}

// estimateItemsPerChunk guesses a starting group size from the average
// per-item serialized length. It is only a seed; the grow/shrink loop
// corrects it against true serialized sizes.
func estimateItemsPerChunk(items []jsonItem, budget types.SizeBudget) int {
	total := 0
	for _, it := range items {
		total += len(it.raw)
	}
	avg := total/len(items) + 2
	n := budget.TargetSize / avg
	if n < 1 {
		n = 1
	}
	return n
}

// serializeItems renders a group of items back to pretty-printed JSON in
// the original container shape
func serializeItems(container types.Container, items []jsonItem) string {
	var compact bytes.Buffer
	if container == types.ContainerArray {
		compact.WriteByte('[')
		for i, it := range items {
			if i > 0 {
				compact.WriteByte(',')
			}
			compact.Write(it.raw)
		}
		compact.WriteByte(']')
	} else {
		compact.WriteByte('{')
		for i, it := range items {
			if i > 0 {
				compact.WriteByte(',')
			}
			keyBytes, _ := json.Marshal(it.key)
			compact.Write(keyBytes)
			compact.WriteByte(':')
			compact.Write(it.raw)
		}
		compact.WriteByte('}')
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, compact.Bytes(), "", "  "); err != nil {
		return compact.String()
	}
	return pretty.String()
}
