package chunker

import "github.com/dshills/smartchunk-mcp/pkg/types"

// unit is one ordered structural span fed to the greedy assembler: a
// markdown section or the region owned by a code symbol. A nil boundary
// marks preamble content with no structural marker of its own.
type unit struct {
	start    int
	end      int
	boundary *types.Boundary

	// preferred marks units whose leading boundary is a good split point
	// once the current chunk has reached the target size
	preferred bool

	// reason is recorded on the closing chunk when the assembler splits
	// at this unit's preferred boundary
	reason types.SplitReason
}

// closeFunc decides whether the current chunk must close before taking the
// next unit. The hard max-size rule is checked first by the assembler
// itself; closeFunc adds the format-specific rules.
type closeFunc func(curSize, unitSize int, u unit) (types.SplitReason, bool)

// assemble greedily groups ordered units into chunks. Each unit either
// extends the current chunk or closes it and starts the next one; the
// closed chunk records the reason for the split. The final chunk is tagged
// "end", or "single_chunk" when it is the only one.
func assemble(units []unit, budget types.SizeBudget, shouldClose closeFunc) []types.Chunk {
	if len(units) == 0 {
		return nil
	}

	var chunks []types.Chunk
	cur := types.Chunk{Start: units[0].start, End: units[0].end}
	if b := units[0].boundary; b != nil {
		cur.Boundaries = append(cur.Boundaries, *b)
	}

	for _, u := range units[1:] {
		curSize := cur.End - cur.Start
		unitSize := u.end - u.start

		reason, split := types.ReasonMaxSize, curSize+unitSize > budget.MaxSize
		if !split {
			reason, split = shouldClose(curSize, unitSize, u)
		}

		if split {
			cur.SplitReason = reason
			chunks = append(chunks, cur)
			cur = types.Chunk{Start: u.start, End: u.end}
		} else {
			cur.End = u.end
		}
		if b := u.boundary; b != nil {
			cur.Boundaries = append(cur.Boundaries, *b)
		}
	}

	cur.SplitReason = types.ReasonEnd
	chunks = append(chunks, cur)
	if len(chunks) == 1 {
		chunks[0].SplitReason = types.ReasonSingleChunk
	}
	return chunks
}

// mergeTrailing folds an undersized final chunk into its predecessor when
// the union stays within the max size. The merged chunk keeps the trailing
// chunk's split reason since it now ends where that chunk ended.
func mergeTrailing(chunks []types.Chunk, budget types.SizeBudget) []types.Chunk {
	if len(chunks) < 2 {
		return chunks
	}
	last := chunks[len(chunks)-1]
	prev := &chunks[len(chunks)-2]
	if last.End-last.Start >= budget.MinSize {
		return chunks
	}
	if last.End-prev.Start > budget.MaxSize {
		return chunks
	}
	prev.End = last.End
	prev.Boundaries = append(prev.Boundaries, last.Boundaries...)
	prev.SplitReason = last.SplitReason
	chunks = chunks[:len(chunks)-1]
	if len(chunks) == 1 {
		chunks[0].SplitReason = types.ReasonSingleChunk
	}
	return chunks
}
