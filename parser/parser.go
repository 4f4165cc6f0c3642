// Package parser turns free-form exam question text into validated questions
// and fixed-size study blocks. It is a single-pass, in-memory transformation:
// no I/O, no storage, safe to run concurrently for independent inputs.
package parser

import "log"

// Parse runs the full pipeline with the default block size.
func Parse(text, sourceFile string) Result {
	return ParseWithBlockSize(text, sourceFile, DefaultBlockSize)
}

// ParseWithBlockSize segments the text into candidate chunks, extracts a
// question from each, and partitions the survivors into blocks. Chunks that
// fail validation are dropped silently; the result carries the
// attempted/parsed counts so callers can surface a warning.
func ParseWithBlockSize(text, sourceFile string, blockSize int) Result {
	chunks := segment(text)

	questions := make([]*Question, 0, len(chunks))
	for _, c := range chunks {
		q := extractContent(c, sourceFile)
		if q == nil {
			log.Printf("⚠️ Chunk %d of %s rejected during extraction", c.number, sourceFile)
			continue
		}
		questions = append(questions, q)
	}

	blocks := PartitionIntoBlocks(questions, sourceFile, blockSize)

	return Result{
		Questions:       questions,
		Blocks:          blocks,
		ChunksAttempted: len(chunks),
		ChunksParsed:    len(questions),
	}
}
