package parser

import (
	"sort"

	"github.com/google/uuid"
)

// DefaultBlockSize caps how many questions a study block may hold.
const DefaultBlockSize = 50

// PartitionIntoBlocks sorts the questions by their declared number (stable, so
// ties keep chunk order), slices them into consecutive groups of at most
// blockSize, and stamps each question with the index of the block that holds
// it. Start/end indices are inclusive positions in the sorted sequence.
func PartitionIntoBlocks(questions []*Question, sourceFile string, blockSize int) []QuestionBlock {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Number < questions[j].Number
	})

	var blocks []QuestionBlock
	for start := 0; start < len(questions); start += blockSize {
		end := start + blockSize
		if end > len(questions) {
			end = len(questions)
		}
		members := questions[start:end]
		ids := make([]string, len(members))
		for i, q := range members {
			ids[i] = q.ID
			q.BlockIndex = len(blocks)
		}
		blocks = append(blocks, QuestionBlock{
			ID:          uuid.NewString(),
			SourceFile:  sourceFile,
			StartIndex:  start,
			EndIndex:    end - 1,
			QuestionIDs: ids,
		})
	}
	return blocks
}
