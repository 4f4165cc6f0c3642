package parser

// Option is one lettered answer choice of a question.
type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// Question is a fully validated exam question. Instances are only built by the
// parser once the stem, at least two options and a correct-answer letter were
// all found; anything less is dropped during extraction.
type Question struct {
	ID                string   `json:"id"`
	Number            int      `json:"number"`
	Text              string   `json:"text"`
	Options           []Option `json:"options"`
	CorrectAnswer     string   `json:"correct_answer"`
	Explanation       string   `json:"explanation"`
	SourceFile        string   `json:"source_file"`
	BlockIndex        int      `json:"block_index"`
	IsDivergent       bool     `json:"is_divergent"`
	ExplanationAnswer string   `json:"explanation_answer,omitempty"`
}

// QuestionBlock is a contiguous slice of the globally ordered question list,
// capped at the configured block size. Blocks are immutable once built.
type QuestionBlock struct {
	ID          string   `json:"id"`
	SourceFile  string   `json:"source_file"`
	StartIndex  int      `json:"start_index"`
	EndIndex    int      `json:"end_index"`
	QuestionIDs []string `json:"question_ids"`
}

// Result is the outcome of a full parse. ChunksAttempted counts every candidate
// chunk the segmenter produced; ChunksParsed counts the ones that survived
// validation, so callers can warn "N of M candidate blocks parsed".
type Result struct {
	Questions       []*Question     `json:"questions"`
	Blocks          []QuestionBlock `json:"blocks"`
	ChunksAttempted int             `json:"chunks_attempted"`
	ChunksParsed    int             `json:"chunks_parsed"`
}

// NoExplanation is stored when a chunk carried no explanation text.
const NoExplanation = "No explanation provided."

// maxExplanationLen bounds explanations after whitespace normalization.
const maxExplanationLen = 2000
