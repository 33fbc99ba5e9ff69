package pipeline

// Word represents a single word-level token from the transcript, with
// timestamps in seconds.
type Word struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Cue is one sentence-level subtitle entry built from consecutive words.
type Cue struct {
	Text      string
	Start     float64
	End       float64
	WordCount int
}

// Transcript is the word-level transcript document produced by the external
// speech-recognition model.
type Transcript struct {
	LanguageCode string `json:"language_code,omitempty"`
	Text         string `json:"text,omitempty"`
	Words        []Word `json:"words"`
}
