package model

// RunReport is the complete artifact of one tracking run: the reduced
// summary plus every scored answer that produced it. Keeping the raw
// results in the report makes every summary number recomputable.
type RunReport struct {
	Summary RunSummary     `json:"summary"`
	Results []AnswerResult `json:"results"`
}
