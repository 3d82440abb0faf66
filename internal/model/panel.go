package model

// Question is one panel entry: a consumer question asked verbatim to
// every enabled provider. The text must never name the tracked brand,
// or visibility numbers would measure prompt echo instead of organic
// recommendations.
type Question struct {
	Text     string `yaml:"text" json:"text"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
}

// Panel is the question set of one tracking run.
type Panel struct {
	Questions []Question `yaml:"questions"`
}
