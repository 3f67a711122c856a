package config

import "github.com/povarna/generative-ai-agents/patterns/internal/models"

// ExamplesConfig is the set of sample cases run by the demo command.
type ExamplesConfig struct {
	Anagrams []AnagramExample `yaml:"anagrams"`
	Unique   []UniqueExample  `yaml:"unique"`
}

type AnagramExample struct {
	ID        string        `yaml:"id"`
	Word      string        `yaml:"word"`
	Candidate string        `yaml:"candidate"`
	Method    models.Method `yaml:"method"`
	Expected  bool          `yaml:"expected"`
}

type UniqueExample struct {
	ID       string `yaml:"id"`
	Values   []int  `yaml:"values"`
	Checked  bool   `yaml:"checked"`
	Expected int    `yaml:"expected"`
}

func (e AnagramExample) Request() models.AnagramRequest {
	return models.AnagramRequest{
		ID:        e.ID,
		Word:      e.Word,
		Candidate: e.Candidate,
		Method:    e.Method,
	}
}

func (e UniqueExample) Request() models.UniqueRequest {
	return models.UniqueRequest{
		ID:      e.ID,
		Values:  e.Values,
		Checked: e.Checked,
	}
}
