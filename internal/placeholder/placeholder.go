// Package placeholder rotates the example phrases shown in the empty task entry.
package placeholder

import "math/rand/v2"

// Phrases are the example tasks offered as entry placeholders
var Phrases = []string{
	"Pick up kids",
	"Buy eggs",
	"Take over world",
	"Nap",
	"Call mom",
	"Finish school",
	"Get job",
	"Find true love",
}

// Picker chooses placeholder phrases using a pluggable random source
type Picker struct {
	intN func(n int) int
}

// NewPicker creates a picker. A nil intN falls back to math/rand/v2.
func NewPicker(intN func(n int) int) *Picker {
	if intN == nil {
		intN = rand.IntN
	}
	return &Picker{intN: intN}
}

// Next returns a uniformly chosen phrase
func (p *Picker) Next() string {
	i := p.intN(len(Phrases))
	if i < 0 || i >= len(Phrases) {
		i = 0
	}
	return Phrases[i]
}
