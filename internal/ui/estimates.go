package ui

import (
	"math/rand/v2"
)

// Placeholder estimate ranges, inclusive
const (
	MinPrepMinutes = 15
	MaxPrepMinutes = 60
	MinServings    = 2
	MaxServings    = 8
)

// Difficulty is a cosmetic difficulty label
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the labels an Estimator chooses from
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// LocalizationKey returns the text key of the difficulty label
func (d Difficulty) LocalizationKey() string {
	switch d {
	case DifficultyEasy:
		return KeyEasy
	case DifficultyMedium:
		return KeyMedium
	case DifficultyHard:
		return KeyHard
	default:
		return string(d)
	}
}

// Estimate is mock card data shown next to a recipe. It is not derived from
// the recipe.
type Estimate struct {
	PrepMinutes int
	Difficulty  Difficulty
	Servings    int
}

// Estimator generates placeholder estimates
type Estimator struct {
	rng *rand.Rand
}

// NewEstimator creates an estimator. A nil rng uses a randomly seeded source.
func NewEstimator(rng *rand.Rand) *Estimator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Estimator{rng: rng}
}

// Next returns a fresh estimate
func (e *Estimator) Next() Estimate {
	return Estimate{
		PrepMinutes: MinPrepMinutes + e.rng.IntN(MaxPrepMinutes-MinPrepMinutes+1),
		Difficulty:  Difficulties[e.rng.IntN(len(Difficulties))],
		Servings:    MinServings + e.rng.IntN(MaxServings-MinServings+1),
	}
}
