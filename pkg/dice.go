package pkg

import (
	"math/rand"
	"time"
)

// DieSource produces die faces. The game only ever asks for one face at a
// time, so tests can swap in a scripted source.
type DieSource interface {
	Draw() Face
}

type randSource struct {
	r *rand.Rand
}

// NewDieSource returns the production die: uniform over 1-6, seeded from
// the clock. Not used for anything security sensitive.
func NewDieSource() DieSource {
	return &randSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *randSource) Draw() Face {
	return Face(s.r.Intn(6) + 1)
}

// FaceArt maps a face to its pip drawing, one string per row. The lookup
// stands in for the dice images of a graphical client.
func FaceArt(f Face) []string {
	return faceArt[f-1]
}

var faceArt = [6][]string{
	{
		"┌─────────┐",
		"│         │",
		"│    ●    │",
		"│         │",
		"└─────────┘",
	},
	{
		"┌─────────┐",
		"│  ●      │",
		"│         │",
		"│      ●  │",
		"└─────────┘",
	},
	{
		"┌─────────┐",
		"│  ●      │",
		"│    ●    │",
		"│      ●  │",
		"└─────────┘",
	},
	{
		"┌─────────┐",
		"│  ●   ●  │",
		"│         │",
		"│  ●   ●  │",
		"└─────────┘",
	},
	{
		"┌─────────┐",
		"│  ●   ●  │",
		"│    ●    │",
		"│  ●   ●  │",
		"└─────────┘",
	},
	{
		"┌─────────┐",
		"│  ●   ●  │",
		"│  ●   ●  │",
		"│  ●   ●  │",
		"└─────────┘",
	},
}
