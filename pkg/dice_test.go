package pkg

import (
	"testing"
)

func TestDrawRange(t *testing.T) {
	src := NewDieSource()
	for i := 0; i < 1000; i++ {
		f := src.Draw()
		if f < 1 || f > 6 {
			t.Fatalf("draw out of range: %d", f)
		}
	}
}

func TestDrawDistribution(t *testing.T) {
	const n = 60000
	src := NewDieSource()
	counts := make(map[Face]int)
	for i := 0; i < n; i++ {
		counts[src.Draw()]++
	}
	// Expect n/6 per face; 5% slack is dozens of standard deviations
	want := n / 6
	slack := want / 20
	for f := Face(1); f <= 6; f++ {
		if counts[f] < want-slack || counts[f] > want+slack {
			t.Errorf("face %d drawn %d times, want %d±%d", f, counts[f], want, slack)
		}
	}
}

func TestFaceArt(t *testing.T) {
	for f := Face(1); f <= 6; f++ {
		art := FaceArt(f)
		if len(art) != 5 {
			t.Errorf("face %d art has %d rows", f, len(art))
		}
	}
}
