package bombjack

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/vovakirdan/bombjack/internal/core"
)

func frames(n int) []core.UVRect {
	out := make([]core.UVRect, n)
	for i := range out {
		out[i] = core.UVRect{U0: float64(i), V0: 0, U1: float64(i + 1), V1: 1}
	}
	return out
}

func TestNewAnimationRequiresFrames(t *testing.T) {
	if _, err := NewAnimation(); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("NewAnimation() error = %v, expected ErrInvalidConfiguration", err)
	}
}

func TestAnimationAdvanceReturnsCurrentFrame(t *testing.T) {
	f := frames(3)
	anim, err := NewAnimation(f...)
	if err != nil {
		t.Fatalf("NewAnimation() failed: %v", err)
	}

	for i, want := range []core.UVRect{f[0], f[1], f[2], f[0]} {
		if got := anim.Peek(); got != want {
			t.Errorf("step %d: Peek() = %+v, expected %+v", i, got, want)
		}
		if got := anim.Advance(); got != want {
			t.Errorf("step %d: Advance() = %+v, expected %+v", i, got, want)
		}
	}
	if anim.Index() != 1 {
		t.Errorf("Index() = %d after 4 advances over 3 frames, expected 1", anim.Index())
	}
}

func TestAnimationSingleFrame(t *testing.T) {
	anim, err := NewAnimation(frames(1)...)
	if err != nil {
		t.Fatalf("NewAnimation() failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		anim.Advance()
		if anim.Index() != 0 {
			t.Fatalf("single-frame animation moved to index %d", anim.Index())
		}
	}
}

func TestAnimationCopiesFrames(t *testing.T) {
	f := frames(2)
	anim, _ := NewAnimation(f...)
	f[0] = core.UVRect{U0: 99}
	if anim.Peek().U0 != 0 {
		t.Error("animation should not alias the caller's frame slice")
	}
}

func TestPropertyAnimationIndex(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("index stays within the frame list", prop.ForAll(
		func(n, steps int) bool {
			anim, err := NewAnimation(frames(n)...)
			if err != nil {
				return false
			}
			for i := 0; i < steps; i++ {
				anim.Advance()
				if anim.Index() < 0 || anim.Index() >= anim.Len() {
					return false
				}
			}
			return anim.Index() == steps%n
		},
		gen.IntRange(1, 12),
		gen.IntRange(0, 100),
	))

	properties.Property("len(frames) advances return to the starting frame", prop.ForAll(
		func(n, offset int) bool {
			anim, _ := NewAnimation(frames(n)...)
			for i := 0; i < offset; i++ {
				anim.Advance()
			}
			start := anim.Peek()
			for i := 0; i < anim.Len(); i++ {
				anim.Advance()
			}
			return anim.Peek() == start
		},
		gen.IntRange(1, 12),
		gen.IntRange(0, 30),
	))

	properties.TestingRun(t)
}
