package entity

import (
	"testing"

	"gosnake/game/types"
)

func TestNewSnakeStartsCenteredHeadingLeft(t *testing.T) {
	s := NewSnake(types.StandardGrid(), types.Medium)

	if s.Len() != 2 {
		t.Fatalf("start length = %d, want 2", s.Len())
	}
	if s.Head() != pt(350, 350) {
		t.Fatalf("head = %v, want {350 350}", s.Head())
	}
	if s.Segment(1) != pt(400, 350) {
		t.Fatalf("tail = %v, want {400 350}", s.Segment(1))
	}
	if s.Direction() != types.DirLeft {
		t.Fatalf("direction = %v, want left", s.Direction())
	}
}

func TestAdvanceWaitsForInterval(t *testing.T) {
	s := NewSnake(types.StandardGrid(), types.Medium)

	if s.Advance(0.1) {
		t.Fatalf("snake stepped before the 0.3s interval elapsed")
	}
	if s.Advance(0.29) {
		t.Fatalf("snake stepped at 0.29s")
	}
	if s.Head() != pt(350, 350) {
		t.Fatalf("head moved without a step: %v", s.Head())
	}

	if !s.Advance(0.3) {
		t.Fatalf("snake should step once the interval elapsed")
	}
	if s.Head() != pt(300, 350) {
		t.Fatalf("head after step = %v, want {300 350}", s.Head())
	}
}

func TestAdvanceStepsOneCellAndPopsTail(t *testing.T) {
	s := NewSnake(types.StandardGrid(), types.Medium)

	s.Advance(0.31)

	body := s.Body()
	want := []types.Point{pt(300, 350), pt(350, 350)}
	if len(body) != 2 || body[0] != want[0] || body[1] != want[1] {
		t.Fatalf("body after step = %v, want %v", body, want)
	}
}

func TestAdvanceGatesEachStepSeparately(t *testing.T) {
	s := NewSnake(types.StandardGrid(), types.Medium)

	if !s.Advance(0.31) {
		t.Fatalf("first step should happen")
	}
	if s.Advance(0.4) {
		t.Fatalf("second step came only 0.09s after the first")
	}
	if !s.Advance(0.62) {
		t.Fatalf("second step should happen 0.31s after the first")
	}
	if s.Head() != pt(250, 350) {
		t.Fatalf("head after two steps = %v, want {250 350}", s.Head())
	}
}

func TestSetDirectionSteersNextStep(t *testing.T) {
	s := NewSnake(types.StandardGrid(), types.Medium)

	s.SetDirection(types.DirUp)
	s.Advance(0.31)

	if s.Head() != pt(350, 300) {
		t.Fatalf("head = %v, want {350 300}", s.Head())
	}
}

func TestSetDirectionIgnoresZeroVector(t *testing.T) {
	s := NewSnake(types.StandardGrid(), types.Medium)

	s.SetDirection(types.Direction{})

	if s.Direction() != types.DirLeft {
		t.Fatalf("zero vector overwrote the heading: %v", s.Direction())
	}
}

func TestGrowKeepsTailOnNextStepOnly(t *testing.T) {
	s := NewSnake(types.StandardGrid(), types.Medium)

	s.Grow()
	s.Advance(0.31)

	body := s.Body()
	want := []types.Point{pt(300, 350), pt(350, 350), pt(400, 350)}
	if len(body) != 3 {
		t.Fatalf("length after grow step = %d, want 3", len(body))
	}
	for i, w := range want {
		if body[i] != w {
			t.Fatalf("body[%d] = %v, want %v", i, body[i], w)
		}
	}

	// The growth flag is consumed: the next step moves without adding
	// another cell.
	s.Advance(0.62)
	if s.Len() != 3 {
		t.Fatalf("length after following step = %d, want 3", s.Len())
	}
	if s.Head() != pt(250, 350) || s.Segment(2) != pt(350, 350) {
		t.Fatalf("body after following step = %v", s.Body())
	}
}
