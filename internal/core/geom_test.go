package core

import "testing"

func TestRectContains(t *testing.T) {
	// A three-cell log lying on row 30, covering columns 83..85.
	log := NewRect(83, 30, 3, 1)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"leading cell", 83, 30, true},
		{"middle cell", 84, 30, true},
		{"trailing cell", 85, 30, true},
		{"one before", 82, 30, false},
		{"one after", 86, 30, false},
		{"row above", 84, 29, false},
		{"row below", 84, 31, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := log.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(-2, 4, 5, 2)
	if r.Right() != 3 {
		t.Errorf("Right() = %d, expected 3", r.Right())
	}
	if r.Bottom() != 6 {
		t.Errorf("Bottom() = %d, expected 6", r.Bottom())
	}
}

func TestRectEmpty(t *testing.T) {
	r := NewRect(0, 0, 0, 1)
	if r.Contains(0, 0) {
		t.Error("zero-width rect should contain nothing")
	}
}
