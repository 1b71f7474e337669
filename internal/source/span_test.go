package source

import "testing"

func TestSpanEmptyAndLen(t *testing.T) {
	s := Span{File: 1, Start: 4, End: 4}
	if !s.Empty() {
		t.Error("expected span to be empty")
	}
	if s.Len() != 0 {
		t.Errorf("expected len 0, got %d", s.Len())
	}

	s.End = 10
	if s.Empty() {
		t.Error("expected span to be non-empty")
	}
	if s.Len() != 6 {
		t.Errorf("expected len 6, got %d", s.Len())
	}
}

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Span
		want  Span
	}{
		{
			name: "disjoint extends both ends",
			a:    Span{File: 0, Start: 10, End: 12},
			b:    Span{File: 0, Start: 2, End: 4},
			want: Span{File: 0, Start: 2, End: 12},
		},
		{
			name: "contained is a no-op",
			a:    Span{File: 0, Start: 0, End: 20},
			b:    Span{File: 0, Start: 5, End: 6},
			want: Span{File: 0, Start: 0, End: 20},
		},
		{
			name: "different file ignored",
			a:    Span{File: 0, Start: 3, End: 5},
			b:    Span{File: 1, Start: 0, End: 100},
			want: Span{File: 0, Start: 3, End: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpanZeroideToEnd(t *testing.T) {
	s := Span{File: 2, Start: 3, End: 9}
	got := s.ZeroideToEnd()
	want := Span{File: 2, Start: 9, End: 9}
	if got != want {
		t.Errorf("ZeroideToEnd: got %+v, want %+v", got, want)
	}
	if !got.Empty() {
		t.Error("collapsed span must be empty")
	}
}
