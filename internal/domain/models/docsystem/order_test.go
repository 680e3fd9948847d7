package docsystem

import (
	"testing"
)

func TestNextOrderAfter(t *testing.T) {
	tests := []struct {
		name    string
		highest int64
		exists  bool
		want    int64
	}{
		{
			name:   "empty scope starts at base",
			exists: false,
			want:   1000,
		},
		{
			name:    "appends after highest",
			highest: 3000,
			exists:  true,
			want:    4000,
		},
		{
			name:    "non-multiple highest still gets full gap",
			highest: 1500,
			exists:  true,
			want:    2500,
		},
		{
			name:    "zero highest in non-empty scope",
			highest: 0,
			exists:  true,
			want:    1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextOrderAfter(tt.highest, tt.exists); got != tt.want {
				t.Errorf("NextOrderAfter(%d, %v) = %d, want %d", tt.highest, tt.exists, got, tt.want)
			}
		})
	}
}

func TestNextOrderAfterMonotonic(t *testing.T) {
	// repeated appends always produce strictly increasing values
	order := NextOrderAfter(0, false)
	for i := 0; i < 100; i++ {
		next := NextOrderAfter(order, true)
		if next <= order {
			t.Fatalf("append %d: got %d after %d, want strictly greater", i, next, order)
		}
		order = next
	}
}

func TestNextOrderBefore(t *testing.T) {
	tests := []struct {
		name   string
		lowest int64
		exists bool
		want   int64
	}{
		{
			name:   "empty scope starts at base",
			exists: false,
			want:   1000,
		},
		{
			name:   "prepends below lowest",
			lowest: 1000,
			exists: true,
			want:   0,
		},
		{
			name:   "goes negative past zero",
			lowest: 0,
			exists: true,
			want:   -1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextOrderBefore(tt.lowest, tt.exists); got != tt.want {
				t.Errorf("NextOrderBefore(%d, %v) = %d, want %d", tt.lowest, tt.exists, got, tt.want)
			}
		})
	}
}

func TestOrderBetween(t *testing.T) {
	tests := []struct {
		name       string
		prev, next int64
		want       int64
	}{
		{name: "midpoint of full gap", prev: 1000, next: 2000, want: 1500},
		{name: "midpoint of narrow gap", prev: 1000, next: 1002, want: 1001},
		{name: "collapsed gap returns prev", prev: 1000, next: 1001, want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrderBetween(tt.prev, tt.next); got != tt.want {
				t.Errorf("OrderBetween(%d, %d) = %d, want %d", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}
