package detection

import (
	"math"
	"testing"
)

func TestClusterPoints_EmptyInput(t *testing.T) {
	centers, err := ClusterPoints(nil, 5)
	if err != nil {
		t.Fatalf("ClusterPoints on empty input returned error: %v", err)
	}
	if centers == nil {
		t.Fatal("ClusterPoints returned nil, want empty slice")
	}
	if len(centers) != 0 {
		t.Errorf("got %d centers for empty input, want 0", len(centers))
	}
}

func TestClusterPoints_NonPositiveK(t *testing.T) {
	points := []FeaturePoint{{X: 1, Y: 1}, {X: 2, Y: 2}}
	for _, k := range []int{0, -1} {
		centers, err := ClusterPoints(points, k)
		if err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}
		if len(centers) != 0 {
			t.Errorf("k=%d: got %d centers, want 0", k, len(centers))
		}
	}
}

// The effective cluster count is min(k, len(points)) for every
// non-negative k.
func TestClusterPoints_CountBound(t *testing.T) {
	points := []FeaturePoint{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100},
	}
	for _, k := range []int{0, 1, 2, 3, 4, 5, 10} {
		centers, err := ClusterPoints(points, k)
		if err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}
		want := k
		if want > len(points) {
			want = len(points)
		}
		if len(centers) != want {
			t.Errorf("k=%d: got %d centers, want %d", k, len(centers), want)
		}
	}
}

func TestClusterPoints_SinglePoint(t *testing.T) {
	centers, err := ClusterPoints([]FeaturePoint{{X: 7, Y: 13}}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(centers) != 1 {
		t.Fatalf("got %d centers, want 1", len(centers))
	}
	if centers[0].X != 7 || centers[0].Y != 13 {
		t.Errorf("center = (%f,%f), want (7,13)", centers[0].X, centers[0].Y)
	}
}

// With k equal to the point count each point becomes its own center.
func TestClusterPoints_KEqualsN(t *testing.T) {
	points := []FeaturePoint{
		{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 0, Y: 50},
	}
	centers, err := ClusterPoints(points, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(centers) != 3 {
		t.Fatalf("got %d centers, want 3", len(centers))
	}
	for _, p := range points {
		found := false
		for _, c := range centers {
			if c.X == float64(p.X) && c.Y == float64(p.Y) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no center at point (%d,%d): %v", p.X, p.Y, centers)
		}
	}
}

// Two well-separated blobs and k=2 must recover the blob means.
func TestClusterPoints_TwoBlobs(t *testing.T) {
	points := []FeaturePoint{
		{X: 9, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 9}, {X: 10, Y: 11},
		{X: 99, Y: 100}, {X: 101, Y: 100}, {X: 100, Y: 99}, {X: 100, Y: 101},
	}
	centers, err := ClusterPoints(points, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(centers) != 2 {
		t.Fatalf("got %d centers, want 2", len(centers))
	}

	for _, want := range []ClusterCenter{{X: 10, Y: 10}, {X: 100, Y: 100}} {
		found := false
		for _, c := range centers {
			if math.Hypot(c.X-want.X, c.Y-want.Y) < 0.5 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no center near (%f,%f): %v", want.X, want.Y, centers)
		}
	}
}

// The seeded random source makes clustering reproducible.
func TestClusterPoints_Deterministic(t *testing.T) {
	points := []FeaturePoint{
		{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 50, Y: 60}, {X: 52, Y: 58},
		{X: 90, Y: 10}, {X: 88, Y: 12},
	}
	first, err := ClusterPoints(points, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := ClusterPoints(points, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: got %d centers, want %d", i, len(again), len(first))
		}
		for j := range first {
			if first[j] != again[j] {
				t.Errorf("run %d: center %d = %v, want %v", i, j, again[j], first[j])
			}
		}
	}
}

func TestClusterPoints_CoincidentPoints(t *testing.T) {
	points := []FeaturePoint{
		{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5},
	}
	centers, err := ClusterPoints(points, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(centers) != 2 {
		t.Fatalf("got %d centers, want 2", len(centers))
	}
	for _, c := range centers {
		if c.X != 5 || c.Y != 5 {
			t.Errorf("center = (%f,%f), want (5,5)", c.X, c.Y)
		}
	}
}
