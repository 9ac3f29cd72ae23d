package detection

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// ClusterCenter is the centroid of one partition of feature points.
type ClusterCenter struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// clusterSeed fixes the random source for centroid seeding so repeated runs
// over the same input produce identical centers.
const clusterSeed = 42

// maxClusterIterations bounds the centroid relocation loop.
const maxClusterIterations = 100

// ClusterPoints partitions feature point coordinates into at most k groups
// using k-means with k-means++ style seeding. Classification tags are
// dropped; only coordinates participate.
//
// The effective cluster count is min(k, len(points)), so an input smaller
// than k yields one center per point. Empty input or k <= 0 returns an
// empty slice, never an error. Errors are reserved for degenerate numeric
// states inside the relocation loop.
func ClusterPoints(points []FeaturePoint, k int) ([]ClusterCenter, error) {
	centers := make([]ClusterCenter, 0)
	if len(points) == 0 || k <= 0 {
		return centers, nil
	}
	if k > len(points) {
		k = len(points)
	}

	obs := make([][]float64, len(points))
	for i, p := range points {
		obs[i] = []float64{float64(p.X), float64(p.Y)}
	}

	rng := rand.New(rand.NewSource(clusterSeed))
	centroids := seedCentroids(obs, k, rng)

	assign := make([]int, len(obs))
	for iter := 0; iter < maxClusterIterations; iter++ {
		changed := false
		for i, o := range obs {
			best := 0
			bestDist := math.MaxFloat64
			for c, ctr := range centroids {
				d := floats.Distance(o, ctr, 2)
				if d < bestDist {
					bestDist = d
					best = c
				}
			}
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		// Relocate each centroid to the mean of its members. A centroid
		// that lost all members keeps its position so the output always
		// carries exactly k centers.
		for c := range centroids {
			sum := []float64{0, 0}
			count := 0
			for i, o := range obs {
				if assign[i] != c {
					continue
				}
				floats.Add(sum, o)
				count++
			}
			if count == 0 {
				continue
			}
			floats.Scale(1/float64(count), sum)
			if math.IsNaN(sum[0]) || math.IsNaN(sum[1]) {
				return nil, fmt.Errorf("clustering diverged: non-finite centroid for partition %d", c)
			}
			centroids[c] = sum
		}
	}

	for _, c := range centroids {
		centers = append(centers, ClusterCenter{X: c[0], Y: c[1]})
	}
	return centers, nil
}

// seedCentroids picks k initial centroids with the k-means++ rule: the
// first is uniform random, each subsequent one is drawn with probability
// proportional to its squared distance from the nearest chosen centroid.
func seedCentroids(obs [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	first := obs[rng.Intn(len(obs))]
	centroids = append(centroids, []float64{first[0], first[1]})

	distSq := make([]float64, len(obs))
	for len(centroids) < k {
		total := 0.0
		for i, o := range obs {
			nearest := math.MaxFloat64
			for _, c := range centroids {
				d := floats.Distance(o, c, 2)
				if d*d < nearest {
					nearest = d * d
				}
			}
			distSq[i] = nearest
			total += nearest
		}

		if total == 0 {
			// All remaining observations coincide with chosen centroids;
			// fall back to an arbitrary unused observation.
			centroids = append(centroids, nextUnused(obs, centroids))
			continue
		}

		target := rng.Float64() * total
		idx := len(obs) - 1
		acc := 0.0
		for i, d := range distSq {
			acc += d
			if acc >= target {
				idx = i
				break
			}
		}
		centroids = append(centroids, []float64{obs[idx][0], obs[idx][1]})
	}
	return centroids
}

// nextUnused returns the first observation not already used as a centroid,
// or a copy of the first observation when everything coincides.
func nextUnused(obs, centroids [][]float64) []float64 {
	for _, o := range obs {
		used := false
		for _, c := range centroids {
			if o[0] == c[0] && o[1] == c[1] {
				used = true
				break
			}
		}
		if !used {
			return []float64{o[0], o[1]}
		}
	}
	return []float64{obs[0][0], obs[0][1]}
}
