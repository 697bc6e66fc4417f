package landmark

import (
	"math"

	"github.com/lintang-b-s/navigatorx-stations/pkg"
	"github.com/lintang-b-s/navigatorx-stations/pkg/concurrent"
	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/geo"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"go.uber.org/zap"
)

const MaxLandmarks = 64

// Landmark. A*, landmarks and triangle inequality (ALT) lower bounds. implements the search heuristic interface.
type Landmark struct {
	lw        [][]float64 // travel time from each landmark to every intersection
	vlw       [][]float64 // travel time from every intersection to each landmark
	landmarks []int64     // landmark intersection ids
	index     map[int64]int
}

func NewLandmark() *Landmark {
	return &Landmark{
		lw:        make([][]float64, 0),
		landmarks: make([]int64, 0),
	}
}

func (lm *Landmark) GetLandmarks() []int64 {
	return lm.landmarks
}

/*
planar landmark selection: the plane around the center of the network is split into k sectors and the
intersection furthest along each sector direction becomes a landmark. the intersection closest to the
center is added as a last landmark. duplicates are dropped.

Goldberg, A.V. and Harrelson, C. (2005) Computing the shortest path: A* search meets graph theory, section 7.
*/
func (lm *Landmark) SelectLandmarks(k int, graph *da.Graph) []int64 {
	ivs := graph.Intersections()
	if len(ivs) == 0 || k <= 0 {
		return nil
	}

	centerLat, centerLon := graph.BoundingBox().Center()

	seen := make(map[int64]struct{}, k+1)
	landmarks := make([]int64, 0, k+1)
	add := func(id int64) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		landmarks = append(landmarks, id)
	}

	thetaDif := 360.0 / float64(k)
	for i := 0; i < k; i++ {
		thetaRad := util.DegreeToRadians(thetaDif * float64(i))
		sint, cost := math.Sin(thetaRad), math.Cos(thetaRad)

		best := ivs[0]
		bestProj := -math.MaxFloat64
		for _, v := range ivs {
			proj := (v.GetLon()-centerLon)*cost + (v.GetLat()-centerLat)*sint
			if proj > bestProj {
				best, bestProj = v, proj
			}
		}
		add(best.GetID())
	}

	mid := ivs[0]
	minMidDist := math.MaxFloat64
	for _, v := range ivs {
		dist := geo.CalculateHaversineDistance(v.GetLat(), v.GetLon(), centerLat, centerLon)
		if dist < minMidDist {
			minMidDist = dist
			mid = v
		}
	}
	add(mid.GetID())
	return landmarks
}

type landmarkJob struct {
	landmark int
	id       int64
	reversed bool
}

/*
PreprocessALT. forward and backward dijkstra from every landmark, run over the worker pool.
O((n+m)logn * k), n=number of intersections, m=number of segments, k=number of landmarks
*/
func (lm *Landmark) PreprocessALT(k int, graph *da.Graph, workers int, logger *zap.Logger) error {
	if k > MaxLandmarks {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "too many landmarks: %d, the maximum is %d", k, MaxLandmarks)
	}
	logger.Info("computing landmarks....", zap.Int("k", k))

	ivs := graph.Intersections()
	lm.index = make(map[int64]int, len(ivs))
	for i, v := range ivs {
		lm.index[v.GetID()] = i
	}
	reverse := make(map[int64][]da.Segment, len(ivs))
	for _, v := range ivs {
		for _, e := range graph.Neighbors(v.GetID()) {
			reverse[e.GetDestination()] = append(reverse[e.GetDestination()], e)
		}
	}

	lm.landmarks = lm.SelectLandmarks(k, graph)
	jobs := make([]landmarkJob, 0, 2*len(lm.landmarks))
	for i, id := range lm.landmarks {
		jobs = append(jobs, landmarkJob{landmark: i, id: id}, landmarkJob{landmark: i, id: id, reversed: true})
	}

	sps := concurrent.Map(workers, jobs, func(job landmarkJob) []float64 {
		return NewDijkstra(graph, lm.index, reverse, job.reversed).ShortestPath(job.id)
	})

	n := len(ivs)
	lm.lw = make([][]float64, len(lm.landmarks))
	lm.vlw = make([][]float64, n)
	for v := 0; v < n; v++ {
		lm.vlw[v] = make([]float64, len(lm.landmarks))
	}
	for j, job := range jobs {
		if !job.reversed {
			lm.lw[job.landmark] = sps[j]
			continue
		}
		for v := 0; v < n; v++ {
			lm.vlw[v][job.landmark] = sps[j][v]
		}
	}

	logger.Info("done computing landmarks....", zap.Int64s("landmarks", lm.landmarks))
	return nil
}

/*
FindTighestLowerBound. max over the landmarks L of
d(u,L) - d(t,L) and d(L,t) - d(L,u), clamped at 0. landmarks that do not reach or are not reached by u or t
are skipped.
*/
func (lm *Landmark) FindTighestLowerBound(u, t int64) float64 {
	ui, ok := lm.index[u]
	if !ok {
		return 0
	}
	ti, ok := lm.index[t]
	if !ok {
		return 0
	}

	tighestLowerBound := 0.0
	for i := 0; i < len(lm.landmarks); i++ {
		if lm.vlw[ui][i] >= pkg.INF_WEIGHT || lm.lw[i][ti] >= pkg.INF_WEIGHT ||
			lm.vlw[ti][i] >= pkg.INF_WEIGHT || lm.lw[i][ui] >= pkg.INF_WEIGHT {
			continue
		}
		lbOne := lm.vlw[ui][i] - lm.vlw[ti][i]
		lbTwo := lm.lw[i][ti] - lm.lw[i][ui]
		tighestLowerBound = math.Max(tighestLowerBound, math.Max(lbOne, lbTwo))
	}
	return tighestLowerBound
}

func (lm *Landmark) Estimate(current, goal da.Intersection) float64 {
	return lm.FindTighestLowerBound(current.GetID(), goal.GetID())
}

func (lm *Landmark) Admissible() bool {
	return true
}

func (lm *Landmark) Name() string {
	return "landmark"
}
