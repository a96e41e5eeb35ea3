package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/sajis997/path-tracer/pkg/core"
	"github.com/sajis997/path-tracer/pkg/material"
)

// unboundedPrimitive reports invalid bounds and counts intersection attempts
type unboundedPrimitive struct {
	calls int
}

func (u *unboundedPrimitive) Intersect(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	u.calls++
	return &material.HitRecord{T: tMin}, true
}

func (u *unboundedPrimitive) Bounds() core.AABB    { return core.EmptyAABB() }
func (u *unboundedPrimitive) Centroid() core.Point { return core.Vec3{} }

func randomSpheres(random *rand.Rand, n int) []Primitive {
	primitives := make([]Primitive, n)
	for i := range primitives {
		center := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		primitives[i] = NewSphere(center, 0.2+random.Float64(), nil)
	}
	return primitives
}

func randomTriangles(random *rand.Rand, n int) []Primitive {
	primitives := make([]Primitive, n)
	for i := range primitives {
		base := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		jitter := func() core.Vec3 {
			return core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		}
		primitives[i] = NewTriangle(base, base.Add(jitter()), base.Add(jitter()), nil)
	}
	return primitives
}

func mustBuildBVH(t *testing.T, primitives []Primitive, opts BVHOptions) *BVH {
	t.Helper()
	bvh, err := NewBVH(primitives, opts)
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}
	return bvh
}

func TestBVH_Empty(t *testing.T) {
	bvh := mustBuildBVH(t, nil, DefaultBVHOptions())

	if len(bvh.Nodes()) != 0 {
		t.Errorf("Expected no nodes, got %d", len(bvh.Nodes()))
	}
	if !bvh.Bounds().IsEmpty() {
		t.Errorf("Expected empty bounds, got %v", bvh.Bounds())
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, hit := bvh.Intersect(ray, 0.001, math.Inf(1)); hit {
		t.Error("Expected empty BVH to never report a hit")
	}
}

func TestBVH_SinglePrimitive(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, nil)
	bvh := mustBuildBVH(t, []Primitive{sphere}, DefaultBVHOptions())

	nodes := bvh.Nodes()
	if len(nodes) != 1 {
		t.Fatalf("Expected a single root node, got %d", len(nodes))
	}
	if !nodes[0].IsLeaf() || nodes[0].Offset != 0 || nodes[0].Count != 1 {
		t.Errorf("Expected root leaf covering [0,1), got %+v", nodes[0])
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := bvh.Intersect(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected t=0.5, got %f", hit.T)
	}
	if !vecApproxEqual(hit.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
}

func TestBVH_Structure(t *testing.T) {
	random := rand.New(rand.NewSource(10))
	const n = 10
	bvh := mustBuildBVH(t, randomSpheres(random, n), DefaultBVHOptions())
	nodes := bvh.Nodes()

	if len(nodes) > 2*n-1 {
		t.Errorf("Expected at most %d nodes, got %d", 2*n-1, len(nodes))
	}

	// Every primitive index is covered by exactly one leaf
	covered := make([]int, n)
	for i := range nodes {
		node := &nodes[i]
		if node.IsLeaf() {
			if node.Count > DefaultMaxPrimitivesPerNode {
				t.Errorf("Leaf %d holds %d primitives", i, node.Count)
			}
			for p := node.Offset; p < node.Offset+node.Count; p++ {
				covered[p]++
			}
			continue
		}

		left, right := &nodes[i+1], &nodes[node.Offset]
		if node.Offset <= i+1 || node.Offset >= len(nodes) {
			t.Fatalf("Interior node %d has invalid right child %d", i, node.Offset)
		}
		if !node.Bounds.ApproxContainsAABB(left.Bounds, 1e-12) || !node.Bounds.ApproxContainsAABB(right.Bounds, 1e-12) {
			t.Errorf("Interior node %d does not bound its children", i)
		}
	}
	for p, count := range covered {
		if count != 1 {
			t.Errorf("Primitive slot %d covered %d times", p, count)
		}
	}

	stats := bvh.Stats()
	if stats.Nodes != len(nodes) || stats.Leaves+stats.Interiors != stats.Nodes {
		t.Errorf("Inconsistent stats %+v for %d nodes", stats, len(nodes))
	}
	if stats.Leaves != stats.Interiors+1 {
		t.Errorf("Expected a full binary tree, got %d leaves and %d interiors", stats.Leaves, stats.Interiors)
	}
	if stats.Primitives != n || stats.Skipped != 0 {
		t.Errorf("Expected %d primitives and none skipped, got %+v", n, stats)
	}
}

func TestBVH_LeafSizeOption(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	primitives := randomSpheres(random, 64)

	for _, maxPrims := range []int{1, 2, 8} {
		bvh := mustBuildBVH(t, primitives, BVHOptions{MaxPrimitivesPerNode: maxPrims})
		if got := bvh.Stats().MaxLeafSize; got > maxPrims {
			t.Errorf("max %d: largest leaf has %d primitives", maxPrims, got)
		}
	}
}

func TestBVH_MatchesPrimitiveList(t *testing.T) {
	random := rand.New(rand.NewSource(12))
	primitives := append(randomSpheres(random, 150), randomTriangles(random, 150)...)

	list := NewPrimitiveList(primitives)
	bvh := mustBuildBVH(t, primitives, DefaultBVHOptions())

	if !bvh.Bounds().RelativeEq(list.Bounds(), 1e-9) {
		t.Errorf("Expected BVH bounds %v to match list bounds %v", bvh.Bounds(), list.Bounds())
	}

	hits := 0
	for i := 0; i < 3000; i++ {
		origin := core.NewVec3(random.Float64()*30-15, random.Float64()*30-15, random.Float64()*30-15)
		direction := core.NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
		ray := core.NewRay(origin, direction)

		expected, expectedOk := list.Intersect(ray, 0.001, math.Inf(1))
		got, gotOk := bvh.Intersect(ray, 0.001, math.Inf(1))

		if expectedOk != gotOk {
			t.Fatalf("ray %d: list hit=%t, bvh hit=%t", i, expectedOk, gotOk)
		}
		if !expectedOk {
			continue
		}
		hits++
		if math.Abs(expected.T-got.T) > 1e-9 {
			t.Fatalf("ray %d: list t=%f, bvh t=%f", i, expected.T, got.T)
		}
	}

	if hits < 300 {
		t.Errorf("Expected a meaningful number of hits, got %d", hits)
	}
}

func TestBVH_SkipsPrimitivesWithoutBounds(t *testing.T) {
	unbounded := &unboundedPrimitive{}
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, nil)

	bvh := mustBuildBVH(t, []Primitive{unbounded, sphere}, DefaultBVHOptions())

	if bvh.Stats().Skipped != 1 {
		t.Errorf("Expected one skipped primitive, got %d", bvh.Stats().Skipped)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := bvh.Intersect(ray, 0.001, math.Inf(1))
	if !ok || math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected the sphere hit at t=0.5, got %v %v", hit, ok)
	}
	if unbounded.calls != 0 {
		t.Errorf("Primitive without bounds was intersected %d times", unbounded.calls)
	}
}

func TestBVH_CoincidentPrimitives(t *testing.T) {
	primitives := make([]Primitive, 12)
	for i := range primitives {
		primitives[i] = NewSphere(core.NewVec3(1, 1, 1), 0.5, nil)
	}

	bvh := mustBuildBVH(t, primitives, DefaultBVHOptions())

	nodes := bvh.Nodes()
	if len(nodes) != 1 || nodes[0].Count != len(primitives) {
		t.Errorf("Expected a single leaf holding every coincident primitive, got %+v", nodes)
	}
}

func TestBVH_UnsupportedSplitMethod(t *testing.T) {
	for _, method := range []SplitMethod{SplitSAH, SplitHLBVH, SplitEqualCounts} {
		_, err := NewBVH(nil, BVHOptions{SplitMethod: method})
		if !errors.Is(err, ErrUnsupportedSplitMethod) {
			t.Errorf("%v: expected ErrUnsupportedSplitMethod, got %v", method, err)
		}
	}
}

func TestParseSplitMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected SplitMethod
		wantErr  bool
	}{
		{"middle", SplitMiddle, false},
		{"SAH", SplitSAH, false},
		{"hlbvh", SplitHLBVH, false},
		{"equal-counts", SplitEqualCounts, false},
		{"octree", SplitMiddle, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			method, err := ParseSplitMethod(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%t, got %v", tt.wantErr, err)
			}
			if method != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, method)
			}
			if tt.wantErr && !errors.Is(err, ErrUnknownSplitMethod) {
				t.Errorf("Expected ErrUnknownSplitMethod, got %v", err)
			}
		})
	}
}

func TestPrimitiveList_ClosestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, nil)
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, nil)
	list := NewPrimitiveList([]Primitive{far, near})

	if list.Len() != 2 {
		t.Errorf("Expected 2 primitives, got %d", list.Len())
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := list.Intersect(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected closest hit at t=1.5, got %f", hit.T)
	}

	if _, ok := NewPrimitiveList(nil).Intersect(ray, 0.001, math.Inf(1)); ok {
		t.Error("Expected empty list to never report a hit")
	}
}
