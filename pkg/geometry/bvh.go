package geometry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sajis997/path-tracer/log"
	"github.com/sajis997/path-tracer/pkg/core"
	"github.com/sajis997/path-tracer/pkg/material"
)

var logger = log.New("bvh")

var (
	ErrUnsupportedSplitMethod = errors.New("geometry: unsupported split method")
	ErrUnknownSplitMethod     = errors.New("geometry: unknown split method")
)

// SplitMethod selects how an interior node partitions its primitives
type SplitMethod int

const (
	// SplitMiddle sorts by centroid along the largest axis and splits at the median index
	SplitMiddle SplitMethod = iota
	SplitSAH
	SplitHLBVH
	SplitEqualCounts
)

var splitMethodNames = map[SplitMethod]string{
	SplitMiddle:      "middle",
	SplitSAH:         "sah",
	SplitHLBVH:       "hlbvh",
	SplitEqualCounts: "equal-counts",
}

func (m SplitMethod) String() string {
	if name, ok := splitMethodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("split(%d)", int(m))
}

// ParseSplitMethod maps a split method name to a SplitMethod
func ParseSplitMethod(name string) (SplitMethod, error) {
	name = strings.ToLower(name)
	for method, methodName := range splitMethodNames {
		if methodName == name {
			return method, nil
		}
	}
	return SplitMiddle, fmt.Errorf("%w: %q", ErrUnknownSplitMethod, name)
}

// DefaultMaxPrimitivesPerNode is the leaf size used when none is configured
const DefaultMaxPrimitivesPerNode = 4

// degenerateExtent is the centroid spread below which a range is not split further
const degenerateExtent = 1e-9

// BVHOptions configures BVH construction
type BVHOptions struct {
	MaxPrimitivesPerNode int
	SplitMethod          SplitMethod
}

// DefaultBVHOptions returns the middle-split configuration with four primitives per leaf
func DefaultBVHOptions() BVHOptions {
	return BVHOptions{
		MaxPrimitivesPerNode: DefaultMaxPrimitivesPerNode,
		SplitMethod:          SplitMiddle,
	}
}

// BVHNode is one entry of the flattened hierarchy.
//
// For a leaf, Offset is the first primitive and Count the number of primitives.
// For an interior node, Count is zero, Offset is the index of the right child and
// Axis the split dimension. The left child is always stored at the next index.
type BVHNode struct {
	Bounds core.AABB
	Offset int
	Count  int
	Axis   core.Axis
}

// IsLeaf reports whether the node references primitives directly
func (n *BVHNode) IsLeaf() bool {
	return n.Count > 0
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	Primitives  int
	Skipped     int
	Nodes       int
	Leaves      int
	Interiors   int
	MaxDepth    int
	MaxLeafSize int
	AvgLeafSize float64
	BuildTime   time.Duration
}

// BVH is a bounding volume hierarchy stored as a flat node array.
// It is immutable after NewBVH returns and safe for concurrent queries.
type BVH struct {
	nodes      []BVHNode
	primitives []Primitive // leaf order
	stats      BVHStats
}

type primitiveInfo struct {
	index    int
	bounds   core.AABB
	centroid core.Point
}

type bvhBuilder struct {
	info     []primitiveInfo
	nodes    []BVHNode
	maxPrims int
	stats    BVHStats
}

// NewBVH builds a hierarchy over primitives. Primitives with invalid bounds are
// skipped and never intersected. An empty input yields a BVH that never reports a hit.
func NewBVH(primitives []Primitive, opts BVHOptions) (*BVH, error) {
	if opts.SplitMethod != SplitMiddle {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedSplitMethod, opts.SplitMethod)
	}
	if opts.MaxPrimitivesPerNode <= 0 {
		opts.MaxPrimitivesPerNode = DefaultMaxPrimitivesPerNode
	}

	start := time.Now()

	info := make([]primitiveInfo, 0, len(primitives))
	skipped := 0
	for i, p := range primitives {
		bounds := p.Bounds()
		if !bounds.IsValid() {
			logger.Warningf("skipping primitive %d with invalid bounds (%v)", i, bounds)
			skipped++
			continue
		}
		info = append(info, primitiveInfo{index: i, bounds: bounds, centroid: p.Centroid()})
	}

	builder := &bvhBuilder{
		info:     info,
		nodes:    make([]BVHNode, 0, max(2*len(info)-1, 0)),
		maxPrims: opts.MaxPrimitivesPerNode,
	}
	if len(info) > 0 {
		builder.build(0, len(info), 0)
	}

	// The sort during build reordered info in place; leaves index this order
	ordered := make([]Primitive, len(info))
	for i, pi := range info {
		ordered[i] = primitives[pi.index]
	}

	stats := builder.stats
	stats.Primitives = len(info)
	stats.Skipped = skipped
	stats.Nodes = len(builder.nodes)
	if stats.Leaves > 0 {
		stats.AvgLeafSize = float64(len(info)) / float64(stats.Leaves)
	}
	stats.BuildTime = time.Since(start)

	logger.Debugf(
		"built BVH in %d ms: %d primitives (%d skipped), %d nodes (%d leaves, %d interior), max depth %d, leaf size max %d avg %.2f",
		stats.BuildTime.Milliseconds(), stats.Primitives, stats.Skipped, stats.Nodes,
		stats.Leaves, stats.Interiors, stats.MaxDepth, stats.MaxLeafSize, stats.AvgLeafSize,
	)

	return &BVH{nodes: builder.nodes, primitives: ordered, stats: stats}, nil
}

// build emits the subtree for info[start:end] and returns its node index.
// Nodes are allocated in depth-first, left-first order.
func (b *bvhBuilder) build(start, end, depth int) int {
	bounds := core.EmptyAABB()
	centroidBounds := core.EmptyAABB()
	for i := start; i < end; i++ {
		bounds.IncludeMut(b.info[i].bounds)
		centroidBounds.GrowMut(b.info[i].centroid)
	}

	nodeIndex := len(b.nodes)
	b.nodes = append(b.nodes, BVHNode{Bounds: bounds})
	b.stats.MaxDepth = max(b.stats.MaxDepth, depth)

	count := end - start
	if count <= b.maxPrims {
		return b.makeLeaf(nodeIndex, start, count)
	}

	axis := bounds.LargestAxis()
	if centroidBounds.Size()[axis] < degenerateExtent {
		// The largest box axis cannot separate the centroids; try the centroid spread itself
		axis = centroidBounds.LargestAxis()
		if centroidBounds.Size()[axis] < degenerateExtent {
			return b.makeLeaf(nodeIndex, start, count)
		}
	}

	slices.SortFunc(b.info[start:end], func(x, y primitiveInfo) int {
		return cmp.Compare(x.centroid[axis], y.centroid[axis])
	})
	mid := start + count/2

	b.build(start, mid, depth+1)
	right := b.build(mid, end, depth+1)

	b.nodes[nodeIndex].Offset = right
	b.nodes[nodeIndex].Axis = axis
	b.stats.Interiors++

	return nodeIndex
}

func (b *bvhBuilder) makeLeaf(nodeIndex, start, count int) int {
	b.nodes[nodeIndex].Offset = start
	b.nodes[nodeIndex].Count = count
	b.stats.Leaves++
	b.stats.MaxLeafSize = max(b.stats.MaxLeafSize, count)
	return nodeIndex
}

// Intersect returns the closest hit in [tMin, tMax], visiting the near child first
func (bvh *BVH) Intersect(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if len(bvh.nodes) == 0 {
		return nil, false
	}

	var closest *material.HitRecord
	closestSoFar := tMax

	var stackBuf [64]int
	stack := append(stackBuf[:0], 0)

	for len(stack) > 0 {
		nodeIndex := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &bvh.nodes[nodeIndex]
		if !node.Bounds.Hit(ray, tMin, closestSoFar) {
			continue
		}

		if node.IsLeaf() {
			for _, p := range bvh.primitives[node.Offset : node.Offset+node.Count] {
				if hit, ok := p.Intersect(ray, tMin, closestSoFar); ok {
					closest = hit
					closestSoFar = hit.T
				}
			}
			continue
		}

		// The child pushed last is visited first
		if ray.Direction[node.Axis] < 0 {
			stack = append(stack, nodeIndex+1, node.Offset)
		} else {
			stack = append(stack, node.Offset, nodeIndex+1)
		}
	}

	return closest, closest != nil
}

// Bounds returns the bounds of the root node, or the empty box for an empty hierarchy
func (bvh *BVH) Bounds() core.AABB {
	if len(bvh.nodes) == 0 {
		return core.EmptyAABB()
	}
	return bvh.nodes[0].Bounds
}

// Nodes returns the flattened node array. Callers must not modify it.
func (bvh *BVH) Nodes() []BVHNode {
	return bvh.nodes
}

// Primitives returns the primitives in leaf order. Callers must not modify it.
func (bvh *BVH) Primitives() []Primitive {
	return bvh.primitives
}

// Stats returns construction statistics
func (bvh *BVH) Stats() BVHStats {
	return bvh.stats
}
