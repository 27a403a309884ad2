package betti_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cochainlab/cochain/betti"
	"github.com/cochainlab/cochain/simplex"
)

// pairs is shorthand for building raw input from "u v" tuples.
func pairs(uv ...[2]string) []simplex.Pair {
	ps := make([]simplex.Pair, len(uv))
	for i, p := range uv {
		ps[i] = simplex.Pair{U: p[0], V: p[1]}
	}

	return ps
}

// TestCompute_NilComplex verifies the single error path.
func TestCompute_NilComplex(t *testing.T) {
	if _, err := betti.Compute(nil); !errors.Is(err, betti.ErrNilComplex) {
		t.Errorf("nil complex: want ErrNilComplex, got %v", err)
	}
}

// TestCompute_Empty covers the empty complex: every invariant is zero.
func TestCompute_Empty(t *testing.T) {
	res, err := betti.Compute(simplex.Build(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (betti.Result{}); res != want {
		t.Errorf("Compute(empty) = %+v; want %+v", res, want)
	}
}

// TestCompute_IsolatedVertex checks a single vertex with no edges:
// one component, no cycles, χ = 1.
func TestCompute_IsolatedVertex(t *testing.T) {
	c := simplex.Build(nil, simplex.WithVertices("a"))
	res, err := betti.Compute(c)
	if err != nil {
		t.Fatal(err)
	}
	if want := (betti.Result{Beta0: 1, Beta1: 0, Chi: 1}); res != want {
		t.Errorf("Compute(isolated) = %+v; want %+v", res, want)
	}
}

// TestCompute_Path covers the tree case a-b-c-d: connected, acyclic.
func TestCompute_Path(t *testing.T) {
	c := simplex.Build(pairs([2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"}))
	res, err := betti.Compute(c)
	if err != nil {
		t.Fatal(err)
	}
	if want := (betti.Result{Beta0: 1, Beta1: 0, Chi: 1}); res != want {
		t.Errorf("Compute(path) = %+v; want %+v", res, want)
	}
}

// TestCompute_SingleCycle covers the triangle a-b-c-a: one independent cycle.
func TestCompute_SingleCycle(t *testing.T) {
	c := simplex.Build(pairs([2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"}))
	res, err := betti.Compute(c)
	if err != nil {
		t.Fatal(err)
	}
	if want := (betti.Result{Beta0: 1, Beta1: 1, Chi: 0}); res != want {
		t.Errorf("Compute(triangle) = %+v; want %+v", res, want)
	}
}

// TestCompute_TwoTriangles covers two disjoint triangles: two components,
// one independent cycle each, χ = 0.
func TestCompute_TwoTriangles(t *testing.T) {
	c := simplex.Build(pairs(
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"},
		[2]string{"d", "e"}, [2]string{"e", "f"}, [2]string{"f", "d"},
	))
	res, err := betti.Compute(c)
	if err != nil {
		t.Fatal(err)
	}
	if want := (betti.Result{Beta0: 2, Beta1: 2, Chi: 0}); res != want {
		t.Errorf("Compute(two triangles) = %+v; want %+v", res, want)
	}
}

// TestCompute_ForestWithIsolated mixes an edge component with seeded
// isolated vertices: three components, no cycles.
func TestCompute_ForestWithIsolated(t *testing.T) {
	c := simplex.Build(
		pairs([2]string{"a", "b"}),
		simplex.WithVertices("x", "y"),
	)
	res, err := betti.Compute(c)
	if err != nil {
		t.Fatal(err)
	}
	if want := (betti.Result{Beta0: 3, Beta1: 0, Chi: 3}); res != want {
		t.Errorf("Compute(forest+isolated) = %+v; want %+v", res, want)
	}
}

// TestCompute_EulerIdentity asserts χ == β₀ − β₁ across a spread of inputs,
// and that β₁ never goes negative for simple loop-free graphs.
func TestCompute_EulerIdentity(t *testing.T) {
	inputs := [][]simplex.Pair{
		nil,
		pairs([2]string{"a", "b"}),
		pairs([2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"}),
		pairs([2]string{"a", "b"}, [2]string{"c", "d"}, [2]string{"e", "f"}),
		pairs(
			[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"},
			[2]string{"a", "c"}, [2]string{"c", "d"}, [2]string{"d", "a"},
		),
	}
	for i, in := range inputs {
		res, err := betti.Compute(simplex.Build(in))
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}
		if res.Chi != res.Beta0-res.Beta1 {
			t.Errorf("case %d: χ = %d; want β₀−β₁ = %d", i, res.Chi, res.Beta0-res.Beta1)
		}
		if res.Beta1 < 0 {
			t.Errorf("case %d: β₁ = %d; must never be negative", i, res.Beta1)
		}
	}
}

// TestCompute_OnComponentHook verifies the hook fires once per component
// with the sorted-order root and the component size.
func TestCompute_OnComponentHook(t *testing.T) {
	c := simplex.Build(pairs(
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"},
		[2]string{"d", "e"}, [2]string{"e", "f"}, [2]string{"f", "d"},
	))

	var roots []string
	var sizes []int
	res, err := betti.Compute(c, betti.WithOnComponent(func(root string, size int) {
		roots = append(roots, root)
		sizes = append(sizes, size)
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.Beta0 != 2 {
		t.Fatalf("Beta0 = %d; want 2", res.Beta0)
	}
	if want := []string{"a", "d"}; !reflect.DeepEqual(roots, want) {
		t.Errorf("roots = %v; want %v", roots, want)
	}
	if want := []int{3, 3}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("sizes = %v; want %v", sizes, want)
	}
}

// TestCompute_Determinism runs the same permuted input twice and demands
// identical results.
func TestCompute_Determinism(t *testing.T) {
	a := simplex.Build(pairs([2]string{"a", "b"}, [2]string{"c", "a"}))
	b := simplex.Build(pairs([2]string{"c", "a"}, [2]string{"a", "b"}))

	resA, _ := betti.Compute(a)
	resB, _ := betti.Compute(b)
	if resA != resB {
		t.Errorf("permuted input: %+v != %+v", resA, resB)
	}
}

// TestCompute_ConcurrentSafety ensures independent concurrent computations
// on the same complex do not interfere.
func TestCompute_ConcurrentSafety(t *testing.T) {
	c := simplex.Build(pairs([2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"}))
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := betti.Compute(c); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
