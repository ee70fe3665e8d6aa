package graph

import "testing"

// testNodes builds a node table plus id index for inference tests.
func testNodes(t *testing.T, nodes []Node) ([]Node, map[int]*Node) {
	t.Helper()
	byID := make(map[int]*Node, len(nodes))
	for i := range nodes {
		byID[nodes[i].ID] = &nodes[i]
	}
	return nodes, byID
}

func TestDirectedEdges(t *testing.T) {
	edges := []Edge{
		{Source: 1, Target: 2, Effect: EffectActivating},
		{Source: 3, Target: 4, Effect: EffectInhibiting},
		{Source: 5, Target: 6, Effect: EffectBidirectional},
		{Source: 7, Target: 8, Effect: EffectUnknown},
	}

	got := directedEdges(edges)

	// One-way edges are not duplicated; bidirected and unknown edges gain
	// a reverse twin appended after the originals.
	if len(got) != 6 {
		t.Fatalf("got %d edges, want 6: %+v", len(got), got)
	}
	for i := range edges {
		if got[i] != edges[i] {
			t.Errorf("original edge[%d] changed: %+v", i, got[i])
		}
	}
	if got[4].Source != 6 || got[4].Target != 5 || got[4].Effect != EffectBidirectional {
		t.Errorf("reverse twin = %+v, want 6->5 bidirectional", got[4])
	}
	if got[5].Source != 8 || got[5].Target != 7 {
		t.Errorf("reverse twin = %+v, want 8->7", got[5])
	}
}

func TestInferSymmetry(t *testing.T) {
	// A -> C (compound) -> B must yield an inferred A -> B.
	nodes, byID := testNodes(t, []Node{
		{ID: 1, Kind: KindGene},
		{ID: 2, Kind: KindGene},
		{ID: 10, Kind: KindCompound},
	})
	edges := []Edge{
		{Source: 1, Target: 10, Effect: EffectActivating},
		{Source: 10, Target: 2, Effect: EffectActivating},
	}

	got := inferEdges(nodes, byID, edges, false)
	if len(got) != 1 {
		t.Fatalf("got %d inferred edges, want 1: %+v", len(got), got)
	}
	ie := got[0]
	if ie.Source != 1 || ie.Target != 2 {
		t.Errorf("inferred edge = %d->%d, want 1->2", ie.Source, ie.Target)
	}
	if ie.Support < 1 {
		t.Errorf("support = %d, want >= 1", ie.Support)
	}
	if ie.Bidirected {
		t.Error("single-direction path reported bidirected")
	}
}

func TestInferSupportCountsIndependentPaths(t *testing.T) {
	// Two distinct compounds both chain 1 -> 2.
	nodes, byID := testNodes(t, []Node{
		{ID: 1, Kind: KindGene},
		{ID: 2, Kind: KindGene},
		{ID: 10, Kind: KindCompound},
		{ID: 11, Kind: KindCompound},
	})
	edges := []Edge{
		{Source: 1, Target: 10, Effect: EffectActivating},
		{Source: 10, Target: 2, Effect: EffectActivating},
		{Source: 1, Target: 11, Effect: EffectActivating},
		{Source: 11, Target: 2, Effect: EffectActivating},
	}

	got := inferEdges(nodes, byID, edges, false)
	if len(got) != 1 {
		t.Fatalf("got %d inferred edges, want 1: %+v", len(got), got)
	}
	if got[0].Support != 2 {
		t.Errorf("support = %d, want 2", got[0].Support)
	}
}

func TestInferBidirectedConsolidation(t *testing.T) {
	// Compound 10 chains 1 -> 2; compound 11 chains 2 -> 1. The pair
	// collapses to one edge carrying both orientations.
	nodes, byID := testNodes(t, []Node{
		{ID: 1, Kind: KindGene},
		{ID: 2, Kind: KindGene},
		{ID: 10, Kind: KindCompound},
		{ID: 11, Kind: KindCompound},
	})
	edges := []Edge{
		{Source: 1, Target: 10, Effect: EffectActivating},
		{Source: 10, Target: 2, Effect: EffectActivating},
		{Source: 2, Target: 11, Effect: EffectActivating},
		{Source: 11, Target: 1, Effect: EffectActivating},
	}

	got := inferEdges(nodes, byID, edges, false)
	if len(got) != 1 {
		t.Fatalf("got %d inferred edges, want 1: %+v", len(got), got)
	}
	ie := got[0]
	if ie.Support != 2 {
		t.Errorf("support = %d, want 2", ie.Support)
	}
	if !ie.Bidirected {
		t.Error("pair observed in both orientations not reported bidirected")
	}
	// Canonical direction is the first-seen path.
	if ie.Source != 1 || ie.Target != 2 {
		t.Errorf("canonical direction = %d->%d, want 1->2", ie.Source, ie.Target)
	}
}

func TestInferSelfLoopKept(t *testing.T) {
	// A gene that both produces and consumes a compound is a real cycle.
	nodes, byID := testNodes(t, []Node{
		{ID: 1, Kind: KindGene},
		{ID: 10, Kind: KindCompound},
	})
	edges := []Edge{
		{Source: 1, Target: 10, Effect: EffectActivating},
		{Source: 10, Target: 1, Effect: EffectActivating},
	}

	got := inferEdges(nodes, byID, edges, false)
	if len(got) != 1 {
		t.Fatalf("got %d inferred edges, want 1: %+v", len(got), got)
	}
	if got[0].Source != 1 || got[0].Target != 1 {
		t.Errorf("self-loop = %d->%d, want 1->1", got[0].Source, got[0].Target)
	}
	if got[0].Bidirected {
		t.Error("self-loop reported bidirected")
	}
}

func TestInferSkipsUnorientedEdges(t *testing.T) {
	nodes, byID := testNodes(t, []Node{
		{ID: 1, Kind: KindGene},
		{ID: 2, Kind: KindGene},
		{ID: 10, Kind: KindCompound},
	})
	edges := []Edge{
		// Unknown orientation contributes nothing even after the reverse
		// twin is added: both copies stay effect-unknown.
		{Source: 1, Target: 10, Effect: EffectUnknown},
		{Source: 10, Target: 2, Effect: EffectActivating},
	}

	if got := inferEdges(nodes, byID, edges, false); len(got) != 0 {
		t.Fatalf("got %d inferred edges, want 0: %+v", len(got), got)
	}
}

func TestInferEmptyCrossProduct(t *testing.T) {
	// A compound with downstream edges but no upstream contributes
	// nothing.
	nodes, byID := testNodes(t, []Node{
		{ID: 1, Kind: KindGene},
		{ID: 10, Kind: KindCompound},
	})
	edges := []Edge{{Source: 10, Target: 1, Effect: EffectActivating}}

	if got := inferEdges(nodes, byID, edges, false); len(got) != 0 {
		t.Fatalf("got %d inferred edges, want 0: %+v", len(got), got)
	}
}

func TestInferBidirectionalEdgesTraverseBothWays(t *testing.T) {
	// 1 <-> compound (complex binding) and compound -> 2: the
	// canonicalized reverse of the bidirectional edge makes 1 upstream.
	nodes, byID := testNodes(t, []Node{
		{ID: 1, Kind: KindGene},
		{ID: 2, Kind: KindGene},
		{ID: 10, Kind: KindCompound},
	})
	edges := []Edge{
		{Source: 10, Target: 1, Effect: EffectBidirectional},
		{Source: 10, Target: 2, Effect: EffectActivating},
	}

	got := inferEdges(nodes, byID, edges, false)
	// Node 1 sits both upstream (via the canonicalized reverse) and
	// downstream of the compound, so the cross product yields a self-loop
	// alongside the 1->2 link.
	if len(got) != 2 {
		t.Fatalf("got %d inferred edges, want 2: %+v", len(got), got)
	}
	if got[0].Source != 1 || got[0].Target != 1 {
		t.Errorf("inferred edge = %d->%d, want self-loop 1->1", got[0].Source, got[0].Target)
	}
	if got[1].Source != 1 || got[1].Target != 2 {
		t.Errorf("inferred edge = %d->%d, want 1->2", got[1].Source, got[1].Target)
	}
}

func TestInferGenesOnlyRestriction(t *testing.T) {
	// An ortholog feeds the compound and a gene drains it. Unrestricted
	// inference keeps the pair; genes-only drops it.
	nodes, byID := testNodes(t, []Node{
		{ID: 1, Kind: KindOrtholog},
		{ID: 2, Kind: KindGene},
		{ID: 10, Kind: KindCompound},
	})
	edges := []Edge{
		{Source: 1, Target: 10, Effect: EffectActivating},
		{Source: 10, Target: 2, Effect: EffectActivating},
	}

	if got := inferEdges(nodes, byID, edges, false); len(got) != 1 {
		t.Fatalf("unrestricted: got %d inferred edges, want 1", len(got))
	}
	if got := inferEdges(nodes, byID, edges, true); len(got) != 0 {
		t.Fatalf("genes-only: got %d inferred edges, want 0: %+v", len(got), got)
	}
}
