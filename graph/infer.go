package graph

// InferredEdge is a synthetic gene-to-gene link mediated by a compound
// node. Orientation and evidence are separate fields: Support counts the
// distinct compound-mediated paths backing the link, and Bidirected
// records whether paths were observed in both orientations.
type InferredEdge struct {
	Source     int
	Target     int
	Support    int
	Bidirected bool
}

// directedEdges canonicalizes bidirectional edges for traversal: every
// edge whose effect is bidirected (unknown or complex-bound) gains a
// reverse twin, so downstream consumers see only one-way edges.
// Unambiguously one-way edges are not duplicated.
func directedEdges(edges []Edge) []Edge {
	out := make([]Edge, 0, len(edges))
	out = append(out, edges...)
	for _, e := range edges {
		if e.Effect.Bidirected() {
			rev := e
			rev.Source, rev.Target = e.Target, e.Source
			out = append(out, rev)
		}
	}
	return out
}

// pathKey identifies one compound-mediated path realisation.
type pathKey struct{ compound, source, target int }

// inferEdges derives gene↔gene edges chained through compound nodes.
// For each compound, every node with an oriented edge into it is paired
// with every node with an oriented edge out of it. genesOnly restricts
// both sides to gene-kind nodes. Self-loops are kept: a node that both
// produces and consumes a compound is a real cycle.
func inferEdges(nodes []Node, byID map[int]*Node, edges []Edge, genesOnly bool) []InferredEdge {
	oriented := make([]Edge, 0, len(edges))
	for _, e := range directedEdges(edges) {
		if e.Effect.Oriented() {
			oriented = append(oriented, e)
		}
	}

	// Adjacency around each node, in emission order.
	into := make(map[int][]int)
	outOf := make(map[int][]int)
	for _, e := range oriented {
		into[e.Target] = append(into[e.Target], e.Source)
		outOf[e.Source] = append(outOf[e.Source], e.Target)
	}

	eligible := func(id int) bool {
		n, ok := byID[id]
		if !ok {
			return false
		}
		return !genesOnly || n.Kind == KindGene
	}

	seenPath := make(map[pathKey]bool)
	support := make(map[pairKey]int)
	loToHi := make(map[pairKey]bool) // orientations observed per pair
	hiToLo := make(map[pairKey]bool)
	var order []InferredEdge

	for _, n := range nodes {
		if n.Kind != KindCompound {
			continue
		}
		for _, upstream := range into[n.ID] {
			if !eligible(upstream) {
				continue
			}
			for _, downstream := range outOf[n.ID] {
				if !eligible(downstream) {
					continue
				}
				path := pathKey{n.ID, upstream, downstream}
				if seenPath[path] {
					continue
				}
				seenPath[path] = true

				key := pairOf(upstream, downstream)
				if support[key] == 0 {
					order = append(order, InferredEdge{Source: upstream, Target: downstream})
				}
				support[key]++
				if upstream <= downstream {
					loToHi[key] = true
				} else {
					hiToLo[key] = true
				}
			}
		}
	}

	for i := range order {
		key := pairOf(order[i].Source, order[i].Target)
		order[i].Support = support[key]
		order[i].Bidirected = loToHi[key] && hiToLo[key]
	}

	return order
}
