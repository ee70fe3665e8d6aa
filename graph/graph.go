// Package graph builds the typed interaction graph from a parsed KGML
// document: node resolution, edge classification and assembly, group
// expansion, and compound-mediated gene edge inference. A Graph is built
// in one synchronous pass and never mutated afterwards, so it is safe to
// share across concurrent readers.
package graph

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/iamjli/keggx/compound"
	"github.com/iamjli/keggx/kgml"
)

// ErrUnresolvedReference is returned when an edge endpoint or group
// component references an entry id absent from the node table.
var ErrUnresolvedReference = errors.New("graph: unresolved node reference")

// RelationInferred is the category assigned to compound-mediated inferred
// edges.
const RelationInferred = "inferred_rxn"

// Graph is the finished node/edge model of one pathway document. Nodes
// keep document order; edge order is the deterministic emission order of
// the build, so two builds of the same document are identical.
type Graph struct {
	Nodes    []Node
	Edges    []Edge // expanded: no group endpoints remain
	Inferred []InferredEdge

	byID map[int]*Node
}

// Build constructs the graph for a document. tbl may be nil, in which case
// compound labels are kept as-is. Any dangling reference is fatal:
// downstream consumers require referential integrity, so there is no
// partial-graph mode.
func Build(doc *kgml.Document, tbl *compound.Table) (*Graph, error) {
	g := &Graph{
		// Full capacity up front: byID holds pointers into the slice.
		Nodes: make([]Node, 0, len(doc.Entries)),
		byID:  make(map[int]*Node, len(doc.Entries)),
	}

	for _, e := range doc.Entries {
		if _, dup := g.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate entry id %d", kgml.ErrMalformedDocument, e.ID)
		}
		g.Nodes = append(g.Nodes, resolveNode(e, tbl))
		g.byID[e.ID] = &g.Nodes[len(g.Nodes)-1]
	}

	groups := doc.Groups()
	for _, group := range groups {
		for _, m := range group.Components {
			member, ok := g.byID[m]
			if !ok {
				return nil, fmt.Errorf("%w: group %d component %d not in node table",
					ErrUnresolvedReference, group.ID, m)
			}
			// Nested groups are undefined in KGML; refuse rather than
			// guess an expansion order.
			if member.Kind == KindGroup {
				return nil, fmt.Errorf("%w: group %d contains group %d",
					ErrUnresolvedReference, group.ID, m)
			}
		}
	}

	raw := assembleEdges(doc)
	if err := g.checkEndpoints(raw, true); err != nil {
		return nil, err
	}

	g.Edges = expandGroups(raw, groups)
	if err := g.checkEndpoints(g.Edges, false); err != nil {
		return nil, err
	}

	g.Inferred = inferEdges(g.Nodes, g.byID, g.Edges, false)

	slog.Debug("keggx: graph built",
		"pathway", doc.Name,
		"nodes", len(g.Nodes),
		"edges", len(g.Edges),
		"inferred", len(g.Inferred))

	return g, nil
}

// checkEndpoints enforces referential integrity. Group endpoints are only
// legal before expansion.
func (g *Graph) checkEndpoints(edges []Edge, groupsAllowed bool) error {
	for _, e := range edges {
		for _, id := range []int{e.Source, e.Target} {
			n, ok := g.byID[id]
			if !ok {
				return fmt.Errorf("%w: edge %d->%d references missing node %d",
					ErrUnresolvedReference, e.Source, e.Target, id)
			}
			if !groupsAllowed && n.Kind == KindGroup {
				return fmt.Errorf("%w: edge %d->%d still touches group %d after expansion",
					ErrUnresolvedReference, e.Source, e.Target, id)
			}
		}
	}
	return nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// NodesOfKind returns nodes of one kind in document order.
func (g *Graph) NodesOfKind(kinds ...Kind) []Node {
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var out []Node
	for _, n := range g.Nodes {
		if want[n.Kind] {
			out = append(out, n)
		}
	}
	return out
}

// DirectedEdges returns the edge table with every bidirected edge split
// into two one-way edges.
func (g *Graph) DirectedEdges() []Edge {
	return directedEdges(g.Edges)
}

// GeneEdge is one row of the genes-only directed edge table. Support is 1
// for edges taken directly from the document and the supporting path count
// for inferred edges.
type GeneEdge struct {
	Source       int
	Target       int
	Origin       Origin
	RelationType string
	Effect       Effect
	Indirect     bool
	Modification string
	Support      int
}

// GeneEdges returns the genes-only directed view: oriented direct edges
// between gene nodes plus the inferred compound-mediated edges, with
// bidirected inferred links emitted in both orientations. Self-loops are
// kept; consumers that dislike them filter.
func (g *Graph) GeneEdges() []GeneEdge {
	isGene := func(id int) bool {
		n, ok := g.byID[id]
		return ok && n.Kind == KindGene
	}

	var out []GeneEdge
	for _, e := range g.DirectedEdges() {
		if !isGene(e.Source) || !isGene(e.Target) {
			continue
		}
		out = append(out, GeneEdge{
			Source:       e.Source,
			Target:       e.Target,
			Origin:       e.Origin,
			RelationType: e.RelationType,
			Effect:       e.Effect,
			Indirect:     e.Indirect,
			Modification: e.Modification,
			Support:      1,
		})
	}

	for _, ie := range g.Inferred {
		if !isGene(ie.Source) || !isGene(ie.Target) {
			continue
		}
		out = append(out, GeneEdge{
			Source:       ie.Source,
			Target:       ie.Target,
			Origin:       OriginInferred,
			RelationType: RelationInferred,
			Effect:       EffectActivating,
			Support:      ie.Support,
		})
		if ie.Bidirected {
			out = append(out, GeneEdge{
				Source:       ie.Target,
				Target:       ie.Source,
				Origin:       OriginInferred,
				RelationType: RelationInferred,
				Effect:       EffectActivating,
				Support:      ie.Support,
			})
		}
	}

	return out
}

// InferredGeneEdges re-runs inference restricted to gene endpoints on both
// sides of every compound. The restriction is consumer-selectable; the
// stored Inferred table is the unrestricted run.
func (g *Graph) InferredGeneEdges() []InferredEdge {
	return inferEdges(g.Nodes, g.byID, g.Edges, true)
}
