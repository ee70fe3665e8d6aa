package graph

import (
	"log/slog"

	"github.com/iamjli/keggx/kgml"
)

// RelationComplex is the category assigned to derived intra-group edges.
const RelationComplex = "complex"

// relationCategories are the relation types the assembler recognises.
// Maplink and any future categories fall outside the set and are dropped.
var relationCategories = map[string]bool{
	kgml.RelationECrel: true,
	kgml.RelationPPrel: true,
	kgml.RelationGErel: true,
	kgml.RelationPCrel: true,
}

// pairKey identifies an unordered node pair.
type pairKey struct{ lo, hi int }

func pairOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// edgesFromReactions emits the reaction-derived edge set. For each
// substrate the edge runs substrate → reaction node when the step is
// irreversible and reaction node → substrate otherwise; products always
// receive reaction node → product. Every step classifies as activation.
func edgesFromReactions(doc *kgml.Document) []Edge {
	var edges []Edge
	for _, rx := range doc.Reactions {
		for _, sid := range rx.Substrates {
			if rx.Reversible() {
				edges = append(edges, classify(rx.ID, sid, OriginReaction, rx.Name, []string{"activation"}))
			} else {
				edges = append(edges, classify(sid, rx.ID, OriginReaction, rx.Name, []string{"activation"}))
			}
		}
		for _, pid := range rx.Products {
			edges = append(edges, classify(rx.ID, pid, OriginReaction, rx.Name, []string{"activation"}))
		}
	}
	return edges
}

// edgesFromRelations emits the relation-derived edge set. A relation whose
// descriptors include "compound" is split through the referenced compound
// node; otherwise the two endpoints connect directly.
func edgesFromRelations(doc *kgml.Document) []Edge {
	var edges []Edge
	for _, rel := range doc.Relations {
		if !relationCategories[rel.Type] {
			slog.Debug("keggx: dropping unrecognized relation category",
				"category", rel.Type, "entry1", rel.Entry1, "entry2", rel.Entry2)
			continue
		}

		descriptors := rel.Descriptors()
		if cid, ok := rel.CompoundID(); ok {
			edges = append(edges,
				classify(rel.Entry1, cid, OriginRelation, rel.Type, descriptors),
				classify(cid, rel.Entry2, OriginRelation, rel.Type, descriptors))
		} else {
			edges = append(edges, classify(rel.Entry1, rel.Entry2, OriginRelation, rel.Type, descriptors))
		}
	}
	return edges
}

// assembleEdges builds the raw edge set with reaction provenance taking
// priority: a relation edge whose unordered endpoint pair is already
// present is discarded, regardless of direction.
func assembleEdges(doc *kgml.Document) []Edge {
	edges := edgesFromReactions(doc)

	seen := make(map[pairKey]bool, len(edges))
	for _, e := range edges {
		seen[pairOf(e.Source, e.Target)] = true
	}

	for _, e := range edgesFromRelations(doc) {
		key := pairOf(e.Source, e.Target)
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, e)
	}

	return edges
}

// expandGroups rewrites every edge touching a group id into one edge per
// group member, then adds the fully-connected intra-member edge set. Each
// group is expanded exactly once; the two phases are idempotent and, for
// disjoint groups, order-independent.
func expandGroups(edges []Edge, groups []kgml.Entry) []Edge {
	for _, group := range groups {
		members := group.Components

		// Phase 1: replace group endpoints. Source and target sides are
		// handled in separate passes so an edge touching the group on
		// both ends expands to the full member cross product.
		for _, side := range []func(*Edge) *int{
			func(e *Edge) *int { return &e.Source },
			func(e *Edge) *int { return &e.Target },
		} {
			expanded := make([]Edge, 0, len(edges))
			for _, e := range edges {
				if *side(&e) != group.ID {
					expanded = append(expanded, e)
					continue
				}
				for _, m := range members {
					member := e
					*side(&member) = m
					expanded = append(expanded, member)
				}
			}
			edges = expanded
		}

		// Phase 2: complexed members bind pairwise, order-independent.
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				edges = append(edges, classify(members[i], members[j], OriginComplex,
					RelationComplex, []string{"protein complex"}))
			}
		}
	}

	return edges
}
