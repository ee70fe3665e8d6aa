package graph

import (
	"strings"

	"github.com/iamjli/keggx/compound"
	"github.com/iamjli/keggx/kgml"
)

// Kind classifies a node. Values mirror the KGML entry vocabulary, with
// unknown entry types collapsing to KindOther.
type Kind string

const (
	KindGene     Kind = "gene"
	KindCompound Kind = "compound"
	KindGroup    Kind = "group"
	KindOrtholog Kind = "ortholog"
	KindEnzyme   Kind = "enzyme"
	KindReaction Kind = "reaction"
	KindMap      Kind = "map"
	KindBrite    Kind = "brite"
	KindOther    Kind = "other"
)

var entryKinds = map[string]Kind{
	kgml.EntryGene:     KindGene,
	kgml.EntryCompound: KindCompound,
	kgml.EntryGroup:    KindGroup,
	kgml.EntryOrtholog: KindOrtholog,
	kgml.EntryEnzyme:   KindEnzyme,
	kgml.EntryReaction: KindReaction,
	kgml.EntryMap:      KindMap,
	kgml.EntryBrite:    KindBrite,
}

// Node is one canonical pathway object. Geometry fields are passthrough
// for rendering collaborators and never affect topology.
type Node struct {
	ID      int
	Kind    Kind
	Name    string // resolved display name; may be empty
	Aliases string // full alias list as provided by the source

	Components []int // member node ids; only set for group nodes

	X, Y          float64
	Width, Height float64
	Shape         string
	FgColor       string
	BgColor       string
}

// resolveNode converts a raw entry into a Node. Display name rule: first
// ", "-delimited alias, trailing period stripped. Compound nodes whose raw
// label matches the reference table get name and aliases overwritten with
// the table's values; group nodes keep no chemical name of their own.
func resolveNode(e kgml.Entry, tbl *compound.Table) Node {
	kind, ok := entryKinds[e.Type]
	if !ok {
		kind = KindOther
	}

	aliases := e.Graphics.Name
	name := displayName(aliases)

	if kind == KindCompound {
		if entry, ok := tbl.Lookup(name); ok {
			name = entry.Name
			aliases = entry.Aliases
		}
	}

	return Node{
		ID:         e.ID,
		Kind:       kind,
		Name:       name,
		Aliases:    aliases,
		Components: e.Components,
		X:          e.Graphics.X,
		Y:          e.Graphics.Y,
		Width:      e.Graphics.Width,
		Height:     e.Graphics.Height,
		Shape:      e.Graphics.Shape,
		FgColor:    e.Graphics.FgColor,
		BgColor:    e.Graphics.BgColor,
	}
}

func displayName(aliases string) string {
	first, _, _ := strings.Cut(aliases, ", ")
	return strings.TrimRight(first, ".")
}
