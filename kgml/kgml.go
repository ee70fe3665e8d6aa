// Package kgml parses KEGG Markup Language (KGML) pathway documents into
// fixed-field records. It performs no graph interpretation; that is the
// graph package's job.
package kgml

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrMalformedDocument is returned when required pathway or entry
	// structure is missing.
	ErrMalformedDocument = errors.New("kgml: malformed document")

	// ErrAttributeType is returned when a numeric attribute cannot be
	// coerced.
	ErrAttributeType = errors.New("kgml: invalid attribute type")
)

// Entry type values as they appear in KGML.
const (
	EntryGene     = "gene"
	EntryCompound = "compound"
	EntryGroup    = "group"
	EntryOrtholog = "ortholog"
	EntryEnzyme   = "enzyme"
	EntryReaction = "reaction"
	EntryMap      = "map"
	EntryBrite    = "brite"
)

// Relation type values recognised by the edge assembler. Any other
// category (maplink relations in particular) is ignored downstream.
const (
	RelationECrel = "ECrel" // enzyme-enzyme via common compound
	RelationPPrel = "PPrel" // protein-protein
	RelationGErel = "GErel" // gene expression
	RelationPCrel = "PCrel" // protein-compound
)

// Document is one parsed KGML pathway file.
type Document struct {
	Name   string // e.g. "path:hsa04010"
	Org    string // organism code, e.g. "hsa"
	Number string // pathway number, e.g. "04010"
	Title  string
	Link   string

	Entries   []Entry
	Reactions []Reaction
	Relations []Relation
}

// Groups returns the entries of type "group" in document order.
func (d *Document) Groups() []Entry {
	var groups []Entry
	for _, e := range d.Entries {
		if e.Type == EntryGroup {
			groups = append(groups, e)
		}
	}
	return groups
}

// Entry is one KGML entry element: a gene, compound, group, map link, or
// other pathway object.
type Entry struct {
	ID         int
	Name       string // KEGG identifier(s), e.g. "hsa:5923" or "cpd:C00022"
	Type       string
	Link       string
	Graphics   Graphics
	Components []int // member entry ids; only set for group entries
}

// Graphics carries the rendering attributes of an entry. The alias Name is
// the only field the graph core reads; the rest is passthrough for drawing
// collaborators and never affects topology.
type Graphics struct {
	Name    string // comma-separated display aliases
	Shape   string // rectangle, circle, roundrectangle, line
	X       float64
	Y       float64
	Width   float64
	Height  float64
	FgColor string
	BgColor string
}

// Reaction is one KGML reaction element. The reaction id refers to the
// entry carrying out the step; substrates and products are compound entry
// ids.
type Reaction struct {
	ID         int
	Name       string // e.g. "rn:R01786"
	Type       string // "reversible" or "irreversible"
	Substrates []int
	Products   []int
}

// Reversible reports whether substrate edges point toward the substrate
// rather than away from it.
func (r Reaction) Reversible() bool { return r.Type != "irreversible" }

// Relation is one KGML relation element between two entries.
type Relation struct {
	Entry1   int
	Entry2   int
	Type     string
	Subtypes []Subtype
}

// Subtype is one interaction descriptor on a relation. Value is a free-form
// arrow glyph except for "compound" subtypes, where it is the entry id of
// the mediating compound.
type Subtype struct {
	Name  string
	Value string
}

// Descriptors returns the subtype names in document order.
func (r Relation) Descriptors() []string {
	names := make([]string, len(r.Subtypes))
	for i, s := range r.Subtypes {
		names[i] = s.Name
	}
	return names
}

// CompoundID returns the entry id carried by a "compound" subtype, if the
// relation has one.
func (r Relation) CompoundID() (int, bool) {
	for _, s := range r.Subtypes {
		if s.Name == "compound" {
			id, err := strconv.Atoi(strings.TrimSpace(s.Value))
			if err != nil {
				return 0, false
			}
			return id, true
		}
	}
	return 0, false
}
