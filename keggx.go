// Package keggx converts KEGG KGML pathway documents into a typed,
// immutable interaction graph: one node per entry, classified directed
// edges from reactions and relations, protein complexes expanded into
// their members, and compound-mediated gene edges inferred on top.
//
// A Pathway is built once per document in a single synchronous pass and is
// read-only afterwards, so it can be shared freely between concurrent
// consumers (rendering, export).
package keggx

import (
	"context"
	"fmt"
	"io"

	"github.com/iamjli/keggx/compound"
	"github.com/iamjli/keggx/graph"
	"github.com/iamjli/keggx/kegg"
	"github.com/iamjli/keggx/kgml"
)

// Pathway is one parsed pathway: document metadata plus the finished
// graph.
type Pathway struct {
	Name   string // e.g. "path:hsa04010"
	Org    string
	Number string
	Title  string
	Link   string

	Graph *graph.Graph
}

type options struct {
	table    *compound.Table
	tableSet bool
}

// Option configures a pathway build.
type Option func(*options)

// WithCompoundTable injects a compound reference table. Passing nil
// disables compound name resolution; the default is the packaged table.
func WithCompoundTable(t *compound.Table) Option {
	return func(o *options) {
		o.table = t
		o.tableSet = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.tableSet {
		o.table = compound.Default()
	}
	return o
}

// Parse reads a KGML document and builds its graph.
func Parse(r io.Reader, opts ...Option) (*Pathway, error) {
	doc, err := kgml.Parse(r)
	if err != nil {
		return nil, err
	}
	return build(doc, buildOptions(opts))
}

// ParseFile reads a KGML document from a file path and builds its graph.
func ParseFile(path string, opts ...Option) (*Pathway, error) {
	doc, err := kgml.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return build(doc, buildOptions(opts))
}

// Fetch retrieves a pathway by identifier (e.g. "hsa04010") through a KEGG
// REST client and builds its graph. A nil client uses the default public
// endpoint without a cache.
func Fetch(ctx context.Context, client *kegg.Client, pathwayID string, opts ...Option) (*Pathway, error) {
	if client == nil {
		client = kegg.NewClient()
	}
	body, err := client.Get(ctx, pathwayID)
	if err != nil {
		return nil, err
	}
	doc, err := kgml.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("pathway %q: %w", pathwayID, err)
	}
	return build(doc, buildOptions(opts))
}

func build(doc *kgml.Document, o options) (*Pathway, error) {
	g, err := graph.Build(doc, o.table)
	if err != nil {
		return nil, err
	}
	return &Pathway{
		Name:   doc.Name,
		Org:    doc.Org,
		Number: doc.Number,
		Title:  doc.Title,
		Link:   doc.Link,
		Graph:  g,
	}, nil
}
