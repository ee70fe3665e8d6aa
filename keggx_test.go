package keggx

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/iamjli/keggx/graph"
)

func parseFixture(t *testing.T, opts ...Option) *Pathway {
	t.Helper()
	p, err := ParseFile(filepath.Join("testdata", "hsa00010.xml"), opts...)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	return p
}

func TestParseFileMetadata(t *testing.T) {
	p := parseFixture(t)

	if p.Name != "path:hsa00010" || p.Org != "hsa" || p.Number != "00010" {
		t.Errorf("metadata = %q/%q/%q", p.Name, p.Org, p.Number)
	}
	if !strings.HasPrefix(p.Title, "Glycolysis") {
		t.Errorf("title = %q", p.Title)
	}
	if len(p.Graph.Nodes) != 8 {
		t.Errorf("node count = %d, want 8", len(p.Graph.Nodes))
	}
}

func TestParseFileResolvesCompounds(t *testing.T) {
	p := parseFixture(t)

	g6p, ok := p.Graph.Node(3)
	if !ok {
		t.Fatal("node 3 missing")
	}
	if g6p.Name != "alpha-D-Glucose 6-phosphate" {
		t.Errorf("node 3 name = %q, want alpha-D-Glucose 6-phosphate", g6p.Name)
	}
	pyr, _ := p.Graph.Node(6)
	if pyr.Name != "Pyruvate" {
		t.Errorf("node 6 name = %q, want Pyruvate", pyr.Name)
	}

	// Geometry is passthrough only.
	if g6p.Shape != "circle" || g6p.Width != 8 {
		t.Errorf("node 3 geometry = %+v", g6p)
	}
}

func TestParseFileWithoutTable(t *testing.T) {
	p := parseFixture(t, WithCompoundTable(nil))
	n, _ := p.Graph.Node(6)
	if n.Name != "C00022" {
		t.Errorf("node 6 name = %q, want raw C00022", n.Name)
	}
}

func TestParseFileEdges(t *testing.T) {
	p := parseFixture(t)

	// Reactions first, surviving relations next, group expansion last;
	// the maplink relation is dropped.
	if len(p.Graph.Edges) != 8 {
		t.Fatalf("edge count = %d, want 8: %+v", len(p.Graph.Edges), p.Graph.Edges)
	}

	first := p.Graph.Edges[0]
	if first.Source != 6 || first.Target != 1 || first.Origin != graph.OriginReaction {
		t.Errorf("first edge = %+v, want reaction edge 6->1", first)
	}

	var phospho *graph.Edge
	for i := range p.Graph.Edges {
		e := &p.Graph.Edges[i]
		if e.Source == 2 && e.Target == 4 {
			phospho = e
		}
	}
	if phospho == nil {
		t.Fatal("expanded edge 2->4 missing")
	}
	if phospho.Effect != graph.EffectInhibiting || phospho.Modification != "+p" {
		t.Errorf("edge 2->4 = %+v, want inhibiting +p", phospho)
	}
}

func TestParseFileInference(t *testing.T) {
	p := parseFixture(t)

	// Genes 1 and 2 chain through both compounds, once per direction.
	if len(p.Graph.Inferred) != 1 {
		t.Fatalf("inferred = %+v, want one consolidated edge", p.Graph.Inferred)
	}
	ie := p.Graph.Inferred[0]
	if ie.Support != 2 || !ie.Bidirected {
		t.Errorf("inferred edge = %+v, want support 2, bidirected", ie)
	}

	gene := func(id int) bool {
		n, ok := p.Graph.Node(id)
		return ok && n.Kind == graph.KindGene
	}
	rows := p.Graph.GeneEdges()
	if len(rows) != 7 {
		t.Fatalf("gene view rows = %d, want 7: %+v", len(rows), rows)
	}
	for _, e := range rows {
		if !gene(e.Source) || !gene(e.Target) {
			t.Errorf("gene view contains non-gene endpoint: %+v", e)
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	a := parseFixture(t)
	b := parseFixture(t)
	if !reflect.DeepEqual(a.Graph.Nodes, b.Graph.Nodes) ||
		!reflect.DeepEqual(a.Graph.Edges, b.Graph.Edges) ||
		!reflect.DeepEqual(a.Graph.Inferred, b.Graph.Inferred) {
		t.Error("two builds of the same document disagree")
	}
}

func TestParseErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "missing pathway attributes",
			doc:     `<pathway name="p" org="hsa"></pathway>`,
			wantErr: ErrMalformedDocument,
		},
		{
			name: "bad numeric attribute",
			doc: `<pathway name="p" org="hsa" number="00010">
				<entry id="one" name="hsa:1" type="gene"><graphics name="A" type="rectangle"/></entry>
			</pathway>`,
			wantErr: ErrAttributeType,
		},
		{
			name: "dangling relation endpoint",
			doc: `<pathway name="p" org="hsa" number="00010">
				<entry id="1" name="hsa:1" type="gene"><graphics name="A" type="rectangle"/></entry>
				<relation entry1="1" entry2="42" type="PPrel"><subtype name="activation" value="--&gt;"/></relation>
			</pathway>`,
			wantErr: ErrUnresolvedReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.doc)); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
