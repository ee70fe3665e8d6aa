// Package export serializes a built pathway graph for external
// visualization tools. It consumes the node and edge tables verbatim and
// never reaches back into the build.
package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/iamjli/keggx/graph"
)

// Mode selects which slice of the graph a GraphML export carries.
type Mode string

const (
	// ModeFull keeps every node, including unconnected map and title
	// entries.
	ModeFull Mode = "full"
	// ModeBiomolecules keeps only nodes that participate in an edge.
	ModeBiomolecules Mode = "biomolecules"
	// ModeGenes keeps gene nodes only, merging in the inferred
	// compound-mediated edges.
	ModeGenes Mode = "genes"
)

const graphmlNS = "http://graphml.graphdrawing.org/xmlns"

type graphmlDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	XMLNS   string       `xml:"xmlns,attr"`
	Keys    []graphmlKey `xml:"key"`
	Graph   graphmlGraph `xml:"graph"`
}

type graphmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type graphmlGraph struct {
	ID          string         `xml:"id,attr"`
	EdgeDefault string         `xml:"edgedefault,attr"`
	Nodes       []graphmlNode  `xml:"node"`
	Edges       []graphmlEdge  `xml:"edge"`
}

type graphmlNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphmlData `xml:"data"`
}

type graphmlEdge struct {
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphmlData `xml:"data"`
}

type graphmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

var graphmlKeys = []graphmlKey{
	{"name", "node", "name", "string"},
	{"aliases", "node", "aliases", "string"},
	{"kind", "node", "kind", "string"},
	{"origin", "edge", "origin", "string"},
	{"relation_type", "edge", "relation_type", "string"},
	{"effect", "edge", "effect", "int"},
	{"indirect", "edge", "indirect", "boolean"},
	{"modification", "edge", "modification", "string"},
	{"support", "edge", "support", "int"},
}

// WriteGraphML writes the graph in GraphML form for Cytoscape-class
// tools. name becomes the graph id (typically the pathway name).
func WriteGraphML(g *graph.Graph, w io.Writer, name string, mode Mode) error {
	doc := graphmlDoc{
		XMLNS: graphmlNS,
		Keys:  graphmlKeys,
		Graph: graphmlGraph{ID: name, EdgeDefault: "directed"},
	}

	switch mode {
	case ModeFull, ModeBiomolecules, "":
		for _, e := range g.Edges {
			doc.Graph.Edges = append(doc.Graph.Edges, directEdge(e))
		}
		connected := make(map[int]bool)
		for _, e := range g.Edges {
			connected[e.Source] = true
			connected[e.Target] = true
		}
		for _, n := range g.Nodes {
			if mode == ModeBiomolecules && !connected[n.ID] {
				continue
			}
			doc.Graph.Nodes = append(doc.Graph.Nodes, nodeRow(n))
		}

	case ModeGenes:
		isGene := func(id int) bool {
			n, ok := g.Node(id)
			return ok && n.Kind == graph.KindGene
		}
		included := make(map[int]bool)
		for _, e := range g.Edges {
			if !isGene(e.Source) || !isGene(e.Target) {
				continue
			}
			doc.Graph.Edges = append(doc.Graph.Edges, directEdge(e))
			included[e.Source] = true
			included[e.Target] = true
		}
		for _, ie := range g.Inferred {
			if !isGene(ie.Source) || !isGene(ie.Target) {
				continue
			}
			doc.Graph.Edges = append(doc.Graph.Edges, graphmlEdge{
				Source: nodeID(ie.Source),
				Target: nodeID(ie.Target),
				Data: []graphmlData{
					{"origin", string(graph.OriginInferred)},
					{"relation_type", graph.RelationInferred},
					{"effect", strconv.Itoa(int(graph.EffectActivating))},
					{"support", strconv.Itoa(ie.Support)},
				},
			})
			included[ie.Source] = true
			included[ie.Target] = true
		}
		for _, n := range g.Nodes {
			if included[n.ID] {
				doc.Graph.Nodes = append(doc.Graph.Nodes, nodeRow(n))
			}
		}

	default:
		return fmt.Errorf("unknown GraphML export mode %q", mode)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing GraphML header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding GraphML: %w", err)
	}
	return enc.Close()
}

// WriteGraphMLFile writes GraphML output to a file path.
func WriteGraphMLFile(g *graph.Graph, path, name string, mode Mode) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating GraphML file: %w", err)
	}
	defer f.Close()
	return WriteGraphML(g, f, name, mode)
}

func nodeID(id int) string { return "n" + strconv.Itoa(id) }

func nodeRow(n graph.Node) graphmlNode {
	return graphmlNode{
		ID: nodeID(n.ID),
		Data: []graphmlData{
			{"name", n.Name},
			{"aliases", n.Aliases},
			{"kind", string(n.Kind)},
		},
	}
}

func directEdge(e graph.Edge) graphmlEdge {
	return graphmlEdge{
		Source: nodeID(e.Source),
		Target: nodeID(e.Target),
		Data: []graphmlData{
			{"origin", string(e.Origin)},
			{"relation_type", e.RelationType},
			{"effect", strconv.Itoa(int(e.Effect))},
			{"indirect", strconv.FormatBool(e.Indirect)},
			{"modification", e.Modification},
			{"support", "1"},
		},
	}
}
