package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/iamjli/keggx/graph"
)

// Sheet names in the exported workbook.
const (
	sheetNodes    = "Nodes"
	sheetEdges    = "Edges"
	sheetInferred = "Inferred"
)

// WriteXLSX writes the node, edge, and inferred-edge tables as a
// three-sheet workbook. Rows follow the graph's deterministic build order.
func WriteXLSX(g *graph.Graph, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeNodeSheet(f, g); err != nil {
		return err
	}
	if err := writeEdgeSheet(f, g); err != nil {
		return err
	}
	if err := writeInferredSheet(f, g); err != nil {
		return err
	}

	// Drop excelize's default sheet so the workbook opens on Nodes.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeNodeSheet(f *excelize.File, g *graph.Graph) error {
	if _, err := f.NewSheet(sheetNodes); err != nil {
		return fmt.Errorf("creating %s sheet: %w", sheetNodes, err)
	}
	header := []interface{}{"id", "kind", "name", "aliases", "x", "y", "width", "height", "shape", "fgcolor", "bgcolor"}
	if err := f.SetSheetRow(sheetNodes, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sheetNodes, err)
	}
	for i, n := range g.Nodes {
		row := []interface{}{n.ID, string(n.Kind), n.Name, n.Aliases, n.X, n.Y, n.Width, n.Height, n.Shape, n.FgColor, n.BgColor}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetNodes, cell, &row); err != nil {
			return fmt.Errorf("writing node row %d: %w", i, err)
		}
	}
	return nil
}

func writeEdgeSheet(f *excelize.File, g *graph.Graph) error {
	if _, err := f.NewSheet(sheetEdges); err != nil {
		return fmt.Errorf("creating %s sheet: %w", sheetEdges, err)
	}
	header := []interface{}{"source", "target", "origin", "relation_type", "effect", "indirect", "modification"}
	if err := f.SetSheetRow(sheetEdges, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sheetEdges, err)
	}
	for i, e := range g.Edges {
		row := []interface{}{e.Source, e.Target, string(e.Origin), e.RelationType, int(e.Effect), e.Indirect, e.Modification}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetEdges, cell, &row); err != nil {
			return fmt.Errorf("writing edge row %d: %w", i, err)
		}
	}
	return nil
}

func writeInferredSheet(f *excelize.File, g *graph.Graph) error {
	if _, err := f.NewSheet(sheetInferred); err != nil {
		return fmt.Errorf("creating %s sheet: %w", sheetInferred, err)
	}
	header := []interface{}{"source", "target", "support", "bidirected"}
	if err := f.SetSheetRow(sheetInferred, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sheetInferred, err)
	}
	for i, ie := range g.Inferred {
		row := []interface{}{ie.Source, ie.Target, ie.Support, ie.Bidirected}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetInferred, cell, &row); err != nil {
			return fmt.Errorf("writing inferred row %d: %w", i, err)
		}
	}
	return nil
}
