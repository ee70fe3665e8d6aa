package kgml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Raw XML shapes. Attributes are decoded as strings and coerced explicitly
// so that a bad numeric field maps to ErrAttributeType with context instead
// of a bare strconv error.
type xmlPathway struct {
	XMLName   xml.Name      `xml:"pathway"`
	Name      string        `xml:"name,attr"`
	Org       string        `xml:"org,attr"`
	Number    string        `xml:"number,attr"`
	Title     string        `xml:"title,attr"`
	Link      string        `xml:"link,attr"`
	Entries   []xmlEntry    `xml:"entry"`
	Relations []xmlRelation `xml:"relation"`
	Reactions []xmlReaction `xml:"reaction"`
}

type xmlEntry struct {
	ID         string         `xml:"id,attr"`
	Name       string         `xml:"name,attr"`
	Type       string         `xml:"type,attr"`
	Link       string         `xml:"link,attr"`
	Graphics   []xmlGraphics  `xml:"graphics"`
	Components []xmlComponent `xml:"component"`
}

type xmlGraphics struct {
	Name    string `xml:"name,attr"`
	Shape   string `xml:"type,attr"`
	X       string `xml:"x,attr"`
	Y       string `xml:"y,attr"`
	Width   string `xml:"width,attr"`
	Height  string `xml:"height,attr"`
	FgColor string `xml:"fgcolor,attr"`
	BgColor string `xml:"bgcolor,attr"`
}

type xmlComponent struct {
	ID string `xml:"id,attr"`
}

type xmlRelation struct {
	Entry1   string       `xml:"entry1,attr"`
	Entry2   string       `xml:"entry2,attr"`
	Type     string       `xml:"type,attr"`
	Subtypes []xmlSubtype `xml:"subtype"`
}

type xmlSubtype struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type xmlReaction struct {
	ID         string         `xml:"id,attr"`
	Name       string         `xml:"name,attr"`
	Type       string         `xml:"type,attr"`
	Substrates []xmlReactant  `xml:"substrate"`
	Products   []xmlReactant  `xml:"product"`
}

type xmlReactant struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// Parse reads a KGML document. The read is pure: no side effects, and a
// document either parses completely or the first structural problem aborts
// it.
func Parse(r io.Reader) (*Document, error) {
	var raw xmlPathway
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding pathway XML: %v", ErrMalformedDocument, err)
	}

	required := []struct{ name, val string }{
		{"name", raw.Name},
		{"org", raw.Org},
		{"number", raw.Number},
	}
	for _, attr := range required {
		if attr.val == "" {
			return nil, fmt.Errorf("%w: pathway attribute %q missing", ErrMalformedDocument, attr.name)
		}
	}

	doc := &Document{
		Name:   raw.Name,
		Org:    raw.Org,
		Number: raw.Number,
		Title:  raw.Title,
		Link:   raw.Link,
	}

	for _, e := range raw.Entries {
		entry, err := coerceEntry(e)
		if err != nil {
			return nil, err
		}
		doc.Entries = append(doc.Entries, entry)
	}
	for _, rel := range raw.Relations {
		relation, err := coerceRelation(rel)
		if err != nil {
			return nil, err
		}
		doc.Relations = append(doc.Relations, relation)
	}
	for _, rx := range raw.Reactions {
		reaction, err := coerceReaction(rx)
		if err != nil {
			return nil, err
		}
		doc.Reactions = append(doc.Reactions, reaction)
	}

	return doc, nil
}

// ParseBytes parses a KGML document held in memory.
func ParseBytes(b []byte) (*Document, error) {
	return Parse(bytes.NewReader(b))
}

// ParseFile reads a KGML document from a file path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening KGML file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func coerceEntry(e xmlEntry) (Entry, error) {
	id, err := intAttr("entry id", e.ID)
	if err != nil {
		return Entry{}, err
	}
	if len(e.Graphics) == 0 {
		return Entry{}, fmt.Errorf("%w: entry %d has no graphics element", ErrMalformedDocument, id)
	}

	// Entries can carry several graphics elements (line segments); the
	// first carries the aliases and anchor geometry.
	g := e.Graphics[0]
	graphics := Graphics{
		Name:    g.Name,
		Shape:   g.Shape,
		FgColor: g.FgColor,
		BgColor: g.BgColor,
	}
	for _, f := range []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"x", g.X, &graphics.X},
		{"y", g.Y, &graphics.Y},
		{"width", g.Width, &graphics.Width},
		{"height", g.Height, &graphics.Height},
	} {
		v, err := floatAttr(fmt.Sprintf("entry %d graphics %s", id, f.name), f.raw)
		if err != nil {
			return Entry{}, err
		}
		*f.dst = v
	}

	entry := Entry{ID: id, Name: e.Name, Type: e.Type, Link: e.Link, Graphics: graphics}
	for _, c := range e.Components {
		cid, err := intAttr(fmt.Sprintf("entry %d component id", id), c.ID)
		if err != nil {
			return Entry{}, err
		}
		entry.Components = append(entry.Components, cid)
	}
	return entry, nil
}

func coerceRelation(r xmlRelation) (Relation, error) {
	e1, err := intAttr("relation entry1", r.Entry1)
	if err != nil {
		return Relation{}, err
	}
	e2, err := intAttr("relation entry2", r.Entry2)
	if err != nil {
		return Relation{}, err
	}
	rel := Relation{Entry1: e1, Entry2: e2, Type: r.Type}
	for _, s := range r.Subtypes {
		if s.Name == "compound" {
			if _, err := intAttr(fmt.Sprintf("relation %d-%d compound value", e1, e2), s.Value); err != nil {
				return Relation{}, err
			}
		}
		rel.Subtypes = append(rel.Subtypes, Subtype{Name: s.Name, Value: s.Value})
	}
	return rel, nil
}

func coerceReaction(r xmlReaction) (Reaction, error) {
	id, err := intAttr("reaction id", r.ID)
	if err != nil {
		return Reaction{}, err
	}
	reaction := Reaction{ID: id, Name: r.Name, Type: r.Type}
	for _, s := range r.Substrates {
		sid, err := intAttr(fmt.Sprintf("reaction %d substrate id", id), s.ID)
		if err != nil {
			return Reaction{}, err
		}
		reaction.Substrates = append(reaction.Substrates, sid)
	}
	for _, p := range r.Products {
		pid, err := intAttr(fmt.Sprintf("reaction %d product id", id), p.ID)
		if err != nil {
			return Reaction{}, err
		}
		reaction.Products = append(reaction.Products, pid)
	}
	return reaction, nil
}

func intAttr(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: required attribute %s missing", ErrMalformedDocument, field)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrAttributeType, field, raw)
	}
	return v, nil
}

func floatAttr(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil // geometry attributes are optional for some shapes
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not numeric", ErrAttributeType, field, raw)
	}
	return v, nil
}
