package clipexport

import (
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/uprootiny/umbra-sub002/minkowski"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// ErrInvalidDocument indicates a textual document failed to decode, or
// decoded to a shape import_pointset cannot accept. The core never
// partially imports: any failure leaves the caller's PointSet untouched.
var ErrInvalidDocument = errors.New("clipexport: invalid document")

// PointDoc is one point's textual record within a Document.
type PointDoc struct {
	Coords []float64 `yaml:"coords"`
	Depth  int       `yaml:"depth"`
	Parent int       `yaml:"parent"`
	Flags  uint32    `yaml:"flags"`
	Motif  int       `yaml:"motif"`
	Name   string    `yaml:"name,omitempty"`
	Tags   []string  `yaml:"tags,omitempty"`
	Content string   `yaml:"content,omitempty"`
}

// Document is the textual, round-trippable export of a PointSet, per
// spec.md §5's `{dim, count, points:[...]}` shape.
type Document struct {
	Dim    int        `yaml:"dim"`
	Count  int        `yaml:"count"`
	Points []PointDoc `yaml:"points"`
}

// ExportPointSet snapshots every live point of ps (including HIDDEN
// ones — HIDDEN is a flag, not a deletion) into a Document.
func ExportPointSet(ps *pointset.PointSet) Document {
	n := ps.Count()
	doc := Document{Dim: ps.Dim, Count: n, Points: make([]PointDoc, n)}
	for i := 0; i < n; i++ {
		meta := ps.Meta(i)
		doc.Points[i] = PointDoc{
			Coords:  append([]float64(nil), ps.Point(i)...),
			Depth:   ps.Depth[i],
			Parent:  ps.Parent[i],
			Flags:   uint32(ps.Flags[i]),
			Motif:   ps.Motif[i],
			Name:    meta.Name,
			Tags:    meta.Tags,
			Content: meta.Content,
		}
	}
	return doc
}

// ImportPointSet rebuilds a fresh PointSet from doc, validating every
// coordinate lies on (or normalizes onto) the hyperboloid and every
// parent reference resolves to an earlier point in the document (so a
// single forward pass suffices). On any failure it returns
// ErrInvalidDocument and no partial PointSet.
func ImportPointSet(doc Document) (*pointset.PointSet, error) {
	if doc.Dim < 2 || doc.Count < 0 || len(doc.Points) != doc.Count {
		return nil, ErrInvalidDocument
	}
	for i, p := range doc.Points {
		if len(p.Coords) != doc.Dim+1 {
			return nil, ErrInvalidDocument
		}
		if p.Parent >= i {
			return nil, ErrInvalidDocument
		}
	}

	ps := pointset.New(doc.Dim, doc.Count)
	for _, p := range doc.Points {
		coords := append([]float64(nil), p.Coords...)
		if err := minkowski.ProjectToHyperboloid(coords); err != nil {
			minkowski.NormalizeHyperboloid(coords)
		}
		idx, err := ps.AddPoint(pointset.AddOptions{
			Coords:    coords,
			ParentIdx: p.Parent,
			Name:      p.Name,
			Tags:      p.Tags,
			Content:   p.Content,
		})
		if err != nil {
			return nil, ErrInvalidDocument
		}
		ps.Flags[idx] = pointset.Flag(p.Flags)
		ps.Motif[idx] = p.Motif
	}
	return ps, nil
}

// MarshalYAML renders doc as the textual document spec.md §5 requires.
func MarshalYAML(doc Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// UnmarshalYAML parses a textual document produced by MarshalYAML.
func UnmarshalYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, ErrInvalidDocument
	}
	return doc, nil
}
