package clipexport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uprootiny/umbra-sub002/chart"
	"github.com/uprootiny/umbra-sub002/pointset"
)

func newTree() (*pointset.PointSet, int, int, int) {
	ps := pointset.New(2, 16)
	r, _ := ps.AddPoint(pointset.AddOptions{Name: "root", ParentIdx: -1})
	a, _ := ps.AddPoint(pointset.AddOptions{Name: "alpha", ParentIdx: r, Tangent: []float64{0, 0.4, 0}})
	b, _ := ps.AddPoint(pointset.AddOptions{Name: "beta!", ParentIdx: a, Tangent: []float64{0, 0, 0.3}})
	return ps, r, a, b
}

func TestExportImportPointSetRoundTrips(t *testing.T) {
	ps, r, a, b := newTree()
	ps.SetFlag(b, pointset.PINNED)

	doc := ExportPointSet(ps)
	require.Equal(t, ps.Count(), doc.Count)

	ps2, err := ImportPointSet(doc)
	require.NoError(t, err)
	require.Equal(t, ps.Count(), ps2.Count())

	for _, i := range []int{r, a, b} {
		require.InDelta(t, 0, ps.Distance(r, i)-ps2.Distance(r, i), 1e-9)
		require.Equal(t, ps.Depth[i], ps2.Depth[i])
		require.Equal(t, ps.Parent[i], ps2.Parent[i])
		require.Equal(t, ps.Meta(i).Name, ps2.Meta(i).Name)
	}
	require.True(t, ps2.HasFlag(b, pointset.PINNED))
}

func TestMarshalUnmarshalYAMLRoundTrips(t *testing.T) {
	ps, _, _, _ := newTree()
	doc := ExportPointSet(ps)

	data, err := MarshalYAML(doc)
	require.NoError(t, err)
	require.Contains(t, string(data), "dim:")

	doc2, err := UnmarshalYAML(data)
	require.NoError(t, err)
	require.Equal(t, doc.Count, doc2.Count)
	require.Equal(t, doc.Points[0].Name, doc2.Points[0].Name)
}

func TestImportPointSetRejectsForwardParentReference(t *testing.T) {
	doc := Document{Dim: 2, Count: 2, Points: []PointDoc{
		{Coords: []float64{1, 0, 0}, Parent: 1},
		{Coords: []float64{1, 0, 0}, Parent: -1},
	}}
	_, err := ImportPointSet(doc)
	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestCopyPasteReproducesSubtreeShape(t *testing.T) {
	ps, r, a, b := newTree()
	clip := Copy(ps, a)
	require.False(t, clip.Empty())

	dAB := ps.Distance(a, b)

	rec, err := Paste(ps, clip, r, 1000)
	require.NoError(t, err)
	require.Equal(t, 2, len(rec.Affected))

	newA := rec.Affected[0]
	newB := rec.Affected[1]
	require.InDelta(t, dAB, ps.Distance(newA, newB), 1e-6)
	require.Equal(t, r, ps.Parent[newA])
}

func TestPasteCoalescesNameCollisions(t *testing.T) {
	ps, r, a, _ := newTree()
	clip := Copy(ps, a)

	rec, err := Paste(ps, clip, r, 12345)
	require.NoError(t, err)
	pastedName := ps.Meta(rec.Affected[0]).Name
	require.NotEqual(t, "alpha", pastedName)
	require.Contains(t, pastedName, "alpha")
}

func TestPasteEmptyClipboardErrors(t *testing.T) {
	ps, r, _, _ := newTree()
	_, err := Paste(ps, Clipboard{}, r, 1)
	require.ErrorIs(t, err, ErrClipboardEmpty)
}

func TestPasteDimensionMismatchErrors(t *testing.T) {
	ps3 := pointset.New(3, 4)
	ps3.AddPoint(pointset.AddOptions{Name: "r3", ParentIdx: -1})
	ps2, _, a, _ := newTree()
	clip := Copy(ps2, a)

	_, err := Paste(ps3, clip, 0, 1)
	require.ErrorIs(t, err, ErrClipboardShape)
}

func TestCutHidesSourceSubtree(t *testing.T) {
	ps, _, a, b := newTree()
	_, rec := Cut(ps, a)
	require.True(t, ps.HasFlag(a, pointset.HIDDEN))
	require.True(t, ps.HasFlag(b, pointset.HIDDEN))
	require.ElementsMatch(t, []int{a, b}, rec.Affected)
}

func TestURLStateEncodeDecodeRoundTrips(t *testing.T) {
	s := URLState{Focus: []float64{1.2345, 0.6789, -0.1111}, Scale: 2.5, Name: "my view"}
	frag := EncodeURLState(s)
	require.True(t, strings.Contains(frag, ";"))

	decoded, err := DecodeURLState(frag)
	require.NoError(t, err)
	require.Equal(t, "my view", decoded.Name)
	require.InDelta(t, 2.5, decoded.Scale, 1e-4)
}

func TestURLStateEncodeDecodeWithoutName(t *testing.T) {
	s := URLState{Focus: []float64{1, 0, 0}, Scale: 1}
	frag := EncodeURLState(s)
	require.False(t, strings.Contains(frag, ";"))

	decoded, err := DecodeURLState(frag)
	require.NoError(t, err)
	require.Empty(t, decoded.Name)
}

func TestDecodeURLStateRejectsGarbage(t *testing.T) {
	_, err := DecodeURLState("not,a,number")
	require.ErrorIs(t, err, ErrInvalidURLState)
}

func TestMinimapToFocusClampsToRadius(t *testing.T) {
	focus := MinimapToFocus(1000, 500, 1000, 1000, 2)
	require.Len(t, focus, 3)
	require.Greater(t, focus[0], 1.0) // x0 > 1 for any nonzero ball radius
}

func TestMinimapToFocusCenterIsOrigin(t *testing.T) {
	focus := MinimapToFocus(500, 500, 1000, 1000, 2)
	require.InDelta(t, 1, focus[0], 1e-9)
	require.InDelta(t, 0, focus[1], 1e-9)
	require.InDelta(t, 0, focus[2], 1e-9)
}

func TestEmitMarkdownNestsByDepth(t *testing.T) {
	ps, r, _, _ := newTree()
	md := EmitMarkdown(ps, r)
	require.Contains(t, md, "- root")
	require.Contains(t, md, "  - alpha")
	require.Contains(t, md, "    - beta!")
}

func TestEmitMarkdownSkipsHiddenNodes(t *testing.T) {
	ps, r, _, b := newTree()
	ps.SetFlag(b, pointset.HIDDEN)
	md := EmitMarkdown(ps, r)
	require.NotContains(t, md, "beta")
}

func TestEmitMermaidSanitizesIdentifiers(t *testing.T) {
	ps, r, _, _ := newTree()
	mmd := EmitMermaid(ps, r)
	require.Contains(t, mmd, "flowchart TD")
	require.Contains(t, mmd, "beta_")
	require.NotContains(t, mmd, "beta![")
	require.NotContains(t, mmd, "--> beta!")
}

func TestEmitSVGContainsExpectedGroups(t *testing.T) {
	ps, r, _, _ := newTree()
	lens := chart.New(2, chart.NewPoincare(0, 1), chart.Viewport{Width: 400, Height: 400, Scale: 100}, chart.Aperture{Near: 0, Far: 10}, [3]float64{1, 2, 3})
	svg := EmitSVG(ps, lens, 400, 400)
	require.True(t, strings.HasPrefix(svg, "<svg"))
	require.Contains(t, svg, `<g id="edges">`)
	require.Contains(t, svg, `<g id="nodes">`)
	_ = r
}
