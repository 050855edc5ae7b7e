package clipexport

import (
	"fmt"
	"strings"

	"github.com/uprootiny/umbra-sub002/chart"
	"github.com/uprootiny/umbra-sub002/pointset"
)

// EmitSVG renders ps's visible points and parent-child edges as an SVG
// document, projected through lens: a background rect, a `<g
// id="edges">` of `<line>`s, and a `<g id="nodes">` of `<circle>`s
// colored by HSL hue rotating with tree depth, per spec.md §5.
func EmitSVG(ps *pointset.PointSet, lens *chart.Lens, width, height int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, width, height)
	b.WriteByte('\n')
	fmt.Fprintf(&b, `<rect class="background" width="%d" height="%d" fill="#111827"/>`, width, height)
	b.WriteByte('\n')

	visible := ps.Visible()
	screen := make(map[int][2]float64, len(visible))
	for _, i := range visible {
		if !lens.PointVisible(ps.Point(i)) {
			continue
		}
		cx, cy := lens.ChartToScreen(project(lens, ps.Point(i)))
		screen[i] = [2]float64{cx, cy}
	}

	b.WriteString(`<g id="edges">`)
	b.WriteByte('\n')
	for i := range screen {
		p := ps.Parent[i]
		if pp, ok := screen[p]; ok {
			cp := screen[i]
			fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#4b5563"/>`, pp[0], pp[1], cp[0], cp[1])
			b.WriteByte('\n')
		}
	}
	b.WriteString(`</g>`)
	b.WriteByte('\n')

	b.WriteString(`<g id="nodes">`)
	b.WriteByte('\n')
	for _, i := range visible {
		c, ok := screen[i]
		if !ok {
			continue
		}
		hue := (ps.Depth[i] * 47) % 360
		fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="4" fill="hsl(%d,70%%,60%%)"/>`, c[0], c[1], hue)
		b.WriteByte('\n')
	}
	b.WriteString(`</g>`)
	b.WriteByte('\n')
	b.WriteString(`</svg>`)
	return b.String()
}

func project(lens *chart.Lens, p []float64) (float64, float64) {
	return lens.Chart.Project(p)
}

// EmitMarkdown renders the subtree rooted at root as nested bullets,
// one line per visible point, indented two spaces per depth level
// relative to root.
func EmitMarkdown(ps *pointset.PointSet, root int) string {
	var b strings.Builder
	emitMarkdownNode(&b, ps, root, ps.Depth[root])
	return b.String()
}

func emitMarkdownNode(b *strings.Builder, ps *pointset.PointSet, i, baseDepth int) {
	if ps.HasFlag(i, pointset.HIDDEN) {
		return
	}
	indent := strings.Repeat("  ", ps.Depth[i]-baseDepth)
	name := ps.Meta(i).Name
	if name == "" {
		name = fmt.Sprintf("#%d", i)
	}
	fmt.Fprintf(b, "%s- %s\n", indent, name)
	for _, c := range ps.Children(i) {
		emitMarkdownNode(b, ps, c, baseDepth)
	}
}

// EmitMermaid renders the subtree rooted at root as a Mermaid flowchart
// (top-down), with identifiers sanitized per spec.md §5: non-
// alphanumerics become `_`, and a numeric-leading identifier is
// prefixed with `_`.
func EmitMermaid(ps *pointset.PointSet, root int) string {
	var b strings.Builder
	b.WriteString("flowchart TD\n")
	emitMermaidNode(&b, ps, root)
	return b.String()
}

func emitMermaidNode(b *strings.Builder, ps *pointset.PointSet, i int) {
	if ps.HasFlag(i, pointset.HIDDEN) {
		return
	}
	id := mermaidID(ps, i)
	label := ps.Meta(i).Name
	if label == "" {
		label = id
	}
	fmt.Fprintf(b, "  %s[\"%s\"]\n", id, label)
	for _, c := range ps.Children(i) {
		if ps.HasFlag(c, pointset.HIDDEN) {
			continue
		}
		fmt.Fprintf(b, "  %s --> %s\n", id, mermaidID(ps, c))
		emitMermaidNode(b, ps, c)
	}
}

func mermaidID(ps *pointset.PointSet, i int) string {
	name := ps.Meta(i).Name
	if name == "" {
		name = fmt.Sprintf("n%d", i)
	}
	id := sanitizeMermaidID(name)
	if id == "" {
		id = fmt.Sprintf("n%d", i)
	}
	return id
}

func sanitizeMermaidID(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	id := b.String()
	if id != "" && id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	return id
}
