// Package clipexport implements the serialization-adapter boundary
// around pointset.PointSet: the textual export/import document,
// subtree cut/copy/paste, the SVG/Markdown/Mermaid emitters, URL state
// encode/decode, and minimap click-to-focus mapping.
//
// Grounded on core/methods_clone.go's CloneEmpty/Clone discipline
// (snapshot configuration, then deep-copy structure, carrying the
// monotonic id sequence across the copy) for Copy/Paste, and on
// gridgraph's sentinel-error style for the clipboard-shape errors.
package clipexport
