// Package oxml provides low-level access to the WordprocessingML markup
// that backs the caliper proxy types.
//
// The package operates on the generic element tree produced by
// aqwari.net/xml/xmltree rather than on typed structs: an access layer
// that mutates documents in place must preserve every piece of markup it
// does not understand, which a closed set of struct definitions cannot do.
// All functions here are pure queries or immediate in-place edits against
// that tree; nothing is cached between calls.
//
// # File Organization
//
//   - ns.go: namespace URIs used by WordprocessingML, DrawingML and VML
//   - tree.go: generic child/attribute helpers over xmltree elements
//   - drawing.go: inline drawing location and the extent/graphic sub-tree
//   - vml.go: VML textbox shapes and the style attribute micro-format
//
// # Namespaces
//
// Element and attribute names are matched by full namespace URI, never by
// prefix. The constants in ns.go mirror the namespace table of the
// WordprocessingML ecosystem:
//
//   - w:  main WordprocessingML namespace (paragraphs, runs, settings)
//   - wp: wordprocessingDrawing (inline drawing containers, extents)
//   - a:  DrawingML main (graphic frames, transforms, blips)
//   - pic/c/dgm: picture, chart and diagram graphic payloads
//   - r:  relationship references (r:embed, r:link)
//   - v:  legacy VML shapes (textboxes)
//
// This package is primarily used internally by the caliper package. Most
// users will interact with documents through the proxy types there.
package oxml
