// Package caliper provides typed access to the graphics embedded in
// Microsoft Word documents (DOCX).
//
// Caliper opens a document package, exposes its inline shapes (pictures,
// charts, smart art) and legacy VML textboxes as proxy objects, and writes
// size changes back so the markup stays internally consistent. It is built
// for tooling that measures or adjusts document graphics: audit pipelines,
// bulk resize jobs, and inspection utilities.
//
// # Quick Start
//
//	doc, err := caliper.Open("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	shapes := doc.InlineShapes()
//	for shape := range shapes.All() {
//	    w, _ := shape.Width()
//	    fmt.Printf("%-14s %.2f in wide\n", shape.Kind(), w.Inches())
//	}
//
//	first, err := shapes.At(0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := first.SetWidth(units.Inches(2)); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := doc.SaveFile("report-resized.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The package is organized into several sub-packages:
//
//   - oxml: markup-tree helpers over aqwari.net/xml/xmltree (element
//     navigation, inline drawing location, VML style store)
//   - units: the EMU length type and its conversions (inches, centimeters,
//     millimeters, points, twips)
//
// The main package provides:
//   - Document loading and saving (Open, OpenBytes, Save)
//   - Shape collections and proxies (InlineShapes, InlineShape, Textboxes, Textbox)
//   - Document settings access (Settings)
//   - Shape consistency checking (CheckShapes, ValidateShapes)
//   - Configuration and error handling
//
// # Synchronized Size Writes
//
// A picture's display size is stored twice in WordprocessingML: on the
// wp:extent of the inline container and again on the a:ext inside the
// picture's shape properties. SetWidth and SetHeight write both locations
// as one logical operation, and fail without touching either when the
// markup lacks one of them, so the two fields can never be observed
// disagreeing.
//
// # Live Collections
//
// InlineShapes and Textboxes re-query the document tree on every Len, At
// and All call instead of caching results. Shapes added through other
// handles to the same tree are visible immediately; the price is that
// callers must not mutate the tree structurally while iterating.
//
// # Error Handling
//
// The package defines several error types for specific failure cases:
//
//   - IndexError: collection access outside the valid range
//   - MalformedDrawingError: drawing markup missing a required sub-tree
//   - DocumentError: package open, parse and save failures
//   - ValidationError: consistency findings from ValidateShapes
//
// Check error types using the helpers:
//
//	if caliper.IsIndexError(err) {
//	    // Handle out-of-range access
//	}
//
// # Thread Safety
//
// A Document and every proxy it hands out share one mutable markup tree.
// They are not safe for concurrent use; callers that share a Document
// across goroutines must serialize access themselves.
//
// # DOCX File Structure
//
// DOCX files are ZIP packages of XML parts. The shapes this package
// manages live in word/document.xml; document settings live in
// word/settings.xml. On save those parts are re-marshaled from the edited
// tree and every other part is copied through byte-identical.
//
// # Limitations
//
// Some shape features are not yet supported:
//   - Textbox text content (Text and SetText are explicit placeholders)
//   - Floating (anchored) drawings; only inline drawings are collected
//   - Style properties beyond the positional set the accessors name
package caliper
