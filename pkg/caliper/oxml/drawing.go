package oxml

import (
	"aqwari.net/xml/xmltree"
)

// InlineDrawings returns every wp:inline drawing container reachable from
// body, in pre-order document order. A node qualifies when it is a direct
// wp:inline child of a w:drawing that sits directly inside a run inside a
// paragraph; the paragraph itself may appear at any depth (table cells
// included). Anchored (floating) drawings never match.
//
// The tree is re-walked on every call. Callers that mutate the tree while
// holding a previous result are responsible for the consequences.
func InlineDrawings(body *xmltree.Element) []*xmltree.Element {
	if body == nil {
		return nil
	}
	var found []*xmltree.Element
	paragraphs := body.SearchFunc(func(el *xmltree.Element) bool {
		return el.StartElement.Name.Space == NSWordprocessingML && el.StartElement.Name.Local == "p"
	})
	for _, p := range paragraphs {
		for _, run := range Children(p, NSWordprocessingML, "r") {
			for _, drawing := range Children(run, NSWordprocessingML, "drawing") {
				found = append(found, Children(drawing, NSWordprocessingDrawing, "inline")...)
			}
		}
	}
	return found
}

// Extent returns the wp:extent child of an inline drawing, carrying the
// display size in EMU, or nil if the drawing lacks one.
func Extent(inline *xmltree.Element) *xmltree.Element {
	return Child(inline, NSWordprocessingDrawing, "extent")
}

// GraphicData returns the a:graphicData payload container of an inline
// drawing, or nil if the a:graphic/a:graphicData path is absent.
func GraphicData(inline *xmltree.Element) *xmltree.Element {
	graphic := Child(inline, NSDrawingML, "graphic")
	return Child(graphic, NSDrawingML, "graphicData")
}

// GraphicDataURI returns the uri discriminator of the drawing's graphic
// payload, or "" when the graphic data sub-tree is absent.
func GraphicDataURI(inline *xmltree.Element) string {
	gd := GraphicData(inline)
	if gd == nil {
		return ""
	}
	return gd.Attr("", "uri")
}

// Blip returns the a:blip image reference of a picture payload, or nil.
func Blip(inline *xmltree.Element) *xmltree.Element {
	pic := Child(GraphicData(inline), NSPicture, "pic")
	blipFill := Child(pic, NSPicture, "blipFill")
	return Child(blipFill, NSDrawingML, "blip")
}

// SpPrExtent resolves the a:ext element under the picture shape properties
// (pic:pic/pic:spPr/a:xfrm/a:ext) that duplicates the inline extent. When
// the path is incomplete it returns nil together with the qualified name of
// the first missing element, so callers can report exactly what the tree
// lacks.
func SpPrExtent(inline *xmltree.Element) (*xmltree.Element, string) {
	gd := GraphicData(inline)
	if gd == nil {
		return nil, "a:graphicData"
	}
	pic := Child(gd, NSPicture, "pic")
	if pic == nil {
		return nil, "pic:pic"
	}
	spPr := Child(pic, NSPicture, "spPr")
	if spPr == nil {
		return nil, "pic:spPr"
	}
	xfrm := Child(spPr, NSDrawingML, "xfrm")
	if xfrm == nil {
		return nil, "a:xfrm"
	}
	ext := Child(xfrm, NSDrawingML, "ext")
	if ext == nil {
		return nil, "a:ext"
	}
	return ext, ""
}
