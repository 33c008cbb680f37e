package oxml

import (
	"strings"

	"aqwari.net/xml/xmltree"
)

// TextboxShapes returns every v:shape that hosts a v:textbox, reachable
// from body through a w:pict inside a paragraph run, in document order.
// Like InlineDrawings, this re-walks the tree on every call.
func TextboxShapes(body *xmltree.Element) []*xmltree.Element {
	if body == nil {
		return nil
	}
	var found []*xmltree.Element
	paragraphs := body.SearchFunc(func(el *xmltree.Element) bool {
		return el.StartElement.Name.Space == NSWordprocessingML && el.StartElement.Name.Local == "p"
	})
	for _, p := range paragraphs {
		for _, run := range Children(p, NSWordprocessingML, "r") {
			for _, pict := range Children(run, NSWordprocessingML, "pict") {
				for _, shape := range Children(pict, NSVML, "shape") {
					if Child(shape, NSVML, "textbox") != nil {
						found = append(found, shape)
					}
				}
			}
		}
	}
	return found
}

// ShapeStyle is a view over the style attribute of a VML shape: a flat
// list of key:value pairs separated by semicolons, as in
//
//	position:absolute;margin-left:59.25pt;width:117pt;
//
// The attribute is re-parsed from the shape on every access and written
// back as one full-string replacement on every Set, so the view can never
// drift from the node's true content. Keys are matched exactly; no
// whitespace trimming is applied anywhere.
type ShapeStyle struct {
	shape *xmltree.Element
}

// StyleOf returns the style view of a VML shape element.
func StyleOf(shape *xmltree.Element) ShapeStyle {
	return ShapeStyle{shape: shape}
}

// Get returns the value of the first pair whose key equals key, and
// whether such a pair exists. A missing key is not an error.
func (s ShapeStyle) Get(key string) (string, bool) {
	if s.shape == nil {
		return "", false
	}
	for _, p := range parseStyle(s.shape.Attr("", "style")) {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

// Set removes every pair with the given key, appends (key, value) at the
// end, and replaces the whole style attribute with the re-serialized list.
// Serialization places a semicolon after every pair, the last included, so
// setting a key on an empty style yields exactly "key:value;". Setting the
// same key twice is idempotent.
func (s ShapeStyle) Set(key, value string) {
	if s.shape == nil {
		return
	}
	pairs := parseStyle(s.shape.Attr("", "style"))
	kept := make([]stylePair, 0, len(pairs)+1)
	for _, p := range pairs {
		if p.key != key {
			kept = append(kept, p)
		}
	}
	kept = append(kept, stylePair{key: key, value: value})
	s.shape.SetAttr("", "style", serializeStyle(kept))
}

// String returns the current raw style attribute value.
func (s ShapeStyle) String() string {
	if s.shape == nil {
		return ""
	}
	return s.shape.Attr("", "style")
}

type stylePair struct {
	key   string
	value string
}

// parseStyle splits on ";", drops empty fragments, and cuts each fragment
// at the first ":". A fragment without a colon becomes a key with an empty
// value.
func parseStyle(s string) []stylePair {
	var pairs []stylePair
	for _, frag := range strings.Split(s, ";") {
		if frag == "" {
			continue
		}
		key, value, _ := strings.Cut(frag, ":")
		pairs = append(pairs, stylePair{key: key, value: value})
	}
	return pairs
}

func serializeStyle(pairs []stylePair) string {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p.key)
		b.WriteByte(':')
		b.WriteString(p.value)
		b.WriteByte(';')
	}
	return b.String()
}
