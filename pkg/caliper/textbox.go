package caliper

import (
	"iter"
	"strconv"
	"strings"

	"aqwari.net/xml/xmltree"
	"github.com/benjaminschreck/go-caliper/pkg/caliper/oxml"
)

// Textboxes is the ordered collection of legacy VML textboxes under a
// body root. Like InlineShapes it is a live view that re-queries the tree
// on every access.
type Textboxes struct {
	body *xmltree.Element
	part string
}

// NewTextboxes creates a collection view over the given body element.
func NewTextboxes(body *xmltree.Element, part string) *Textboxes {
	return &Textboxes{body: body, part: part}
}

// Len returns the number of textboxes currently in the tree.
func (t *Textboxes) Len() int {
	return len(oxml.TextboxShapes(t.body))
}

// At returns a fresh proxy for the i-th textbox in document order.
func (t *Textboxes) At(i int) (*Textbox, error) {
	shapes := oxml.TextboxShapes(t.body)
	if i < 0 || i >= len(shapes) {
		return nil, NewIndexError("textbox", i, t.part)
	}
	return NewTextbox(shapes[i]), nil
}

// All iterates the collection in document order.
func (t *Textboxes) All() iter.Seq[*Textbox] {
	return func(yield func(*Textbox) bool) {
		for _, shape := range oxml.TextboxShapes(t.body) {
			if !yield(NewTextbox(shape)) {
				return
			}
		}
	}
}

// Textbox wraps a v:shape element holding a textbox. Position and size
// live in the shape's CSS-like style attribute as point lengths; the
// accessors convert between float64 points and the "<n>pt" strings the
// style store holds.
type Textbox struct {
	shape *xmltree.Element
}

// NewTextbox creates a proxy for the given v:shape element.
func NewTextbox(shape *xmltree.Element) *Textbox {
	return &Textbox{shape: shape}
}

// Node returns the wrapped v:shape element.
func (t *Textbox) Node() *xmltree.Element {
	return t.shape
}

// Style returns the style attribute store of the wrapped shape.
func (t *Textbox) Style() oxml.ShapeStyle {
	return oxml.StyleOf(t.shape)
}

// Left returns the left offset of the textbox in points. Absent or
// non-numeric values read as 0.
func (t *Textbox) Left() float64 {
	return t.styleLength("margin-left")
}

// Top returns the top offset of the textbox in points.
func (t *Textbox) Top() float64 {
	return t.styleLength("margin-top")
}

// Width returns the width of the textbox in points.
func (t *Textbox) Width() float64 {
	return t.styleLength("width")
}

// Height returns the height of the textbox in points.
func (t *Textbox) Height() float64 {
	return t.styleLength("height")
}

// SetLeft sets the left offset of the textbox in points.
func (t *Textbox) SetLeft(v float64) {
	t.setStyleLength("margin-left", v)
}

// SetTop sets the top offset of the textbox in points.
func (t *Textbox) SetTop(v float64) {
	t.setStyleLength("margin-top", v)
}

// SetWidth sets the width of the textbox in points.
func (t *Textbox) SetWidth(v float64) {
	t.setStyleLength("width", v)
}

// SetHeight sets the height of the textbox in points.
func (t *Textbox) SetHeight(v float64) {
	t.setStyleLength("height", v)
}

func (t *Textbox) styleLength(key string) float64 {
	value, ok := t.Style().Get(key)
	if !ok {
		return 0
	}
	value = strings.TrimSuffix(value, "pt")
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func (t *Textbox) setStyleLength(key string, v float64) {
	style := t.Style()
	style.Set(key, strconv.FormatFloat(v, 'f', -1, 64)+"pt")
}

// Text returns the text content of the textbox.
//
// Not implemented: textbox text lives in a nested w:txbxContent tree that
// this library does not manage yet. Reads return the empty string.
func (t *Textbox) Text() string {
	return ""
}

// SetText replaces the text content of the textbox.
//
// Not implemented: writes are discarded. Kept as an explicit placeholder
// so callers see the intended surface rather than a missing method.
func (t *Textbox) SetText(text string) {
}
