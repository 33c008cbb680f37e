package caliper

import (
	"fmt"
	"iter"
	"strconv"

	"aqwari.net/xml/xmltree"
	"github.com/benjaminschreck/go-caliper/pkg/caliper/oxml"
	"github.com/benjaminschreck/go-caliper/pkg/caliper/units"
)

// ShapeKind classifies the graphical payload of an inline shape.
type ShapeKind int

const (
	// ShapeKindNotImplemented is returned for payload types the library
	// does not classify. It is a sentinel, not an error.
	ShapeKindNotImplemented ShapeKind = iota
	ShapeKindPicture
	ShapeKindLinkedPicture
	ShapeKindChart
	ShapeKindSmartArt
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeKindPicture:
		return "picture"
	case ShapeKindLinkedPicture:
		return "linked picture"
	case ShapeKindChart:
		return "chart"
	case ShapeKindSmartArt:
		return "smart art"
	default:
		return "not implemented"
	}
}

// InlineShapes is the ordered collection of inline shapes under a body
// root. It is a live view, not a snapshot: every Len, At and All call
// re-queries the tree, so shapes inserted through other handles show up
// without rebuilding the collection.
type InlineShapes struct {
	body *xmltree.Element
	part string
}

// NewInlineShapes creates a collection view over the given body element.
// part names the document part the body belongs to and is used for error
// attribution only.
func NewInlineShapes(body *xmltree.Element, part string) *InlineShapes {
	return &InlineShapes{body: body, part: part}
}

// Len returns the number of inline shapes currently in the tree.
func (s *InlineShapes) Len() int {
	return len(oxml.InlineDrawings(s.body))
}

// At returns a fresh proxy for the i-th inline shape in document order.
// Indices outside [0, Len()) fail with an IndexError; negative indices do
// not wrap.
func (s *InlineShapes) At(i int) (*InlineShape, error) {
	inlines := oxml.InlineDrawings(s.body)
	if i < 0 || i >= len(inlines) {
		return nil, NewIndexError("inline shape", i, s.part)
	}
	return NewInlineShape(inlines[i]), nil
}

// All iterates the collection in document order. The tree is re-queried
// each time iteration starts. Structural mutation of the tree during an
// in-progress iteration yields unspecified order; callers that mutate
// should iterate by index instead.
func (s *InlineShapes) All() iter.Seq[*InlineShape] {
	return func(yield func(*InlineShape) bool) {
		for _, inline := range oxml.InlineDrawings(s.body) {
			if !yield(NewInlineShape(inline)) {
				return
			}
		}
	}
}

// InlineShape wraps a single wp:inline element. The wrapped node is owned
// by the surrounding document tree; the proxy holds a reference into it,
// never a copy, so it must not outlive its Document.
type InlineShape struct {
	inline *xmltree.Element
}

// NewInlineShape creates a proxy for the given wp:inline element.
func NewInlineShape(inline *xmltree.Element) *InlineShape {
	return &InlineShape{inline: inline}
}

// Node returns the wrapped wp:inline element.
func (s *InlineShape) Node() *xmltree.Element {
	return s.inline
}

// Width returns the display width of the shape from wp:extent.
func (s *InlineShape) Width() (units.Emu, error) {
	return s.readExtent("cx", "read width")
}

// Height returns the display height of the shape from wp:extent.
func (s *InlineShape) Height() (units.Emu, error) {
	return s.readExtent("cy", "read height")
}

func (s *InlineShape) readExtent(attr, op string) (units.Emu, error) {
	extent := oxml.Extent(s.inline)
	if extent == nil {
		return 0, NewMalformedDrawingError(op, "missing wp:extent")
	}
	raw := extent.Attr("", attr)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewMalformedDrawingError(op, fmt.Sprintf("invalid %s attribute %q", attr, raw))
	}
	return units.Emu(v), nil
}

// SetWidth writes the display width to both size locations, wp:extent and
// the picture's a:ext, as one logical operation.
func (s *InlineShape) SetWidth(v units.Emu) error {
	return s.writeExtent("cx", v, "set width")
}

// SetHeight writes the display height to both size locations, wp:extent
// and the picture's a:ext, as one logical operation.
func (s *InlineShape) SetHeight(v units.Emu) error {
	return s.writeExtent("cy", v, "set height")
}

// writeExtent resolves both write targets before touching either, so a
// malformed tree fails the whole operation instead of leaving the two
// fields disagreeing.
func (s *InlineShape) writeExtent(attr string, v units.Emu, op string) error {
	extent := oxml.Extent(s.inline)
	if extent == nil {
		return NewMalformedDrawingError(op, "missing wp:extent")
	}
	spExt, missing := oxml.SpPrExtent(s.inline)
	if spExt == nil {
		return NewMalformedDrawingError(op, "missing "+missing)
	}

	value := strconv.FormatInt(int64(v), 10)
	extent.SetAttr("", attr, value)
	spExt.SetAttr("", attr, value)
	return nil
}

// Kind classifies the shape from its a:graphicData uri. Pictures are
// split on the blip's r:link reference into embedded and linked variants.
// Unknown uris map to ShapeKindNotImplemented rather than an error, so
// callers can iterate arbitrary documents without guarding every access.
func (s *InlineShape) Kind() ShapeKind {
	switch oxml.GraphicDataURI(s.inline) {
	case oxml.NSPicture:
		if blip := oxml.Blip(s.inline); blip != nil && blip.Attr(oxml.NSRelationships, "link") != "" {
			return ShapeKindLinkedPicture
		}
		return ShapeKindPicture
	case oxml.NSChart:
		return ShapeKindChart
	case oxml.NSDiagram:
		return ShapeKindSmartArt
	default:
		return ShapeKindNotImplemented
	}
}

// ImageRef returns the relationship ID of the shape's image, from the
// blip's r:embed attribute or, for linked pictures, r:link. The second
// return is false when the shape has no blip or the blip carries neither
// reference. Callers resolve the ID against the part's relationships.
func (s *InlineShape) ImageRef() (string, bool) {
	blip := oxml.Blip(s.inline)
	if blip == nil {
		return "", false
	}
	if id := blip.Attr(oxml.NSRelationships, "embed"); id != "" {
		return id, true
	}
	if id := blip.Attr(oxml.NSRelationships, "link"); id != "" {
		return id, true
	}
	return "", false
}
