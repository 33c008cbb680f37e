package caliper

import (
	"aqwari.net/xml/xmltree"
	"github.com/benjaminschreck/go-caliper/pkg/caliper/oxml"
)

// Settings is a proxy over the w:settings root of word/settings.xml.
// Like the shape proxies it holds a reference into a tree owned by its
// Document.
type Settings struct {
	root *xmltree.Element
}

// Root returns the w:settings element.
func (s *Settings) Root() *xmltree.Element {
	return s.root
}

// OddAndEvenPagesHeaderFooter reports whether the document uses distinct
// headers and footers for odd and even pages. The backing element is
// w:evenAndOddHeaders: absent reads false, present follows on/off
// attribute semantics where a bare element means true.
func (s *Settings) OddAndEvenPagesHeaderFooter() bool {
	el := oxml.Child(s.root, oxml.NSWordprocessingML, "evenAndOddHeaders")
	if el == nil {
		return false
	}
	return oxml.OnOff(el)
}

// SetOddAndEvenPagesHeaderFooter toggles w:evenAndOddHeaders. True is
// spelled as a bare element, false as no element at all; an explicit
// w:val attribute left behind by another producer is dropped rather than
// rewritten.
func (s *Settings) SetOddAndEvenPagesHeaderFooter(v bool) {
	if !v {
		oxml.RemoveChild(s.root, oxml.NSWordprocessingML, "evenAndOddHeaders")
		return
	}

	el := oxml.Child(s.root, oxml.NSWordprocessingML, "evenAndOddHeaders")
	if el == nil {
		oxml.AppendChild(s.root, oxml.NSWordprocessingML, "evenAndOddHeaders")
		return
	}
	oxml.RemoveAttr(el, oxml.NSWordprocessingML, "val")
}
