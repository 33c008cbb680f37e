package oxml

import (
	"encoding/xml"

	"aqwari.net/xml/xmltree"
)

// Child returns the first direct child of el with the given namespace and
// local name, or nil if there is none.
func Child(el *xmltree.Element, space, local string) *xmltree.Element {
	if el == nil {
		return nil
	}
	for i := range el.Children {
		c := &el.Children[i]
		if c.StartElement.Name.Space == space && c.StartElement.Name.Local == local {
			return c
		}
	}
	return nil
}

// Children returns all direct children of el with the given namespace and
// local name, in document order.
func Children(el *xmltree.Element, space, local string) []*xmltree.Element {
	if el == nil {
		return nil
	}
	var out []*xmltree.Element
	for i := range el.Children {
		c := &el.Children[i]
		if c.StartElement.Name.Space == space && c.StartElement.Name.Local == local {
			out = append(out, c)
		}
	}
	return out
}

// AppendChild adds an empty child element with the given name to parent and
// returns it. The child inherits the parent's namespace scope so that it
// marshals with the prefixes already declared in the document. The returned
// pointer is only valid until the next mutation of parent.Children.
func AppendChild(parent *xmltree.Element, space, local string) *xmltree.Element {
	parent.Children = append(parent.Children, xmltree.Element{
		StartElement: xml.StartElement{Name: xml.Name{Space: space, Local: local}},
		Scope:        parent.Scope,
	})
	return &parent.Children[len(parent.Children)-1]
}

// RemoveChild removes the first direct child of parent with the given name.
// It reports whether a child was removed.
func RemoveChild(parent *xmltree.Element, space, local string) bool {
	for i := range parent.Children {
		c := &parent.Children[i]
		if c.StartElement.Name.Space == space && c.StartElement.Name.Local == local {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAttr deletes the first attribute of el matching the given name.
// A space of "" matches an attribute in any namespace.
func RemoveAttr(el *xmltree.Element, space, local string) {
	attrs := el.StartElement.Attr
	for i, a := range attrs {
		if a.Name.Local != local {
			continue
		}
		if space != "" && a.Name.Space != space {
			continue
		}
		el.StartElement.Attr = append(attrs[:i], attrs[i+1:]...)
		return
	}
}

// OnOff interprets el as a WordprocessingML on/off element: present with no
// w:val attribute means on, otherwise the attribute decides. Callers handle
// the absent-element case themselves (an absent element is typically off).
func OnOff(el *xmltree.Element) bool {
	switch el.Attr(NSWordprocessingML, "val") {
	case "0", "false", "off":
		return false
	default:
		return true
	}
}
