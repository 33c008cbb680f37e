package caliper

import (
	"fmt"
	"strconv"

	"github.com/benjaminschreck/go-caliper/pkg/caliper/oxml"
)

// CheckShapes inspects every inline shape in the document and reports
// consistency problems: a missing wp:extent, non-numeric extent values
// and, for pictures, a missing or disagreeing a:ext size. A clean
// document yields no issues.
func CheckShapes(doc *Document) []ValidationIssue {
	issues := make([]ValidationIssue, 0)

	i := 0
	for shape := range doc.InlineShapes().All() {
		field := fmt.Sprintf("inline shape [%d]", i)
		issues = append(issues, checkShape(field, shape)...)
		i++
	}
	return issues
}

func checkShape(field string, shape *InlineShape) []ValidationIssue {
	var issues []ValidationIssue
	inline := shape.Node()

	extent := oxml.Extent(inline)
	if extent == nil {
		issues = append(issues, ValidationIssue{
			Field:   field,
			Message: "missing wp:extent",
		})
	} else {
		for _, attr := range []string{"cx", "cy"} {
			raw := extent.Attr("", attr)
			if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
				issues = append(issues, ValidationIssue{
					Field:   field,
					Message: fmt.Sprintf("invalid wp:extent %s attribute %q", attr, raw),
				})
			}
		}
	}

	// The duplicated size only exists for picture payloads
	kind := shape.Kind()
	if kind != ShapeKindPicture && kind != ShapeKindLinkedPicture {
		return issues
	}

	spExt, missing := oxml.SpPrExtent(inline)
	if spExt == nil {
		issues = append(issues, ValidationIssue{
			Field:   field,
			Message: "missing " + missing,
		})
		return issues
	}
	if extent == nil {
		return issues
	}

	for _, attr := range []string{"cx", "cy"} {
		outerRaw := extent.Attr("", attr)
		innerRaw := spExt.Attr("", attr)

		inner, err := strconv.ParseInt(innerRaw, 10, 64)
		if err != nil {
			issues = append(issues, ValidationIssue{
				Field:   field,
				Message: fmt.Sprintf("invalid a:ext %s attribute %q", attr, innerRaw),
			})
			continue
		}
		outer, err := strconv.ParseInt(outerRaw, 10, 64)
		if err != nil {
			// Already reported against wp:extent above
			continue
		}
		if outer != inner {
			issues = append(issues, ValidationIssue{
				Field:   field,
				Message: fmt.Sprintf("size out of sync: wp:extent %s=%d, a:ext %s=%d", attr, outer, attr, inner),
			})
		}
	}
	return issues
}

// ValidateShapes folds CheckShapes findings into a single ValidationError,
// or returns nil when the document is consistent.
func (d *Document) ValidateShapes() error {
	issues := CheckShapes(d)
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
