// Package units provides the absolute length type used at the drawing
// boundary of go-caliper and conversions to conventional units.
//
// Drawing extents in WordprocessingML are expressed in English Metric
// Units: 914400 EMU per inch, an integer unit fine enough to convert
// exactly between inches, centimeters and points. All widths and heights
// crossing the inline-shape API are Emu values; converting for display is
// the caller's concern.
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Emu is a length in English Metric Units (914400 per inch).
type Emu int64

// Conversion factors.
const (
	EmuPerInch Emu = 914400
	EmuPerCm   Emu = 360000
	EmuPerMm   Emu = 36000
	EmuPerPt   Emu = 12700
	EmuPerTwip Emu = 635
)

// Inches returns the length v inches long.
func Inches(v float64) Emu { return Emu(math.Round(v * float64(EmuPerInch))) }

// Cm returns the length v centimeters long.
func Cm(v float64) Emu { return Emu(math.Round(v * float64(EmuPerCm))) }

// Mm returns the length v millimeters long.
func Mm(v float64) Emu { return Emu(math.Round(v * float64(EmuPerMm))) }

// Pt returns the length v points long.
func Pt(v float64) Emu { return Emu(math.Round(v * float64(EmuPerPt))) }

// Twips returns the length v twentieths of a point long.
func Twips(v float64) Emu { return Emu(math.Round(v * float64(EmuPerTwip))) }

// Inches returns the length in inches.
func (e Emu) Inches() float64 { return float64(e) / float64(EmuPerInch) }

// Cm returns the length in centimeters.
func (e Emu) Cm() float64 { return float64(e) / float64(EmuPerCm) }

// Mm returns the length in millimeters.
func (e Emu) Mm() float64 { return float64(e) / float64(EmuPerMm) }

// Pt returns the length in points.
func (e Emu) Pt() float64 { return float64(e) / float64(EmuPerPt) }

// Twips returns the length in twentieths of a point.
func (e Emu) Twips() float64 { return float64(e) / float64(EmuPerTwip) }

// Parse converts a length literal with an optional unit suffix into an
// Emu value. Recognized forms: "2in", "5.08cm", "50.8mm", "144pt",
// "2880twip", "1828800emu", and a bare number, which is taken as EMU.
func Parse(s string) (Emu, error) {
	emu := func(v float64) Emu { return Emu(math.Round(v)) }
	num, to := s, emu
	for _, unit := range []struct {
		suffix string
		to     func(float64) Emu
	}{
		{"twip", Twips},
		{"emu", emu},
		{"in", Inches},
		{"cm", Cm},
		{"mm", Mm},
		{"pt", Pt},
	} {
		if rest, ok := strings.CutSuffix(s, unit.suffix); ok {
			num, to = rest, unit.to
			break
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("unrecognized length %q (want e.g. \"2in\", \"5cm\", \"36pt\", \"914400emu\")", s)
	}
	return to(v), nil
}
