package layout

import (
	"fmt"
	"strings"
)

// FieldReport describes one field placement for human inspection.
type FieldReport struct {
	Name    string
	Type    string
	Offset  int
	Size    int
	Padding int // filler bytes inserted before this field
}

// Report is a diagnostic summary of a layout: placements, padding gaps,
// stride, wasted bytes, and packing efficiency. It is meant for human
// inspection only; programs should use the Layout accessors.
type Report struct {
	Fields     []FieldReport
	Stride     int
	Align      int
	Used       int     // sum of field sizes
	Wasted     int     // stride minus used
	Efficiency float64 // used/stride as a percentage
}

// Report builds the diagnostic summary for the layout.
func (l *Layout) Report() *Report {
	r := &Report{
		Fields: make([]FieldReport, 0, len(l.fields)),
		Stride: l.stride,
		Align:  l.align,
	}

	end := 0
	for _, f := range l.fields {
		size := f.Type.Size()
		r.Fields = append(r.Fields, FieldReport{
			Name:    f.Name,
			Type:    f.Type.String(),
			Offset:  f.Offset,
			Size:    size,
			Padding: f.Offset - end,
		})
		end = f.Offset + size
		r.Used += size
	}

	r.Wasted = r.Stride - r.Used
	if r.Stride > 0 {
		r.Efficiency = float64(r.Used) / float64(r.Stride) * 100
	}
	return r
}

// String renders the report as a fixed-width table.
func (r *Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-16s %-12s %8s %6s %8s\n", "FIELD", "TYPE", "OFFSET", "SIZE", "PADDING")
	for _, f := range r.Fields {
		fmt.Fprintf(&b, "%-16s %-12s %8d %6d %8d\n", f.Name, f.Type, f.Offset, f.Size, f.Padding)
	}
	fmt.Fprintf(&b, "stride=%d align=%d used=%d wasted=%d efficiency=%.1f%%\n",
		r.Stride, r.Align, r.Used, r.Wasted, r.Efficiency)

	return b.String()
}
