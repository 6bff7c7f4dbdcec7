// Package stondebug pretty-prints data-model trees for diagnostics. It
// exists because unexported struct fields (model.Entity, model.Type and
// friends expose no public fields, only accessor methods) defeat
// fmt's default struct formatting and reflect-based dumpers that expect
// field visibility; k0kubun/pp/v3 walks the accessor surface instead and
// produces a readable, colorized tree.
package stondebug

import (
	"io"

	"github.com/k0kubun/pp/v3"

	"github.com/Alphish/ston-go/util"
)

// Printer wraps a pp.PrettyPrinter configured for STON's data model: no
// color codes when writing to a file or buffer, full depth (the model
// has no cycles, so there is no risk of runaway recursion).
type Printer struct {
	pp *pp.PrettyPrinter
}

// New builds a Printer writing to w.
func New(w io.Writer) *Printer {
	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(false)
	return &Printer{pp: printer}
}

// Dump pretty-prints value (an entity, type, token, or any other STON
// value) to the printer's sink.
func (p *Printer) Dump(value any) {
	p.pp.Println(value)
}

// Sprint renders value as a pretty-printed string without writing it
// anywhere, for use in error messages and test failure output.
func Sprint(value any) string {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return printer.Sprint(value)
}

// DumpAll pretty-prints every value in values in order.
func (p *Printer) DumpAll(values []any) {
	for _, rendered := range util.TransformSlice(values, Sprint) {
		p.pp.Println(rendered)
	}
}
