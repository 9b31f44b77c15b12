// seehuhn.de/go/plot - a 2D plotting library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package device

import "fmt"

// RecorderName is the driver name of the [Recorder].
const RecorderName = "record"

func init() {
	Register(RecorderName, func(cfg Config) (Device, error) {
		if err := cfg.Check(); err != nil {
			return nil, err
		}
		return NewRecorder(cfg), nil
	})
}

// OpKind identifies a device operation.
type OpKind int

// These are the operations recorded by a [Recorder].
const (
	OpBeginPage OpKind = iota
	OpEndPage
	OpLineWidth
	OpLineStyle
	OpMoveTo
	OpLineTo
	OpStroke
	OpClose
)

func (k OpKind) String() string {
	switch k {
	case OpBeginPage:
		return "BeginPage"
	case OpEndPage:
		return "EndPage"
	case OpLineWidth:
		return "LineWidth"
	case OpLineStyle:
		return "LineStyle"
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpStroke:
		return "Stroke"
	case OpClose:
		return "Close"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is a single recorded device operation.
// X holds the line width for OpLineWidth; X and Y hold the point for
// OpMoveTo and OpLineTo.
type Op struct {
	Kind OpKind
	X, Y float64
}

func (op Op) String() string {
	switch op.Kind {
	case OpMoveTo, OpLineTo:
		return fmt.Sprintf("%s(%g, %g)", op.Kind, op.X, op.Y)
	case OpLineWidth:
		return fmt.Sprintf("%s(%g)", op.Kind, op.X)
	default:
		return op.Kind.String()
	}
}

// Recorder is a device which records all operations in memory.
// It is useful for tests and for dry runs.
type Recorder struct {
	cfg Config

	// Ops lists the operations performed so far.
	Ops []Op

	// Style is the most recently set line style.
	Style LineStyle

	// Fail, if set, is called before each operation is recorded.
	// A non-nil return value is returned to the caller and the
	// operation is not recorded.
	Fail func(op Op) error

	inPage bool
	closed bool
}

// NewRecorder returns a new Recorder with the given page configuration.
func NewRecorder(cfg Config) *Recorder {
	return &Recorder{cfg: cfg, Style: DefaultLineStyle}
}

// Name implements the [Device] interface.
func (r *Recorder) Name() string { return RecorderName }

// PageSize implements the [Device] interface.
func (r *Recorder) PageSize() (width, height float64) {
	return r.cfg.Width, r.cfg.Height
}

// Resolution implements the [Device] interface.
func (r *Recorder) Resolution() float64 { return r.cfg.Resolution }

func (r *Recorder) record(op Op) error {
	if r.closed {
		return ErrClosed
	}
	if r.Fail != nil {
		if err := r.Fail(op); err != nil {
			return err
		}
	}
	r.Ops = append(r.Ops, op)
	return nil
}

// BeginPage implements the [Device] interface.
func (r *Recorder) BeginPage() error {
	if r.inPage {
		return ErrPageOpen
	}
	if err := r.record(Op{Kind: OpBeginPage}); err != nil {
		return err
	}
	r.inPage = true
	return nil
}

// EndPage implements the [Device] interface.
func (r *Recorder) EndPage() error {
	if !r.inPage {
		return ErrNoPage
	}
	if err := r.record(Op{Kind: OpEndPage}); err != nil {
		return err
	}
	r.inPage = false
	return nil
}

// SetLineWidth implements the [Device] interface.
func (r *Recorder) SetLineWidth(width float64) error {
	return r.record(Op{Kind: OpLineWidth, X: width})
}

// SetLineStyle implements the [Device] interface.
func (r *Recorder) SetLineStyle(style LineStyle) error {
	if err := r.record(Op{Kind: OpLineStyle}); err != nil {
		return err
	}
	r.Style = style
	return nil
}

// MoveTo implements the [Device] interface.
func (r *Recorder) MoveTo(x, y float64) error {
	if !r.inPage {
		return ErrNoPage
	}
	return r.record(Op{Kind: OpMoveTo, X: x, Y: y})
}

// LineTo implements the [Device] interface.
func (r *Recorder) LineTo(x, y float64) error {
	if !r.inPage {
		return ErrNoPage
	}
	return r.record(Op{Kind: OpLineTo, X: x, Y: y})
}

// Stroke implements the [Device] interface.
func (r *Recorder) Stroke() error {
	if !r.inPage {
		return ErrNoPage
	}
	return r.record(Op{Kind: OpStroke})
}

// Close implements the [Device] interface.
func (r *Recorder) Close() error {
	if r.closed {
		return ErrClosed
	}
	if r.inPage {
		if err := r.EndPage(); err != nil {
			return err
		}
	}
	if err := r.record(Op{Kind: OpClose}); err != nil {
		return err
	}
	r.closed = true
	return nil
}

// Count returns the number of recorded operations of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
