package shenshu

import (
	"github.com/f3rmion/shenshu/internal/charset"
	"github.com/f3rmion/shenshu/internal/signs"
	"github.com/f3rmion/shenshu/internal/strokes"
	"go.uber.org/zap"
)

// Diviner runs the name divination pipeline against fixed tables.
type Diviner struct {
	strokes *strokes.Table
	signs   *signs.Table
	logger  *zap.Logger
}

// Option configures a Diviner.
type Option func(*Diviner)

// WithLogger sets the logger used for pipeline tracing.
func WithLogger(l *zap.Logger) Option {
	return func(d *Diviner) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSigns replaces the embedded course table.
func WithSigns(t *signs.Table) Option {
	return func(d *Diviner) {
		if t != nil {
			d.signs = t
		}
	}
}

// WithStrokes replaces the embedded stroke table.
func WithStrokes(t *strokes.Table) Option {
	return func(d *Diviner) {
		if t != nil {
			d.strokes = t
		}
	}
}

// NewDiviner creates a Diviner using the embedded tables unless overridden.
func NewDiviner(opts ...Option) *Diviner {
	d := &Diviner{
		strokes: strokes.Default(),
		signs:   signs.Default(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Divine validates a name and computes its reading. Validation failures
// return ErrNotChinese or ErrTooLong and no result.
func (d *Diviner) Divine(input string) (*Result, error) {
	name, err := Validate(input)
	if err != nil {
		d.logger.Debug("Rejected name", zap.String("input", input), zap.Error(err))
		return nil, err
	}

	trad := charset.ToTraditional(name)
	st := d.strokes.OfString(trad)
	course := CourseNumber(st)
	sign := d.signs.Lookup(course)

	d.logger.Debug("Divined name",
		zap.String("input", name),
		zap.String("traditional", trad),
		zap.Int("course", course),
		zap.Bool("found", sign.Found()))

	return &Result{
		Input:       name,
		Traditional: trad,
		Strokes:     st,
		Course:      course,
		Sign:        sign,
	}, nil
}

// Signs returns the course table in use.
func (d *Diviner) Signs() *signs.Table {
	return d.signs
}

// Strokes returns the stroke table in use.
func (d *Diviner) Strokes() *strokes.Table {
	return d.strokes
}
