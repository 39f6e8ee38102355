package core

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any plain numeric element a raw series may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Bar is one period's OHLCV observation.
type Bar struct {
	Open   float64 `json:"open" yaml:"open"`
	High   float64 `json:"high" yaml:"high"`
	Low    float64 `json:"low" yaml:"low"`
	Close  float64 `json:"close" yaml:"close"`
	Volume float64 `json:"volume" yaml:"volume"`
}

// Selector projects a record onto the number an operation works on.
type Selector[T any] func(T) float64

// Field names one numeric attribute of a Bar.
type Field string

const (
	FieldOpen   Field = "open"
	FieldHigh   Field = "high"
	FieldLow    Field = "low"
	FieldClose  Field = "close"
	FieldVolume Field = "volume"
)

// Fields lists every field a Bar exposes, in OHLCV order.
var Fields = []Field{FieldOpen, FieldHigh, FieldLow, FieldClose, FieldVolume}

// ParseField normalises a field name. The empty name is reported as a missing
// selector so that callers cannot fall back to a default silently.
func ParseField(name string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return "", ErrMissingSelector
	}
	for _, known := range Fields {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// FieldSelector returns the selector reading the named attribute of a Bar.
func FieldSelector(f Field) (Selector[Bar], error) {
	switch f {
	case FieldOpen:
		return func(b Bar) float64 { return b.Open }, nil
	case FieldHigh:
		return func(b Bar) float64 { return b.High }, nil
	case FieldLow:
		return func(b Bar) float64 { return b.Low }, nil
	case FieldClose:
		return func(b Bar) float64 { return b.Close }, nil
	case FieldVolume:
		return func(b Bar) float64 { return b.Volume }, nil
	case "":
		return nil, ErrMissingSelector
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
}

// Project maps every record of series through sel.
func Project[T any](series []T, sel Selector[T]) ([]float64, error) {
	if sel == nil {
		return nil, ErrMissingSelector
	}
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = sel(v)
	}
	return out, nil
}

// Closes is a shortcut for projecting bars onto their close prices.
func Closes(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// TypicalPrice is (high+low+close)/3.
func (b Bar) TypicalPrice() float64 {
	return (b.High + b.Low + b.Close) / 3
}

// Range is high-low.
func (b Bar) Range() float64 {
	return b.High - b.Low
}
