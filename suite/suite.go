package suite

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/OkanPinar/trendyways/config"
	"github.com/OkanPinar/trendyways/indicator/core"
	"github.com/OkanPinar/trendyways/indicator/levels"
	"github.com/OkanPinar/trendyways/indicator/momentum"
	"github.com/OkanPinar/trendyways/indicator/trend"
	"github.com/OkanPinar/trendyways/indicator/volatility"
	"github.com/OkanPinar/trendyways/indicator/volume"
)

// ---------------------------------------------------------------------
// Suite – runs every configured indicator over one bar series.
// ---------------------------------------------------------------------

// Suite is immutable after New and safe for concurrent Run calls.
type Suite struct {
	cfg    config.IndicatorConfig
	field  core.Field
	sel    core.Selector[core.Bar]
	logger zerolog.Logger
}

// Option customises a Suite.
type Option func(*Suite)

// WithLogger sets the logger used for per-indicator debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Suite) { s.logger = l }
}

// NewDefault creates a suite with the library defaults.
func NewDefault(opts ...Option) (*Suite, error) {
	return New(config.DefaultConfig(), opts...)
}

// New validates cfg and resolves its target field.
func New(cfg config.IndicatorConfig, opts ...Option) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	field, err := core.ParseField(cfg.TargetField)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	sel, err := core.FieldSelector(field)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	s := &Suite{cfg: cfg, field: field, sel: sel, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the configuration the suite was built with.
func (s *Suite) Config() config.IndicatorConfig { return s.cfg }

// Zone classifies the latest oscillator reading against its thresholds.
type Zone string

const (
	ZoneOverbought Zone = "Overbought"
	ZoneOversold   Zone = "Oversold"
	ZoneNeutral    Zone = "Neutral"
)

// classify leaves the zone empty for NaN readings (0/0 on a flat series).
func classify(v, overbought, oversold float64) Zone {
	switch {
	case math.IsNaN(v):
		return ""
	case v > overbought:
		return ZoneOverbought
	case v < oversold:
		return ZoneOversold
	default:
		return ZoneNeutral
	}
}

// Report collects the output of one Run. Indicators that were disabled or
// skipped leave their field at the zero value.
type Report struct {
	Bars  int
	Field core.Field

	SMA         core.Aligned[float64]
	EMA         core.Aligned[float64]
	RSI         core.Aligned[float64]
	MACD        []momentum.MACDPoint
	ATR         []volatility.TrueRangePoint
	ADX         trend.ADXResult
	Bollinger   core.Aligned[volatility.Band]
	MFI         core.Aligned[float64]
	OBV         []float64
	VPT         []float64
	VWAP        core.Aligned[float64]
	Momentum    core.Aligned[float64]
	ROC         core.Aligned[float64]
	FloorPivots []levels.FloorPivot

	// RSIZone and MFIZone classify the latest value; empty when not computed
	// or NaN.
	RSIZone Zone
	MFIZone Zone

	// Computed lists the indicators that produced values, in run order.
	Computed []string
	// Skipped maps an indicator to the reason it produced nothing.
	Skipped map[string]error
}

// Has reports whether the named indicator produced values.
func (r *Report) Has(name string) bool {
	for _, n := range r.Computed {
		if n == name {
			return true
		}
	}
	return false
}

type step struct {
	name string
	// run stores its result in the report and reports whether it is empty.
	run func() (bool, error)
}

func (s *Suite) steps(r *Report, bars []core.Bar, values []float64) []step {
	cfg := s.cfg
	return []step{
		{config.IndicatorSMA, func() (bool, error) {
			res, err := trend.SMA(values, cfg.SMAPeriod)
			r.SMA = res
			return res.Empty(), err
		}},
		{config.IndicatorEMA, func() (bool, error) {
			res, err := trend.EMA(values, cfg.EMAPeriod)
			r.EMA = res
			return res.Empty(), err
		}},
		{config.IndicatorRSI, func() (bool, error) {
			res, err := momentum.RSI(values, cfg.RSIOrder)
			r.RSI = res
			if v, ok := res.Last(); ok {
				r.RSIZone = classify(v, cfg.RSIOverbought, cfg.RSIOversold)
			}
			return res.Empty(), err
		}},
		{config.IndicatorMACD, func() (bool, error) {
			res, err := momentum.MACDWithParams(values, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal)
			r.MACD = res
			return len(res) == 0, err
		}},
		{config.IndicatorATR, func() (bool, error) {
			res, err := volatility.ATR(bars, cfg.ATRPeriod)
			r.ATR = res
			return len(res) == 0, err
		}},
		{config.IndicatorADX, func() (bool, error) {
			res, err := trend.ADXWithOrder(bars, cfg.ADXOrder)
			r.ADX = res
			// the index series fills in after order bars, ADX only after 2*order
			return res.ADX.Empty(), err
		}},
		{config.IndicatorBollinger, func() (bool, error) {
			res, err := volatility.Bollinger(values, cfg.BollingerPeriod, cfg.BollingerK)
			r.Bollinger = res
			return res.Empty(), err
		}},
		{config.IndicatorMFI, func() (bool, error) {
			res, err := volume.MFIWithPeriod(bars, cfg.MFIPeriod)
			r.MFI = res
			if v, ok := res.Last(); ok {
				r.MFIZone = classify(v, cfg.MFIOverbought, cfg.MFIOversold)
			}
			return res.Empty(), err
		}},
		{config.IndicatorOBV, func() (bool, error) {
			r.OBV = volume.OBV(bars)
			return len(r.OBV) == 0, nil
		}},
		{config.IndicatorVPT, func() (bool, error) {
			r.VPT = volume.VPT(bars)
			return len(r.VPT) == 0, nil
		}},
		{config.IndicatorVWAP, func() (bool, error) {
			res, err := volume.VWAP(bars)
			r.VWAP = res
			return res.Empty(), err
		}},
		{config.IndicatorMomentum, func() (bool, error) {
			res, err := momentum.Momentum(values, cfg.MomentumOrder)
			r.Momentum = res
			return res.Empty(), err
		}},
		{config.IndicatorROC, func() (bool, error) {
			res, err := momentum.ROC(values, cfg.ROCOrder)
			r.ROC = res
			return res.Empty(), err
		}},
		{config.IndicatorFloorPivots, func() (bool, error) {
			r.FloorPivots = levels.FloorPivots(bars)
			return len(r.FloorPivots) == 0, nil
		}},
	}
}

// Run computes every enabled indicator over bars. An indicator without
// enough data is recorded in Report.Skipped; any other error fails the run.
func (s *Suite) Run(bars []core.Bar) (*Report, error) {
	values, err := core.Project(bars, s.sel)
	if err != nil {
		return nil, fmt.Errorf("suite: %w", err)
	}
	r := &Report{
		Bars:    len(bars),
		Field:   s.field,
		Skipped: make(map[string]error),
	}

	for _, st := range s.steps(r, bars, values) {
		if !s.cfg.Enabled(st.name) {
			continue
		}
		empty, err := st.run()
		if err == nil && empty {
			err = fmt.Errorf("%s: %w: %d bars", st.name, core.ErrInsufficientData, len(bars))
		}
		switch {
		case errors.Is(err, core.ErrInsufficientData):
			r.Skipped[st.name] = err
			s.logger.Debug().Str("indicator", st.name).Err(err).Msg("indicator skipped")
		case err != nil:
			return nil, fmt.Errorf("suite: %s failed: %w", st.name, err)
		default:
			r.Computed = append(r.Computed, st.name)
			s.logger.Debug().Str("indicator", st.name).Msg("indicator computed")
		}
	}

	s.logger.Debug().
		Int("bars", len(bars)).
		Str("field", string(s.field)).
		Int("computed", len(r.Computed)).
		Int("skipped", len(r.Skipped)).
		Msg("suite run finished")
	return r, nil
}
