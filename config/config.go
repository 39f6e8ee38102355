// Package config holds the tunable parameters shared by the indicator suite
// and their YAML representation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/OkanPinar/trendyways/indicator/core"
)

// Indicator names accepted in IndicatorConfig.Indicators.
const (
	IndicatorSMA         = "sma"
	IndicatorEMA         = "ema"
	IndicatorRSI         = "rsi"
	IndicatorMACD        = "macd"
	IndicatorATR         = "atr"
	IndicatorADX         = "adx"
	IndicatorBollinger   = "bollinger"
	IndicatorMFI         = "mfi"
	IndicatorOBV         = "obv"
	IndicatorVPT         = "vpt"
	IndicatorVWAP        = "vwap"
	IndicatorMomentum    = "momentum"
	IndicatorROC         = "roc"
	IndicatorFloorPivots = "floor_pivots"
)

// Indicators lists every indicator name in the order the suite runs them.
var Indicators = []string{
	IndicatorSMA, IndicatorEMA, IndicatorRSI, IndicatorMACD, IndicatorATR,
	IndicatorADX, IndicatorBollinger, IndicatorMFI, IndicatorOBV, IndicatorVPT,
	IndicatorVWAP, IndicatorMomentum, IndicatorROC, IndicatorFloorPivots,
}

// IndicatorConfig is the central place for all tunable parameters.
type IndicatorConfig struct {
	RSIOrder        int     `yaml:"rsi_order"`
	ATRPeriod       int     `yaml:"atr_period"`
	ADXOrder        int     `yaml:"adx_order"`
	MFIPeriod       int     `yaml:"mfi_period"`
	MACDFast        int     `yaml:"macd_fast"`
	MACDSlow        int     `yaml:"macd_slow"`
	MACDSignal      int     `yaml:"macd_signal"`
	SMAPeriod       int     `yaml:"sma_period"`
	EMAPeriod       int     `yaml:"ema_period"`
	BollingerPeriod int     `yaml:"bollinger_period"`
	BollingerK      float64 `yaml:"bollinger_k"`
	MomentumOrder   int     `yaml:"momentum_order"`
	ROCOrder        int     `yaml:"roc_order"`

	RSIOverbought float64 `yaml:"rsi_overbought"` // RSI > this → overbought
	RSIOversold   float64 `yaml:"rsi_oversold"`   // RSI < this → oversold
	MFIOverbought float64 `yaml:"mfi_overbought"`
	MFIOversold   float64 `yaml:"mfi_oversold"`

	// TargetField is the bar attribute fed to the single-series indicators.
	TargetField string `yaml:"target_field"`
	// Indicators restricts the suite to the named indicators; empty runs all.
	Indicators []string `yaml:"indicators"`
}

// DefaultConfig returns the classic parameters of every indicator.
func DefaultConfig() IndicatorConfig {
	return IndicatorConfig{
		RSIOrder:        14,
		ATRPeriod:       14,
		ADXOrder:        14,
		MFIPeriod:       14,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		SMAPeriod:       20,
		EMAPeriod:       10,
		BollingerPeriod: 20,
		BollingerK:      2,
		MomentumOrder:   10,
		ROCOrder:        10,
		RSIOverbought:   70,
		RSIOversold:     30,
		MFIOverbought:   80,
		MFIOversold:     20,
		TargetField:     string(core.FieldClose),
	}
}

// maxReasonablePeriod bounds every look-back; anything larger is a typo.
const maxReasonablePeriod = 1_000_000

// Validate checks that the configuration values are sensible.
func (c IndicatorConfig) Validate() error {
	periods := []struct {
		name  string
		value int
	}{
		{"rsi_order", c.RSIOrder},
		{"atr_period", c.ATRPeriod},
		{"adx_order", c.ADXOrder},
		{"mfi_period", c.MFIPeriod},
		{"macd_fast", c.MACDFast},
		{"macd_slow", c.MACDSlow},
		{"macd_signal", c.MACDSignal},
		{"sma_period", c.SMAPeriod},
		{"ema_period", c.EMAPeriod},
		{"bollinger_period", c.BollingerPeriod},
		{"momentum_order", c.MomentumOrder},
		{"roc_order", c.ROCOrder},
	}
	for _, p := range periods {
		if p.value <= 0 {
			return fmt.Errorf("%s must be greater than 0, got %d", p.name, p.value)
		}
		if p.value > maxReasonablePeriod {
			return fmt.Errorf("%s is unreasonably large (%d); must be <= %d", p.name, p.value, maxReasonablePeriod)
		}
	}
	if c.MACDFast >= c.MACDSlow {
		return fmt.Errorf("macd_fast (%d) must be smaller than macd_slow (%d)", c.MACDFast, c.MACDSlow)
	}
	if c.BollingerK < 0 {
		return fmt.Errorf("bollinger_k: %w, got %g", core.ErrInvalidMultiplier, c.BollingerK)
	}
	if c.RSIOverbought <= c.RSIOversold {
		return errors.New("RSI overbought threshold must be greater than oversold")
	}
	if c.MFIOverbought <= c.MFIOversold {
		return errors.New("MFI overbought threshold must be greater than oversold")
	}
	if _, err := core.ParseField(c.TargetField); err != nil {
		return fmt.Errorf("target_field: %w", err)
	}
	for _, name := range c.Indicators {
		if !isIndicator(name) {
			return fmt.Errorf("indicators: unknown indicator %q", name)
		}
	}
	return nil
}

// Enabled reports whether the named indicator should run.
func (c IndicatorConfig) Enabled(name string) bool {
	if len(c.Indicators) == 0 {
		return true
	}
	for _, n := range c.Indicators {
		if strings.EqualFold(strings.TrimSpace(n), name) {
			return true
		}
	}
	return false
}

func isIndicator(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range Indicators {
		if n == name {
			return true
		}
	}
	return false
}

// Parse decodes a YAML document on top of DefaultConfig and validates it.
func Parse(data []byte) (IndicatorConfig, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one YAML document from r. Keys missing from the document keep
// their defaults; unknown keys are an error.
func Decode(r io.Reader) (IndicatorConfig, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return IndicatorConfig{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return IndicatorConfig{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
