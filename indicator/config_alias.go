package indicator

import "github.com/OkanPinar/trendyways/config"

// Re-export config defaults and types so callers of this package can stay lean.
type IndicatorConfig = config.IndicatorConfig

func DefaultConfig() IndicatorConfig {
	return config.DefaultConfig()
}
