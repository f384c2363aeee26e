package config

import "max.ks1230/expense-tracker/internal/entity/category"

type AppConfig struct {
	PresetCategories []string `yaml:"categories"`
	Symbol           string   `yaml:"currency-symbol"`
	ClockTickSeconds int64    `yaml:"clock-tick-seconds"`
}

func (s *AppConfig) Categories() []string {
	if len(s.PresetCategories) == 0 {
		return category.Defaults()
	}
	return s.PresetCategories
}

func (s *AppConfig) CurrencySymbol() string {
	return s.Symbol
}

func (s *AppConfig) ClockTick() int64 {
	if s.ClockTickSeconds <= 0 {
		return 1
	}
	return s.ClockTickSeconds
}
