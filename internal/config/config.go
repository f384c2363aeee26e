package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configFile = "data/config.yaml"

type config struct {
	App    AppConfig    `yaml:"app"`
	Export ExportConfig `yaml:"export"`
	Report ReportConfig `yaml:"report"`
}

type Service struct {
	config config
}

func New() (*Service, error) {
	s := &Service{}

	rawYAML, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	return s, nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Export() *ExportConfig {
	return &s.config.Export
}

func (s *Service) Report() *ReportConfig {
	return &s.config.Report
}
