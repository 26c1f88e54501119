package config

import "fmt"

// Loader bundles the configuration file paths of one run.
type Loader struct {
	ConfigPath string
	EnvPath    string
	RulesPath  string
}

// Components holds everything the loader produced. Rules is nil when no
// rules file was given; Token is empty when EnvPath was left blank, for
// commands that never call the API.
type Components struct {
	Config *Config
	Token  string
	Rules  *Rules
}

// Load reads all configured files and returns the assembled components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	cfg, err := Load(l.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	comp.Config = cfg

	if l.EnvPath != "" {
		token, err := LoadToken(l.EnvPath)
		if err != nil {
			return nil, fmt.Errorf("load token: %w", err)
		}
		comp.Token = token
	}

	if l.RulesPath != "" {
		rules, err := LoadRules(l.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("load rules: %w", err)
		}
		comp.Rules = rules
	}

	return comp, nil
}
