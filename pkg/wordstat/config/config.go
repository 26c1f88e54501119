// Package config loads the settings document, the API token and the
// optional classification rules file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/internalerr"
)

// BusinessInfo describes the business the keywords are gathered for.
type BusinessInfo struct {
	Niche       string   `json:"niche"`
	City        string   `json:"city"`
	RegionCode  int      `json:"region_code"`
	Site        string   `json:"site"`
	Services    []string `json:"services"`
	Competitors []string `json:"competitors"`
	UTP         []string `json:"utp"`
}

// ParserSettings controls acquisition and recursive expansion.
type ParserSettings struct {
	Devices              []string `json:"devices"`
	DelayBetweenRequests float64  `json:"delay_between_requests"`
	TopResultsLimit      int      `json:"top_results_limit"`
	MaxRetries           int      `json:"max_retries"`
	MinusWords           []string `json:"minus_words"`
	RecursiveParsing     bool     `json:"recursive_parsing"`
	RecursionDepth       int      `json:"recursion_depth"`
	RecursiveTopQueries  int      `json:"recursive_top_queries"`
}

// ArticleBlock configures one category block of the content plan.
type ArticleBlock struct {
	Priority string `json:"priority"`
}

// ContentPlanSettings controls clustering thresholds and plan rendering.
type ContentPlanSettings struct {
	MinFrequencyThreshold   int                     `json:"min_frequency_threshold"`
	TargetPage              string                  `json:"target_page"`
	ArticlesPerMonth        int                     `json:"articles_per_month"`
	PlanningPeriodMonths    int                     `json:"planning_period_months"`
	ExpectedTrafficPerMonth string                  `json:"expected_traffic_per_month"`
	ConversionRatePercent   string                  `json:"conversion_rate_percent"`
	TargetTopPositions      int                     `json:"target_top_positions"`
	ArticleBlocks           map[string]ArticleBlock `json:"article_blocks"`
	InternalLinks           []string                `json:"internal_links"`
	AnchorTexts             []string                `json:"anchor_texts"`
	Phone                   string                  `json:"phone"`
	PricePerSqm             string                  `json:"price_per_sqm"`
	ArticleLengthWords      string                  `json:"article_length_words"`
}

// Config is the full settings document.
type Config struct {
	BusinessInfo        *BusinessInfo        `json:"business_info"`
	ParserSettings      *ParserSettings      `json:"parser_settings"`
	ContentPlanSettings *ContentPlanSettings `json:"content_plan_settings"`
}

// Load reads and validates the JSON settings document. Missing files,
// malformed JSON and absent required sections are all configuration
// errors: the run aborts before any network activity.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w: %w", path, err, internalerr.ErrInvalidConfig)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w: %w", path, err, internalerr.ErrInvalidConfig)
	}

	if cfg.BusinessInfo == nil {
		return nil, fmt.Errorf("config %s: missing section business_info: %w", path, internalerr.ErrInvalidConfig)
	}
	if cfg.ParserSettings == nil {
		return nil, fmt.Errorf("config %s: missing section parser_settings: %w", path, internalerr.ErrInvalidConfig)
	}
	if cfg.ContentPlanSettings == nil {
		return nil, fmt.Errorf("config %s: missing section content_plan_settings: %w", path, internalerr.ErrInvalidConfig)
	}

	if cfg.ParserSettings.MaxRetries <= 0 {
		cfg.ParserSettings.MaxRetries = 3
	}
	if cfg.ContentPlanSettings.MinFrequencyThreshold <= 0 {
		cfg.ContentPlanSettings.MinFrequencyThreshold = 50
	}

	return &cfg, nil
}

// TokenEnvKey is the variable holding the Wordstat API token.
const TokenEnvKey = "YANDEX_WORDSTAT_TOKEN"

// LoadToken reads the API token from a .env file (KEY=VALUE lines,
// # comments skipped). A missing or placeholder token is fatal.
func LoadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w: %w", path, err, internalerr.ErrTokenMissing)
	}

	var token string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) == TokenEnvKey {
			token = strings.TrimSpace(value)
		}
	}

	if token == "" || token == "your_token_here" {
		return "", fmt.Errorf("%s: %s not configured: %w", path, TokenEnvKey, internalerr.ErrTokenMissing)
	}
	return token, nil
}
