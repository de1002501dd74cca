package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Template TemplateConfig `mapstructure:"template"`
	Session  SessionConfig  `mapstructure:"session"`
	Draft    DraftConfig    `mapstructure:"draft"`
	Output   OutputConfig   `mapstructure:"output"`
}

// TemplateConfig holds template loading settings
type TemplateConfig struct {
	Path           string `mapstructure:"path"`             // Template workbook to load
	ReservedColumn string `mapstructure:"reserved_column"`  // Synthetic header name always stripped
	KeepMissingSTT bool   `mapstructure:"keep_missing_stt"` // Keep rows without a sequence number (lenient mode)
}

// SessionConfig holds the fixed rosters and edit semantics
type SessionConfig struct {
	Inspectors        []string `mapstructure:"inspectors"`         // Allowed inspector names
	Stations          []string `mapstructure:"stations"`           // Allowed station codes
	StatusOptions     []string `mapstructure:"status_options"`     // Allowed Status values
	EnableStation     bool     `mapstructure:"enable_station"`     // Inject/require the STATION column
	BroadcastIdentity bool     `mapstructure:"broadcast_identity"` // Inspector/station edits touch every row
}

// DraftConfig holds draft persistence settings
type DraftConfig struct {
	Dir            string `mapstructure:"dir"`              // Directory holding the draft slot
	Slot           string `mapstructure:"slot"`             // Slot name (single file, no versioning)
	SoftLimitBytes int64  `mapstructure:"soft_limit_bytes"` // Size warning threshold
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir        string `mapstructure:"dir"`         // Output directory
	ReportName string `mapstructure:"report_name"` // Report filename prefix
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Println("  Template: ./data/template.xlsx")
			fmt.Println("  Output:   ./output")
			fmt.Println("==========================================")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	// Template defaults
	v.SetDefault("template.path", "./data/template.xlsx")
	v.SetDefault("template.reserved_column", "__EMPTY")
	v.SetDefault("template.keep_missing_stt", false)

	// Session defaults: the rosters are fixed, not template-configurable
	v.SetDefault("session.inspectors", []string{
		"TBHOA",
		"DTPHU",
		"CTHUY",
		"NQHUY",
		"NGHTHO",
		"LPTPHONG",
		"LHQUAN",
		"TVHOANG",
		"TTTHIEN",
	})
	v.SetDefault("session.stations", []string{"SGN", "HAN", "DAD"})
	v.SetDefault("session.status_options", []string{
		"Checked",
		"Not Checked",
		"Finding",
	})
	v.SetDefault("session.enable_station", true)
	v.SetDefault("session.broadcast_identity", true)

	// Draft defaults
	v.SetDefault("draft.dir", "./output")
	v.SetDefault("draft.slot", "draft")
	v.SetDefault("draft.soft_limit_bytes", int64(5*1024*1024))

	// Output defaults
	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.report_name", "Daily Nightshift report")
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absTemplate, err := filepath.Abs(c.Template.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve template.path: %w", err)
	}
	c.Template.Path = absTemplate

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	absDraft, err := filepath.Abs(c.Draft.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve draft.dir: %w", err)
	}
	c.Draft.Dir = absDraft

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// DraftPath returns the full path of the single draft slot
func (c *Config) DraftPath() string {
	return filepath.Join(c.Draft.Dir, c.Draft.Slot+".json")
}

// ValidInspector checks name against the inspector roster
func (c *Config) ValidInspector(name string) bool {
	return contains(c.Session.Inspectors, name)
}

// ValidStation checks code against the station roster
func (c *Config) ValidStation(code string) bool {
	return contains(c.Session.Stations, code)
}

// ValidStatus checks value against the status options
func (c *Config) ValidStatus(value string) bool {
	return contains(c.Session.StatusOptions, value)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Template.Path == "" {
		return fmt.Errorf("template.path cannot be empty")
	}

	if len(c.Session.Inspectors) == 0 {
		return fmt.Errorf("session.inspectors must contain at least one name")
	}

	if c.Session.EnableStation && len(c.Session.Stations) == 0 {
		return fmt.Errorf("session.stations must contain at least one code when station support is enabled")
	}

	if len(c.Session.StatusOptions) == 0 {
		return fmt.Errorf("session.status_options must contain at least one value")
	}

	if c.Draft.Slot == "" {
		return fmt.Errorf("draft.slot cannot be empty")
	}

	if c.Output.ReportName == "" {
		return fmt.Errorf("output.report_name cannot be empty")
	}

	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Nightshift Report Configuration ===")
	fmt.Printf("Template:         %s\n", c.Template.Path)
	fmt.Printf("Reserved Column:  %s\n", c.Template.ReservedColumn)
	fmt.Printf("Keep Missing STT: %v\n", c.Template.KeepMissingSTT)
	fmt.Printf("Inspectors:       %v\n", c.Session.Inspectors)
	fmt.Printf("Stations:         %v (enabled: %v)\n", c.Session.Stations, c.Session.EnableStation)
	fmt.Printf("Status Options:   %v\n", c.Session.StatusOptions)
	fmt.Printf("Broadcast Edits:  %v\n", c.Session.BroadcastIdentity)
	fmt.Printf("Draft Slot:       %s\n", c.DraftPath())
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Report Name:      %s\n", c.Output.ReportName)
	fmt.Println("=======================================")
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
