// Package config loads the YAML settings file and turns it into the
// immutable tables and options the engine runs with.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"workpackengine/engine"
	"workpackengine/imports"
	"workpackengine/tables"
)

// Config mirrors the settings file layout.
type Config struct {
	Columns      ColumnsConfig           `yaml:"columns"`
	Processing   ProcessingConfig        `yaml:"processing"`
	Reference    ReferenceConfig         `yaml:"reference"`
	SeqPolicies  map[string]PolicyConfig `yaml:"seq_policies"`
	Coefficients CoefficientsConfig      `yaml:"coefficients"`
	Thresholds   ThresholdsConfig        `yaml:"thresholds"`
}

// ColumnsConfig names the workpack dataset columns.
type ColumnsConfig struct {
	SeqNo       string `yaml:"seq_no"`
	Title       string `yaml:"title"`
	PlannedMhrs string `yaml:"planned_mhrs"`
	SpecialCode string `yaml:"special_code"`
	Label       string `yaml:"label"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
	ToolName    string `yaml:"tool_name"`
	ToolType    string `yaml:"tool_type"`
	ToolPartNo  string `yaml:"tool_partno"`
	TotalQty    string `yaml:"total_qty"`
	AltQty      string `yaml:"alt_qty"`
}

// ProcessingConfig toggles optional run features.
type ProcessingConfig struct {
	EnableSpecialCode bool   `yaml:"enable_special_code"`
	EnableToolControl bool   `yaml:"enable_tool_control"`
	Delimiter         string `yaml:"id_delimiter"` // default "/"
}

// ReferenceConfig describes the reference workbook and bonus sheet layout.
type ReferenceConfig struct {
	TaskSheet    string `yaml:"task_sheet"`
	TaskIDColumn string `yaml:"task_id_column"`
	EOSheet      string `yaml:"eo_sheet"`
	EOIDColumn   string `yaml:"eo_id_column"`
	EOPrefix     string `yaml:"eo_prefix"`

	BonusPrimaryColumn   string `yaml:"bonus_primary_column"`
	BonusSecondaryColumn string `yaml:"bonus_secondary_column"`
	BonusAmountColumn    string `yaml:"bonus_amount_column"`
	BonusActiveColumn    string `yaml:"bonus_active_column"`
}

// PolicyConfig is one sequence-prefix policy entry in the settings file.
// Mode is one of "include", "no_check", "exclude"; IDRule is one of
// "delimiter", "paren", "verbatim".
type PolicyConfig struct {
	Mode   string `yaml:"mode"`
	IDRule string `yaml:"id_rule"`
}

// CoefficientsConfig mirrors the coefficient table settings.
type CoefficientsConfig struct {
	Default         float64            `yaml:"default"`
	Prefixes        map[string]float64 `yaml:"prefixes"`
	SkipMatches     []string           `yaml:"skip_matches"`
	SkipCoefficient float64            `yaml:"skip_coefficient"`
}

// ThresholdsConfig carries the run's numeric limits.
type ThresholdsConfig struct {
	HighMhrsHours float64 `yaml:"high_mhrs_hours"`
	WorkpackDays  int     `yaml:"workpack_days"`
}

// Load reads and validates a settings file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for prefix, p := range c.SeqPolicies {
		if _, err := parseMode(p.Mode); err != nil {
			return fmt.Errorf("seq_policies[%s]: %w", prefix, err)
		}
		if _, err := parseIDRule(p.IDRule); err != nil {
			return fmt.Errorf("seq_policies[%s]: %w", prefix, err)
		}
	}
	if len(c.Processing.Delimiter) > 1 {
		return fmt.Errorf("id_delimiter must be a single character, got %q", c.Processing.Delimiter)
	}
	return nil
}

func parseMode(mode string) (tables.ProcessingPolicy, error) {
	switch mode {
	case "", "include":
		return tables.PolicyInclude, nil
	case "no_check":
		return tables.PolicySkipReference, nil
	case "exclude":
		return tables.PolicyExclude, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want include, no_check or exclude)", mode)
	}
}

func parseIDRule(rule string) (tables.ExtractionRule, error) {
	switch rule {
	case "", "delimiter":
		return tables.ExtractBeforeDelimiter, nil
	case "paren":
		return tables.ExtractBeforeParen, nil
	case "verbatim":
		return tables.ExtractVerbatim, nil
	default:
		return 0, fmt.Errorf("unknown id_rule %q (want delimiter, paren or verbatim)", rule)
	}
}

// PolicyTable builds the policy table from the settings. Load has already
// validated the entries.
func (c *Config) PolicyTable() *tables.PolicyTable {
	entries := make(map[string]tables.PolicyEntry, len(c.SeqPolicies))
	for prefix, p := range c.SeqPolicies {
		mode, _ := parseMode(p.Mode)
		rule, _ := parseIDRule(p.IDRule)
		entries[prefix] = tables.PolicyEntry{Processing: mode, Extraction: rule}
	}
	return tables.NewPolicyTable(entries)
}

// CoefficientTable builds the coefficient table from the settings.
func (c *Config) CoefficientTable() *tables.CoefficientTable {
	return tables.NewCoefficientTable(tables.CoefficientConfig{
		Prefixes:        c.Coefficients.Prefixes,
		Default:         c.Coefficients.Default,
		SkipMatches:     c.Coefficients.SkipMatches,
		SkipCoefficient: c.Coefficients.SkipCoefficient,
	})
}

// ColumnMap maps the settings onto the engine's column names.
func (c *Config) ColumnMap() engine.ColumnMap {
	return engine.ColumnMap{
		SeqNo:       c.Columns.SeqNo,
		Title:       c.Columns.Title,
		PlannedMhrs: c.Columns.PlannedMhrs,
		SpecialCode: c.Columns.SpecialCode,
		Label:       c.Columns.Label,
		StartDate:   c.Columns.StartDate,
		EndDate:     c.Columns.EndDate,
		ToolName:    c.Columns.ToolName,
		ToolType:    c.Columns.ToolType,
		ToolPartNo:  c.Columns.ToolPartNo,
		TotalQty:    c.Columns.TotalQty,
		AltQty:      c.Columns.AltQty,
	}
}

// Options maps the settings onto engine options. The logger and ignore
// list are supplied by the caller.
func (c *Config) Options() engine.Options {
	delimiter := '/'
	if c.Processing.Delimiter != "" {
		delimiter = rune(c.Processing.Delimiter[0])
	}
	return engine.Options{
		HighHoursThreshold: c.Thresholds.HighMhrsHours,
		Delimiter:          delimiter,
		EnableSpecialCode:  c.Processing.EnableSpecialCode,
		EnableToolControl:  c.Processing.EnableToolControl,
		WorkpackDays:       c.Thresholds.WorkpackDays,
	}
}

// ReferenceLayout maps the settings onto the reference workbook layout.
func (c *Config) ReferenceLayout() imports.ReferenceLayout {
	return imports.ReferenceLayout{
		TaskSheet:  c.Reference.TaskSheet,
		TaskColumn: c.Reference.TaskIDColumn,
		EOSheet:    c.Reference.EOSheet,
		EOColumn:   c.Reference.EOIDColumn,
		EOPrefix:   c.Reference.EOPrefix,
	}
}

// BonusColumns maps the settings onto the bonus sheet layout, falling back
// to the conventional column names.
func (c *Config) BonusColumns() imports.BonusColumns {
	cols := imports.DefaultBonusColumns()
	if c.Reference.BonusPrimaryColumn != "" {
		cols.Primary = c.Reference.BonusPrimaryColumn
	}
	if c.Reference.BonusSecondaryColumn != "" {
		cols.Secondary = c.Reference.BonusSecondaryColumn
	}
	if c.Reference.BonusAmountColumn != "" {
		cols.Amount = c.Reference.BonusAmountColumn
	}
	if c.Reference.BonusActiveColumn != "" {
		cols.Active = c.Reference.BonusActiveColumn
	}
	return cols
}
