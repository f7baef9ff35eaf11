package engine

import (
	"sort"

	"go.uber.org/zap"

	"workpackengine/tables"
)

// Tables bundles the immutable lookup tables one engine works against.
// Bonuses and References may be nil; the matching features then resolve to
// their documented defaults (bonus 0, no reconciliation).
type Tables struct {
	Policies     *tables.PolicyTable
	Coefficients *tables.CoefficientTable
	Bonuses      *tables.BonusTable
	References   *tables.ReferenceSets
}

// Options carries the per-run configuration scalars.
type Options struct {
	// HighHoursThreshold flags rows whose adjusted hours exceed it.
	HighHoursThreshold float64
	// Delimiter used by the delimiter extraction rule. Zero means '/'.
	Delimiter rune
	// EnableSpecialCode turns on the classification-code distribution.
	EnableSpecialCode bool
	// EnableToolControl turns on the zero-availability tool/spare check.
	EnableToolControl bool
	// IgnoreItems filters tool-control findings (part number or tool
	// name, case-insensitive).
	IgnoreItems []string
	// WorkpackDays overrides the day count derived from the dataset
	// dates when positive.
	WorkpackDays int
	// Logger receives run diagnostics; nil means no logging.
	Logger *zap.Logger
}

// CodeHours is one bucket of the classification-code distribution.
type CodeHours struct {
	Code   string
	Hours  float64
	PerDay float64
	Rows   int
}

// Result is the aggregate output of one processing run.
type Result struct {
	TotalRows     int
	ProcessedRows int
	ExcludedRows  int
	DuplicateRows int

	TotalBaseHours     float64
	TotalAdjustedHours float64 // sum of adjusted row hours + bonus

	Bonus          float64
	BonusBreakdown []tables.SourceBonus

	// Bonus lookup keys, derived once from the work-package label.
	AircraftType string
	WorkpackType string

	Period WorkpackPeriod

	SpecialCodeEnabled bool
	CodeDistribution   []CodeHours

	HighHoursThreshold float64
	HighHours          []LineItem

	NewTaskIDs []TaskRef

	ToolControlEnabled bool
	ToolIssues         []ToolIssue

	Warnings []string
}

// Engine processes one work package at a time. It holds only read-only
// state, so distinct instances may run in parallel; a single instance
// processes datasets sequentially.
type Engine struct {
	tables tables2
	cols   ColumnMap
	opts   Options
	log    *zap.Logger
}

// tables2 is the internal, nil-safe view of Tables.
type tables2 struct {
	policies     *tables.PolicyTable
	coefficients *tables.CoefficientTable
	bonuses      *tables.BonusTable
	references   *tables.ReferenceSets
}

// New builds an engine. Policy and coefficient tables default to empty
// tables (everything included, coefficient 1.0) when nil.
func New(t Tables, cols ColumnMap, opts Options) *Engine {
	if t.Policies == nil {
		t.Policies = tables.NewPolicyTable(nil)
	}
	if t.Coefficients == nil {
		t.Coefficients = tables.NewCoefficientTable(tables.CoefficientConfig{})
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = '/'
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		tables: tables2{
			policies:     t.Policies,
			coefficients: t.Coefficients,
			bonuses:      t.Bonuses,
			references:   t.References,
		},
		cols: cols,
		opts: opts,
		log:  log,
	}
}

// Process runs the full pipeline over one dataset: convert, classify,
// extract, apply coefficients, deduplicate, add the work-package bonus
// once, bucket by classification code, flag outliers and reconcile
// identifiers. Row-scoped problems become warnings on the Result; only a
// dataset missing its mandatory columns fails the run.
func (e *Engine) Process(ds Dataset) (*Result, error) {
	idx := indexColumns(ds.Headers)
	if err := validateRequired(idx, e.cols); err != nil {
		return nil, err
	}

	result := &Result{
		TotalRows:          len(ds.Rows),
		HighHoursThreshold: e.opts.HighHoursThreshold,
	}

	seqCol := idx.lookup(e.cols.SeqNo)
	titleCol := idx.lookup(e.cols.Title)
	mhrsCol := idx.lookup(e.cols.PlannedMhrs)

	// Classification-code feature: silently disabled (with a warning)
	// when requested but unavailable in this dataset.
	codeCol := -1
	if e.opts.EnableSpecialCode {
		if e.cols.SpecialCode == "" {
			result.warn("special code analysis enabled but no column configured; proceeding without it")
		} else if codeCol = idx.lookup(e.cols.SpecialCode); codeCol < 0 {
			result.warn("special code column " + e.cols.SpecialCode + " not found in dataset; proceeding without it")
		} else {
			result.SpecialCodeEnabled = true
		}
	}

	// Work-package level context: bonus keys and schedule period.
	if labelCol := idx.lookup(e.cols.Label); labelCol >= 0 && len(ds.Rows) > 0 {
		result.AircraftType, result.WorkpackType = SplitLabel(cell(ds.Rows[0], labelCol))
	} else if e.cols.Label != "" {
		result.warn("workpack label column " + e.cols.Label + " not found; bonus lookup disabled")
	}

	period, warn := extractPeriod(ds, idx, e.cols)
	if warn != "" {
		result.warn(warn)
	}
	if e.opts.WorkpackDays > 0 {
		period.Days = e.opts.WorkpackDays
	}
	result.Period = period

	// Per-row pipeline: classify, extract, convert, scale.
	items := make([]LineItem, 0, len(ds.Rows))
	for i, row := range ds.Rows {
		seqKey := cell(row, seqCol)
		verdict := Classify(seqKey, e.tables.policies)
		if !verdict.Process {
			result.ExcludedRows++
			continue
		}

		item := LineItem{
			Index:          i,
			SeqKey:         seqKey,
			Title:          cell(row, titleCol),
			CheckReference: verdict.CheckReference,
			BaseHours:      MinutesToHours(cell(row, mhrsCol)),
		}
		item.TaskID = ExtractTaskID(item.Title, verdict.Rule, e.opts.Delimiter)
		item.Coefficient = e.tables.coefficients.Resolve(item.SeqKey, item.TaskID)
		item.AdjustedHours = item.BaseHours * item.Coefficient
		if codeCol >= 0 {
			item.SpecialCode = cell(row, codeCol)
		}
		items = append(items, item)
	}

	// Deduplicate by sequence key, first occurrence wins, so a sequence
	// appearing twice in the source is never counted twice.
	items, dropped := dedupeBySeq(items)
	result.DuplicateRows = dropped
	result.ProcessedRows = len(items)

	for _, item := range items {
		result.TotalBaseHours += item.BaseHours
		result.TotalAdjustedHours += item.AdjustedHours
		if e.opts.HighHoursThreshold > 0 && item.AdjustedHours > e.opts.HighHoursThreshold {
			result.HighHours = append(result.HighHours, item)
		}
	}

	// The bonus is a work-package level constant: added exactly once to
	// the total, never per row.
	if e.tables.bonuses != nil && result.AircraftType != "" {
		result.Bonus = e.tables.bonuses.TotalFor(result.AircraftType, result.WorkpackType)
		result.BonusBreakdown = e.tables.bonuses.BreakdownFor(result.AircraftType, result.WorkpackType)
		if result.Bonus == 0 {
			e.log.Info("no bonus hours for workpack",
				zap.String("aircraft_type", result.AircraftType),
				zap.String("workpack_type", result.WorkpackType))
		}
	}
	result.TotalAdjustedHours += result.Bonus

	if result.SpecialCodeEnabled {
		result.CodeDistribution = distributeByCode(items, period.Days)
	}

	result.NewTaskIDs = reconcile(items, e.tables.references)

	if e.opts.EnableToolControl {
		issues, warns := e.toolControl(ds, idx)
		result.ToolControlEnabled = len(warns) == 0
		result.ToolIssues = issues
		for _, w := range warns {
			result.warn(w)
		}
	}

	e.log.Info("workpack processed",
		zap.Int("total_rows", result.TotalRows),
		zap.Int("processed_rows", result.ProcessedRows),
		zap.Int("excluded_rows", result.ExcludedRows),
		zap.Int("duplicate_rows", result.DuplicateRows),
		zap.Float64("total_base_hours", result.TotalBaseHours),
		zap.Float64("total_adjusted_hours", result.TotalAdjustedHours),
		zap.Float64("bonus", result.Bonus))

	return result, nil
}

func (r *Result) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// dedupeBySeq keeps the first occurrence of every sequence key, preserving
// input order, and reports how many rows were dropped. Rows with a blank
// key are all kept; there is nothing meaningful to collapse them on.
func dedupeBySeq(items []LineItem) ([]LineItem, int) {
	seen := make(map[string]struct{}, len(items))
	kept := items[:0]
	dropped := 0
	for _, item := range items {
		if item.SeqKey == "" {
			kept = append(kept, item)
			continue
		}
		if _, dup := seen[item.SeqKey]; dup {
			dropped++
			continue
		}
		seen[item.SeqKey] = struct{}{}
		kept = append(kept, item)
	}
	return kept, dropped
}

// distributeByCode groups surviving rows by classification code, summing
// adjusted hours per code, sorted by hours descending (ties by code so the
// order is stable). PerDay is filled when the workpack duration is known.
func distributeByCode(items []LineItem, days int) []CodeHours {
	totals := make(map[string]*CodeHours)
	for _, item := range items {
		code := item.SpecialCode
		if code == "" {
			continue
		}
		bucket, ok := totals[code]
		if !ok {
			bucket = &CodeHours{Code: code}
			totals[code] = bucket
		}
		bucket.Hours += item.AdjustedHours
		bucket.Rows++
	}

	dist := make([]CodeHours, 0, len(totals))
	for _, bucket := range totals {
		if days > 0 {
			bucket.PerDay = bucket.Hours / float64(days)
		}
		dist = append(dist, *bucket)
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Hours != dist[j].Hours {
			return dist[i].Hours > dist[j].Hours
		}
		return dist[i].Code < dist[j].Code
	})
	return dist
}
