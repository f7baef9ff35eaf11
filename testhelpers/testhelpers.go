// Package testhelpers provides synthetic datasets and tables for engine
// tests.
package testhelpers

import "workpackengine/engine"

// Row is one synthetic dataset row with named cells, so tests stay
// readable despite the wide header layout.
type Row struct {
	Seq      string
	Title    string
	Minutes  string
	Code     string
	Label    string
	Start    string
	End      string
	ToolName string
	ToolType string
	PartNo   string
	TotalQty string
	AltQty   string
}

// Columns returns the column map matching Dataset's headers.
func Columns() engine.ColumnMap {
	return engine.ColumnMap{
		SeqNo:       "Seq. No.",
		Title:       "Title",
		PlannedMhrs: "Planned Mhrs",
		SpecialCode: "Special Code",
		Label:       "Aircraft",
		StartDate:   "Start_date",
		EndDate:     "End_date",
		ToolName:    "Tool/Spare Name",
		ToolType:    "Tool",
		ToolPartNo:  "Part Number",
		TotalQty:    "Total Qty",
		AltQty:      "Alt Qty",
	}
}

// Dataset builds a dataset with the standard header row and the given rows.
func Dataset(rows ...Row) engine.Dataset {
	ds := engine.Dataset{
		Headers: []string{
			"Seq. No.", "Title", "Planned Mhrs", "Special Code", "Aircraft",
			"Start_date", "End_date", "Tool/Spare Name", "Tool", "Part Number",
			"Total Qty", "Alt Qty",
		},
	}
	for _, r := range rows {
		ds.Rows = append(ds.Rows, []string{
			r.Seq, r.Title, r.Minutes, r.Code, r.Label,
			r.Start, r.End, r.ToolName, r.ToolType, r.PartNo,
			r.TotalQty, r.AltQty,
		})
	}
	return ds
}
