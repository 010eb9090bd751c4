package models

// FileResult describes one JSON file produced by a run.
type FileResult struct {
	// Sheet is the worksheet the file was built from.
	Sheet string `json:"sheet"`
	// Path is the written file path.
	Path string `json:"path"`
	// Rows is the number of data rows written.
	Rows int `json:"rows"`
	// Columns lists the keys of every object in the file.
	Columns []string `json:"columns"`
	// Bytes is the file size.
	Bytes int `json:"bytes"`
}

// Result summarizes a conversion run.
type Result struct {
	RunID        string       `json:"run_id"`
	Workbook     string       `json:"workbook"`
	OutputDir    string       `json:"output_dir"`
	Files        []FileResult `json:"files"`
	CellsTrimmed int          `json:"cells_trimmed"`
}
