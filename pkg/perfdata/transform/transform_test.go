package transform

import (
	"testing"

	"github.com/alantehealth/perfdata/pkg/perfdata/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanStrings(t *testing.T) {
	ds := &models.Dataset{
		Columns: []string{"Date", "Hours", "Note", "When", "Flag"},
		Rows: []models.Row{
			{" 2024-01-05 ", int64(3), "\tok\n", models.DateTime("2024-01-05"), true},
			{"2024-01-06", 2.5, nil, nil, false},
			{"  ", " x", "y ", nil, nil},
		},
	}

	changed := CleanStrings(ds)

	assert.Equal(t, 5, changed)
	assert.Equal(t, models.Row{"2024-01-05", int64(3), "ok", models.DateTime("2024-01-05"), true}, ds.Rows[0])
	assert.Equal(t, models.Row{"2024-01-06", 2.5, nil, nil, false}, ds.Rows[1])
	assert.Equal(t, models.Row{"", "x", "y", nil, nil}, ds.Rows[2])
}

func TestCleanStringsIdempotent(t *testing.T) {
	ds := &models.Dataset{
		Columns: []string{"A", "B"},
		Rows:    []models.Row{{"  a  ", int64(1)}, {"b ", "c"}},
	}

	CleanStrings(ds)
	once := make([]models.Row, len(ds.Rows))
	for i, r := range ds.Rows {
		once[i] = append(models.Row(nil), r...)
	}

	assert.Zero(t, CleanStrings(ds))
	assert.Equal(t, once, ds.Rows)
}

func TestSplitPrograms(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected []string
	}{
		{"nil", nil, []string{}},
		{"empty", "", []string{}},
		{"blank", "  ", []string{}},
		{"nan", "NaN", []string{}},
		{"none", "None", []string{}},
		{"none padded", "  none ", []string{}},
		{"list", "A, B,  C", []string{"A", "B", "C"}},
		{"empty segments", "A,,B", []string{"A", "B"}},
		{"single", "OnlyOne", []string{"OnlyOne"}},
		{"duplicates", "TCM, TCM,CCM", []string{"TCM", "TCM", "CCM"}},
		{"trailing comma", "RPM, ", []string{"RPM"}},
		{"only commas", " , ,", []string{}},
		{"number", int64(5), []string{"5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPrograms(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestApplyProgramsColumn(t *testing.T) {
	ds := &models.Dataset{
		Columns: []string{"Date", "Programs", "Hours"},
		Rows: []models.Row{
			{"2024-01-05", "Alpha, Beta", int64(3)},
			{"2024-01-06", nil, int64(1)},
			{"2024-01-07", "nan", int64(2)},
		},
	}

	added := ApplyProgramsColumn(ds)

	assert.False(t, added)
	assert.Equal(t, []string{"Date", "Programs", "Hours"}, ds.Columns)
	assert.Equal(t, []string{"Alpha", "Beta"}, ds.Rows[0][1])
	assert.Equal(t, []string{}, ds.Rows[1][1])
	assert.Equal(t, []string{}, ds.Rows[2][1])

	// A second pass leaves split values as they are.
	ApplyProgramsColumn(ds)
	assert.Equal(t, []string{"Alpha", "Beta"}, ds.Rows[0][1])
}

func TestApplyProgramsColumnAddsMissing(t *testing.T) {
	ds := &models.Dataset{
		Columns: []string{"Date", "Hours"},
		Rows:    []models.Row{{"2024-01-05", int64(3)}, {"2024-01-06", int64(4)}},
	}

	added := ApplyProgramsColumn(ds)

	assert.True(t, added)
	assert.Equal(t, []string{"Date", "Hours", "Programs"}, ds.Columns)
	for _, row := range ds.Rows {
		require.Len(t, row, 3)
		assert.Equal(t, []string{}, row[2])
	}
}

func TestApplyProgramsColumnShortRow(t *testing.T) {
	ds := &models.Dataset{
		Columns: []string{"Date", "Programs"},
		Rows:    []models.Row{{"2024-01-05"}},
	}

	ApplyProgramsColumn(ds)

	require.Len(t, ds.Rows[0], 2)
	assert.Equal(t, []string{}, ds.Rows[0][1])
}
