package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alantehealth/perfdata/pkg/perfdata/models"
	"github.com/alantehealth/perfdata/pkg/perfdata/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTargets(t *testing.T, targets []output.Target) string {
	t.Helper()
	dir := t.TempDir()
	_, err := output.WriteOutputs(dir, targets, nil)
	require.NoError(t, err)
	return dir
}

func TestFilesMatch(t *testing.T) {
	targets := []output.Target{
		{File: "performance_metrics.json", Dataset: &models.Dataset{Name: "Performance_Metrics", Columns: []string{"Metric"}}},
		{File: "utilization_log.json", Dataset: &models.Dataset{
			Name:    "Utilization Log",
			Columns: []string{"Date", "Programs"},
			Rows:    []models.Row{{"2024-01-05", []string{"Alpha"}}, {"2024-01-06", []string{}}},
		}},
	}
	dir := writeTargets(t, targets)

	reports, err := NewVerifier(dir, nil).WithListColumn("utilization_log.json", "Programs").Files(targets)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, r := range reports {
		assert.True(t, r.OK(), "report %+v", r)
	}
	assert.Equal(t, 2, reports[1].ActualRows)
}

func TestFilesRowCountMismatch(t *testing.T) {
	ds := &models.Dataset{Name: "Program_Outcomes", Columns: []string{"Program"}, Rows: []models.Row{{"TCM"}}}
	targets := []output.Target{{File: "program_outcomes.json", Dataset: ds}}
	dir := writeTargets(t, targets)

	ds.Rows = append(ds.Rows, models.Row{"CCM"})

	reports, err := NewVerifier(dir, nil).Files(targets)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 rows, found 1")
	require.Len(t, reports, 1)
	assert.False(t, reports[0].RowCountOK)
}

func TestVerifyTargetKeyMismatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.json"), []byte(`[{"B":1,"A":2}]`), 0644))
	ds := &models.Dataset{Columns: []string{"A", "B"}, Rows: []models.Row{{int64(2), int64(1)}}}

	report, err := NewVerifier(dir, nil).VerifyTarget(output.Target{File: "x.json", Dataset: ds})
	require.NoError(t, err)
	require.Len(t, report.KeyMismatches, 1)
	assert.Equal(t, []string{"B", "A"}, report.KeyMismatches[0].Actual)
	assert.False(t, report.OK())
}

func TestVerifyTargetListColumn(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "u.json"), []byte(`[{"Programs":"Alpha"}]`), 0644))
	ds := &models.Dataset{Columns: []string{"Programs"}, Rows: []models.Row{{"Alpha"}}}

	report, err := NewVerifier(dir, nil).WithListColumn("u.json", "Programs").VerifyTarget(output.Target{File: "u.json", Dataset: ds})
	require.NoError(t, err)
	assert.False(t, report.ListColumnOK)
}

func TestVerifyTargetListLength(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "u.json"), []byte(`[{"Programs":["Alpha"]}]`), 0644))
	ds := &models.Dataset{Columns: []string{"Programs"}, Rows: []models.Row{{[]string{"Alpha", "Beta"}}}}

	_, err := NewVerifier(dir, nil).WithListColumn("u.json", "Programs").Files([]output.Target{{File: "u.json", Dataset: ds}})
	assert.ErrorContains(t, err, "list column does not match the dataset")
}

func TestVerifyTargetInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"not":"array"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`[{`), 0644))
	v := NewVerifier(dir, nil)

	_, err := v.VerifyTarget(output.Target{File: "bad.json", Dataset: &models.Dataset{}})
	assert.ErrorContains(t, err, "not an array")

	_, err = v.VerifyTarget(output.Target{File: "broken.json", Dataset: &models.Dataset{}})
	assert.ErrorContains(t, err, "invalid JSON")

	_, err = v.VerifyTarget(output.Target{File: "missing.json", Dataset: &models.Dataset{}})
	assert.True(t, os.IsNotExist(err))
}
