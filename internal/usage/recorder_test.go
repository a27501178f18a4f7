package usage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordAPIUsage_AppendsJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_usage.log")

	recorder, err := NewRecorder(path)
	assert.NoError(t, err)

	recorder.RecordAPIUsage("GradeEssay", "o4-mini-2025-04-16", 1500, 420, 0.00165, 0.001848, 0.003498)
	recorder.RecordAPIUsage("GradeEssay", "o4-mini-2025-04-16", 900, 0, 0.00099, 0, 0.00099)
	assert.NoError(t, recorder.Sync())

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Len(t, lines, 2)

	var record map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "api_usage", record["msg"])
	assert.Equal(t, "GradeEssay", record["function"])
	assert.Equal(t, "o4-mini-2025-04-16", record["model"])
	assert.Equal(t, float64(1500), record["input_tokens"])
	assert.Equal(t, float64(420), record["output_tokens"])
	assert.Equal(t, "$0.001650", record["input_cost"])
	assert.Equal(t, "$0.001848", record["output_cost"])
	assert.Equal(t, "$0.003498", record["total_cost"])
	assert.NotEmpty(t, record["timestamp"])
}

func TestNewRecorder_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_usage.log")

	first, err := NewRecorder(path)
	assert.NoError(t, err)
	first.RecordAPIUsage("GradeEssay", "m", 1, 1, 0, 0, 0)
	assert.NoError(t, first.Sync())

	second, err := NewRecorder(path)
	assert.NoError(t, err)
	second.RecordAPIUsage("GradeEssay", "m", 2, 2, 0, 0, 0)
	assert.NoError(t, second.Sync())

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(raw)), "\n"), 2)
}

func TestNopRecorder_WritesNothing(t *testing.T) {
	recorder := NewNopRecorder()

	assert.NotPanics(t, func() {
		recorder.RecordAPIUsage("GradeEssay", "m", 10, 10, 0.1, 0.1, 0.2)
	})
	assert.NoError(t, recorder.Sync())
}
