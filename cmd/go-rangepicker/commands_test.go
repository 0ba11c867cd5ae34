package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-rangepicker/internal/config"
)

// execute runs the command tree with args and returns what it wrote on stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Cleanup(closeLog)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, config.AppName)
	assert.Contains(t, out, config.Version)
}

func TestPrintCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "month with min",
			args:     []string{"print", "--start-at", "2021-03-15", "--min", "2021-03-05"},
			contains: []string{"MAR 2021", "MAR", "(4)", " 5 ", " 31 "},
		},
		{
			name:     "french month",
			args:     []string{"print", "--start-at", "2021-03-15", "--locale", "fr"},
			contains: []string{"MARS 2021"},
		},
		{
			name:     "multi-year",
			args:     []string{"print", "--start-at", "2021-03-15", "--start-view", "multi-year"},
			contains: []string{"2016 – 2039", "2039"},
		},
		{
			name:     "year",
			args:     []string{"print", "--start-at", "2021-03-15", "--start-view", "year", "--max", "2021-06-30"},
			contains: []string{"2021", "JAN", "(JUL)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestPrintCmd_Errors(t *testing.T) {
	_, err := execute(t, "print", "--min", "someday")
	assert.ErrorContains(t, err, config.ErrFlagDate)

	_, err = execute(t, "print", "--start-view", "decade")
	assert.Error(t, err)
}

func TestExportCmd(t *testing.T) {
	out, err := execute(t, "export", "2021-03-10", "2021-03-20", "--summary", "Holidays")
	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20210310")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20210321")
	assert.Contains(t, out, "SUMMARY:Holidays")
}

func TestExportCmd_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "range.ics")
	out, err := execute(t, "export", "3/10/2021", "3/12/2021", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DTEND;VALUE=DATE:20210313")
	assert.Contains(t, string(data), "SUMMARY:"+config.DefaultEventSummary)
}

func TestExportCmd_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"reversed", []string{"export", "2021-03-20", "2021-03-10"}, config.ErrRange},
		{"unreadable", []string{"export", "soon", "2021-03-10"}, config.ErrParse},
		{"before min", []string{"export", "2021-03-01", "2021-03-10", "--min", "2021-03-05"}, config.ErrMin},
		{"after max", []string{"export", "2021-03-01", "2021-03-10", "--max", "2021-03-05"}, config.ErrMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}

	_, err := execute(t, "export", "2021-03-10")
	assert.Error(t, err, "two dates are required")
}
