package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "courses.csv")
	out := filepath.Join(dir, "TA-Allocations.csv")
	require.NoError(t, os.WriteFile(in, []byte(
		"Course,Instructor,Enrollment,Lecture_Sections,Lab_Sections,Unit_Weight\n"+
			"ECE 405C,Example Instructor,20,1,0,0.5\n"+
			"Capstone,Someone,120,1,0,0.5\n"+
			"ECE459,Other,344,1,3,0.5\n"), 0o644))

	stdout, err := execute(t, "run", in, "-o", out, "-w", "2",
		"-c", filepath.Join(dir, "none.yaml"), "--env", filepath.Join(dir, "none.env"))
	require.NoError(t, err, stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Course,Instructor,Enrollment,TA_Allocation,Lab_Allocation\n"+
		"ECE 405C,Example Instructor,20,0.5,0.0\n"+
		"ECE459,Other,344,5.6,0.0\n", string(got))
	assert.Contains(t, stdout, "Failed: 1")
	assert.Contains(t, stdout, "Exported output to: "+out)
}

func TestRunCommand_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "run", filepath.Join(dir, "missing.csv"), "-o", filepath.Join(dir, "out.csv"),
		"-c", filepath.Join(dir, "none.yaml"), "--env", filepath.Join(dir, "none.env"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	stdout, err := execute(t, "check", "-c", filepath.Join(dir, "none.yaml"), "--env", filepath.Join(dir, "none.env"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "[  OK]: Special case course code check.")
	assert.NotContains(t, stdout, "[FAIL]")
}
