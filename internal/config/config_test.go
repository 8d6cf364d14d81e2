package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rhyrak/ta-allocator/internal/allocator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"TA_ALLOC_INPUT", "TA_ALLOC_OUTPUT", "TA_ALLOC_DELIMITER", "TA_ALLOC_WORKERS", "TA_ALLOC_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "TA-Allocations.csv", cfg.ExportFile)
	assert.Equal(t, ',', cfg.DelimiterRune())
	assert.Equal(t, allocator.NewDefaultConfiguration(), cfg.AllocatorConfiguration())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
input_file: terms/F24.csv
delimiter: ";"
workers: 4
ignored_courses: [ENGR450]
logging:
  level: debug
policy:
  min_ta_threshold: 0.5
  min_enrollment_grad: 10
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "terms/F24.csv", cfg.InputFile)
	assert.Equal(t, "TA-Allocations.csv", cfg.ExportFile)
	assert.Equal(t, ';', cfg.DelimiterRune())
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"ENGR450"}, cfg.IgnoredCourses)
	assert.Equal(t, "debug", cfg.Logging.Level)

	policy := cfg.AllocatorConfiguration()
	assert.Equal(t, 0.5, policy.MinTAThreshold)
	assert.Equal(t, 10, policy.MinEnrollmentGrad)
	assert.Equal(t, 130.0, policy.FullTAHours)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [nope"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policy:\n  full_ta_hours: 0\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "full_ta_hours")
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TA_ALLOC_OUTPUT", "out.csv")
	t.Setenv("TA_ALLOC_WORKERS", "3")
	t.Setenv("TA_ALLOC_DELIMITER", "\t")
	t.Setenv("TA_ALLOC_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "out.csv", cfg.ExportFile)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, '\t', cfg.DelimiterRune())
	assert.Equal(t, "warn", cfg.Logging.Level)

	t.Setenv("TA_ALLOC_WORKERS", "lots")
	_, err = Load("")
	assert.ErrorContains(t, err, "TA_ALLOC_WORKERS")
}

func TestValidate_Delimiter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Delimiter = ";;"
	assert.Error(t, cfg.Validate())
	cfg.Delimiter = ""
	assert.Error(t, cfg.Validate())
}

func TestSaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Workers = 6
	cfg.IgnoredCourses = []string{"ENGR450", "IE101"}
	cfg.Policy.MinTAThreshold = 0.4

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TA_ALLOC_INPUT=from-dotenv.csv\n"), 0o644))
	// godotenv does not overwrite set variables, so unset the cleared one.
	require.NoError(t, os.Unsetenv("TA_ALLOC_INPUT"))
	t.Cleanup(func() { os.Unsetenv("TA_ALLOC_INPUT") })

	require.NoError(t, LoadDotEnv(path))
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.csv", cfg.InputFile)
}
