package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goeditev/pkg/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	opts := config.Default()
	assert.Equal(t, "info", opts.LogLevel)
	assert.False(t, opts.AutoHandlers.Disabled)
	assert.Empty(t, opts.AutoHandlers.DisabledKinds)
	assert.NoError(t, opts.Validate())
}

func TestValidate_LogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "info"},
		{level: "warn"},
		{level: "warning"},
		{level: "error"},
		{level: ""},
		{level: "verbose", wantErr: true},
		{level: "INFO", wantErr: true},
	}

	for _, tc := range tests {
		t.Run("level_"+tc.level, func(t *testing.T) {
			t.Parallel()

			opts := config.Default()
			opts.LogLevel = tc.level
			err := opts.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	opts := config.Default()
	opts.LogLevel = "debug"
	opts.AutoHandlers.DisabledKinds = []string{"hover", "clickMark"}

	data, err := opts.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, opts, parsed)
}

func TestFromYAML_PartialInputKeepsDefaults(t *testing.T) {
	t.Parallel()

	parsed, err := config.FromYAML([]byte("auto_handlers:\n  disabled: true\n"))
	require.NoError(t, err)

	assert.Equal(t, "info", parsed.LogLevel)
	assert.True(t, parsed.AutoHandlers.Disabled)
}

func TestFromYAML_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("log_level: [not, a, string]\n"))
	assert.Error(t, err)

	_, err = config.FromYAML([]byte("log_level: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log_level")
}

func TestToYAML_Nil(t *testing.T) {
	t.Parallel()

	var opts *config.Options
	data, err := opts.ToYAML()
	assert.NoError(t, err)
	assert.Nil(t, data)
}
