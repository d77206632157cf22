package configuration

import (
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
)

func TestMillisecondDurationHookFunc(t *testing.T) {
	type testConfig struct {
		PollInterval time.Duration `mapstructure:"pollInterval"`
	}

	tests := []struct {
		name     string
		input    map[string]interface{}
		expected time.Duration
	}{
		{
			name:     "bare int is interpreted as milliseconds",
			input:    map[string]interface{}{"pollInterval": 500},
			expected: 500 * time.Millisecond,
		},
		{
			name:     "bare int64 is interpreted as milliseconds",
			input:    map[string]interface{}{"pollInterval": int64(1500)},
			expected: 1500 * time.Millisecond,
		},
		{
			name:     "duration string is parsed",
			input:    map[string]interface{}{"pollInterval": "2s"},
			expected: 2 * time.Second,
		},
		{
			name:     "duration value passes through unchanged",
			input:    map[string]interface{}{"pollInterval": 250 * time.Millisecond},
			expected: 250 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN
			var result testConfig
			decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				DecodeHook: configDecodeHook(),
				Result:     &result,
			})
			assert.NoError(t, err)

			// WHEN
			err = decoder.Decode(tt.input)

			// THEN
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result.PollInterval)
		})
	}
}

func TestMillisecondDurationHookFuncRejectsGarbage(t *testing.T) {
	type testConfig struct {
		PollInterval time.Duration `mapstructure:"pollInterval"`
	}

	// GIVEN
	var result testConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: configDecodeHook(),
		Result:     &result,
	})
	assert.NoError(t, err)

	// WHEN
	err = decoder.Decode(map[string]interface{}{"pollInterval": "soon"})

	// THEN
	assert.Error(t, err)
}
