// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"json", "json", false},
		{"text", "text", false},
		{"invalid", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := setupLogging(&buf, tt.format, "test")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			logger.Info("hello")
			assert.Contains(t, buf.String(), "run_id")
			assert.Contains(t, buf.String(), "hello")
		})
	}
}

func TestLogError_OopsCode(t *testing.T) {
	var buf bytes.Buffer
	logger, err := setupLogging(&buf, "json", "test")
	require.NoError(t, err)

	logError(logger, "failed", oops.Code("TEST_ERROR").With("modes", 2).Errorf("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "failed", entry["msg"])
	assert.Equal(t, "TEST_ERROR", entry["code"])
	assert.Equal(t, "test", entry["command"])
	assert.Contains(t, entry, "context")
}

func TestLogError_PlainError(t *testing.T) {
	var buf bytes.Buffer
	logger, err := setupLogging(&buf, "json", "test")
	require.NoError(t, err)

	logError(logger, "failed", errors.New("plain"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "plain", entry["error"])
	assert.NotContains(t, entry, "code")
}
