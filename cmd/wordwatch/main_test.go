package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigPathFromArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "none", args: []string{"watch", "words.txt"}, expected: ""},
		{name: "separate value", args: []string{"--config", "c.yaml", "watch"}, expected: "c.yaml"},
		{name: "equals form", args: []string{"watch", "--config=c.yaml"}, expected: "c.yaml"},
		{name: "flag without value", args: []string{"watch", "--config"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, configPathFromArgs(tt.args))
		})
	}
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		env          string
		debugEnabled bool
		json         bool
	}{
		{env: envLocal, debugEnabled: true},
		{env: envDev, debugEnabled: true, json: true},
		{env: envProd, debugEnabled: false, json: true},
		{env: "unknown", debugEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			log := setupLogger(tt.env, &buf)

			assert.Equal(t, tt.debugEnabled, log.Enabled(context.Background(), slog.LevelDebug))

			log.Info("hello", slog.String("k", "v"))
			if tt.json {
				assert.Contains(t, buf.String(), `"msg":"hello"`)
			} else {
				assert.Contains(t, buf.String(), "msg=hello")
			}
		})
	}
}
