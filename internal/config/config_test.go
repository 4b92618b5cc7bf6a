package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestCreateFrontend(t *testing.T) {
	logger := log.NewTestLogger(t)

	tests := []struct {
		name     string
		frontend string
		wantErr  bool
	}{
		{"headless", options.FrontendHeadless, false},
		{"terminal", options.FrontendTerminal, false},
		{"window", options.FrontendWindow, false},
		{"unknown", "vga", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.NewProgram()
			opts.Frontend = tt.frontend

			fe, err := CreateFrontend(logger, opts)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unsupported frontend")
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, fe)
		})
	}

	opts := options.NewProgram()
	opts.Frontend = options.FrontendHeadless
	fe, err := CreateFrontend(logger, opts)
	assert.NoError(t, err)
	_, ok := fe.(*frontend.Headless)
	assert.True(t, ok)
}

func TestMachineOptions(t *testing.T) {
	opts := options.NewProgram()
	assert.Len(t, MachineOptions(opts), 1)

	opts.Seed = 42
	assert.Len(t, MachineOptions(opts), 2)
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.NewProgram()
	PrintBanner(logger, opts, "1.0.0", "0123456789abcdef", "2026-01-01")

	opts.Quiet = true
	PrintBanner(logger, opts, "1.0.0", "", "")
}
