package config

import (
	"testing"

	"github.com/retroenv/addrcalc/internal/address"
	"github.com/retroenv/addrcalc/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateState(t *testing.T) {
	opts := options.Program{
		Parameters: options.Parameters{Base: "4096", Mode: "dec"},
		Flags:      options.Flags{Areas: 2, Locations: 3},
	}

	state, err := CreateState(log.NewTestLogger(t), opts)
	assert.NoError(t, err)
	assert.Len(t, state.Areas(), 2)

	for _, a := range state.Areas() {
		assert.Equal(t, "4096", a.Base.Text())
		assert.Equal(t, address.Dec, a.Base.Mode())
		assert.Equal(t, 3, a.Len())
	}

	// areas hold independent copies of the base address
	state.Areas()[0].Base.SetText("1")
	assert.Equal(t, "4096", state.Areas()[1].Base.Text())
}

func TestCreateStateInvalid(t *testing.T) {
	tests := []struct {
		name    string
		params  options.Parameters
		message string
	}{
		{
			name:    "unknown mode",
			params:  options.Parameters{Base: "0x0", Mode: "oct"},
			message: "parsing base address mode",
		},
		{
			name:    "base not matching mode",
			params:  options.Parameters{Base: "0x10", Mode: "dec"},
			message: "invalid base address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{Parameters: tt.params, Flags: options.Flags{Areas: 1, Locations: 1}}
			_, err := CreateState(log.NewTestLogger(t), opts)
			assert.ErrorContains(t, err, tt.message)
		})
	}
}
