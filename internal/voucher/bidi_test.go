//go:build unit

package voucher_test

import (
	"testing"

	"hotel-booking-api/internal/voucher"

	"github.com/stretchr/testify/assert"
)

func TestShapeMixedScript(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		isolated bool
	}{
		{"pure arabic is isolated", "محمد عبدالله", true},
		{"latin is untouched", "Sara Al-Rashid", false},
		{"mixed script is left alone", "فندق Hilton", false},
		{"arabic with digits is left alone", "غرفة 12", false},
		{"empty string", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := voucher.ShapeMixedScript(c.in)
			assert.Equal(t, c.isolated, voucher.IsIsolated(got))
			if !c.isolated {
				assert.Equal(t, c.in, got, "unisolated strings must pass through unchanged")
			}
		})
	}
}

func TestStripIsolates(t *testing.T) {
	isolated := voucher.ShapeMixedScript("محمد عبدالله")
	assert.True(t, voucher.IsIsolated(isolated))
	assert.Equal(t, "محمد عبدالله", voucher.StripIsolates(isolated))

	assert.Equal(t, "Sara Al-Rashid", voucher.StripIsolates("Sara Al-Rashid"))
	assert.Equal(t, "", voucher.StripIsolates(""))
}
