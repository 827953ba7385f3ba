package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputConfig_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input InputType
		cfg   InputConfig
	}{
		{"checkbox", InputCheckbox, CheckboxConfig{}},
		{"slider", InputSlider, SliderConfig{Min: 1, Max: 100}},
		{"stars", InputStars, StarsConfig{Count: 10}},
		{"number", InputNumber, NumberConfig{Suffix: "kg", Integer: false}},
		{"number integer", InputNumber, NumberConfig{Suffix: "steps", Integer: true}},
		{"photo", InputPhoto, PhotoConfig{TimerSeconds: 10}},
		{"blood pressure", InputBloodPressure, CheckboxConfig{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := EncodeInputConfig(tc.cfg)
			got := DecodeInputConfig(tc.input, raw)
			assert.Equal(t, tc.cfg, got)
		})
	}
}

func TestDecodeInputConfig_MalformedFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		input InputType
		raw   string
		want  InputConfig
	}{
		{"empty slider", InputSlider, "", SliderConfig{Min: 0, Max: 10}},
		{"garbage slider", InputSlider, "{not json", SliderConfig{Min: 0, Max: 10}},
		{"inverted slider bounds", InputSlider, `{"min":5,"max":2}`, SliderConfig{Min: 0, Max: 10}},
		{"zero star count", InputStars, `{"count":0}`, StarsConfig{Count: 5}},
		{"garbage stars", InputStars, "??", StarsConfig{Count: 5}},
		{"empty number", InputNumber, "", NumberConfig{}},
		{"negative photo timer", InputPhoto, `{"timer_seconds":-2}`, PhotoConfig{TimerSeconds: 3}},
		{"empty photo", InputPhoto, "{}", PhotoConfig{TimerSeconds: 3}},
		{"checkbox ignores payload", InputCheckbox, `{"anything":1}`, CheckboxConfig{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeInputConfig(tc.input, tc.raw))
		})
	}
}

func TestDefaultInputConfig(t *testing.T) {
	assert.Equal(t, SliderConfig{Min: 0, Max: 10}, DefaultInputConfig(InputSlider))
	assert.Equal(t, StarsConfig{Count: 5}, DefaultInputConfig(InputStars))
	assert.Equal(t, PhotoConfig{TimerSeconds: 3}, DefaultInputConfig(InputPhoto))
	assert.Equal(t, CheckboxConfig{}, DefaultInputConfig(InputCheckbox))
	assert.Equal(t, CheckboxConfig{}, DefaultInputConfig(InputBloodPressure))
}

func TestEncodeInputConfig_Nil(t *testing.T) {
	assert.Equal(t, "{}", EncodeInputConfig(nil))
}
