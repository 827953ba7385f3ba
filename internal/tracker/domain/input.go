package domain

import "encoding/json"

// InputType determines what kind of value a completion row may carry.
type InputType string

const (
	InputCheckbox      InputType = "checkbox"
	InputSlider        InputType = "slider"
	InputStars         InputType = "stars"
	InputNumber        InputType = "number"
	InputPhoto         InputType = "photo"
	InputBloodPressure InputType = "blood_pressure"
)

// IsValid checks if the input type is one of the known values.
func (t InputType) IsValid() bool {
	switch t {
	case InputCheckbox, InputSlider, InputStars, InputNumber, InputPhoto, InputBloodPressure:
		return true
	default:
		return false
	}
}

// ParseInputType decodes a persisted input type, falling back to
// InputCheckbox for unknown values.
func ParseInputType(s string) InputType {
	t := InputType(s)
	if !t.IsValid() {
		return InputCheckbox
	}
	return t
}

// InputConfig is the per-input-type settings variant. Exactly one concrete
// type matches a task's InputType; the others are never attached to it.
type InputConfig interface {
	isInputConfig()
}

// CheckboxConfig has no settings. Checkbox and blood-pressure tasks use it.
type CheckboxConfig struct{}

// SliderConfig bounds the slider value range.
type SliderConfig struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// StarsConfig sets the number of selectable stars.
type StarsConfig struct {
	Count int `json:"count"`
}

// NumberConfig configures free numeric entry.
type NumberConfig struct {
	Suffix  string `json:"suffix"`
	Integer bool   `json:"integer"`
}

// PhotoConfig configures the capture countdown.
type PhotoConfig struct {
	TimerSeconds int `json:"timer_seconds"`
}

func (CheckboxConfig) isInputConfig() {}
func (SliderConfig) isInputConfig()   {}
func (StarsConfig) isInputConfig()    {}
func (NumberConfig) isInputConfig()   {}
func (PhotoConfig) isInputConfig()    {}

// DefaultInputConfig returns the documented defaults for an input type.
func DefaultInputConfig(t InputType) InputConfig {
	switch t {
	case InputSlider:
		return SliderConfig{Min: 0, Max: 10}
	case InputStars:
		return StarsConfig{Count: 5}
	case InputNumber:
		return NumberConfig{}
	case InputPhoto:
		return PhotoConfig{TimerSeconds: 3}
	default:
		return CheckboxConfig{}
	}
}

// EncodeInputConfig serializes a config for storage.
func EncodeInputConfig(cfg InputConfig) string {
	if cfg == nil {
		return "{}"
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// DecodeInputConfig parses a persisted config blob for the given input type.
// Missing or malformed payloads fall back to the documented defaults and
// never surface an error.
func DecodeInputConfig(t InputType, raw string) InputConfig {
	if raw == "" {
		return DefaultInputConfig(t)
	}

	switch t {
	case InputSlider:
		cfg := SliderConfig{Min: 0, Max: 10}
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			return DefaultInputConfig(t)
		}
		if cfg.Max <= cfg.Min {
			return DefaultInputConfig(t)
		}
		return cfg
	case InputStars:
		cfg := StarsConfig{Count: 5}
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil || cfg.Count < 1 {
			return DefaultInputConfig(t)
		}
		return cfg
	case InputNumber:
		var cfg NumberConfig
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			return DefaultInputConfig(t)
		}
		return cfg
	case InputPhoto:
		cfg := PhotoConfig{TimerSeconds: 3}
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil || cfg.TimerSeconds < 0 {
			return DefaultInputConfig(t)
		}
		return cfg
	default:
		return CheckboxConfig{}
	}
}
