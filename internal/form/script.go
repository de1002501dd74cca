package form

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Script is a batch of edits applied in place of interactive form input:
// the session identity plus per-row field values and image attachments.
type Script struct {
	Inspector string        `mapstructure:"inspector"`
	Station   string        `mapstructure:"station"`
	Date      string        `mapstructure:"date"`
	Entries   []ScriptEntry `mapstructure:"entries"`
}

// ScriptEntry carries the edits for one row, keyed by sequence number.
type ScriptEntry struct {
	STT    string            `mapstructure:"stt"`
	Fields map[string]string `mapstructure:"fields"`
	Images []string          `mapstructure:"images"`
}

// Script date formats, checked in order.
var scriptDateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// LoadScript reads a session script from a YAML file.
func LoadScript(path string) (*Script, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read session script: %w", err)
	}

	var s Script
	weak := func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
		// YAML turns unquoted dates into time.Time before we see them.
		dc.DecodeHook = func(from reflect.Type, to reflect.Type, data any) (any, error) {
			if from == reflect.TypeOf(time.Time{}) && to.Kind() == reflect.String {
				return data.(time.Time).Format(scriptDateLayouts[0]), nil
			}
			return data, nil
		}
	}
	if err := v.Unmarshal(&s, weak); err != nil {
		return nil, fmt.Errorf("failed to parse session script: %w", err)
	}
	return &s, nil
}

// ParsedDate returns the script's working date, or ok=false when unset.
func (s *Script) ParsedDate() (time.Time, bool, error) {
	if s.Date == "" {
		return time.Time{}, false, nil
	}
	for _, layout := range scriptDateLayouts {
		if t, err := time.Parse(layout, s.Date); err == nil {
			return t, true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognized date %q", s.Date)
}
