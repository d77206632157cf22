package configuration

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// configDecodeHook composes the decode hooks needed to unmarshal the
// configuration file.
func configDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		millisecondDurationHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)
}

// millisecondDurationHookFunc returns a mapstructure decode hook that
// interprets bare numbers as a duration in milliseconds, so
// "pollInterval: 500" and "pollInterval: 500ms" mean the same thing.
func millisecondDurationHookFunc() mapstructure.DecodeHookFuncType {
	durationType := reflect.TypeOf(time.Duration(0))
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != durationType {
			return data, nil
		}
		switch value := data.(type) {
		case int:
			return time.Duration(value) * time.Millisecond, nil
		case int32:
			return time.Duration(value) * time.Millisecond, nil
		case int64:
			return time.Duration(value) * time.Millisecond, nil
		case uint:
			return time.Duration(value) * time.Millisecond, nil
		case float64:
			return time.Duration(value * float64(time.Millisecond)), nil
		default:
			return data, nil
		}
	}
}
