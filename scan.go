// File: config/scan.go
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the effective configuration under basePath into the target
// struct or map. Dotted property keys form a nested view ("wcet.timeout"
// becomes wcet -> timeout); basePath selects a subtree of that view, with ""
// selecting the whole configuration. The target must be a non-nil pointer
// and fields are matched through the "config" struct tag. Values are stored
// as strings, so weak typing is enabled: "8080" decodes into an int field,
// "30s" into a time.Duration, "a,b,c" into a string slice.
func (c *Config) Scan(basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	nested := make(map[string]any)
	for key, value := range c.merged() {
		setNestedValue(nested, key, value)
	}

	var sectionData any = nested

	basePath = strings.TrimSuffix(basePath, ".")
	if basePath != "" {
		current := any(nested)
		found := true

		for _, segment := range strings.Split(basePath, ".") {
			currentMap, ok := current.(map[string]any)
			if !ok {
				found = false
				break
			}
			value, exists := currentMap[segment]
			if !exists {
				found = false
				break
			}
			current = value
		}

		if !found {
			// Decode an empty map so absent sections leave the target's
			// zero/default values in place.
			sectionData = make(map[string]any)
		} else {
			sectionData = current
		}
	}

	sectionMap, ok := sectionData.(map[string]any)
	if !ok {
		return fmt.Errorf("configuration path %q does not refer to a scannable section (map), but to type %T", basePath, sectionData)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "config",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("failed to scan section %q into %T: %w", basePath, target, err)
	}

	return nil
}
