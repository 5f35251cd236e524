package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// ConfigName is the base name of the optional override file (skidmark.yaml).
const ConfigName = "skidmark"

// Load reads optional overrides from dir/skidmark.yaml (or any format viper
// understands) and merges them onto the init() defaults. Profiles listed in
// the file overlay the built-in profile of the same name, or start from
// DefaultProfile when the name is new. Every profile is validated afterwards.
// A missing file is not an error.
func Load(dir string) error {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.AddConfigPath(dir)
	v.SetEnvPrefix("SKIDMARK")
	v.AutomaticEnv()

	v.SetDefault("playerProfile", C.PlayerProfile)
	v.SetDefault("tracksDir", C.TracksDir)
	v.SetDefault("track", C.Track)
	v.SetDefault("debug", Debug.Enabled)
	v.SetDefault("logLevel", Debug.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	C.PlayerProfile = v.GetString("playerProfile")
	C.TracksDir = v.GetString("tracksDir")
	C.Track = v.GetString("track")
	Debug.Enabled = v.GetBool("debug")
	Debug.LogLevel = v.GetString("logLevel")

	if v.IsSet("vehicles") {
		raw, ok := v.Get("vehicles").(map[string]any)
		if !ok {
			return fmt.Errorf("read config: vehicles must be a map of profiles")
		}
		for name, overrides := range raw {
			base, ok := Vehicles.Profiles[name]
			if !ok {
				base = DefaultProfile()
			}
			if err := decodeProfile(overrides, &base); err != nil {
				return fmt.Errorf("decode vehicle profile %q: %w", name, err)
			}
			base.Name = name
			Vehicles.Profiles[name] = base
		}
	}

	if err := Vehicles.Validate(); err != nil {
		return err
	}
	if _, err := Vehicles.Profile(C.PlayerProfile); err != nil {
		return fmt.Errorf("player profile: %w", err)
	}
	return nil
}

func decodeProfile(input any, out *VehicleProfile) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
			degreesHook,
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// degreesHook lets angle fields be written as "30deg" in the config file.
func degreesHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if !ok || to.Kind() != reflect.Float64 || !strings.HasSuffix(s, "deg") {
		return data, nil
	}
	deg, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "deg")), 64)
	if err != nil {
		return nil, fmt.Errorf("parse angle %q: %w", s, err)
	}
	return deg * math.Pi / 180, nil
}
