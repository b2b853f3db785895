package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Asutorufa/seqlist/internal/appliance"
	"github.com/Asutorufa/seqlist/pkg/collection"
	"github.com/Asutorufa/seqlist/pkg/log"
	"github.com/Asutorufa/seqlist/pkg/utils/jsondb"
	"github.com/Asutorufa/seqlist/pkg/utils/slice"
	"github.com/Asutorufa/seqlist/pkg/utils/yerror"
	"google.golang.org/protobuf/types/known/structpb"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Log        log.Logcat
	LogPath    string
	Appliances *collection.List[appliance.Appliance]
}

// Default returns the document written when no config file exists.
func Default() *structpb.Struct {
	return yerror.Must(structpb.NewStruct(map[string]any{
		"log": map[string]any{
			"level": "info",
			"save":  false,
			"path":  "",
		},
		"appliances": []any{
			map[string]any{"name": "Refrigerator", "power": 150, "consumption": 0.5},
			map[string]any{"name": "Microwave", "power": 800, "consumption": 1.2},
			map[string]any{"name": "Vacuum Cleaner", "power": 1200, "consumption": 0.3},
		},
	}))
}

// Load reads the config at path, creating it from Default when missing.
// An empty log path resolves to log/appliances.log next to the config file.
func Load(path string) (*Config, error) {
	db := jsondb.Open(path, Default())

	if !db.Exists() {
		if err := db.Save(); err != nil {
			return nil, fmt.Errorf("save default config to %s: %w", path, err)
		}
		log.Info("default config created", "path", path)
	}

	c, err := Decode(db.Data)
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if c.LogPath == "" {
		c.LogPath = filepath.Join(db.Dir(), "log", "appliances.log")
	}

	return c, nil
}

func Decode(s *structpb.Struct) (*Config, error) {
	fields := s.GetFields()

	c := &Config{Appliances: collection.New[appliance.Appliance]()}

	logFields := fields["log"].GetStructValue().GetFields()
	if level := logFields["level"].GetStringValue(); level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
		}
		c.Log.Level = l
	}
	c.Log.Save = logFields["save"].GetBoolValue()
	c.LogPath = logFields["path"].GetStringValue()

	for i, v := range fields["appliances"].GetListValue().GetValues() {
		a, err := decodeAppliance(v.GetStructValue())
		if err != nil {
			return nil, fmt.Errorf("%w: appliances[%d]: %w", ErrInvalid, i, err)
		}
		c.Appliances.Add(a)
	}

	return c, nil
}

func decodeAppliance(s *structpb.Struct) (appliance.Appliance, error) {
	if s == nil {
		return appliance.Appliance{}, errors.New("not an object")
	}

	fields := s.GetFields()

	name, ok := fields["name"].GetKind().(*structpb.Value_StringValue)
	if !ok || name.StringValue == "" {
		return appliance.Appliance{}, errors.New("name must be a non-empty string")
	}

	power, ok := fields["power"].GetKind().(*structpb.Value_NumberValue)
	if !ok || power.NumberValue < 0 || power.NumberValue != float64(int(power.NumberValue)) {
		return appliance.Appliance{}, fmt.Errorf("power must be a non-negative integer, got %v", fields["power"].AsInterface())
	}

	consumption, ok := fields["consumption"].GetKind().(*structpb.Value_NumberValue)
	if !ok || consumption.NumberValue < 0 {
		return appliance.Appliance{}, fmt.Errorf("consumption must be a non-negative number, got %v", fields["consumption"].AsInterface())
	}

	return appliance.New(name.StringValue, int(power.NumberValue), consumption.NumberValue), nil
}

// Encode is the inverse of Decode.
func Encode(c *Config) (*structpb.Struct, error) {
	appliances := slice.To(c.Appliances.Slice(), func(v appliance.Appliance) any {
		return map[string]any{
			"name":        v.Name,
			"power":       v.Power,
			"consumption": v.Consumption,
		}
	})

	level, err := c.Log.Level.MarshalText()
	if err != nil {
		return nil, err
	}

	return structpb.NewStruct(map[string]any{
		"log": map[string]any{
			"level": string(level),
			"save":  c.Log.Save,
			"path":  c.LogPath,
		},
		"appliances": appliances,
	})
}
