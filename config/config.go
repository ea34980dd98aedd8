package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/paddle-rush/constant"
)

// Tuning holds the gameplay values host shells may override
// Defaults mirror the constant package
type Tuning struct {
	RotationForce float64 `json:"rotationForce" mapstructure:"rotationForce"`
	ForwardForce  float64 `json:"forwardForce" mapstructure:"forwardForce"`
	LateralScale  float64 `json:"lateralScale" mapstructure:"lateralScale"`

	CooldownMillis int `json:"cooldownMillis" mapstructure:"cooldownMillis"`

	PositionSmoothing    float64 `json:"positionSmoothing" mapstructure:"positionSmoothing"`
	OrientationSmoothing float64 `json:"orientationSmoothing" mapstructure:"orientationSmoothing"`

	CameraHeight       float64 `json:"cameraHeight" mapstructure:"cameraHeight"`
	CameraBackDistance float64 `json:"cameraBackDistance" mapstructure:"cameraBackDistance"`

	AudioEnabled bool   `json:"audioEnabled" mapstructure:"audioEnabled"`
	LogLevel     string `json:"logLevel" mapstructure:"logLevel"`
}

// Cooldown returns the paddle cooldown as a duration
func (t *Tuning) Cooldown() time.Duration {
	return time.Duration(t.CooldownMillis) * time.Millisecond
}

// Load reads tuning overrides from an optional JSON config file
// A missing file yields the defaults, a malformed one is an error
func Load(configDir string) (*Tuning, error) {
	viper.SetDefault("rotationForce", constant.PaddleRotationForce)
	viper.SetDefault("forwardForce", constant.PaddleForwardForce)
	viper.SetDefault("lateralScale", constant.PaddleLateralScale)
	viper.SetDefault("cooldownMillis", int(constant.PaddleCooldown/time.Millisecond))

	viper.SetDefault("positionSmoothing", constant.CameraPositionSmoothing)
	viper.SetDefault("orientationSmoothing", constant.CameraOrientationSmoothing)
	viper.SetDefault("cameraHeight", constant.CameraHeight)
	viper.SetDefault("cameraBackDistance", constant.CameraBackDistance)

	viper.SetDefault("audioEnabled", true)
	viper.SetDefault("logLevel", "info")

	viper.SetConfigName("paddle_rush.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	t := &Tuning{}
	if err := viper.Unmarshal(t); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return t, nil
}
