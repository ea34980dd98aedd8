package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/paddle-rush/constant"
)

func TestLoadDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	tuning, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, constant.PaddleRotationForce, tuning.RotationForce)
	assert.Equal(t, constant.PaddleForwardForce, tuning.ForwardForce)
	assert.Equal(t, constant.PaddleLateralScale, tuning.LateralScale)
	assert.Equal(t, constant.PaddleCooldown, tuning.Cooldown())
	assert.Equal(t, constant.CameraPositionSmoothing, tuning.PositionSmoothing)
	assert.Equal(t, constant.CameraOrientationSmoothing, tuning.OrientationSmoothing)
	assert.True(t, tuning.AudioEnabled)
	assert.Equal(t, "info", tuning.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"rotationForce": 1.5,
		"cooldownMillis": 500,
		"audioEnabled": false,
		"logLevel": "debug"
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paddle_rush.cfg.json"), []byte(cfg), 0644))

	tuning, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 1.5, tuning.RotationForce)
	assert.Equal(t, 500*time.Millisecond, tuning.Cooldown())
	assert.False(t, tuning.AudioEnabled)
	assert.Equal(t, "debug", tuning.LogLevel)

	// Values absent from the file keep their defaults
	assert.Equal(t, constant.PaddleForwardForce, tuning.ForwardForce)
	assert.Equal(t, constant.CameraHeight, tuning.CameraHeight)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paddle_rush.cfg.json"), []byte("{not json"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}
