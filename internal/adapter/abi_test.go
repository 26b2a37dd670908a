package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bareWavePortalABI = `[
  {"inputs":[],"name":"getAllWaves","outputs":[{"components":[
    {"internalType":"address","name":"waver","type":"address"},
    {"internalType":"string","name":"message","type":"string"},
    {"internalType":"uint256","name":"timestamp","type":"uint256"}],
    "internalType":"struct WavePortal.Wave[]","name":"","type":"tuple[]"}],
   "stateMutability":"view","type":"function"},
  {"inputs":[],"name":"getTotalWaves","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],
   "stateMutability":"view","type":"function"},
  {"inputs":[{"internalType":"string","name":"_message","type":"string"}],"name":"wave","outputs":[],
   "stateMutability":"nonpayable","type":"function"}
]`

func TestLoadWavePortalABI_Bundled(t *testing.T) {
	parsed, err := loadWavePortalABI("")
	require.NoError(t, err)

	for _, name := range []string{methodGetTotalWaves, methodGetAllWaves, methodWave} {
		_, ok := parsed.Methods[name]
		assert.True(t, ok, name)
	}
	_, ok := parsed.Events["NewWave"]
	assert.True(t, ok)
}

func TestLoadWavePortalABI_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "WavePortal.abi")
	require.NoError(t, os.WriteFile(path, []byte(bareWavePortalABI), 0o600))

	parsed, err := loadWavePortalABI(path)
	require.NoError(t, err)
	assert.Len(t, parsed.Methods, 3)
}

func TestLoadWavePortalABI_MissingFile(t *testing.T) {
	_, err := loadWavePortalABI(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseWavePortalABI_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: "   "},
		{name: "artifact without abi", data: `{"contractName":"WavePortal"}`},
		{name: "not json", data: `[{`},
		{name: "missing wave method", data: `[{"inputs":[],"name":"getTotalWaves","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseWavePortalABI([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidABI)
		})
	}
}

func TestParseWavePortalABI_WrongSignatures(t *testing.T) {
	const allWavesOutput = `"outputs":[{"components":[
    {"internalType":"address","name":"waver","type":"address"},
    {"internalType":"string","name":"message","type":"string"},
    {"internalType":"uint256","name":"timestamp","type":"uint256"}],
    "internalType":"struct WavePortal.Wave[]","name":"","type":"tuple[]"}]`
	require.Contains(t, bareWavePortalABI, allWavesOutput)

	tests := []struct {
		name     string
		old, new string
	}{
		{
			name: "getAllWaves returns uint256[]",
			old:  allWavesOutput,
			new:  `"outputs":[{"internalType":"uint256[]","name":"","type":"uint256[]"}]`,
		},
		{
			name: "record field renamed",
			old:  `"name":"waver"`,
			new:  `"name":"sender"`,
		},
		{
			name: "timestamp is uint64",
			old:  `"internalType":"uint256","name":"timestamp","type":"uint256"`,
			new:  `"internalType":"uint64","name":"timestamp","type":"uint64"`,
		},
		{
			name: "record has an extra field",
			old:  `{"internalType":"address","name":"waver","type":"address"},`,
			new:  `{"internalType":"address","name":"waver","type":"address"},{"internalType":"bool","name":"seen","type":"bool"},`,
		},
		{
			name: "getTotalWaves returns string",
			old:  `"name":"getTotalWaves","outputs":[{"internalType":"uint256","name":"","type":"uint256"}]`,
			new:  `"name":"getTotalWaves","outputs":[{"internalType":"string","name":"","type":"string"}]`,
		},
		{
			name: "wave takes bytes",
			old:  `"inputs":[{"internalType":"string","name":"_message","type":"string"}]`,
			new:  `"inputs":[{"internalType":"bytes","name":"_message","type":"bytes"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Contains(t, bareWavePortalABI, tt.old)
			data := strings.Replace(bareWavePortalABI, tt.old, tt.new, 1)

			_, err := parseWavePortalABI([]byte(data))
			assert.ErrorIs(t, err, ErrInvalidABI)
		})
	}
}
