package adapter

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// WavePortal method names.
const (
	methodGetTotalWaves = "getTotalWaves"
	methodGetAllWaves   = "getAllWaves"
	methodWave          = "wave"
)

//go:embed artifacts/WavePortal.json
var wavePortalArtifact []byte

// loadWavePortalABI returns the bundled ABI, or the one stored at path when
// path is set.
func loadWavePortalABI(path string) (abi.ABI, error) {
	if path == "" {
		return parseWavePortalABI(wavePortalArtifact)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("read abi file %q: %w", path, err)
	}

	return parseWavePortalABI(data)
}

// parseWavePortalABI accepts either a bare ABI array or a compiler artifact
// carrying it under the "abi" key.
func parseWavePortalABI(data []byte) (abi.ABI, error) {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 {
		return abi.ABI{}, fmt.Errorf("%w: empty document", ErrInvalidABI)
	}

	if raw[0] == '{' {
		var artifact struct {
			ABI json.RawMessage `json:"abi"`
		}
		if err := json.Unmarshal(raw, &artifact); err != nil {
			return abi.ABI{}, fmt.Errorf("%w: %w", ErrInvalidABI, err)
		}
		if len(artifact.ABI) == 0 {
			return abi.ABI{}, fmt.Errorf("%w: artifact has no abi field", ErrInvalidABI)
		}
		raw = artifact.ABI
	}

	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("%w: %w", ErrInvalidABI, err)
	}

	for _, name := range []string{methodGetTotalWaves, methodGetAllWaves, methodWave} {
		if _, ok := parsed.Methods[name]; !ok {
			return abi.ABI{}, fmt.Errorf("%w: missing method %s", ErrInvalidABI, name)
		}
	}

	if err = checkWavePortalSignatures(parsed); err != nil {
		return abi.ABI{}, err
	}

	return parsed, nil
}

// checkWavePortalSignatures makes sure the outputs unpack into the binding
// types: getTotalWaves into *big.Int and getAllWaves into []waveRecord.
func checkWavePortalSignatures(parsed abi.ABI) error {
	total := parsed.Methods[methodGetTotalWaves].Outputs
	if len(total) != 1 || !isUint256(total[0].Type) {
		return fmt.Errorf("%w: %s must return a single uint256", ErrInvalidABI, methodGetTotalWaves)
	}

	inputs := parsed.Methods[methodWave].Inputs
	if len(inputs) != 1 || inputs[0].Type.T != abi.StringTy {
		return fmt.Errorf("%w: %s must take a single string", ErrInvalidABI, methodWave)
	}

	all := parsed.Methods[methodGetAllWaves].Outputs
	if len(all) != 1 || all[0].Type.T != abi.SliceTy || all[0].Type.Elem == nil || all[0].Type.Elem.T != abi.TupleTy {
		return fmt.Errorf("%w: %s must return a single tuple[]", ErrInvalidABI, methodGetAllWaves)
	}

	record := all[0].Type.Elem
	want := map[string]func(abi.Type) bool{
		"waver":     func(t abi.Type) bool { return t.T == abi.AddressTy },
		"message":   func(t abi.Type) bool { return t.T == abi.StringTy },
		"timestamp": isUint256,
	}
	if len(record.TupleElems) != len(want) || len(record.TupleRawNames) != len(want) {
		return fmt.Errorf("%w: %s record must have waver, message and timestamp", ErrInvalidABI, methodGetAllWaves)
	}
	for i, name := range record.TupleRawNames {
		check, ok := want[name]
		if !ok || record.TupleElems[i] == nil || !check(*record.TupleElems[i]) {
			return fmt.Errorf("%w: unexpected %s record field %q", ErrInvalidABI, methodGetAllWaves, name)
		}
	}

	return nil
}

func isUint256(t abi.Type) bool {
	return t.T == abi.UintTy && t.Size == 256
}
