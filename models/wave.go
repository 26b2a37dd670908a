package models

import (
	"math"
	"time"
)

// MaxWaveTimestamp is the largest contract timestamp, in seconds, whose
// millisecond value fits in an int64.
const MaxWaveTimestamp = math.MaxInt64 / 1000

// Wave is a display record derived from one entry returned by the
// WavePortal contract. It is never mutated locally.
type Wave struct {
	// Address is the sender ("waver") of the wave.
	Address string `json:"address"`
	// Timestamp is the block time the contract recorded for the wave.
	Timestamp time.Time `json:"timestamp"`
	// Message is the text carried by the wave transaction.
	Message string `json:"message"`
}

// NewWave builds a Wave from raw contract values. The contract stores whole
// seconds; they are scaled by 1000 into milliseconds since the epoch.
func NewWave(address string, timestampSeconds int64, message string) Wave {
	return Wave{
		Address:   address,
		Timestamp: time.UnixMilli(timestampSeconds * 1000),
		Message:   message,
	}
}

// CopyWaves returns an independent copy of waves. A nil input gives an empty,
// non-nil slice so callers can range and marshal it uniformly.
func CopyWaves(waves []Wave) []Wave {
	out := make([]Wave, len(waves))
	copy(out, waves)
	return out
}
