package models

// WavesResponse is the body of GET /api/waves.
//
// Count is always len(Waves); it is filled by [NewWavesResponse] and never
// set independently.
type WavesResponse struct {
	Count int    `json:"count"`
	Waves []Wave `json:"waves"`
}

// NewWavesResponse wraps waves in a response with a consistent count.
func NewWavesResponse(waves []Wave) WavesResponse {
	if waves == nil {
		waves = []Wave{}
	}
	return WavesResponse{Count: len(waves), Waves: waves}
}

// WaveCountResponse is the body of GET /api/waves/count.
type WaveCountResponse struct {
	Count int `json:"count"`
}
