package nstimes

import (
	"context"
	"encoding/json"
)

type nsStationsResponse struct {
	Payload []nsStation `json:"payload"`
}

type nsStation struct {
	UICCode string `json:"UICCode"`
	Namen   struct {
		Lang string `json:"lang"`
	} `json:"namen"`
}

// FetchStations downloads the current name to UIC code mapping of all Dutch stations.
func (f *Fetcher) FetchStations(ctx context.Context, token string) (Stations, error) {
	body, err := f.get(ctx, f.stationsURL(), token, nil)
	if err != nil {
		return nil, err
	}
	resp := nsStationsResponse{}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, formatError("problem parsing stations response: %v", err)
	}
	result := make(Stations, len(resp.Payload))
	for _, s := range resp.Payload {
		if s.Namen.Lang == "" || s.UICCode == "" {
			continue
		}
		result[s.Namen.Lang] = s.UICCode
	}
	return result, nil
}
