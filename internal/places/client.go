package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

var ErrUpstreamUnavailable = errors.New("place search unavailable")

type Prediction struct {
	PlaceID       string `json:"placeId"`
	PrimaryName   string `json:"name"`
	SecondaryText string `json:"country"`
}

type Details struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	PhotoURLs []string `json:"photos"`
}

// Client resolves destination queries. The wizard depends ONLY on this
// interface so tests can stub the collaborator.
type Client interface {
	Predict(ctx context.Context, query string) ([]Prediction, error)
	Details(ctx context.Context, placeID string) (*Details, error)
}

// --------------------------------------------------
// GOOGLE PLACES WEB SERVICE
// --------------------------------------------------

type GoogleClient struct {
	apiKey string
	http   *http.Client
}

func NewGoogleClient() *GoogleClient {
	return &GoogleClient{
		apiKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *GoogleClient) Predict(ctx context.Context, query string) ([]Prediction, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("%w: missing GOOGLE_MAPS_API_KEY", ErrUpstreamUnavailable)
	}

	endpoint := "https://maps.googleapis.com/maps/api/place/autocomplete/json?" +
		url.Values{
			"input": {query},
			"types": {"(cities)"},
			"key":   {g.apiKey},
		}.Encode()

	var result struct {
		Status      string `json:"status"`
		Predictions []struct {
			PlaceID              string `json:"place_id"`
			StructuredFormatting struct {
				MainText      string `json:"main_text"`
				SecondaryText string `json:"secondary_text"`
			} `json:"structured_formatting"`
		} `json:"predictions"`
	}
	if err := g.get(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	if result.Status != "OK" && result.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("%w: status %s", ErrUpstreamUnavailable, result.Status)
	}

	predictions := make([]Prediction, 0, len(result.Predictions))
	for _, p := range result.Predictions {
		predictions = append(predictions, Prediction{
			PlaceID:       p.PlaceID,
			PrimaryName:   p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}
	return predictions, nil
}

func (g *GoogleClient) Details(ctx context.Context, placeID string) (*Details, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("%w: missing GOOGLE_MAPS_API_KEY", ErrUpstreamUnavailable)
	}

	endpoint := "https://maps.googleapis.com/maps/api/place/details/json?" +
		url.Values{
			"place_id": {placeID},
			"fields":   {"name,formatted_address,photos"},
			"key":      {g.apiKey},
		}.Encode()

	var result struct {
		Status string `json:"status"`
		Result struct {
			Name             string `json:"name"`
			FormattedAddress string `json:"formatted_address"`
			Photos           []struct {
				PhotoReference string `json:"photo_reference"`
			} `json:"photos"`
		} `json:"result"`
	}
	if err := g.get(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	if result.Status != "OK" {
		return nil, fmt.Errorf("%w: status %s", ErrUpstreamUnavailable, result.Status)
	}

	details := &Details{
		Name:    result.Result.Name,
		Address: result.Result.FormattedAddress,
	}
	for _, p := range result.Result.Photos {
		details.PhotoURLs = append(details.PhotoURLs, g.photoURL(p.PhotoReference))
	}
	return details, nil
}

func (g *GoogleClient) photoURL(reference string) string {
	return "https://maps.googleapis.com/maps/api/place/photo?" +
		url.Values{
			"maxwidth":        {"400"},
			"photo_reference": {reference},
			"key":             {g.apiKey},
		}.Encode()
}

func (g *GoogleClient) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: http %d", ErrUpstreamUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: bad response body", ErrUpstreamUnavailable)
	}
	return nil
}
