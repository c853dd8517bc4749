package fred

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"macroregime/internal/domain"
	"macroregime/internal/logger"
)

const baseUrl = "https://api.stlouisfed.org/fred/series/observations"

type Client struct {
	HttpClient *http.Client
	ApiKey     string
}

type observationsResponse struct {
	ObservationStart string `json:"observation_start"`
	ObservationEnd   string `json:"observation_end"`
	Count            int    `json:"count"`
	Observations     []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

// GetObservations fetches all observations for a series on or after start.
// FRED uses "." for missing values; those rows are skipped.
func (c Client) GetObservations(seriesID string, start time.Time) ([]domain.Observation, error) {
	params := url.Values{}
	params.Set("series_id", seriesID)
	params.Set("api_key", c.ApiKey)
	params.Set("file_type", "json")
	params.Set("observation_start", start.Format(time.DateOnly))

	req, err := http.NewRequest(http.MethodGet, baseUrl+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == 429 {
		logger.Debug("fred rate limit hit. sleeping...")
		time.Sleep(60 * time.Second)
		return c.GetObservations(seriesID, start)
	} else if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseJson := observationsResponse{}
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, err
	}

	out := []domain.Observation{}
	for _, o := range responseJson.Observations {
		if o.Value == "." {
			continue
		}
		date, err := time.Parse(time.DateOnly, o.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse observation date %s: %w", o.Date, err)
		}
		value, err := strconv.ParseFloat(o.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse observation value %q for %s: %w", o.Value, seriesID, err)
		}
		out = append(out, domain.Observation{
			SeriesID: seriesID,
			Date:     date,
			Value:    value,
		})
	}

	return out, nil
}
