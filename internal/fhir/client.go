// Package fhir bridges to an external FHIR server and normalizes its glucose
// observations into the shape the rest of the API speaks.
package fhir

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"diatrack.example/go-diatrack/pkg/logger"
)

var (
	// ErrNoData covers every unsuccessful remote outcome: patient not found,
	// server error, and transport failure are all the same terminal condition.
	ErrNoData = errors.New("no readings available")
)

// glucoseLOINC is the LOINC code for a blood-glucose measurement.
const glucoseLOINC = "2339-0"

// GlucoseReading is a normalized external observation.
type GlucoseReading struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Timestamp string  `json:"timestamp"`
}

// Client queries a FHIR server's Observation search. The request is a single
// blocking call with no timeout and no retry; the caller's context is the only
// way to abandon it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

func NewClient(baseURL string, log logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        log,
	}
}

// Observation search bundle, trimmed to the fields we read.
type bundle struct {
	Entry []bundleEntry `json:"entry"`
}

type bundleEntry struct {
	Resource observation `json:"resource"`
}

type observation struct {
	ValueQuantity     *valueQuantity `json:"valueQuantity"`
	EffectiveDateTime string         `json:"effectiveDateTime"`
}

type valueQuantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// GlucoseObservations fetches glucose observations for patientID and keeps
// only entries carrying both a value and an effective time.
func (c *Client) GlucoseObservations(ctx context.Context, patientID string) ([]GlucoseReading, error) {
	query := url.Values{}
	query.Set("code", "http://loinc.org|"+glucoseLOINC)
	query.Set("patient", patientID)
	searchURL := fmt.Sprintf("%s/Observation?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "fhir request failed", "error", err)
		return nil, ErrNoData
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn(ctx, "fhir server returned non-200", "status_code", resp.StatusCode)
		return nil, ErrNoData
	}

	var b bundle
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return nil, fmt.Errorf("decoding observation bundle: %w", err)
	}

	readings := make([]GlucoseReading, 0, len(b.Entry))
	for _, entry := range b.Entry {
		res := entry.Resource
		if res.ValueQuantity == nil || res.EffectiveDateTime == "" {
			continue
		}
		readings = append(readings, GlucoseReading{
			Value:     res.ValueQuantity.Value,
			Unit:      res.ValueQuantity.Unit,
			Timestamp: res.EffectiveDateTime,
		})
	}
	return readings, nil
}
