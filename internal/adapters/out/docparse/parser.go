// Package docparse provides the HTTP client for the document parsing service,
// which extracts booking fields from uploaded shipping documents.
package docparse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"forwarding/internal/core/domain/model/shipment"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

// Client implements ports.DocumentParser against the parsing service's
// extraction endpoint. Documents go out as multipart uploads; extracted
// fields come back as JSON, with absent fields reported as empty strings.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a document parsing client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL: baseURL,
		// Parsing large scanned documents is slow; allow more headroom than
		// a typical service call.
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

type parseResponse struct {
	Carrier      string   `json:"carrier"`
	VesselName   string   `json:"vessel_name"`
	VoyageNumber string   `json:"voyage_number"`
	Containers   []string `json:"containers"`
}

// Parse uploads a shipping document and returns the extracted booking fields.
func (c *Client) Parse(ctx context.Context, fileName string, content []byte) (ports.ParsedShipmentDocument, error) {
	if fileName == "" {
		return ports.ParsedShipmentDocument{}, errs.NewValueIsRequiredError("fileName")
	}
	if len(content) == 0 {
		return ports.ParsedShipmentDocument{}, errs.NewValueIsRequiredError("content")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("document", fileName)
	if err != nil {
		return ports.ParsedShipmentDocument{}, err
	}
	if _, err = io.Copy(part, bytes.NewReader(content)); err != nil {
		return ports.ParsedShipmentDocument{}, err
	}
	if err = writer.Close(); err != nil {
		return ports.ParsedShipmentDocument{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/parse", &buf)
	if err != nil {
		return ports.ParsedShipmentDocument{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.ParsedShipmentDocument{}, fmt.Errorf("document parsing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.ParsedShipmentDocument{}, fmt.Errorf("document parsing service returned status %d", resp.StatusCode)
	}

	var body parseResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.ParsedShipmentDocument{}, fmt.Errorf("document parsing response is malformed: %w", err)
	}

	return ports.ParsedShipmentDocument{
		Booking: shipment.BookingDetails{
			Carrier:      body.Carrier,
			VesselName:   body.VesselName,
			VoyageNumber: body.VoyageNumber,
			Containers:   body.Containers,
		},
	}, nil
}
