package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"warranty_intake/internal/usecase/interfaces"
)

var ErrMissingCRMAccessToken = errors.New("missing CRM_ACCESS_TOKEN")

const defaultBaseURL = "https://api.hubapi.com"

// HubSpotGateway talks to the HubSpot CRM v3 objects API.
//
// It implements the contact/ticket collaborator consumed by the intake flow.
// All failures are returned to the caller; the intake flow decides that they
// are non-fatal.

type HubSpotGateway struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

var _ interfaces.ICRMGateway = (*HubSpotGateway)(nil)

func NewHubSpotGateway(baseURL, accessToken string) (*HubSpotGateway, error) {
	if accessToken == "" {
		log.Printf("[crm][gateway] missing CRM_ACCESS_TOKEN")
		return nil, ErrMissingCRMAccessToken
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &HubSpotGateway{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type contactSearchRequest struct {
	FilterGroups []filterGroup `json:"filterGroups"`
	Properties   []string      `json:"properties"`
	Limit        int           `json:"limit"`
}

type filterGroup struct {
	Filters []filter `json:"filters"`
}

type filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type searchResponse struct {
	Total   int            `json:"total"`
	Results []objectResult `json:"results"`
}

type objectResult struct {
	ID string `json:"id"`
}

type createObjectRequest struct {
	Properties map[string]string `json:"properties"`
}

// FindContactByEmail resolves an existing contact id by exact email match.
// A miss is not an error; it returns "".
func (g *HubSpotGateway) FindContactByEmail(ctx context.Context, email string) (string, error) {
	body := contactSearchRequest{
		FilterGroups: []filterGroup{{Filters: []filter{{
			PropertyName: "email",
			Operator:     "EQ",
			Value:        email,
		}}}},
		Properties: []string{"email"},
		Limit:      1,
	}

	var out searchResponse
	if err := g.post(ctx, "/crm/v3/objects/contacts/search", body, &out); err != nil {
		return "", err
	}
	if len(out.Results) == 0 {
		return "", nil
	}
	return out.Results[0].ID, nil
}

func (g *HubSpotGateway) CreateContact(ctx context.Context, props map[string]string) (string, error) {
	var out objectResult
	if err := g.post(ctx, "/crm/v3/objects/contacts", createObjectRequest{Properties: props}, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", errors.New("crm contact create returned no id")
	}
	return out.ID, nil
}

func (g *HubSpotGateway) CreateTicket(ctx context.Context, props map[string]string) (string, error) {
	var out objectResult
	if err := g.post(ctx, "/crm/v3/objects/tickets", createObjectRequest{Properties: props}, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", errors.New("crm ticket create returned no id")
	}
	return out.ID, nil
}

func (g *HubSpotGateway) post(ctx context.Context, path string, in any, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.accessToken)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("crm %s returned status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
