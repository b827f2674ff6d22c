package driver

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/goccy/go-json"
)

// APIDriver talks to a running server on behalf of a user. Requests carry
// the identity headers the gateway would add.
type APIDriver struct {
	baseURL string
	client  *http.Client
	userID  string
	email   string
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) ActAs(userID, email string) {
	d.userID = userID
	d.email = email
}

func (d *APIDriver) Anonymous() {
	d.userID = ""
	d.email = ""
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) StartWizard(kind string, params map[string]string) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/wizards/"+kind, map[string]any{"params": params})
}

func (d *APIDriver) GetWizard(id string) (*http.Response, error) {
	return d.send(http.MethodGet, "/v1/wizards/"+id, nil)
}

func (d *APIDriver) UpdateDraft(id string, partial map[string]any) (*http.Response, error) {
	return d.send(http.MethodPatch, "/v1/wizards/"+id+"/draft", partial)
}

func (d *APIDriver) NextStep(id string) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/wizards/"+id+"/next", nil)
}

func (d *APIDriver) PreviousStep(id string) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/wizards/"+id+"/back", nil)
}

func (d *APIDriver) Submit(id string) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/wizards/"+id+"/submit", nil)
}

func (d *APIDriver) CancelWizard(id string) (*http.Response, error) {
	return d.send(http.MethodDelete, "/v1/wizards/"+id, nil)
}

func (d *APIDriver) AttachFile(id, field, name string, data []byte) (*http.Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := d.request(http.MethodPost, fmt.Sprintf("/v1/wizards/%s/files?field=%s", id, field), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return d.client.Do(req)
}

func (d *APIDriver) GetProperty(id string) (*http.Response, error) {
	return d.send(http.MethodGet, "/v1/properties/"+id, nil)
}

func (d *APIDriver) ListAvailableProperties() (*http.Response, error) {
	return d.send(http.MethodGet, "/v1/properties/available", nil)
}

func (d *APIDriver) CreateMaintenanceRequest(body map[string]any) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/maintenance-requests", body)
}

func (d *APIDriver) CompleteMaintenanceRequest(id string, actualCost float64) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/maintenance-requests/"+id+"/complete", map[string]any{"actual_cost": actualCost})
}

func (d *APIDriver) ListPropertyMaintenanceRequests(propertyID string) (*http.Response, error) {
	return d.send(http.MethodGet, "/v1/properties/"+propertyID+"/maintenance-requests", nil)
}

func (d *APIDriver) CreateInvite(body map[string]any) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/invites", body)
}

func (d *APIDriver) VerifyInvite(email, token string) (*http.Response, error) {
	return d.send(http.MethodPost, "/v1/invites/verify", map[string]any{"email": email, "token": token})
}

func (d *APIDriver) send(method, path string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := d.request(method, path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return d.client.Do(req)
}

func (d *APIDriver) request(method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, d.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if d.userID != "" {
		req.Header.Set("X-User-ID", d.userID)
		req.Header.Set("X-User-Email", d.email)
	}
	return req, nil
}
