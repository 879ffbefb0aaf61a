package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func registerPlayer(t *testing.T, ts *httptest.Server, name string, number any) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/register-player", map[string]any{
		"playerName":   name,
		"playerNumber": number,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func submitResult(t *testing.T, ts *httptest.Server, name string, number any, timeRemaining any, escaped any) *http.Response {
	t.Helper()
	return doRequest(t, ts, http.MethodPost, "/submit-result", map[string]any{
		"playerName":    name,
		"playerNumber":  number,
		"timeRemaining": timeRemaining,
		"escaped":       escaped,
	})
}

func fetchResults(t *testing.T, ts *httptest.Server) ([]any, []any) {
	t.Helper()
	resp := doRequest(t, ts, http.MethodGet, "/get-results", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	escaped, ok := body["escaped"].([]any)
	if !ok {
		t.Fatalf("expected escaped list, got %#v", body["escaped"])
	}
	eliminated, ok := body["eliminated"].([]any)
	if !ok {
		t.Fatalf("expected eliminated list, got %#v", body["eliminated"])
	}
	return escaped, eliminated
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, payload any) *http.Response {
	t.Helper()
	var body io.Reader = bytes.NewReader(nil)
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}
	return doRawRequest(t, ts, method, path, body, payload != nil)
}

func doRawRequest(t *testing.T, ts *httptest.Server, method, path string, body io.Reader, isJSON bool) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func playerData(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %#v", body["data"])
	}
	return data
}
