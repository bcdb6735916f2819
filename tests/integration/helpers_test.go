//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	out := map[string]interface{}{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	return out
}

func doJSON(t *testing.T, method, url string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("create %s request: %v", method, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	return resp.StatusCode, decodeBody(t, resp)
}

func getJSON(t *testing.T, url string) (int, map[string]interface{}) {
	t.Helper()
	return doJSON(t, http.MethodGet, url, nil)
}

func postJSON(t *testing.T, url string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	return doJSON(t, http.MethodPost, url, payload)
}

func createQuestion(t *testing.T, question, answer string, category, difficulty int) int {
	t.Helper()

	status, payload := postJSON(t, baseURL()+"/questions", map[string]interface{}{
		"question":   question,
		"answer":     answer,
		"category":   category,
		"difficulty": difficulty,
	})
	if status != http.StatusOK {
		t.Fatalf("create question returned %d: %v", status, payload)
	}

	created, ok := payload["created"].(float64)
	if !ok {
		t.Fatalf("created field missing in response: %v", payload)
	}
	return int(created)
}

func deleteQuestion(t *testing.T, id int) (int, map[string]interface{}) {
	t.Helper()
	return doJSON(t, http.MethodDelete, fmt.Sprintf("%s/questions/%d", baseURL(), id), nil)
}

// cleanupQuestion removes a test fixture, tolerating it being gone already.
func cleanupQuestion(t *testing.T, id int) {
	t.Helper()
	deleteQuestion(t, id)
}
