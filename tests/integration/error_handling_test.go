//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestErrorEnvelopes(t *testing.T) {
	testCases := []struct {
		name    string
		method  string
		path    string
		payload map[string]interface{}
		status  int
		message string
	}{
		{
			name:    "delete nonexistent question",
			method:  http.MethodDelete,
			path:    "/questions/0",
			status:  http.StatusUnprocessableEntity,
			message: "unprocessable",
		},
		{
			name:    "unknown category listing",
			method:  http.MethodGet,
			path:    "/categories/100000/questions",
			status:  http.StatusNotFound,
			message: "resource not found",
		},
		{
			name:   "create question with missing fields",
			method: http.MethodPost,
			path:   "/questions",
			payload: map[string]interface{}{
				"question": "half a question",
			},
			status:  http.StatusUnprocessableEntity,
			message: "unprocessable",
		},
		{
			name:    "empty search term falls through to create",
			method:  http.MethodPost,
			path:    "/questions",
			payload: map[string]interface{}{"searchTerm": ""},
			status:  http.StatusUnprocessableEntity,
			message: "unprocessable",
		},
		{
			name:    "method not allowed",
			method:  http.MethodPut,
			path:    "/questions",
			payload: map[string]interface{}{},
			status:  http.StatusMethodNotAllowed,
			message: "method not allowed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := doJSON(t, tc.method, baseURL()+tc.path, tc.payload)

			if status != tc.status {
				t.Fatalf("expected %d, got %d: %v", tc.status, status, payload)
			}
			if payload["success"] != false {
				t.Fatalf("success must be false: %v", payload)
			}
			if int(payload["error"].(float64)) != tc.status {
				t.Fatalf("error field = %v, want %d", payload["error"], tc.status)
			}
			if payload["message"] != tc.message {
				t.Fatalf("message = %v, want %q", payload["message"], tc.message)
			}
		})
	}
}

func TestMalformedJSONPayload(t *testing.T) {
	resp, err := http.Post(fmt.Sprintf("%s/quizzes", baseURL()), "application/json",
		strings.NewReader(`{"previous_questions":`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	payload := decodeBody(t, resp)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %v", resp.StatusCode, payload)
	}
	if payload["message"] != "bad request" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
}
