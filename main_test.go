package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

var testRouter *gin.Engine

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	resetTestState()
	testRouter = gin.New()
	registerRoutes(testRouter)

	os.Exit(m.Run())
}

// resetTestState gives the suite a fresh store and controller. The handlers
// read the global controller at call time, so swapping it is enough.
func resetTestState() {
	app = NewController(newMemoryStore(), "test-user")
	app.Hydrate(context.Background())
}

// makeRequest helper function for making HTTP requests
func makeRequest(method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// makeJSONRequest marshals payload and sends it as the request body
func makeJSONRequest(method, url string, payload interface{}) *httptest.ResponseRecorder {
	data, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return makeRequest(method, url, bytes.NewReader(data))
}

// parseJSONResponse helper function to parse JSON response
func parseJSONResponse(recorder *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(recorder.Body.Bytes(), target)
}

// assertStatusCode helper function to assert HTTP status code
func assertStatusCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected status code %d, got %d", expected, actual)
	}
}

// assertNoError helper function to assert no error occurred
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
