// Package vcr provides utilities for recording and replaying HTTP interactions in tests using go-vcr.
package vcr

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/dnaeon/go-vcr.v3/cassette"
	"gopkg.in/dnaeon/go-vcr.v3/recorder"
)

// Mode represents the mode for VCR operations
type Mode string

const (
	// ModeOff disables VCR and uses real HTTP requests
	ModeOff Mode = "off"
	// ModeRecord records or updates cassettes
	ModeRecord Mode = "record"
	// ModeReplay replays from existing cassettes (default)
	ModeReplay Mode = "replay"
)

// GetVCRMode reads the VCR_MODE environment variable and returns the mode.
// Defaults to replay mode if not set or invalid.
func GetVCRMode() Mode {
	mode := os.Getenv("VCR_MODE")
	switch mode {
	case string(ModeOff):
		return ModeOff
	case string(ModeRecord):
		return ModeRecord
	case string(ModeReplay), "":
		return ModeReplay
	default:
		return ModeReplay
	}
}

// CassettePath returns the cassette path for the current test, without
// the .yaml extension (the recorder adds it).
func CassettePath(t *testing.T) string {
	t.Helper()
	return filepath.Join("testdata", "cassettes", t.Name())
}

// HasCassette reports whether a cassette has been recorded for the
// current test. Replay tests skip when no cassette exists yet.
func HasCassette(t *testing.T) bool {
	t.Helper()
	_, err := os.Stat(CassettePath(t) + ".yaml")
	return err == nil
}

// NewVCRRecorder creates a new VCR recorder for the given cassette path.
// The recorder automatically scrubs credentials before saving.
func NewVCRRecorder(t *testing.T, cassettePath string) (*recorder.Recorder, error) {
	t.Helper()

	mode := GetVCRMode()

	var recorderMode recorder.Mode
	switch mode {
	case ModeRecord:
		recorderMode = recorder.ModeRecordOnly
	case ModeReplay:
		recorderMode = recorder.ModeReplayOnly
	default:
		t.Fatalf("NewVCRRecorder called with ModeOff - this is a programming error")
		return nil, nil
	}

	r, err := recorder.NewWithOptions(&recorder.Options{
		CassetteName:       cassettePath,
		Mode:               recorderMode,
		SkipRequestLatency: true, // Don't simulate recorded delays in replay mode
	})
	if err != nil {
		return nil, err
	}

	r.AddHook(scrubCredentials, recorder.BeforeSaveHook)

	return r, nil
}

// scrubCredentials removes credentials from cassette interactions before
// they are saved to disk: auth headers everywhere, and the login
// request/response bodies (password in, token out).
func scrubCredentials(i *cassette.Interaction) error {
	sensitivePatterns := []string{
		"authorization",
		"cookie",
	}

	targets := []map[string][]string{
		i.Request.Headers,
		i.Response.Headers,
	}

	for _, headers := range targets {
		keys := make([]string, 0, len(headers))
		for key := range headers {
			keys = append(keys, key)
		}

		for _, key := range keys {
			lowerKey := strings.ToLower(key)
			for _, pattern := range sensitivePatterns {
				if strings.Contains(lowerKey, pattern) {
					delete(headers, key)
					break
				}
			}
		}
	}

	if strings.HasSuffix(i.Request.URL, "/auth/login") {
		i.Request.Body = `{"email":"scrubbed@scrubbed","password":"scrubbed"}`
		i.Response.Body = `{"token":"vcr-replay-token"}`
	}

	return nil
}

// WrapHTTPClient wraps an existing http.Client with VCR recording/replay functionality.
// If VCR_MODE=off, returns the original client unchanged.
// Cassettes are stored in testdata/cassettes/<test-name>.yaml
func WrapHTTPClient(t *testing.T, httpClient *http.Client) *http.Client {
	t.Helper()

	mode := GetVCRMode()
	if mode == ModeOff {
		return httpClient
	}

	r, err := NewVCRRecorder(t, CassettePath(t))
	if err != nil {
		t.Fatalf("Failed to create VCR recorder: %v", err)
	}

	t.Cleanup(func() {
		if err := r.Stop(); err != nil {
			t.Errorf("Failed to stop VCR recorder: %v", err)
		}
	})

	vcrClient := &http.Client{
		Transport:     r,
		CheckRedirect: httpClient.CheckRedirect,
		Jar:           httpClient.Jar,
		Timeout:       httpClient.Timeout,
	}

	return vcrClient
}

// NewHTTPClient creates a new HTTP client with VCR support.
// If VCR_MODE=off, returns a standard HTTP client.
func NewHTTPClient(t *testing.T) *http.Client {
	t.Helper()

	baseClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	return WrapHTTPClient(t, baseClient)
}
