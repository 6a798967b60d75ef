package serve

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrueBrain/nile-validator/validate"
)

func doValidate(t *testing.T, body string) (*httptest.ResponseRecorder, ValidateResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(body))
	w := httptest.NewRecorder()
	NewServer(Config{Addr: ":0"}).Routes().ServeHTTP(w, req)

	var resp ValidateResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestValidate_CleanTranslation(t *testing.T) {
	w, resp := doValidate(t, `{
		"base": "Transfer {CARGO_LONG} to {STATION}",
		"translation": "{CARGO_LONG} naar {STATION} overbrengen",
		"language": {"plural": 0, "genders": ["m", "f"], "cases": ["gen"]}
	}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Empty(t, resp.Issues)
}

func TestValidate_ReportsIssues(t *testing.T) {
	_, resp := doValidate(t, `{
		"base": "{NUM} items",
		"translation": "{FOOBAR} stuks"
	}`)
	require.Len(t, resp.Issues, 2)
	assert.Equal(t, validate.SeverityError, resp.Issues[0].Severity)
	assert.Equal(t, "unknown string command: '{FOOBAR}'", resp.Issues[0].Message)
	assert.Equal(t, "missing parameter {NUM} at position 0", resp.Issues[1].Message)
}

func TestValidate_ParseFailures(t *testing.T) {
	_, resp := doValidate(t, `{
		"base": "{ORANGE OpenTTD",
		"translation": "val: {123}"
	}`)
	require.Len(t, resp.Issues, 2)

	assert.Equal(t, "base: Unterminated string command, '}' expected.", resp.Issues[0].Message)
	assert.Equal(t, 0, resp.Issues[0].Begin)
	assert.Equal(t, 0, resp.Issues[0].End)

	assert.Equal(t, "Invalid string command: '{123}'", resp.Issues[1].Message)
	assert.Equal(t, 5, resp.Issues[1].Begin)
	assert.Equal(t, 10, resp.Issues[1].End)
}

func TestValidate_WithoutLanguage(t *testing.T) {
	_, resp := doValidate(t, `{
		"base": "{NUM}",
		"translation": "{NUM} {P a b c d e}"
	}`)
	assert.Empty(t, resp.Issues)
}

func TestValidate_BadJSON(t *testing.T) {
	w, _ := doValidate(t, `{"base": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidate_EmptyIssuesSerialisesAsArray(t *testing.T) {
	w, _ := doValidate(t, `{"base": "", "translation": ""}`)
	assert.JSONEq(t, `{"issues": []}`, w.Body.String())
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	NewServer(Config{}).Routes().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
