package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertJSONResponse reads the response body and decodes it into v,
// failing the test with the raw body on a decode error.
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "reading response body")
	require.NoError(t, json.Unmarshal(body, v), "decoding response: %s", string(body))
}
