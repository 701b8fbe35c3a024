package integration_test

import (
	"testing"

	"internhub_backend/test/helpers"
)

// newServer boots a full server over its own in-memory database. Tests that
// share one call it once and run sub-scenarios against it.
func newServer(t *testing.T) *helpers.TestServer {
	t.Helper()

	ts := helpers.NewTestServer(t)
	t.Cleanup(ts.Close)
	return ts
}
