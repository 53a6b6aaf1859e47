package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealthSnapshotRoundTrip(t *testing.T) {
	// Before any probe runs, the snapshot is the zero value.
	assert.Equal(t, HealthStatus{}, GetHealthStatus())

	want := HealthStatus{
		Mongo:         true,
		SessionCache:  true,
		NotebookCache: false,
		CheckedAt:     time.Now(),
	}
	setHealthStatus(want)
	assert.Equal(t, want, GetHealthStatus())
}
