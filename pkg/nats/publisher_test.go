package nats

import (
	"testing"

	"neoyngpt-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "neoyn.events.QUERY_PROCESSED", Subject(events.TypeQueryProcessed))
}

func TestCloseNilConnection(t *testing.T) {
	p := &Publisher{}
	assert.NotPanics(t, p.Close)
}
