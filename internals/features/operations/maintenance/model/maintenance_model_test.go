package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketTransitions(t *testing.T) {
	assert.True(t, TicketOpen.CanTransition(TicketInProgress))
	assert.True(t, TicketOpen.CanTransition(TicketCanceled))
	assert.False(t, TicketOpen.CanTransition(TicketDone), "ticket must pass through in_progress")

	assert.True(t, TicketInProgress.CanTransition(TicketDone))
	assert.True(t, TicketInProgress.CanTransition(TicketCanceled))
	assert.False(t, TicketInProgress.CanTransition(TicketOpen))

	for _, terminal := range []TicketStatus{TicketDone, TicketCanceled} {
		assert.True(t, terminal.IsTerminal())
		for _, next := range []TicketStatus{TicketOpen, TicketInProgress, TicketDone, TicketCanceled} {
			assert.False(t, terminal.CanTransition(next), "terminal state %s must not move", terminal)
		}
	}
}
