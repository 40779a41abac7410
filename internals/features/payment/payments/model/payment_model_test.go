package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUnitSnapshot(t *testing.T) {
	p := &PaymentModel{}
	unitID := uuid.New()

	require.NoError(t, p.SetUnitSnapshot(&PaymentUnitSnapshotPayload{
		ID:         unitID,
		Identifier: "101",
		Block:      "B",
	}))
	require.NotNil(t, p.PaymentUnitSnapshot)

	var got PaymentUnitSnapshotPayload
	require.NoError(t, json.Unmarshal(p.PaymentUnitSnapshot, &got))
	assert.Equal(t, unitID, got.ID)
	assert.Equal(t, "101", got.Identifier)
	assert.Equal(t, "B", got.Block)

	// nil clears the column
	require.NoError(t, p.SetUnitSnapshot(nil))
	assert.Nil(t, p.PaymentUnitSnapshot)
}
