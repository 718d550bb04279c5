package store

import (
	"testing"

	"github.com/KirkDiggler/matchqueue/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRejectsBrokenInvariants(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{
			name: "duplicate participant",
			doc:  `{"panels": {"chan-1": {"activityCategory": "stumble", "unitPrice": 1.50, "roundNumber": 1, "queues": {"block_dash": {"label": "Block Dash", "capacity": 8, "participants": ["111", "111"]}}}}}`,
			err:  models.ErrQueueInvariant,
		},
		{
			name: "over capacity",
			doc:  `{"panels": {"chan-1": {"activityCategory": "valorant", "unitPrice": 1, "roundNumber": 2, "queues": {"1x1": {"label": "1x1", "capacity": 2, "participants": ["111", "222", "333"]}}}}}`,
			err:  models.ErrQueueInvariant,
		},
		{
			name: "capacity below minimum",
			doc:  `{"panels": {"chan-1": {"activityCategory": "valorant", "unitPrice": 1, "roundNumber": 1, "queues": {"1x1": {"label": "1x1", "capacity": 1, "participants": []}}}}}`,
			err:  models.ErrQueueInvariant,
		},
		{
			name: "negative price",
			doc:  `{"panels": {"chan-1": {"activityCategory": "valorant", "unitPrice": -1, "roundNumber": 1, "queues": {}}}}`,
			err:  models.ErrPanelInvariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorruptStore)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDecodeAcceptsValidDocument(t *testing.T) {
	data, err := encode(&SaveInput{Store: sampleStore()})
	require.NoError(t, err)

	st, err := decode(data)
	require.NoError(t, err)
	assert.NoError(t, st.Validate())
}
