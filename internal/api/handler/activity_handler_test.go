package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

func TestActivityHandler_List(t *testing.T) {
	var gotLimit int
	svc := &stubActivityService{
		listFn: func(_ context.Context, limit int) ([]domain.ActivityEvent, error) {
			gotLimit = limit
			return []domain.ActivityEvent{{Action: domain.ActionBidPlaced, Resource: "bid", ResourceID: 3, ActorID: 42}}, nil
		},
	}
	h := NewActivityHandler(svc)

	c, rec := newContext(http.MethodGet, "/api/activity?limit=5", "", admin)
	require.NoError(t, h.List(c))
	assert.Equal(t, 5, gotLimit)

	var resp struct {
		Count  int              `json:"count"`
		Events []map[string]any `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "bid.placed", resp.Events[0]["action"])
	assert.EqualValues(t, 3, resp.Events[0]["resourceId"])
}

func TestActivityHandler_List_DefaultsAndErrors(t *testing.T) {
	var gotLimit = -1
	svc := &stubActivityService{
		listFn: func(_ context.Context, limit int) ([]domain.ActivityEvent, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	h := NewActivityHandler(svc)

	c, rec := newContext(http.MethodGet, "/api/activity", "", admin)
	require.NoError(t, h.List(c))
	assert.Equal(t, 0, gotLimit)
	assert.JSONEq(t, `{"events":[],"count":0}`, rec.Body.String())

	c, _ = newContext(http.MethodGet, "/api/activity?limit=lots", "", admin)
	assert.Equal(t, []string{"limit"}, violationFields(t, h.List(c)))
}
