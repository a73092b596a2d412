package orchestrator

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentimentscope/internal/clients"
	"github.com/spacesedan/sentimentscope/internal/models"
)

func bulkInput(lines int) string {
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&sb, "line %d\n", i)
	}
	return sb.String()
}

func TestSubmitSingleValidation(t *testing.T) {
	var state State

	next, _, err := state.Submit(models.KindSingle, "   \n ")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, state, next, "rejected submit must not change state")
	assert.Equal(t, PhaseIdle, next.Phase)

	next, req, err := state.Submit(models.KindSingle, "  love it  ")
	require.NoError(t, err)
	assert.Equal(t, PhaseLoading, next.Phase)
	assert.Equal(t, models.KindSingle, next.ActiveKind)
	assert.Equal(t, uint64(1), next.Token)
	assert.Equal(t, "love it", req.Text)
	assert.Equal(t, next.Token, req.Token)
}

func TestSubmitBulkLineLimits(t *testing.T) {
	var state State

	_, _, err := state.Submit(models.KindBulk, "\n\n  \n")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, _, err = state.Submit(models.KindBulk, bulkInput(101))
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "100")

	next, req, err := state.Submit(models.KindBulk, bulkInput(100))
	require.NoError(t, err)
	assert.Equal(t, PhaseLoading, next.Phase)
	assert.Len(t, req.Texts, 100)
}

func TestSubmitBulkIgnoresBlankLines(t *testing.T) {
	_, req, err := State{}.Submit(models.KindBulk, "first\n\n  \nsecond\r\nthird\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, req.Texts)
}

func TestSubmitURLValidation(t *testing.T) {
	_, _, err := State{}.Submit(models.KindURL, "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	next, req, err := State{}.Submit(models.KindURL, "https://example.com/item")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/item", req.URL)
	assert.Equal(t, PhaseLoading, next.Phase)
}

func TestSubmitClearsPriorResultAndError(t *testing.T) {
	state, req, err := State{}.Submit(models.KindSingle, "fine")
	require.NoError(t, err)
	state, applied := state.Resolve(req.Token, []byte(`{"sentiment":"Positive"}`), nil)
	require.True(t, applied)
	require.NotNil(t, state.Result)

	state, _, err = state.Submit(models.KindURL, "https://example.com")
	require.NoError(t, err)
	assert.Nil(t, state.Result, "a new submit clears the displayed result")
	assert.Empty(t, state.ErrMessage)
}

func TestResolveSuccessNormalizes(t *testing.T) {
	state, req, err := State{}.Submit(models.KindSingle, "great")
	require.NoError(t, err)

	state, applied := state.Resolve(req.Token, []byte(`{"sentiment":"Positive","confidence":0.93}`), nil)
	require.True(t, applied)
	assert.Equal(t, PhaseSuccess, state.Phase)
	require.NotNil(t, state.Result)
	require.NotNil(t, state.Result.Single)
	assert.Equal(t, models.SentimentPositive, state.Result.Single.Sentiment)
}

func TestResolveMalformedBodyStillSucceeds(t *testing.T) {
	state, req, err := State{}.Submit(models.KindURL, "https://example.com")
	require.NoError(t, err)

	state, applied := state.Resolve(req.Token, []byte(`not json at all`), nil)
	require.True(t, applied)
	assert.Equal(t, PhaseSuccess, state.Phase)
	require.NotNil(t, state.Result.Batch)
	assert.Zero(t, state.Result.Batch.Summary.TotalAnalyzed)
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	// Submit A, then supersede it with B before A resolves.
	state, reqA, err := State{}.Submit(models.KindSingle, "slow request")
	require.NoError(t, err)
	state, reqB, err := state.Submit(models.KindSingle, "fast request")
	require.NoError(t, err)
	require.Greater(t, reqB.Token, reqA.Token)

	// B resolves first and wins.
	state, applied := state.Resolve(reqB.Token, []byte(`{"sentiment":"Negative"}`), nil)
	require.True(t, applied)
	assert.Equal(t, models.SentimentNegative, state.Result.Single.Sentiment)

	// A's late response must be inert.
	state, applied = state.Resolve(reqA.Token, []byte(`{"sentiment":"Positive"}`), nil)
	assert.False(t, applied)
	assert.Equal(t, PhaseSuccess, state.Phase)
	assert.Equal(t, models.SentimentNegative, state.Result.Single.Sentiment)

	// So must A's late error.
	state, applied = state.Resolve(reqA.Token, nil, errors.New("timeout"))
	assert.False(t, applied)
	assert.Equal(t, PhaseSuccess, state.Phase)
}

func TestDuplicateDeliveryIsDiscarded(t *testing.T) {
	state, req, err := State{}.Submit(models.KindSingle, "once")
	require.NoError(t, err)

	state, applied := state.Resolve(req.Token, []byte(`{}`), nil)
	require.True(t, applied)
	_, applied = state.Resolve(req.Token, []byte(`{}`), nil)
	assert.False(t, applied, "an already-settled token must not re-apply")
}

func TestResolveErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "api detail is surfaced verbatim",
			err:  &clients.APIError{StatusCode: http.StatusServiceUnavailable, Detail: "Could not scrape video comments."},
			want: "Could not scrape video comments.",
		},
		{
			name: "api error without detail falls back to generic",
			err:  &clients.APIError{StatusCode: http.StatusBadGateway},
			want: GenericFailureMessage,
		},
		{
			name: "transport error falls back to generic",
			err:  errors.New("dial tcp: connection refused"),
			want: GenericFailureMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, req, err := State{}.Submit(models.KindURL, "https://example.com")
			require.NoError(t, err)

			state, applied := state.Resolve(req.Token, nil, tt.err)
			require.True(t, applied)
			assert.Equal(t, PhaseError, state.Phase)
			assert.Equal(t, tt.want, state.ErrMessage)
			assert.Nil(t, state.Result)
		})
	}
}

func TestResubmitAfterErrorIsLegal(t *testing.T) {
	state, req, err := State{}.Submit(models.KindSingle, "first")
	require.NoError(t, err)
	state, _ = state.Resolve(req.Token, nil, errors.New("boom"))
	require.Equal(t, PhaseError, state.Phase)

	state, req, err = state.Submit(models.KindSingle, "second")
	require.NoError(t, err)
	assert.Equal(t, PhaseLoading, state.Phase)
	assert.Equal(t, uint64(2), req.Token)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "success", PhaseSuccess.String())
	assert.Equal(t, "error", PhaseError.String())
}
