package youtube_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mediakit-io/ytapi/pkg/youtube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_StructuredCause(t *testing.T) {
	t.Parallel()

	err := &youtube.APIError{
		URL:        "https://example.com/youtube/v3/videos?id=abc",
		StatusCode: 403,
		Detail: &youtube.ErrorDetail{
			Code:    403,
			Message: "The request cannot be completed because you have exceeded your quota.",
			Errors: []youtube.ErrorItem{
				{Domain: "youtube.quota", Reason: youtube.ReasonQuotaExceeded},
			},
		},
	}

	assert.Contains(t, err.Error(), "https://example.com/youtube/v3/videos?id=abc")
	assert.Contains(t, err.Error(), "exceeded your quota")
	assert.True(t, youtube.IsQuotaExceeded(err))
	assert.False(t, youtube.IsNotFound(err))
}

func TestAPIError_RawFallback(t *testing.T) {
	t.Parallel()

	err := &youtube.APIError{
		URL:        "https://example.com/youtube/v3/videos",
		StatusCode: 502,
		Raw:        "Bad Gateway",
	}

	assert.Contains(t, err.Error(), "status 502")
	assert.Contains(t, err.Error(), "Bad Gateway")
	assert.False(t, youtube.IsQuotaExceeded(err))
}

func TestAPIError_WrappedChainsSurvive(t *testing.T) {
	t.Parallel()

	apiErr := &youtube.APIError{
		URL:        "https://example.com/youtube/v3/search",
		StatusCode: 404,
		Detail:     &youtube.ErrorDetail{Code: 404, Message: "not here"},
	}

	wrapped := fmt.Errorf("listing /search: %w", apiErr)

	target := &youtube.APIError{}
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, 404, target.StatusCode)
	assert.True(t, youtube.IsNotFound(wrapped))

	detail := &youtube.ErrorDetail{}
	require.ErrorAs(t, wrapped, &detail)
	assert.Equal(t, "not here", detail.Message)
}

func TestResourceNotFoundError(t *testing.T) {
	t.Parallel()

	err := &youtube.ResourceNotFoundError{
		Kind: "youtube#videoListResponse",
		URL:  "https://example.com/youtube/v3/videos?id=missing",
	}

	assert.Equal(t, "resource youtube#videoListResponse not found", err.Error())
	assert.True(t, youtube.IsNotFound(err))
	assert.True(t, youtube.IsNotFound(fmt.Errorf("getting videos: %w", err)))
}

func TestIsBadRequest(t *testing.T) {
	t.Parallel()

	badReq := &youtube.APIError{StatusCode: 400, Raw: "nope"}
	assert.True(t, youtube.IsBadRequest(badReq))
	assert.False(t, youtube.IsBadRequest(errors.New("plain")))
}

func TestParseErrorEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("valid envelope", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"error":{"code":400,"message":"Invalid page token.","errors":[{"reason":"invalidPageToken","domain":"youtube.parameter"}]}}`)

		detail, err := youtube.ParseErrorEnvelope(body)
		require.NoError(t, err)
		assert.Equal(t, 400, detail.Code)
		assert.Equal(t, youtube.ReasonInvalidPageToken, detail.FirstReason())
	})

	t.Run("not JSON", func(t *testing.T) {
		t.Parallel()

		_, err := youtube.ParseErrorEnvelope([]byte("<html>Server Error</html>"))
		require.Error(t, err)
	})

	t.Run("JSON without error payload", func(t *testing.T) {
		t.Parallel()

		_, err := youtube.ParseErrorEnvelope([]byte(`{"kind":"youtube#videoListResponse"}`))
		require.ErrorIs(t, err, youtube.ErrMalformedErrorBody)
	})
}
