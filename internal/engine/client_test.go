package engine

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfold/invoice-ingest/internal/common"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		Timeout:    5 * time.Second,
		MaxRetries: 2,
		RetryBase:  time.Millisecond,
	}, nil)
}

func TestRecognizeDecodesOutput(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"type":"train_ticket","confidence":0.93,"fields":{"fare":"35.50"}}`))
	})

	out, err := c.Recognize(context.Background(), []byte("pdf bytes"), "ticket.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "ticket.pdf", gotBody["filename"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("pdf bytes")), gotBody["content"])

	assert.Equal(t, "train_ticket", out.TypeTag)
	assert.InDelta(t, 0.93, out.Confidence, 0.001)
	assert.Equal(t, "35.50", out.Fields["fare"])
	assert.JSONEq(t, `{"type":"train_ticket","confidence":0.93,"fields":{"fare":"35.50"}}`, string(out.Raw))
}

func TestRecognizeRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"type":"generic","fields":{}}`))
	})

	out, err := c.Recognize(context.Background(), []byte("x"), "a.pdf")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, "generic", out.TypeTag)
}

func TestRecognizeExhaustsRetriesAsTransient(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Recognize(context.Background(), []byte("x"), "a.pdf")
	require.Error(t, err)
	assert.True(t, common.IsTransient(err))
	// initial attempt plus MaxRetries
	assert.Equal(t, int32(3), calls.Load())
}

func TestRecognizeQuotaIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Recognize(context.Background(), []byte("x"), "a.pdf")
	require.Error(t, err)
	assert.True(t, common.IsQuota(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestRecognizeClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	_, err := c.Recognize(context.Background(), []byte("x"), "a.pdf")
	require.Error(t, err)
	assert.True(t, common.IsPermanent(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestRecognizeMalformedResponseIsPermanent(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := c.Recognize(context.Background(), []byte("x"), "a.pdf")
	require.Error(t, err)
	assert.True(t, common.IsPermanent(err))
}

func TestRecognizeMissingFieldsDefaultsToEmptyMap(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"type":"vat_invoice"}`))
	})

	out, err := c.Recognize(context.Background(), []byte("x"), "a.pdf")
	require.NoError(t, err)
	assert.NotNil(t, out.Fields)
	assert.Empty(t, out.Fields)
}
