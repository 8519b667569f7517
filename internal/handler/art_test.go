package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossholt/cardforge/internal/domain"
)

func TestDecodeDataURI(t *testing.T) {
	t.Run("valid png data uri", func(t *testing.T) {
		payload := []byte{0x89, 0x50, 0x4e, 0x47}
		uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

		art, err := decodeDataURI(uri)
		require.NoError(t, err)
		assert.Equal(t, "image/png", art.contentType)
		assert.Equal(t, payload, art.data)
	})

	t.Run("rejects non data uris", func(t *testing.T) {
		_, err := decodeDataURI("https://example.com/image.png")
		assert.Error(t, err)
	})

	t.Run("rejects unsupported encodings", func(t *testing.T) {
		_, err := decodeDataURI("data:text/plain,hello")
		assert.Error(t, err)
	})

	t.Run("rejects broken base64", func(t *testing.T) {
		_, err := decodeDataURI("data:image/png;base64,!!!")
		assert.Error(t, err)
	})
}

func TestHandleGetArt(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	svc := newTestService(domain.Progress{Gold: 100})
	art := NewArtHandler(svc)

	require.NoError(t, svc.UpdateCardImage(t.Context(), "c1", 999, uri))

	t.Run("serves decoded art", func(t *testing.T) {
		rec := routedRequest(t, http.MethodGet, "/art/{cardID}", "/art/c1", art.HandleGetArt, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, payload, rec.Body.Bytes())
	})

	t.Run("second request is served from cache", func(t *testing.T) {
		rec := routedRequest(t, http.MethodGet, "/art/{cardID}", "/art/c1", art.HandleGetArt, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, payload, rec.Body.Bytes())
	})

	t.Run("unknown card is 404", func(t *testing.T) {
		rec := routedRequest(t, http.MethodGet, "/art/{cardID}", "/art/ghost", art.HandleGetArt, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgArtNotFound, resp.Error)
	})

	t.Run("card without art is 404", func(t *testing.T) {
		rec := routedRequest(t, http.MethodGet, "/art/{cardID}", "/art/c2", art.HandleGetArt, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalidate drops the cached entry", func(t *testing.T) {
		art.Invalidate("c1")

		newPayload := []byte{0x01, 0x02}
		newURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(newPayload)
		require.NoError(t, svc.UpdateCardImage(t.Context(), "c1", 1000, newURI))
		art.Invalidate("c1")

		rec := routedRequest(t, http.MethodGet, "/art/{cardID}", "/art/c1", art.HandleGetArt, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
		assert.Equal(t, newPayload, rec.Body.Bytes())
	})
}
