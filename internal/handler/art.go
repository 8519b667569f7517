package handler

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mossholt/cardforge/internal/game"
	"github.com/mossholt/cardforge/internal/logger"
)

// Card art arrives as base64 data URIs in the catalog. Decoding them on
// every request is wasteful, so decoded bytes sit in an expirable LRU. The
// TTL bounds staleness after an admin image update.
const (
	artCacheSize = 128
	artCacheTTL  = 5 * time.Minute
)

type decodedArt struct {
	contentType string
	data        []byte
}

// ArtHandler serves decoded card art with caching
type ArtHandler struct {
	svc   game.Service
	cache *expirable.LRU[string, decodedArt]
}

// NewArtHandler creates an ArtHandler
func NewArtHandler(svc game.Service) *ArtHandler {
	return &ArtHandler{
		svc:   svc,
		cache: expirable.NewLRU[string, decodedArt](artCacheSize, nil, artCacheTTL),
	}
}

// HandleGetArt serves the decoded image for a card definition
func (h *ArtHandler) HandleGetArt(w http.ResponseWriter, r *http.Request) {
	cardID := urlParam(r, "cardID")

	if art, ok := h.cache.Get(cardID); ok {
		serveArt(w, art)
		return
	}

	cfg := h.svc.Config()
	def := cfg.FindCard(cardID)
	if def == nil || def.ImageURI == "" {
		respondError(w, http.StatusNotFound, ErrMsgArtNotFound)
		return
	}

	art, err := decodeDataURI(def.ImageURI)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Undecodable card art", "card_id", cardID, "error", err)
		respondError(w, http.StatusNotFound, ErrMsgArtNotFound)
		return
	}

	h.cache.Add(cardID, art)
	serveArt(w, art)
}

// Invalidate drops a card's cached art, called after admin image updates.
func (h *ArtHandler) Invalidate(cardID string) {
	h.cache.Remove(cardID)
}

func serveArt(w http.ResponseWriter, art decodedArt) {
	w.Header().Set("Content-Type", art.contentType)
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // nothing to do about a failed image write
	_, _ = w.Write(art.data)
}

// decodeDataURI splits a "data:<mime>;base64,<payload>" URI into content
// type and raw bytes.
func decodeDataURI(uri string) (decodedArt, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return decodedArt{}, fmt.Errorf("not a data uri")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return decodedArt{}, fmt.Errorf("malformed data uri")
	}

	contentType, encoding, hasEncoding := strings.Cut(meta, ";")
	if !hasEncoding || encoding != "base64" {
		return decodedArt{}, fmt.Errorf("unsupported data uri encoding")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return decodedArt{}, fmt.Errorf("decode base64: %w", err)
	}

	return decodedArt{contentType: contentType, data: data}, nil
}
