package handler

import (
	"errors"
	"net/http"

	"github.com/mossholt/cardforge/internal/domain"
	"github.com/mossholt/cardforge/internal/game"
	"github.com/mossholt/cardforge/internal/logger"
)

// HandleUpdateConfig replaces the whole catalog (cards, packs, odds,
// cosmetics) after validation
func HandleUpdateConfig(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg domain.GameConfig
		if err := DecodeAndValidateRequest(r, w, &cfg, "Update config"); err != nil {
			return
		}

		if err := svc.UpdateConfig(r.Context(), cfg); err != nil {
			logger.FromContext(r.Context()).Warn("Config update rejected", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "config updated"})
	}
}

// UpdateCardImageRequest carries replacement art for a definition
type UpdateCardImageRequest struct {
	ImageID  int    `json:"image_id" validate:"required"`
	ImageURI string `json:"image_uri" validate:"required"`
}

// HandleUpdateCardImage sets a card definition's art, patches live
// instances and drops the stale cache entry
func HandleUpdateCardImage(svc game.Service, art *ArtHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cardID := urlParam(r, "cardID")

		var req UpdateCardImageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update card image"); err != nil {
			return
		}

		if err := svc.UpdateCardImage(r.Context(), cardID, req.ImageID, req.ImageURI); err != nil {
			if errors.Is(err, domain.ErrCardNotFound) {
				respondError(w, http.StatusNotFound, ErrMsgCardNotFound)
				return
			}
			respondError(w, http.StatusInternalServerError, ErrMsgServerError)
			return
		}

		art.Invalidate(cardID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "card image updated"})
	}
}

// UpdateSFXRequest assigns a sound to a slot
type UpdateSFXRequest struct {
	Slot    string `json:"slot" validate:"required,oneof=openPack revealCommon revealRare revealEpic revealLegendary revealFoil sell"`
	DataURI string `json:"data_uri" validate:"required"`
}

// HandleUpdateSFX sets a custom sound effect
func HandleUpdateSFX(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateSFXRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update SFX"); err != nil {
			return
		}

		svc.UpdateCustomSFX(r.Context(), domain.SFXType(req.Slot), req.DataURI)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "sfx updated"})
	}
}

// UpdateURIRequest carries a single data URI (card back, logo)
type UpdateURIRequest struct {
	URI string `json:"uri" validate:"required"`
}

// HandleUpdateCardBack sets the active card back directly
func HandleUpdateCardBack(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateURIRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update card back"); err != nil {
			return
		}

		svc.UpdateCardBack(r.Context(), req.URI)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "card back updated"})
	}
}

// HandleUpdateLogo sets the game logo
func HandleUpdateLogo(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateURIRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update logo"); err != nil {
			return
		}

		svc.UpdateGameLogo(r.Context(), req.URI)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "logo updated"})
	}
}

// CosmeticRequest identifies a cosmetic item
type CosmeticRequest struct {
	CosmeticID string `json:"cosmetic_id" validate:"required"`
}

// HandleBuyCosmetic purchases a cosmetic
func HandleBuyCosmetic(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CosmeticRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy cosmetic"); err != nil {
			return
		}

		if !svc.BuyCosmetic(r.Context(), req.CosmeticID) {
			respondError(w, http.StatusUnprocessableEntity, ErrMsgCosmeticRefused)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "cosmetic purchased"})
	}
}

// HandleEquipCosmetic activates a purchased cosmetic
func HandleEquipCosmetic(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CosmeticRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Equip cosmetic"); err != nil {
			return
		}

		if !svc.EquipCosmetic(r.Context(), req.CosmeticID) {
			respondError(w, http.StatusUnprocessableEntity, ErrMsgCosmeticRefused)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "cosmetic equipped"})
	}
}

// AddAudioTrackRequest uploads a music track
type AddAudioTrackRequest struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	DataURI string `json:"data_uri" validate:"required"`
}

// HandleAddAudioTrack stores an uploaded track in the config
func HandleAddAudioTrack(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddAudioTrackRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add audio track"); err != nil {
			return
		}

		svc.AddAudioTrack(r.Context(), domain.AudioTrack{
			ID:      req.ID,
			Name:    req.Name,
			DataURI: req.DataURI,
		})
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "track added"})
	}
}

// HandleRemoveAudioTrack deletes a track by id
func HandleRemoveAudioTrack(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.RemoveAudioTrack(r.Context(), urlParam(r, "trackID"))
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "track removed"})
	}
}
