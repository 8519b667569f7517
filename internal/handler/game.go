package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mossholt/cardforge/internal/domain"
	"github.com/mossholt/cardforge/internal/game"
	"github.com/mossholt/cardforge/internal/logger"
)

// StateResponse is the player-state summary
type StateResponse struct {
	Gold       int              `json:"gold"`
	Stats      domain.GameStats `json:"stats"`
	BattleDeck []string         `json:"battleDeck"`
	Loaded     bool             `json:"loaded"`
}

// HandleGetState returns gold, stats and the battle deck
func HandleGetState(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := svc.State()
		respondJSON(w, http.StatusOK, StateResponse{
			Gold:       state.Gold,
			Stats:      state.Stats,
			BattleDeck: state.BattleDeck,
			Loaded:     true,
		})
	}
}

// CollectionResponse wraps the owned card instances
type CollectionResponse struct {
	Cards []domain.CardInstance `json:"cards"`
	Count int                   `json:"count"`
}

// HandleGetCollection returns the full inventory
func HandleGetCollection(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards := svc.Collection()
		respondJSON(w, http.StatusOK, CollectionResponse{Cards: cards, Count: len(cards)})
	}
}

// HandleGetCatalog returns the current game config (cards, packs, cosmetics)
func HandleGetCatalog(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Config())
	}
}

// BuyPackRequest identifies the pack to open
type BuyPackRequest struct {
	PackID string `json:"pack_id" validate:"required"`
}

// BuyPackResponse carries the opened cards and the new balance
type BuyPackResponse struct {
	Cards []domain.CardInstance `json:"cards"`
	Gold  int                   `json:"gold"`
}

// HandleBuyPack opens a pack
func HandleBuyPack(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyPackRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy pack"); err != nil {
			return
		}

		cards := svc.BuyPack(r.Context(), req.PackID)
		if cards == nil {
			respondError(w, http.StatusUnprocessableEntity, ErrMsgPurchaseRefused)
			return
		}

		respondJSON(w, http.StatusOK, BuyPackResponse{Cards: cards, Gold: svc.State().Gold})
	}
}

// SellCardRequest identifies a single instance to sell
type SellCardRequest struct {
	InstanceID string `json:"instance_id" validate:"required"`
}

// SellBatchRequest identifies multiple instances to sell
type SellBatchRequest struct {
	InstanceIDs []string `json:"instance_ids" validate:"required,min=1"`
}

// SellResponse reports the credited gold and the new balance
type SellResponse struct {
	GoldGained int `json:"gold_gained"`
	Gold       int `json:"gold"`
}

// HandleSellCard sells a single card
func HandleSellCard(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SellCardRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell card"); err != nil {
			return
		}

		gained := svc.SellCard(r.Context(), req.InstanceID)
		respondJSON(w, http.StatusOK, SellResponse{GoldGained: gained, Gold: svc.State().Gold})
	}
}

// HandleSellBatch sells a batch of cards
func HandleSellBatch(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SellBatchRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell batch"); err != nil {
			return
		}

		gained := svc.SellMultipleCards(r.Context(), req.InstanceIDs)
		respondJSON(w, http.StatusOK, SellResponse{GoldGained: gained, Gold: svc.State().Gold})
	}
}

// HandleSellDuplicates sells everything the dedup scan queues
func HandleSellDuplicates(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gained := svc.SellAllDuplicates(r.Context())
		respondJSON(w, http.StatusOK, SellResponse{GoldGained: gained, Gold: svc.State().Gold})
	}
}

// HandleSellAll sells every unlocked card
func HandleSellAll(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gained := svc.SellAllInventory(r.Context())
		respondJSON(w, http.StatusOK, SellResponse{GoldGained: gained, Gold: svc.State().Gold})
	}
}

// ToggleLockRequest identifies the instance to lock or unlock
type ToggleLockRequest struct {
	InstanceID string `json:"instance_id" validate:"required"`
}

// ToggleLockResponse reports the new lock state
type ToggleLockResponse struct {
	InstanceID string `json:"instance_id"`
	Locked     bool   `json:"locked"`
}

// HandleToggleLock flips the sell protection on a card
func HandleToggleLock(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ToggleLockRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Toggle lock"); err != nil {
			return
		}

		locked, ok := svc.ToggleLock(r.Context(), req.InstanceID)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgInstanceNotFound)
			return
		}

		respondJSON(w, http.StatusOK, ToggleLockResponse{InstanceID: req.InstanceID, Locked: locked})
	}
}

// ToggleDeckRequest identifies the instance to move in or out of the deck
type ToggleDeckRequest struct {
	InstanceID string `json:"instance_id" validate:"required"`
}

// ToggleDeckResponse reports the new deck membership
type ToggleDeckResponse struct {
	InstanceID string   `json:"instance_id"`
	InDeck     bool     `json:"in_deck"`
	BattleDeck []string `json:"battleDeck"`
}

// HandleToggleDeck adds or removes a card from the battle deck
func HandleToggleDeck(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ToggleDeckRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Toggle deck"); err != nil {
			return
		}

		inDeck, ok := svc.ToggleBattleDeck(r.Context(), req.InstanceID)
		if !ok {
			respondError(w, http.StatusUnprocessableEntity, ErrMsgDeckToggleRefused)
			return
		}

		respondJSON(w, http.StatusOK, ToggleDeckResponse{
			InstanceID: req.InstanceID,
			InDeck:     inDeck,
			BattleDeck: svc.State().BattleDeck,
		})
	}
}

// BattleResultRequest reports a finished battle
type BattleResultRequest struct {
	Won       bool                 `json:"won"`
	GoldDelta int                  `json:"gold_delta"`
	WonCard   *domain.CardInstance `json:"won_card,omitempty"`
}

// HandleBattleResult applies a battle outcome
func HandleBattleResult(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BattleResultRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Battle result"); err != nil {
			return
		}

		svc.RecordBattleResult(r.Context(), req.Won, req.GoldDelta, req.WonCard)

		state := svc.State()
		respondJSON(w, http.StatusOK, StateResponse{
			Gold:       state.Gold,
			Stats:      state.Stats,
			BattleDeck: state.BattleDeck,
			Loaded:     true,
		})
	}
}

// HandleResetProgress restores a fresh save
func HandleResetProgress(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ResetProgress(r.Context()); err != nil {
			logger.FromContext(r.Context()).Error("Progress reset failed", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgServerError)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "progress reset"})
	}
}

// HandleFactoryReset wipes both durable namespaces
func HandleFactoryReset(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.FactoryReset(r.Context()); err != nil {
			logger.FromContext(r.Context()).Error("Factory reset failed", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgServerError)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "factory reset complete"})
	}
}

// urlParam wraps chi's URL parameter access for this package
func urlParam(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}
