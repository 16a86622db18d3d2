// Package handlers composes the resource handlers into one HTTP surface and
// owns the route wiring, including path and query parameter parsing.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/alan12292009/megaroll-core/pkg/api"
	"github.com/alan12292009/megaroll-core/pkg/casino"
	"github.com/alan12292009/megaroll-core/pkg/confirmations"
	"github.com/alan12292009/megaroll-core/pkg/handlers/accounts"
	"github.com/alan12292009/megaroll-core/pkg/handlers/actions"
	"github.com/alan12292009/megaroll-core/pkg/handlers/bets"
	"github.com/alan12292009/megaroll-core/pkg/handlers/crypto"
	"github.com/alan12292009/megaroll-core/pkg/handlers/duels"
	"github.com/alan12292009/megaroll-core/pkg/handlers/ledger"
	"github.com/alan12292009/megaroll-core/pkg/handlers/market"
	"github.com/alan12292009/megaroll-core/pkg/handlers/transfers"
	"github.com/alan12292009/megaroll-core/pkg/marketplace"
	"github.com/alan12292009/megaroll-core/pkg/payments"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// ApiHandler aggregates the per-resource handlers behind one router.
type ApiHandler struct {
	Accounts  *accounts.AccountsHandler
	Bets      *bets.BetsHandler
	Duels     *duels.DuelsHandler
	Transfers *transfers.TransfersHandler
	Actions   *actions.ActionsHandler
	Market    *market.MarketHandler
	Crypto    *crypto.CryptoHandler
	Ledger    *ledger.LedgerHandler
}

// NewApiHandler wires the resource handlers onto the shared services.
func NewApiHandler(
	store storage.Storage,
	engine *casino.Engine,
	coordinator *casino.DuelCoordinator,
	broker *confirmations.Broker,
	paymentsService *payments.Service,
	marketService *marketplace.Service,
) *ApiHandler {
	return &ApiHandler{
		Accounts:  accounts.NewAccountsHandler(store),
		Bets:      bets.NewBetsHandler(engine, store),
		Duels:     duels.NewDuelsHandler(coordinator, store),
		Transfers: transfers.NewTransfersHandler(paymentsService),
		Actions:   actions.NewActionsHandler(broker, paymentsService, marketService),
		Market:    market.NewMarketHandler(marketService),
		Crypto:    crypto.NewCryptoHandler(paymentsService, store),
		Ledger:    ledger.NewLedgerHandler(store),
	}
}

// Routes mounts every endpoint on a chi router.
func (h *ApiHandler) Routes(router chi.Router) {
	router.Post("/accounts", h.Accounts.CreateAccount)
	router.Get("/accounts/{accountId}", withAccountID(h.Accounts.GetAccountById))
	router.Get("/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		h.Accounts.Leaderboard(w, r, api.LeaderboardParams{Limit: limitParam(r)})
	})

	router.Post("/bets/dice", h.Bets.PlaceDiceBet)
	router.Post("/bets/roulette", h.Bets.PlaceRouletteBet)
	router.Get("/jackpot", h.Bets.GetJackpot)

	router.Post("/duels", h.Duels.CreateDuel)
	router.Get("/duels/{token}", withToken(h.Duels.GetDuelByToken))
	router.Post("/duels/{token}/response", withToken(h.Duels.RespondToDuel))
	router.Post("/duels/{token}/roll", withToken(h.Duels.SubmitRoll))

	router.Post("/transfers", h.Transfers.ProposeTransfer)
	router.Post("/actions/{token}", withToken(h.Actions.ResolveAction))

	router.Get("/market/catalog/{category}", func(w http.ResponseWriter, r *http.Request) {
		h.Market.GetCatalog(w, r, chi.URLParam(r, "category"))
	})
	router.Post("/market/purchases", h.Market.ProposePurchase)
	router.Post("/market/buybacks", h.Market.ProposeBuyback)
	router.Post("/market/trades", h.Market.ProposeTrade)
	router.Get("/accounts/{accountId}/assets", withAccountID(h.Market.ListAssetsByOwner))

	router.Get("/crypto/instruments", h.Crypto.ListInstruments)
	router.Get("/accounts/{accountId}/positions", withAccountID(h.Crypto.ListPositions))
	router.Post("/crypto/buys", h.Crypto.ProposeBuy)
	router.Post("/crypto/sells", h.Crypto.ProposeSell)

	router.Get("/ledger", func(w http.ResponseWriter, r *http.Request) {
		h.Ledger.ListLedgerEntries(w, r, api.ListLedgerEntriesParams{Limit: limitParam(r)})
	})
}

// withAccountID parses the accountId path parameter.
func withAccountID(next func(http.ResponseWriter, *http.Request, int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := strconv.ParseInt(chi.URLParam(r, "accountId"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid account id", http.StatusBadRequest)
			return
		}
		next(w, r, accountID)
	}
}

// withToken parses the token path parameter as a UUID.
func withToken(next func(http.ResponseWriter, *http.Request, openapi_types.UUID)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := uuid.Parse(chi.URLParam(r, "token"))
		if err != nil {
			http.Error(w, "Invalid token", http.StatusBadRequest)
			return
		}
		next(w, r, token)
	}
}

func limitParam(r *http.Request) *int32 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil
	}
	limit := int32(parsed)
	return &limit
}
