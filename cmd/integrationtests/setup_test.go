package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"marketplace-engine/internal/assets"
	auction "marketplace-engine/internal/auctionService"
	"marketplace-engine/internal/availability"
	"marketplace-engine/internal/events"
	exchange "marketplace-engine/internal/exchangeService"
	"marketplace-engine/internal/funds"
	model "marketplace-engine/internal/models"
	"marketplace-engine/internal/payment"
	"marketplace-engine/internal/repository"
	"marketplace-engine/internal/royalty"
	"marketplace-engine/internal/server"
	"marketplace-engine/internal/validation"

	"github.com/gin-gonic/gin"
)

const (
	operatorID    = "marketplace"
	feeAccount    = "platform-fees"
	feeBps        = 250
	maxRoyaltyBps = 1000
	extendWindow  = 0 // anti-snipe off unless a test opts in per auction
)

// World bundles the full engine stack behind an HTTP router, with direct
// handles on the registry and ledger for seeding and balance assertions.
type World struct {
	Router   *gin.Engine
	Registry *assets.Registry
	Ledger   *funds.Ledger
}

// SetupTestWorld wires the engine the same way main does, on in-memory stores.
func SetupTestWorld() *World {
	gin.SetMode(gin.TestMode)

	registry := assets.NewRegistry()
	ledger := funds.NewLedger()
	checker := validation.NewChecker(registry)
	resolver := royalty.NewResolver(registry, maxRoyaltyBps)
	distributor := payment.NewDistributor(ledger, feeAccount, feeBps)
	oracle := availability.NewMemoryOracle()
	emitter := events.NewLogEmitter()

	exchangeSvc := exchange.NewService(
		repository.NewMemoryListingRepo(),
		registry, checker, resolver, distributor, ledger, oracle, emitter,
		operatorID,
	)
	auctionSvc := auction.NewService(
		repository.NewMemoryAuctionRepo(),
		registry, checker, resolver, distributor, ledger, oracle, emitter,
		operatorID, extendWindow,
	)

	return &World{
		Router:   server.SetupRouter(exchangeSvc, auctionSvc),
		Registry: registry,
		Ledger:   ledger,
	}
}

// SeedUniqueCollection registers a unique-unit collection, mints the given
// units to the holder, and approves the marketplace operator for the holder.
func (w *World) SeedUniqueCollection(t *testing.T, collection, holder string, units ...string) {
	t.Helper()
	if err := w.Registry.RegisterCollection(collection, model.StandardUnique); err != nil {
		t.Fatalf("failed to register collection: %v", err)
	}
	for _, unit := range units {
		if err := w.Registry.Mint(collection, unit, holder, 1); err != nil {
			t.Fatalf("failed to mint %s/%s: %v", collection, unit, err)
		}
	}
	w.Registry.SetApproval(holder, operatorID, true)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// responseData extracts the data object from a success envelope.
func responseData(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", resp)
	}
	return data
}
