package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

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
	"marketplace-engine/internal/validation"
)

const (
	benchOperator   = "marketplace"
	benchFeeAccount = "platform-fees"
	benchCollection = "perf"
	benchSeller     = "seller"
)

type engine struct {
	registry *assets.Registry
	ledger   *funds.Ledger
	exchange *exchange.Service
	auctions *auction.Service
}

// setupEngine builds the full service stack over in-memory stores and mints
// numAssets unique units to the bench seller.
func setupEngine(b *testing.B, numAssets int) *engine {
	b.Helper()

	registry := assets.NewRegistry()
	ledger := funds.NewLedger()
	checker := validation.NewChecker(registry)
	resolver := royalty.NewResolver(registry, 1000)
	distributor := payment.NewDistributor(ledger, benchFeeAccount, 250)
	oracle := availability.NewMemoryOracle()
	emitter := events.NewNopEmitter()

	if err := registry.RegisterCollection(benchCollection, model.StandardUnique); err != nil {
		b.Fatalf("failed to register collection: %v", err)
	}
	for i := 0; i < numAssets; i++ {
		if err := registry.Mint(benchCollection, fmt.Sprintf("unit_%d", i), benchSeller, 1); err != nil {
			b.Fatalf("failed to mint asset: %v", err)
		}
	}
	registry.SetApproval(benchSeller, benchOperator, true)

	return &engine{
		registry: registry,
		ledger:   ledger,
		exchange: exchange.NewService(
			repository.NewMemoryListingRepo(),
			registry, checker, resolver, distributor, ledger, oracle, emitter,
			benchOperator,
		),
		auctions: auction.NewService(
			repository.NewMemoryAuctionRepo(),
			registry, checker, resolver, distributor, ledger, oracle, emitter,
			benchOperator, 0,
		),
	}
}

func benchAsset(i int) model.AssetRef {
	return model.AssetRef{Collection: benchCollection, Unit: fmt.Sprintf("unit_%d", i), Quantity: 1}
}

// Benchmark 1: Buy - Isolated Listings (Low Contention - Micro Benchmark)
func Benchmark_Buy_Isolated(b *testing.B) {
	e := setupEngine(b, b.N)

	listingIDs := make([]string, b.N)
	for i := 0; i < b.N; i++ {
		l, err := e.exchange.CreateListing(benchAsset(i), benchSeller, 1000, time.Hour)
		if err != nil {
			b.Fatalf("failed to create listing: %v", err)
		}
		listingIDs[i] = l.ListingID
		e.ledger.Deposit(fmt.Sprintf("buyer_%d", i), 1025)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := e.exchange.Buy(listingIDs[i], fmt.Sprintf("buyer_%d", i), 1025); err != nil {
			b.Fatalf("failed to buy listing: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	e := setupEngine(b, 1)

	a, err := e.auctions.CreateEnglish(benchAsset(0), benchSeller, 50, 0, 0, 0, false, time.Hour)
	if err != nil {
		b.Fatalf("failed to create auction: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidder := fmt.Sprintf("bidder_parallel_%d", rnd.Int())
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			e.ledger.Deposit(bidder, uint64(nextBid))
			_, _ = e.auctions.PlaceBid(a.AuctionID, bidder, uint64(nextBid))
		}
	})
}

// Benchmark 3: CurrentPrice - Single - Threaded (Low Contention)
func Benchmark_CurrentPrice_SingleThreaded(b *testing.B) {
	e := setupEngine(b, b.N)

	auctionIDs := make([]string, b.N)
	for i := 0; i < b.N; i++ {
		a, err := e.auctions.CreateDutch(benchAsset(i), benchSeller, 1000, 100, 50, time.Minute, time.Hour)
		if err != nil {
			b.Fatalf("failed to create auction: %v", err)
		}
		auctionIDs[i] = a.AuctionID
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := e.auctions.CurrentPrice(auctionIDs[i]); err != nil {
			b.Fatalf("failed to read current price: %v", err)
		}
	}
}

// Benchmark 4: Get - Concurrent (High Contention)
func Benchmark_GetAuction_ConcurrentShared(b *testing.B) {
	e := setupEngine(b, 1)

	a, err := e.auctions.CreateEnglish(benchAsset(0), benchSeller, 50, 0, 0, 0, false, time.Hour)
	if err != nil {
		b.Fatalf("failed to create auction: %v", err)
	}
	for j := 0; j < 100; j++ {
		bidder := fmt.Sprintf("bidder_%d", j)
		e.ledger.Deposit(bidder, uint64(50+j))
		_, _ = e.auctions.PlaceBid(a.AuctionID, bidder, uint64(50+j))
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := e.auctions.Get(a.AuctionID); err != nil {
				b.Fatalf("failed to get auction: %v", err)
			}
		}
	})
}
