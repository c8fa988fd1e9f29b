package report

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// positionKey identifies a bucket. It is a value pair so that names
// containing any separator can never collide.
type positionKey struct {
	Ticker string
	Broker string
}

// bucket accumulates signed quantity and value for one positionKey.
type bucket struct {
	assetName  string
	quantity   int64
	value      decimal.Decimal
	operations int
}

// openPosition is a bucket that survived the net-quantity cut.
type openPosition struct {
	key         positionKey
	assetName   string
	quantity    int64
	invested    decimal.Decimal
	averageCost decimal.Decimal
	operations  int
}

// signed returns the quantity and value contribution of r. Sells are
// negative; a record with a non-positive quantity or price contributes zero.
func signed(r Record) (int64, decimal.Decimal) {
	value := r.Value()
	if value.IsZero() {
		return 0, decimal.Zero
	}
	if r.Operation == OperationSell {
		return -r.Quantity, value.Neg()
	}
	if r.Operation == OperationBuy {
		return r.Quantity, value
	}
	return 0, decimal.Zero
}

// fold accumulates records into buckets keyed by ticker and broker name.
func fold(records []Record) map[positionKey]*bucket {
	buckets := make(map[positionKey]*bucket)
	for _, r := range records {
		k := positionKey{Ticker: r.Ticker, Broker: r.BrokerName}
		b, ok := buckets[k]
		if !ok {
			b = &bucket{assetName: r.AssetName, value: decimal.Zero}
			buckets[k] = b
		}
		q, v := signed(r)
		b.quantity += q
		b.value = b.value.Add(v)
		b.operations++
	}
	return buckets
}

// aggregatePositions folds records and keeps buckets with a strictly positive
// net quantity, sorted by invested value descending then ticker and broker.
func aggregatePositions(records []Record) []openPosition {
	buckets := fold(records)

	open := make([]openPosition, 0, len(buckets))
	for k, b := range buckets {
		if b.quantity <= 0 {
			continue
		}
		open = append(open, openPosition{
			key:         k,
			assetName:   b.assetName,
			quantity:    b.quantity,
			invested:    b.value,
			averageCost: b.value.Div(decimal.NewFromInt(b.quantity)),
			operations:  b.operations,
		})
	}

	slices.SortFunc(open, func(a, b openPosition) int {
		if c := b.invested.Cmp(a.invested); c != 0 {
			return c
		}
		if c := cmp.Compare(a.key.Ticker, b.key.Ticker); c != 0 {
			return c
		}
		return cmp.Compare(a.key.Broker, b.key.Broker)
	})
	return open
}
