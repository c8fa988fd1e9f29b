package report

import "github.com/shopspring/decimal"

// movementTotals is the unrounded result of summarizing a record set.
type movementTotals struct {
	buys       []Record
	sells      []Record
	totalBuys  decimal.Decimal
	totalSells decimal.Decimal
}

// summarizeMovements splits records by operation and sums each side. Buys and
// sells of the same asset are never netted against each other.
func summarizeMovements(records []Record) movementTotals {
	m := movementTotals{
		buys:       []Record{},
		sells:      []Record{},
		totalBuys:  decimal.Zero,
		totalSells: decimal.Zero,
	}
	for _, r := range records {
		switch r.Operation {
		case OperationBuy:
			m.buys = append(m.buys, r)
			m.totalBuys = m.totalBuys.Add(r.Value())
		case OperationSell:
			m.sells = append(m.sells, r)
			m.totalSells = m.totalSells.Add(r.Value())
		}
	}
	return m
}
