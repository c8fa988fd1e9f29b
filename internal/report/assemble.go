package report

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	// MoneyPlaces is the display precision of monetary totals.
	MoneyPlaces = 2
	// AverageCostPlaces is the display precision of average cost.
	AverageCostPlaces = 4
)

// formatter renders decimal amounts for one currency.
type formatter struct {
	currency *money.Currency
}

func newFormatter(code string) formatter {
	return formatter{currency: money.GetCurrency(code)}
}

// format renders d with the currency's symbol and separators, rounded to the
// currency's minor unit.
func (f formatter) format(d decimal.Decimal) string {
	if f.currency == nil {
		return d.StringFixed(MoneyPlaces)
	}
	minor := d.Shift(int32(f.currency.Fraction)).Round(0).IntPart()
	return f.currency.Formatter().Format(minor)
}

func assemblePositionReport(open []openPosition, f formatter) *PositionReport {
	rep := &PositionReport{
		Positions:     make([]PositionLine, 0, len(open)),
		TotalInvested: decimal.Zero,
	}
	for _, p := range open {
		invested := p.invested.Round(MoneyPlaces)
		avg := p.averageCost.Round(AverageCostPlaces)
		rep.Positions = append(rep.Positions, PositionLine{
			Ticker:               p.key.Ticker,
			AssetName:            p.assetName,
			BrokerName:           p.key.Broker,
			NetQuantity:          p.quantity,
			AverageCost:          avg,
			TotalInvested:        invested,
			Operations:           p.operations,
			AverageCostDisplay:   f.format(avg),
			TotalInvestedDisplay: f.format(invested),
		})
		rep.TotalInvested = rep.TotalInvested.Add(invested)
		rep.TotalQuantity += p.quantity
	}
	rep.TotalInvestedDisplay = f.format(rep.TotalInvested)
	return rep
}

func assembleMovementReport(m movementTotals, f formatter) *MovementReport {
	buys := m.totalBuys.Round(MoneyPlaces)
	sells := m.totalSells.Round(MoneyPlaces)
	balance := sells.Sub(buys)
	return &MovementReport{
		Buys:              m.buys,
		Sells:             m.sells,
		TotalBuys:         buys,
		TotalSells:        sells,
		Balance:           balance,
		TotalBuysDisplay:  f.format(buys),
		TotalSellsDisplay: f.format(sells),
		BalanceDisplay:    f.format(balance),
	}
}
