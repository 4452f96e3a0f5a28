package bot_test

import "github.com/coinherald/coinherald/internal/domain"

func testSnapshot() domain.TickerSnapshot {
	return domain.TickerSnapshot{
		M15:    478.68,
		Last:   478.68,
		Buy:    478.55,
		Sell:   478.68,
		Symbol: "$",
	}
}

func testSeries() domain.ChartSeries {
	return domain.ChartSeries{
		Name:   "Market Price (USD)",
		Unit:   "USD",
		Period: "day",
		Values: []domain.ChartPoint{
			{X: 1410220800, Y: 478.68},
			{X: 1410307200, Y: 480.23},
		},
	}
}
