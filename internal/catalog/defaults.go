package catalog

// hotelChart lists points and cash value for categories 1 through 8.
type hotelChart struct {
	chain  string
	points [8]int
	cash   [8]float64
}

var hotelCharts = []hotelChart{
	{
		chain:  "marriott",
		points: [8]int{7500, 12500, 17500, 25000, 35000, 50000, 70000, 100000},
		cash:   [8]float64{75, 125, 175, 250, 350, 500, 700, 1000},
	},
	{
		chain:  "hilton",
		points: [8]int{10000, 20000, 30000, 40000, 50000, 60000, 70000, 80000},
		cash:   [8]float64{60, 120, 180, 240, 300, 360, 420, 480},
	},
	{
		chain:  "hyatt",
		points: [8]int{3500, 6500, 9000, 12000, 17000, 21000, 25000, 30000},
		cash:   [8]float64{70, 130, 180, 240, 340, 420, 500, 600},
	},
}

func defaultHotels() []HotelAward {
	hotels := make([]HotelAward, 0, len(hotelCharts)*8)
	for _, chart := range hotelCharts {
		for i := range chart.points {
			hotels = append(hotels, HotelAward{
				Chain:     chart.chain,
				Category:  i + 1,
				Points:    chart.points[i],
				CashValue: chart.cash[i],
			})
		}
	}
	return hotels
}

func defaultGiftCards() []GiftCard {
	merchants := []string{"amazon", "target", "walmart", "starbucks", "uber"}
	cards := make([]GiftCard, 0, len(merchants))
	for _, m := range merchants {
		cards = append(cards, GiftCard{Merchant: m, Points: 10000, Value: 100})
	}
	return cards
}

func defaultStatementCredits() []StatementCredit {
	return []StatementCredit{
		{Program: "chase_pay_yourself_back", CentsPerPoint: 1.25, Points: StatementCreditUnits},
		{Program: "amex_statement_credit", CentsPerPoint: 0.6, Points: StatementCreditUnits},
	}
}

func defaultTransfers() []Transfer {
	return []Transfer{
		{Name: "chase_ur_to_hyatt", Ratio: 1.0, Bonus: 0.25},
		{Name: "chase_ur_to_marriott", Ratio: 1.0},
		{Name: "amex_mr_to_hilton", Ratio: 1.0},
		{Name: "amex_mr_to_marriott", Ratio: 1.0},
	}
}
