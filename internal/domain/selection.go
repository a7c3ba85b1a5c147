package domain

// CheapestOffer selects the offer with the lowest parseable price.
//
// Offers without a usable price string (empty or literal "null") are filtered
// out first; an empty candidate set yields ErrNoValidPrices. Offers whose
// price string contains no extractable digits are treated as infinitely
// expensive; if that leaves no parseable candidate at all, ErrNoParseablePrices
// is returned rather than an arbitrary offer. Ties are broken by input order.
func CheapestOffer(offers []FlightOffer) (FlightOffer, error) {
	candidates := make([]FlightOffer, 0, len(offers))
	for _, o := range offers {
		if o.HasValidPrice() {
			candidates = append(candidates, o)
		}
	}
	if len(candidates) == 0 {
		return FlightOffer{}, ErrNoValidPrices
	}

	var (
		cheapest  FlightOffer
		bestPrice float64
		found     bool
	)
	for _, c := range candidates {
		amount, ok := c.PriceAmount()
		if !ok {
			continue
		}
		if !found || amount < bestPrice {
			cheapest = c
			bestPrice = amount
			found = true
		}
	}
	if !found {
		return FlightOffer{}, ErrNoParseablePrices
	}

	return cheapest, nil
}
