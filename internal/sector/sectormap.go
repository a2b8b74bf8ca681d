package sector

// Sector names used by the default classification table.
const (
	Technology    = "Technology"
	Financial     = "Financial"
	Automotive    = "Automotive"
	Consumer      = "Consumer"
	Telecom       = "Telecom"
	Healthcare    = "Healthcare"
	RealEstate    = "Real Estate"
	Utilities     = "Utilities"
	Energy        = "Energy"
	Entertainment = "Entertainment"
	IndexFund     = "Index Fund"
	Commodities   = "Commodities"

	// Other is the fallback bucket for unmapped symbols.
	Other = "Other"
)

// DefaultSectorMap returns the built-in symbol-to-sector classification table
// covering the Tokyo exchange and US symbols the tracker ships with. The map
// is returned fresh on each call so callers can extend their copy without
// affecting others.
func DefaultSectorMap() map[string]string {
	return map[string]string{
		// Japanese stocks (TSE)
		"6758.T": Technology,
		"9984.T": Technology,
		"6861.T": Technology,
		"6501.T": Technology,
		"6902.T": Technology,
		"4755.T": Technology,
		"6594.T": Technology,
		"8306.T": Financial,
		"8316.T": Financial,
		"8411.T": Financial,
		"8591.T": Financial,
		"8766.T": Financial,
		"7203.T": Automotive,
		"7267.T": Automotive,
		"7269.T": Automotive,
		"7974.T": Consumer,
		"9433.T": Telecom,
		"9432.T": Telecom,
		"9434.T": Telecom,
		"4502.T": Healthcare,
		"4503.T": Healthcare,
		"4568.T": Healthcare,
		"3003.T": RealEstate,
		"8801.T": RealEstate,
		"8802.T": RealEstate,
		"9532.T": Utilities,
		"5020.T": Energy,

		// US stocks
		"AAPL":  Technology,
		"MSFT":  Technology,
		"GOOGL": Technology,
		"GOOG":  Technology,
		"META":  Technology,
		"NVDA":  Technology,
		"AMD":   Technology,
		"INTC":  Technology,
		"CRM":   Technology,
		"ADBE":  Technology,
		"NFLX":  Technology,
		"ORCL":  Technology,
		"AMZN":  Consumer,
		"WMT":   Consumer,
		"COST":  Consumer,
		"NKE":   Consumer,
		"SBUX":  Consumer,
		"MCD":   Consumer,
		"TSLA":  Automotive,
		"F":     Automotive,
		"GM":    Automotive,
		"JNJ":   Healthcare,
		"UNH":   Healthcare,
		"PFE":   Healthcare,
		"ABBV":  Healthcare,
		"LLY":   Healthcare,
		"MRK":   Healthcare,
		"JPM":   Financial,
		"V":     Financial,
		"MA":    Financial,
		"BAC":   Financial,
		"GS":    Financial,
		"BRK-B": Financial,
		"XOM":   Energy,
		"CVX":   Energy,
		"DIS":   Entertainment,
		"T":     Telecom,
		"VZ":    Telecom,
		"KO":    Consumer,
		"PEP":   Consumer,
		"PG":    Consumer,

		// ETFs / index funds
		"VOO":    IndexFund,
		"VTI":    IndexFund,
		"QQQ":    IndexFund,
		"SPY":    IndexFund,
		"IWM":    IndexFund,
		"VEA":    IndexFund,
		"VWO":    IndexFund,
		"2558.T": IndexFund,
		"1306.T": IndexFund,
		"1321.T": IndexFund,
		"GC=F":   Commodities,
		"GLD":    Commodities,
		"SLV":    Commodities,
	}
}
