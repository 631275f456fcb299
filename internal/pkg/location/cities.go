package location

// staticCityCodes maps lowercased city names to IATA metropolitan or
// primary airport codes.
var staticCityCodes = map[string]string{
	"amsterdam":     "AMS",
	"ankara":        "ESB",
	"antalya":       "AYT",
	"athens":        "ATH",
	"bangkok":       "BKK",
	"barcelona":     "BCN",
	"berlin":        "BER",
	"brussels":      "BRU",
	"chicago":       "CHI",
	"copenhagen":    "CPH",
	"dubai":         "DXB",
	"dublin":        "DUB",
	"frankfurt":     "FRA",
	"hong kong":     "HKG",
	"istanbul":      "IST",
	"izmir":         "ADB",
	"jakarta":       "JKT",
	"london":        "LON",
	"los angeles":   "LAX",
	"madrid":        "MAD",
	"milan":         "MIL",
	"moscow":        "MOW",
	"munich":        "MUC",
	"new york":      "NYC",
	"paris":         "PAR",
	"prague":        "PRG",
	"rome":          "ROM",
	"san francisco": "SFO",
	"seoul":         "SEL",
	"singapore":     "SIN",
	"stockholm":     "STO",
	"sydney":        "SYD",
	"tokyo":         "TYO",
	"toronto":       "YTO",
	"vienna":        "VIE",
	"zurich":        "ZRH",
}
