package currency

import "github.com/shopspring/decimal"

var (
	hundredth = decimal.New(1, -2)
	whole     = decimal.New(1, 0)
)

// table is the full set of currencies the ECB reference feeds have quoted
// since 1999. Enabled entries are the 31 currencies of the current daily
// feed (EUR included); the rest were retired from the feed, mostly on euro
// adoption, and survive only in the historic series.
var table = map[string]Currency{
	"EUR": {Name: "Euro", ISOAlpha: "EUR", ISONumeric: "978", Symbol: "€", Subunit: hundredth, SubunitName: "cent", Enabled: true},
	"USD": {Name: "United States Dollar", ISOAlpha: "USD", ISONumeric: "840", Symbol: "$", Subunit: hundredth, SubunitName: "cent", AltNames: []string{"US Dollar", "American Dollar"}, AltSymbols: []string{"US$"}, Enabled: true},
	"JPY": {Name: "Japanese Yen", ISOAlpha: "JPY", ISONumeric: "392", Symbol: "¥", Subunit: hundredth, SubunitName: "sen", AltSymbols: []string{"円"}, Enabled: true},
	"BGN": {Name: "Bulgarian Lev", ISOAlpha: "BGN", ISONumeric: "975", Symbol: "лв", Subunit: hundredth, SubunitName: "stotinka", Enabled: true},
	"CZK": {Name: "Czech Koruna", ISOAlpha: "CZK", ISONumeric: "203", Symbol: "Kč", Subunit: hundredth, SubunitName: "haléř", Enabled: true},
	"DKK": {Name: "Danish Krone", ISOAlpha: "DKK", ISONumeric: "208", Symbol: "kr", Subunit: hundredth, SubunitName: "øre", Enabled: true},
	"GBP": {Name: "Pound Sterling", ISOAlpha: "GBP", ISONumeric: "826", Symbol: "£", Subunit: hundredth, SubunitName: "penny", AltNames: []string{"British Pound", "Sterling"}, Enabled: true},
	"HUF": {Name: "Hungarian Forint", ISOAlpha: "HUF", ISONumeric: "348", Symbol: "Ft", Subunit: hundredth, SubunitName: "fillér", Enabled: true},
	"PLN": {Name: "Polish Złoty", ISOAlpha: "PLN", ISONumeric: "985", Symbol: "zł", Subunit: hundredth, SubunitName: "grosz", Enabled: true},
	"RON": {Name: "Romanian Leu", ISOAlpha: "RON", ISONumeric: "946", Symbol: "lei", Subunit: hundredth, SubunitName: "ban", Enabled: true},
	"SEK": {Name: "Swedish Krona", ISOAlpha: "SEK", ISONumeric: "752", Symbol: "kr", Subunit: hundredth, SubunitName: "öre", Enabled: true},
	"CHF": {Name: "Swiss Franc", ISOAlpha: "CHF", ISONumeric: "756", Symbol: "Fr", Subunit: hundredth, SubunitName: "rappen", AltSymbols: []string{"SFr", "fr"}, Enabled: true},
	"ISK": {Name: "Icelandic Króna", ISOAlpha: "ISK", ISONumeric: "352", Symbol: "kr", Subunit: whole, SubunitName: "", Enabled: true},
	"NOK": {Name: "Norwegian Krone", ISOAlpha: "NOK", ISONumeric: "578", Symbol: "kr", Subunit: hundredth, SubunitName: "øre", Enabled: true},
	"TRY": {Name: "Turkish Lira", ISOAlpha: "TRY", ISONumeric: "949", Symbol: "₺", Subunit: hundredth, SubunitName: "kuruş", Enabled: true},
	"AUD": {Name: "Australian Dollar", ISOAlpha: "AUD", ISONumeric: "036", Symbol: "$", Subunit: hundredth, SubunitName: "cent", AltSymbols: []string{"A$"}, Enabled: true},
	"BRL": {Name: "Brazilian Real", ISOAlpha: "BRL", ISONumeric: "986", Symbol: "R$", Subunit: hundredth, SubunitName: "centavo", Enabled: true},
	"CAD": {Name: "Canadian Dollar", ISOAlpha: "CAD", ISONumeric: "124", Symbol: "$", Subunit: hundredth, SubunitName: "cent", AltSymbols: []string{"C$", "CA$"}, Enabled: true},
	"CNY": {Name: "Chinese Yuan", ISOAlpha: "CNY", ISONumeric: "156", Symbol: "¥", Subunit: hundredth, SubunitName: "fen", AltNames: []string{"Renminbi"}, AltSymbols: []string{"元"}, Enabled: true},
	"HKD": {Name: "Hong Kong Dollar", ISOAlpha: "HKD", ISONumeric: "344", Symbol: "$", Subunit: hundredth, SubunitName: "cent", AltSymbols: []string{"HK$"}, Enabled: true},
	"IDR": {Name: "Indonesian Rupiah", ISOAlpha: "IDR", ISONumeric: "360", Symbol: "Rp", Subunit: hundredth, SubunitName: "sen", Enabled: true},
	"ILS": {Name: "Israeli New Shekel", ISOAlpha: "ILS", ISONumeric: "376", Symbol: "₪", Subunit: hundredth, SubunitName: "agora", Enabled: true},
	"INR": {Name: "Indian Rupee", ISOAlpha: "INR", ISONumeric: "356", Symbol: "₹", Subunit: hundredth, SubunitName: "paisa", Enabled: true},
	"KRW": {Name: "South Korean Won", ISOAlpha: "KRW", ISONumeric: "410", Symbol: "₩", Subunit: hundredth, SubunitName: "jeon", Enabled: true},
	"MXN": {Name: "Mexican Peso", ISOAlpha: "MXN", ISONumeric: "484", Symbol: "$", Subunit: hundredth, SubunitName: "centavo", AltSymbols: []string{"Mex$"}, Enabled: true},
	"MYR": {Name: "Malaysian Ringgit", ISOAlpha: "MYR", ISONumeric: "458", Symbol: "RM", Subunit: hundredth, SubunitName: "sen", Enabled: true},
	"NZD": {Name: "New Zealand Dollar", ISOAlpha: "NZD", ISONumeric: "554", Symbol: "$", Subunit: hundredth, SubunitName: "cent", AltSymbols: []string{"NZ$"}, Enabled: true},
	"PHP": {Name: "Philippine Peso", ISOAlpha: "PHP", ISONumeric: "608", Symbol: "₱", Subunit: hundredth, SubunitName: "sentimo", Enabled: true},
	"SGD": {Name: "Singapore Dollar", ISOAlpha: "SGD", ISONumeric: "702", Symbol: "$", Subunit: hundredth, SubunitName: "cent", AltSymbols: []string{"S$"}, Enabled: true},
	"THB": {Name: "Thai Baht", ISOAlpha: "THB", ISONumeric: "764", Symbol: "฿", Subunit: hundredth, SubunitName: "satang", Enabled: true},
	"ZAR": {Name: "South African Rand", ISOAlpha: "ZAR", ISONumeric: "710", Symbol: "R", Subunit: hundredth, SubunitName: "cent", Enabled: true},

	// Retired from the daily feed.
	"HRK": {Name: "Croatian Kuna", ISOAlpha: "HRK", ISONumeric: "191", Symbol: "kn", Subunit: hundredth, SubunitName: "lipa", Enabled: false},
	"RUB": {Name: "Russian Ruble", ISOAlpha: "RUB", ISONumeric: "643", Symbol: "₽", Subunit: hundredth, SubunitName: "kopeck", Enabled: false},
	"LTL": {Name: "Lithuanian Litas", ISOAlpha: "LTL", ISONumeric: "440", Symbol: "Lt", Subunit: hundredth, SubunitName: "centas", Enabled: false},
	"LVL": {Name: "Latvian Lats", ISOAlpha: "LVL", ISONumeric: "428", Symbol: "Ls", Subunit: hundredth, SubunitName: "santīms", Enabled: false},
	"EEK": {Name: "Estonian Kroon", ISOAlpha: "EEK", ISONumeric: "233", Symbol: "kr", Subunit: hundredth, SubunitName: "sent", Enabled: false},
	"SKK": {Name: "Slovak Koruna", ISOAlpha: "SKK", ISONumeric: "703", Symbol: "Sk", Subunit: hundredth, SubunitName: "halier", Enabled: false},
	"CYP": {Name: "Cypriot Pound", ISOAlpha: "CYP", ISONumeric: "196", Symbol: "£", Subunit: hundredth, SubunitName: "cent", Enabled: false},
	"MTL": {Name: "Maltese Lira", ISOAlpha: "MTL", ISONumeric: "470", Symbol: "Lm", Subunit: hundredth, SubunitName: "cent", Enabled: false},
	"SIT": {Name: "Slovenian Tolar", ISOAlpha: "SIT", ISONumeric: "705", Symbol: "SIT", Subunit: hundredth, SubunitName: "stotin", Enabled: false},
	"TRL": {Name: "Turkish Lira (old)", ISOAlpha: "TRL", ISONumeric: "792", Symbol: "₤", Subunit: hundredth, SubunitName: "kuruş", Enabled: false},
}
