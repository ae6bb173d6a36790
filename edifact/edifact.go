// Package edifact carries the canonical English names of well-known
// UN/EDIFACT segments. The table is immutable, process-wide constant data.
package edifact

// segmentNames maps segment mnemonics to the names used by the UN/EDIFACT
// directories. Guideline documents frequently leave the description column
// of these service segments empty or filled with a placeholder.
var segmentNames = map[string]string{
	"UNB": "Interchange header",
	"UNH": "Message header",
	"BGM": "Beginning of message",
	"DTM": "Date/time/period",
	"RFF": "Reference",
	"NAD": "Name and address",
	"CTA": "Contact information",
	"COM": "Communication contact",
	"TAX": "Duty/tax/fee details",
	"CUX": "Currencies",
	"PAT": "Payment terms basis",
	"PCD": "Percentage details",
	"MOA": "Monetary amount",
	"LIN": "Line item",
	"PIA": "Additional product id",
	"IMD": "Item description",
	"QTY": "Quantity",
	"ALI": "Additional information",
	"GIN": "Goods identity number",
	"GIR": "Related identification numbers",
	"QVR": "Quantity variances",
	"DOC": "Document/message details",
	"PRI": "Price details",
	"APR": "Additional price information",
	"RNG": "Range details",
	"LOC": "Place/location identification",
	"TOD": "Terms of delivery or transport",
	"PAC": "Package",
	"PCI": "Package identification",
	"ALC": "Allowance or charge",
	"RCS": "Requirements and conditions",
	"UNS": "Section control",
	"CNT": "Control total",
	"UNT": "Message trailer",
	"UNZ": "Interchange trailer",
	"FTX": "Free text",
	"FII": "Financial institution information",
	"MEA": "Measurements",
	"PAI": "Payment instructions",
}

// Name returns the canonical name of a segment mnemonic.
func Name(code string) (string, bool) {
	name, ok := segmentNames[code]
	return name, ok
}

// Placeholder reports whether a description is one of the filler values
// some guidelines leave behind instead of a real text.
func Placeholder(description string) bool {
	switch description {
	case "", "0", "1":
		return true
	}
	return false
}
