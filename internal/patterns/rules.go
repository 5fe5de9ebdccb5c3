package patterns

import "regexp"

// Label tables are bilingual (English + German). New locales are additive:
// extend the alternations here, the extraction logic stays untouched.

const (
	supplierLabels = `supplier|vendor|company|seller|from|lieferant|anbieter|verkäufer|firma`
	buyerLabels    = `buyer|customer|bill to|käufer|kunde|rechnung an`

	netLabels   = `net amount|net|subtotal|amount|netto|nettobetrag|zwischensumme|betrag`
	taxLabels   = `tax amount|tax|vat|mwst\.?|ust\.?|steuer|mehrwertsteuer`
	grossLabels = `total amount|grand total|total|gross|brutto|bruttobetrag|gesamtbetrag|gesamt|endbetrag`

	issueLabels = `invoice date|issue date|date of issue|document date|date|rechnungsdatum|belegdatum|datum`
	dueLabels   = `due date|payment due|due|fällig am|fälligkeitsdatum|zahlbar bis|zahlungsziel`

	numberLabels = `invoice|document|purchase order|order|contract|po|doc|rechnungs-?nr\.?|rechnungsnummer|belegnummer|auftragsnummer|vertragsnummer`
)

var (
	// supplier: labeled line, remainder of line captured
	reSupplier = regexp.MustCompile(`(?im)^[ \t]*(?:` + supplierLabels + `)[ \t]*[:\-][ \t]*(.+)$`)

	// fragments that bleed onto the supplier line and must be stripped
	reSupplierTrailing = regexp.MustCompile(`(?i)[,;]?\s*(?:address|adresse|anschrift|tax id|tax no|vat(?:\s*id)?|ust[-.\s]?id(?:nr)?\.?|steuernummer|` + buyerLabels + `)\b.*$`)

	// amounts: <label>: <number> <optional currency>
	reNetAmount   = amountRule(netLabels)
	reTaxAmount   = amountRule(taxLabels)
	reGrossAmount = amountRule(grossLabels)

	// dates: labeled DD-MM-YYYY (also . and / separators) or ISO YYYY-MM-DD
	reIssueDate = dateRule(issueLabels)
	reDueDate   = dateRule(dueLabels)

	// document number: first label-prefixed token with an identifier shape
	reDocNumber = regexp.MustCompile(`(?im)^[ \t]*(?:` + numberLabels + `)[ \t]*(?:no\.?|nr\.?|number|#)?[ \t]*[:\-#][ \t]*([A-Za-z0-9][A-Za-z0-9\-/_.]{1,63})`)

	// currency: 3-letter code from the allow-list, matched as a word
	reCurrencyCode = regexp.MustCompile(`\b([A-Z]{3})\b`)

	// line items: <qty> <description> <unit_price><currency>
	reLineItem = regexp.MustCompile(`(?m)^[ \t]*(\d{1,4}(?:[.,]\d{1,2})?)[ \t]*x?[ \t]+(\S.{2,79}?)[ \t]+(\d[\d.,]*)[ \t]*(€|\$|£|[A-Z]{3})[ \t]*$`)

	// supplier contact details
	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	rePhone = regexp.MustCompile(`(?im)^.*?(?:phone|tel\.?|telefon)[ \t]*[:\-]?[ \t]*(\+?[\d][\d ()\-/]{5,24}\d)`)
	reTaxID = regexp.MustCompile(`(?im)(?:tax id|tax no\.?|vat(?:[ \t]*id)?|ust[-.\s]?id(?:nr)?\.?|steuernummer)[ \t]*[:\-]?[ \t]*([A-Z]{0,2}[\d][\dA-Z\-/ ]{4,20}[\dA-Z])`)

	reAddress = regexp.MustCompile(`(?im)^[ \t]*(?:address|adresse|anschrift)[ \t]*[:\-][ \t]*(.+)$`)

	// identifier shape guard: a plausible document number carries a digit
	reHasDigit = regexp.MustCompile(`\d`)
)

func amountRule(labels string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[ \t]*(?:` + labels + `)[ \t]*[:\-]?[ \t]*(?:€|\$|£)?[ \t]*(\d[\d., ]*)[ \t]*(€|\$|£|[A-Z]{3})?[ \t]*$`)
}

func dateRule(labels string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[ \t]*(?:` + labels + `)[ \t]*[:\-]?[ \t]*(\d{1,4}[-./]\d{1,2}[-./]\d{1,4})`)
}

// legalSuffixes mark plausible legal-entity boundaries used when a captured
// supplier name exceeds the length ceiling.
var legalSuffixes = []string{
	"Ltd.", "Ltd", "LLC", "Inc.", "Inc", "Corp.", "Corp", "Co.", "PLC",
	"GmbH & Co. KG", "GmbH", "AG", "KG", "OHG", "UG", "e.V.",
	"S.A.", "S.p.A.", "B.V.", "N.V.", "Oy", "AB", "A/S", "s.r.o.", "Sp. z o.o.",
}
