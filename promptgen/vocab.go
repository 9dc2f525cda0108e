package promptgen

// intentKeywordHints maps each search intent to its fixed keyword hints for
// the universal path.
var intentKeywordHints = map[string][]string{
	"informational": {"Ratgeber", "Tipps", "Anleitung", "Informationen"},
	"commercial":    {"Angebot", "Beratung", "Dienstleistung", "Vergleich"},
	"transactional": {"jetzt anfragen", "Termin buchen", "Offerte einholen", "kontaktieren"},
	"navigational":  {"Kontakt", "Standort", "Öffnungszeiten", "Team"},
}

// industryOrder fixes the match order for the coarse industry classification.
var industryOrder = []string{
	"treuhand", "gesundheit", "bau", "gastronomie", "informatik", "recht", "immobilien",
}

// industryIndicators buckets content into a coarse industry by word matches.
var industryIndicators = map[string][]string{
	"treuhand":    {"treuhand", "steuern", "buchhaltung", "revision", "finanzen"},
	"gesundheit":  {"gesundheit", "praxis", "therapie", "behandlung", "patienten"},
	"bau":         {"bau", "renovation", "sanierung", "handwerk", "umbau"},
	"gastronomie": {"restaurant", "küche", "menü", "catering", "hotel"},
	"informatik":  {"software", "informatik", "digitalisierung", "cloud", "webseite"},
	"recht":       {"recht", "anwalt", "beratung", "vertrag", "notariat"},
	"immobilien":  {"immobilien", "wohnung", "liegenschaft", "verwaltung", "vermietung"},
}

// industryKeywordHints carries the fixed keyword vocabulary per industry.
var industryKeywordHints = map[string][]string{
	"treuhand":    {"Treuhand", "Steuerberatung", "Buchhaltung"},
	"gesundheit":  {"Gesundheit", "Behandlung", "Termin"},
	"bau":         {"Bauprojekt", "Renovation", "Offerte"},
	"gastronomie": {"Restaurant", "Reservation", "Spezialitäten"},
	"informatik":  {"IT-Lösungen", "Digitalisierung", "Support"},
	"recht":       {"Rechtsberatung", "Kanzlei", "Erstgespräch"},
	"immobilien":  {"Immobilien", "Verwaltung", "Bewertung"},
}
