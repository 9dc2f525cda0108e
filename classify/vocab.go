package classify

// Indicator sets per category. Enumeration order is the tie-break order, so
// it is fixed here and mirrored in classifyCategory.
var categoryOrder = []string{
	ContentTypeInformational,
	ContentTypeCommercial,
	ContentTypeTransactional,
	ContentTypeNavigational,
}

var categoryIndicators = map[string]map[string]bool{
	ContentTypeInformational: {
		"ratgeber": true, "anleitung": true, "tipps": true, "wissen": true,
		"erklärung": true, "definition": true, "überblick": true, "grundlagen": true,
		"informationen": true, "hintergrund": true, "beispiele": true, "vergleich": true,
		"warum": true, "wieso": true, "bedeutet": true, "funktioniert": true,
	},
	ContentTypeCommercial: {
		"angebot": true, "angebote": true, "dienstleistung": true, "dienstleistungen": true,
		"leistungen": true, "beratung": true, "produkte": true, "produkt": true,
		"preise": true, "preis": true, "kosten": true, "offerte": true,
		"vergleichen": true, "testsieger": true, "empfehlung": true, "anbieter": true,
	},
	ContentTypeTransactional: {
		"kaufen": true, "bestellen": true, "buchen": true, "reservieren": true,
		"anmelden": true, "registrieren": true, "download": true, "herunterladen": true,
		"termin": true, "anfrage": true, "kontaktieren": true, "abonnieren": true,
		"rabatt": true, "aktion": true, "gutschein": true, "shop": true,
	},
	ContentTypeNavigational: {
		"kontakt": true, "adresse": true, "standort": true, "öffnungszeiten": true,
		"anfahrt": true, "telefon": true, "impressum": true, "team": true,
		"startseite": true, "login": true, "filiale": true, "filialen": true,
	},
}

// seasonalVocabulary maps season markers to their season label.
var seasonalVocabulary = map[string]string{
	"frühling": "Frühling", "frühjahr": "Frühling", "ostern": "Frühling",
	"sommer": "Sommer", "ferien": "Sommer", "urlaub": "Sommer",
	"herbst": "Herbst", "oktober": "Herbst",
	"winter": "Winter", "weihnachten": "Winter", "advent": "Winter",
	"neujahr": "Winter", "saison": "Saisonal", "saisonal": "Saisonal",
}

// competitiveVocabulary marks competitive language.
var competitiveVocabulary = map[string]bool{
	"marktführer": true, "testsieger": true, "konkurrenz": true,
	"wettbewerb": true, "vergleich": true, "alternative": true,
	"alternativen": true, "besser": true, "günstiger": true,
	"schneller": true, "ausgezeichnet": true, "prämiert": true,
	"zertifiziert": true, "referenzen": true,
}

// themeVocabulary buckets words into coarse semantic themes.
var themeVocabulary = map[string]string{
	"beratung": "Dienstleistung", "service": "Dienstleistung",
	"betreuung": "Dienstleistung", "unterstützung": "Dienstleistung",
	"software": "Technologie", "digital": "Technologie",
	"digitalisierung": "Technologie", "technologie": "Technologie",
	"gesundheit": "Gesundheit", "therapie": "Gesundheit", "praxis": "Gesundheit",
	"finanzen": "Finanzen", "versicherung": "Finanzen", "vorsorge": "Finanzen",
	"steuern": "Finanzen", "treuhand": "Finanzen",
	"immobilie": "Immobilien", "immobilien": "Immobilien", "wohnung": "Immobilien",
	"recht": "Recht", "anwalt": "Recht", "notar": "Recht",
	"handwerk": "Handwerk", "bau": "Handwerk", "renovation": "Handwerk",
	"restaurant": "Gastronomie", "hotel": "Gastronomie", "küche": "Gastronomie",
	"bildung": "Bildung", "kurs": "Bildung", "kurse": "Bildung", "schulung": "Bildung",
}
