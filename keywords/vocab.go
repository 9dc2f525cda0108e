package keywords

// Fixed vocabularies used to bucket extracted words. Loaded once, read-only.

// semanticVocabulary is a domain-agnostic trust and quality vocabulary.
var semanticVocabulary = map[string]bool{
	"qualität": true, "service": true, "kompetenz": true, "erfahrung": true,
	"sicherheit": true, "vertrauen": true, "zuverlässigkeit": true,
	"innovation": true, "effizienz": true, "nachhaltigkeit": true,
	"transparenz": true, "flexibilität": true, "präzision": true,
	"leistung": true, "lösung": true, "lösungen": true, "beratung": true,
	"betreuung": true, "unterstützung": true, "partnerschaft": true,
	"expertise": true, "fachwissen": true, "tradition": true, "garantie": true,
}

// technicalVocabulary captures technology and process terms.
var technicalVocabulary = map[string]bool{
	"algorithmus": true, "automatisierung": true, "digitalisierung": true,
	"api": true, "architektur": true, "datenbank": true, "software": true,
	"hardware": true, "cloud": true, "schnittstelle": true, "integration": true,
	"implementierung": true, "konfiguration": true, "infrastruktur": true,
	"netzwerk": true, "server": true, "system": true, "systeme": true,
	"plattform": true, "technologie": true, "entwicklung": true,
	"programmierung": true, "analyse": true, "optimierung": true,
	"verschlüsselung": true, "datenschutz": true, "monitoring": true,
}

// powerVocabulary holds superlatives and persuasion words.
var powerVocabulary = map[string]bool{
	"beste": true, "bester": true, "bestes": true, "professionell": true,
	"professionelle": true, "professioneller": true, "hochwertig": true,
	"hochwertige": true, "innovativ": true, "innovative": true,
	"zuverlässig": true, "zuverlässige": true, "erstklassig": true,
	"erstklassige": true, "führend": true, "führende": true, "exklusiv": true,
	"exklusive": true, "individuell": true, "individuelle": true,
	"massgeschneidert": true, "massgeschneiderte": true, "kostenlos": true,
	"kostenlose": true, "garantiert": true, "bewährt": true, "bewährte": true,
	"erfolgreich": true, "erfolgreiche": true, "einzigartig": true,
	"einzigartige": true, "umfassend": true, "umfassende": true,
}

// IsPowerWord reports membership in the persuasion vocabulary.
func IsPowerWord(word string) bool {
	return powerVocabulary[word]
}

// IsTechnicalWord reports membership in the technical vocabulary.
func IsTechnicalWord(word string) bool {
	return technicalVocabulary[word]
}
