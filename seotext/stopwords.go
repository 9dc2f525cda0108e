package seotext

// germanStopwords covers articles, pronouns, prepositions, modal verbs and
// conjunctions. Words in this set never appear in ProcessedText.Words.
var germanStopwords = map[string]bool{
	// Articles
	"der": true, "die": true, "das": true, "den": true, "dem": true, "des": true,
	"ein": true, "eine": true, "einen": true, "einem": true, "einer": true, "eines": true,
	// Pronouns
	"ich": true, "du": true, "er": true, "sie": true, "es": true, "wir": true,
	"ihr": true, "mich": true, "dich": true, "sich": true, "uns": true, "euch": true,
	"mir": true, "dir": true, "ihm": true, "ihn": true, "ihnen": true,
	"mein": true, "dein": true, "sein": true, "unser": true, "euer": true,
	"meine": true, "deine": true, "seine": true, "ihre": true, "unsere": true,
	"meinem": true, "deinem": true, "seinem": true, "ihrem": true, "unserem": true,
	"meinen": true, "deinen": true, "seinen": true, "ihren": true, "unseren": true,
	"meiner": true, "deiner": true, "seiner": true, "ihrer": true, "unserer": true,
	"dieser": true, "diese": true, "dieses": true, "diesen": true, "diesem": true,
	"jener": true, "jene": true, "jenes": true, "welche": true, "welcher": true, "welches": true,
	"man": true, "wer": true, "was": true, "wem": true, "wen": true, "wessen": true,
	// Auxiliary and modal verbs
	"bin": true, "bist": true, "ist": true, "sind": true, "seid": true, "war": true,
	"warst": true, "waren": true, "wart": true, "gewesen": true, "sei": true,
	"habe": true, "hast": true, "hat": true, "haben": true, "habt": true, "hatte": true,
	"hatten": true, "gehabt": true, "werde": true, "wirst": true, "wird": true,
	"werden": true, "werdet": true, "wurde": true, "wurden": true, "geworden": true,
	"kann": true, "kannst": true, "können": true, "könnt": true, "konnte": true, "konnten": true,
	"muss": true, "musst": true, "müssen": true, "müsst": true, "musste": true, "mussten": true,
	"soll": true, "sollst": true, "sollen": true, "sollt": true, "sollte": true, "sollten": true,
	"will": true, "willst": true, "wollen": true, "wollt": true, "wollte": true, "wollten": true,
	"darf": true, "darfst": true, "dürfen": true, "dürft": true, "durfte": true, "durften": true,
	"mag": true, "magst": true, "mögen": true, "mögt": true, "möchte": true, "möchten": true,
	// Weak verbs that carry no topical signal in marketing copy
	"biete": true, "bieten": true, "bietet": true, "geboten": true,
	"machen": true, "macht": true, "gemacht": true,
	// Prepositions
	"in": true, "an": true, "auf": true, "für": true, "von": true, "mit": true,
	"bei": true, "nach": true, "aus": true, "zu": true, "zur": true, "zum": true,
	"über": true, "unter": true, "vor": true, "hinter": true, "neben": true,
	"zwischen": true, "durch": true, "gegen": true, "ohne": true, "um": true,
	"bis": true, "seit": true, "ab": true, "im": true, "am": true, "beim": true,
	"vom": true, "ins": true, "ans": true,
	// Conjunctions and particles
	"und": true, "oder": true, "aber": true, "denn": true, "sondern": true,
	"doch": true, "wenn": true, "als": true, "wie": true, "weil": true, "dass": true,
	"ob": true, "obwohl": true, "damit": true, "sowie": true, "sowohl": true,
	"auch": true, "noch": true, "nur": true, "schon": true, "sehr": true,
	"nicht": true, "kein": true, "keine": true, "keinen": true, "keinem": true,
	"keiner": true, "nichts": true, "mehr": true, "immer": true, "wieder": true,
	"hier": true, "dort": true, "da": true, "dann": true, "so": true, "also": true,
	"etwa": true, "etwas": true, "alle": true, "alles": true, "allen": true,
	"viel": true, "viele": true, "vielen": true, "wenig": true, "wenige": true,
	"beide": true, "beiden": true, "jeder": true, "jede": true, "jedes": true,
	"jeden": true, "jedem": true, "andere": true, "anderen": true, "anderer": true,
	"selbst": true, "ja": true, "nein": true, "heute": true, "gibt": true,
}

// IsStopword reports whether the lowercased word is in the German stopword set.
func IsStopword(word string) bool {
	return germanStopwords[word]
}
