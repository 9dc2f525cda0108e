package regional

// Canton describes one Swiss canton.
type Canton struct {
	Code    string
	Name    string
	Capital string
}

// cantonOrder fixes the iteration order for deterministic output.
var cantonOrder = []string{
	"AG", "AI", "AR", "BE", "BL", "BS", "FR", "GE", "GL", "GR", "JU", "LU",
	"NE", "NW", "OW", "SG", "SH", "SO", "SZ", "TG", "TI", "UR", "VD", "VS",
	"ZG", "ZH",
}

// cantons enumerates all 26 Swiss cantons with their capitals.
var cantons = map[string]Canton{
	"AG": {"AG", "Aargau", "Aarau"},
	"AI": {"AI", "Appenzell Innerrhoden", "Appenzell"},
	"AR": {"AR", "Appenzell Ausserrhoden", "Herisau"},
	"BE": {"BE", "Bern", "Bern"},
	"BL": {"BL", "Basel-Landschaft", "Liestal"},
	"BS": {"BS", "Basel-Stadt", "Basel"},
	"FR": {"FR", "Freiburg", "Freiburg"},
	"GE": {"GE", "Genf", "Genf"},
	"GL": {"GL", "Glarus", "Glarus"},
	"GR": {"GR", "Graubünden", "Chur"},
	"JU": {"JU", "Jura", "Delsberg"},
	"LU": {"LU", "Luzern", "Luzern"},
	"NE": {"NE", "Neuenburg", "Neuenburg"},
	"NW": {"NW", "Nidwalden", "Stans"},
	"OW": {"OW", "Obwalden", "Sarnen"},
	"SG": {"SG", "St. Gallen", "St. Gallen"},
	"SH": {"SH", "Schaffhausen", "Schaffhausen"},
	"SO": {"SO", "Solothurn", "Solothurn"},
	"SZ": {"SZ", "Schwyz", "Schwyz"},
	"TG": {"TG", "Thurgau", "Frauenfeld"},
	"TI": {"TI", "Tessin", "Bellinzona"},
	"UR": {"UR", "Uri", "Altdorf"},
	"VD": {"VD", "Waadt", "Lausanne"},
	"VS": {"VS", "Wallis", "Sitten"},
	"ZG": {"ZG", "Zug", "Zug"},
	"ZH": {"ZH", "Zürich", "Zürich"},
}

// CantonByCode looks up a canton by its two-letter code.
func CantonByCode(code string) (Canton, bool) {
	c, ok := cantons[code]
	return c, ok
}

// AllCantonCodes returns the canton codes in fixed order.
func AllCantonCodes() []string {
	codes := make([]string, len(cantonOrder))
	copy(codes, cantonOrder)
	return codes
}
