package wordlist

import "sort"

// builtinTable groups common sonnet endings with words that carry them.
var builtinTable = map[string][]string{
	"ante": {"amante", "brillante", "constante", "diamante", "distante", "durante", "elegante", "gigante", "instante", "mediante"},
	"eto":  {"completo", "concreto", "decreto", "discreto", "inquieto", "objeto", "respeto", "secreto", "sujeto", "teto"},
	"ando": {"amando", "buscando", "cantando", "dando", "esperando", "hablando", "llorando", "pensando", "soñando", "volando"},
	"echo": {"derecho", "hecho", "lecho", "pecho", "provecho", "satisfecho", "sospecho", "techo", "trecho"},
	"ente": {"ardiente", "consciente", "diferente", "evidente", "frente", "mente", "presente", "siguiente", "urgente", "valiente"},
	"ida":  {"comida", "despedida", "herida", "medida", "partida", "querida", "salida", "seguida", "vida"},
	"ado":  {"amado", "cansado", "estado", "llamado", "pasado", "pensado", "sagrado", "soldado", "tratado"},
	"anza": {"alabanza", "bonanza", "confianza", "danza", "esperanza", "lanza", "mudanza", "pujanza", "semejanza"},
	"ura":  {"altura", "amargura", "aventura", "cordura", "dulzura", "hermosura", "locura", "ternura", "ventura"},
	"ía":   {"alegría", "armonía", "fantasía", "melodía", "poesía", "sabiduría", "sinfonía", "valentía"},
}

// Endings returns the built-in endings in sorted order.
func Endings() []string {
	out := make([]string, 0, len(builtinTable))
	for ending := range builtinTable {
		out = append(out, ending)
	}
	sort.Strings(out)
	return out
}

// ForEnding returns a copy of the built-in words for ending.
func ForEnding(ending string) []string {
	words := builtinTable[ending]
	return append([]string(nil), words...)
}

// Builtin returns every built-in word, sorted.
func Builtin() []string {
	var out []string
	for _, ending := range Endings() {
		out = append(out, ForEnding(ending)...)
	}
	sort.Strings(out)
	return out
}
