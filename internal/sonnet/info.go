package sonnet

import "fmt"

// Info holds the reference text shown by the editor's help panel.
var Info = struct {
	Structure   string
	RhymeScheme string
	Meter       string
	Synalepha   string
}{
	Structure:   "El soneto clásico tiene 14 versos endecasílabos: dos cuartetos y dos tercetos.",
	RhymeScheme: "La rima tradicional es ABBA ABBA CDC DCD; también valen CDE CDE y CDC CDC.",
	Meter:       "Cada verso debe tener 11 sílabas métricas.",
	Synalepha:   "Escribe * entre dos vocales iguales de palabras contiguas para unirlas en una sílaba.",
}

// MetricsDescription describes a metrical count in Spanish, e.g.
// "9 sílabas (-2)".
func MetricsDescription(count int) string {
	switch {
	case count == 0:
		return "Sin sílabas"
	case count == 11:
		return "Endecasílabo (11) ✓"
	case count < 11:
		return fmt.Sprintf("%d sílabas (-%d)", count, 11-count)
	default:
		return fmt.Sprintf("%d sílabas (+%d)", count, count-11)
	}
}
