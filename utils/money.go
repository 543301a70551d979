package utils

import "fmt"

// FormatarValor converte centavos pra string com vírgula: 1600 → "16,00".
func FormatarValor(centavos int64) string {
	sinal := ""
	if centavos < 0 {
		sinal = "-"
		centavos = -centavos
	}
	return fmt.Sprintf("%s%d,%02d", sinal, centavos/100, centavos%100)
}

// FormatarReal prefixa o símbolo: 1600 → "R$ 16,00".
func FormatarReal(centavos int64) string {
	return "R$ " + FormatarValor(centavos)
}
