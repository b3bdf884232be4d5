package agent

import (
	"strings"
)

var typographic = strings.NewReplacer(
	"“", `"`, "”", `"`, "«", `"`, "»", `"`,
	"‘", "'", "’", "'",
	"–", "-", "—", "-",
)

// Normalize 统一引号与破折号, 合并空白
func Normalize(text string) string {
	return strings.Join(strings.Fields(typographic.Replace(text)), " ")
}
