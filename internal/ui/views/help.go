package views

import (
	"strings"

	"github.com/Thiccblique/Tusday.com/internal/ui/styles"
)

// helpLine renders key/description pairs as "k desc • k desc".
func helpLine(s *styles.Styles, pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, s.HelpKey.Render(pairs[i])+" "+pairs[i+1])
	}
	return s.TitleMuted.Render(strings.Join(parts, " • "))
}
