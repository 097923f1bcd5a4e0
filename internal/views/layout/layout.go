package layout

import (
	_ "embed"
	"strings"

	"github.com/a-h/templ"

	"storefront/internal/views/theme"
)

//go:embed storefront.css
var stylesheet string

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// headAssets returns the font link, the theme variables, the page stylesheet
// and the htmx script. Style bodies are raw text and are written unescaped.
func headAssets(def theme.Definition) string {
	var b strings.Builder
	b.WriteString(`<link rel="stylesheet" id="theme-fonts" href="`)
	b.WriteString(templ.EscapeString(theme.FontsURL))
	b.WriteString(`"><style id="theme-vars">`)
	b.WriteString(def.RootStyle())
	b.WriteString(`</style><style>`)
	b.WriteString(stylesheet)
	b.WriteString(`</style><script src="`)
	b.WriteString(htmxScript)
	b.WriteString(`" defer></script>`)
	return b.String()
}
