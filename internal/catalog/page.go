package catalog

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ProductCatalog/pkg/kit"
)

//go:embed templates/products.html
var templateFS embed.FS

var productsPage = template.Must(
	template.New("products.html").
		Funcs(template.FuncMap{"money": formatMoney}).
		ParseFS(templateFS, "templates/products.html"),
)

type pageData struct {
	Title    string
	Products []Product
}

func formatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	products, err := s.service().GetAllProducts(r.Context())
	if err != nil {
		s.writeServiceError(w, r, "render products page failed", err)
		return
	}

	var buf bytes.Buffer
	if err := productsPage.Execute(&buf, pageData{Title: "Products", Products: products}); err != nil {
		s.log().Error("execute products template", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
