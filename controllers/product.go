package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/imadityagolu/mct-5-amazone/apperr"
	"github.com/imadityagolu/mct-5-amazone/catalog"
)

// ProductController serves the static catalog: listing with filters and
// single-product lookup.
type ProductController struct {
	Catalog *catalog.Catalog
	Log     zerolog.Logger
}

func NewProductController(cat *catalog.Catalog, log zerolog.Logger) *ProductController {
	return &ProductController{Catalog: cat, Log: log}
}

// GetProducts lists the catalog, applying AND-composed search, category and
// price-band filters and the requested sort.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := catalog.Query{
		Search:    r.URL.Query().Get("search"),
		Category:  r.URL.Query().Get("category"),
		PriceBand: r.URL.Query().Get("price"),
		Sort:      r.URL.Query().Get("sort"),
	}
	writeJSON(w, http.StatusOK, pc.Catalog.Search(query))
}

// GetProductByID retrieves a single catalog entry.
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		writeError(w, pc.Log, apperr.New(apperr.CodeValidation, "invalid product id"))
		return
	}

	product, ok := pc.Catalog.ByID(id)
	if !ok {
		writeError(w, pc.Log, apperr.New(apperr.CodeNotFound, "product not found"))
		return
	}
	writeJSON(w, http.StatusOK, product)
}
