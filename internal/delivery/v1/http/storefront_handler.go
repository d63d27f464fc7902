package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/shoecard"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// StorefrontHandler рендерит HTML-страницы витрины.
type StorefrontHandler struct {
	shoeUsecase usecase.ShoeUC
	logger      logger.Logger
}

type pageData struct {
	Title  string
	Header *domain.Header
	Cards  []shoecard.Card
}

func NewStorefrontHandler(shoeUsecase usecase.ShoeUC, logger logger.Logger) *StorefrontHandler {
	return &StorefrontHandler{shoeUsecase: shoeUsecase, logger: logger}
}

func (h *StorefrontHandler) index(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "Running", "")
}

func (h *StorefrontHandler) sale(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "Sale", shoecard.VariantOnSale)
}

func (h *StorefrontHandler) newReleases(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "New Releases", shoecard.VariantNewRelease)
}

func (h *StorefrontHandler) shoe(w http.ResponseWriter, r *http.Request) {
	card, err := h.shoeUsecase.GetShoeCard(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.render(w, http.StatusOK, pageData{
		Title:  card.Name,
		Header: h.shoeUsecase.Header(),
		Cards:  []shoecard.Card{*card},
	})
}

func (h *StorefrontHandler) renderList(w http.ResponseWriter, r *http.Request, title string, variant shoecard.Variant) {
	cards, err := h.shoeUsecase.ListShoeCards(r.Context(), usecase.NewListShoesReq(variant))
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.render(w, http.StatusOK, pageData{
		Title:  title,
		Header: h.shoeUsecase.Header(),
		Cards:  cards,
	})
}

func (h *StorefrontHandler) renderError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	if code == http.StatusInternalServerError {
		h.logger.Errorf(err, "render storefront page")
	}

	http.Error(w, msg, code)
}

// render сначала рендерит в буфер, чтобы ошибка шаблона не оставила полстраницы со статусом 200.
func (h *StorefrontHandler) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Errorf(err, "execute template")
		http.Error(w, e.ErrInternalServerError.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		h.logger.Warnf("write page: %v", err)
	}
}
