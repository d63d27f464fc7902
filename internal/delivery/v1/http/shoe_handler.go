package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/shoecard"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ShoeHandler struct {
	shoeUsecase usecase.ShoeUC
	logger      logger.Logger
}

// RegisterShoeResponse — ответ на регистрацию товара.
type RegisterShoeResponse struct {
	EventID string `json:"event_id,omitempty"`
	Changed bool   `json:"changed"`
}

// ListShoesResponse — карточки витрины.
type ListShoesResponse struct {
	Cards []shoecard.Card `json:"cards"`
	Count int             `json:"count"`
}

// HeaderResponse — шапка сайта.
type HeaderResponse struct {
	Promo string        `json:"promo"`
	Links []NavLinkJSON `json:"links"`
}

type NavLinkJSON struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Accent bool   `json:"accent"`
}

func NewShoeHandler(shoeUsecase usecase.ShoeUC, logger logger.Logger) *ShoeHandler {
	return &ShoeHandler{shoeUsecase: shoeUsecase, logger: logger}
}

// registerShoe
//
//	@Summary		Регистрация или обновление товара
//	@Description	Создает или обновляет модель обуви в каталоге. Событие публикуется только при изменении данных.
//	@Tags			shoes
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			slug			formData	string					true	"Идентификатор в URL"
//	@Param			name			formData	string					true	"Название"
//	@Param			price			formData	number					true	"Цена в долларах"
//	@Param			sale_price		formData	number					false	"Цена со скидкой"
//	@Param			release_date	formData	string					false	"Дата выхода (RFC3339 или YYYY-MM-DD)"
//	@Param			num_of_colors	formData	integer					false	"Количество расцветок"
//	@Param			image			formData	file					false	"Изображение"
//	@Success		201				{object}	RegisterShoeResponse	"Товар изменен, событие создано"
//	@Success		200				{object}	RegisterShoeResponse	"Изменений нет"
//	@Failure		400				{object}	ErrorResponse			"Ошибка валидации"
//	@Failure		500				{object}	ErrorResponse
//	@Router			/shoes [post]
func (h *ShoeHandler) registerShoe(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = maxImageSize + 1<<20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, err.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	form, err := parseShoeForm(r)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"])
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	event, err := h.shoeUsecase.RegisterShoe(r.Context(), usecase.NewRegisterShoeReq(
		form.Slug, form.Name, form.Price, form.SalePrice, form.ReleaseDate, form.NumOfColors, image,
	))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if event != nil {
		WriteSuccess(w, http.StatusCreated, RegisterShoeResponse{EventID: event.EventID, Changed: true})
		return
	}

	WriteSuccess(w, http.StatusOK, RegisterShoeResponse{Changed: false})
}

// listShoes
//
//	@Summary	Карточки витрины
//	@Tags		shoes
//	@Produce	json
//	@Param		variant	query		string	false	"Фильтр варианта"	Enums(on-sale, new-release, default)
//	@Success	200		{object}	ListShoesResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/shoes [get]
func (h *ShoeHandler) listShoes(w http.ResponseWriter, r *http.Request) {
	variant, _, err := shoecard.ParseVariant(r.URL.Query().Get("variant"))
	if err != nil {
		WriteError(w, e.Wrap(r.URL.Query().Get("variant"), err))
		return
	}

	cards, err := h.shoeUsecase.ListShoeCards(r.Context(), usecase.NewListShoesReq(variant))
	if err != nil {
		h.logger.Errorf(err, "list shoes")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ListShoesResponse{Cards: cards, Count: len(cards)})
}

// getShoe
//
//	@Summary	Карточка товара
//	@Tags		shoes
//	@Produce	json
//	@Param		slug	path		string	true	"Slug товара"
//	@Success	200		{object}	shoecard.Card
//	@Failure	404		{object}	ErrorResponse
//	@Router		/shoes/{slug} [get]
func (h *ShoeHandler) getShoe(w http.ResponseWriter, r *http.Request) {
	card, err := h.shoeUsecase.GetShoeCard(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, card)
}

// getHeader
//
//	@Summary	Шапка сайта
//	@Tags		storefront
//	@Produce	json
//	@Success	200	{object}	HeaderResponse
//	@Router		/header [get]
func (h *ShoeHandler) getHeader(w http.ResponseWriter, _ *http.Request) {
	header := h.shoeUsecase.Header()

	links := make([]NavLinkJSON, 0, len(header.Links))
	for _, l := range header.Links {
		links = append(links, NavLinkJSON{Label: l.Label, Href: l.Href, Accent: l.Accent})
	}

	WriteSuccess(w, http.StatusOK, HeaderResponse{Promo: header.Promo, Links: links})
}
