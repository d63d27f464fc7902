package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/shoecard"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShoeUC struct {
	cards       []shoecard.Card
	listReq     *usecase.ListShoesReq
	registerReq *usecase.RegisterShoeReq
	event       *usecase.OutboxEvent
	err         error
}

func (f *fakeShoeUC) RegisterShoe(_ context.Context, req *usecase.RegisterShoeReq) (*usecase.OutboxEvent, error) {
	f.registerReq = req
	return f.event, f.err
}

func (f *fakeShoeUC) ListShoeCards(_ context.Context, req *usecase.ListShoesReq) ([]shoecard.Card, error) {
	f.listReq = req
	if f.err != nil {
		return nil, f.err
	}
	if req.Variant == "" {
		return f.cards, nil
	}
	return shoecard.Filter(f.cards, req.Variant), nil
}

func (f *fakeShoeUC) GetShoeCard(_ context.Context, slug string) (*shoecard.Card, error) {
	for _, c := range f.cards {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, e.Wrap("ShoeUseCase.GetShoeCard", e.ErrShoeNotFound)
}

func (f *fakeShoeUC) Header() *domain.Header {
	return domain.NewHeader("Free shipping on domestic orders over $75!")
}

var testCards = []shoecard.Card{
	{
		Slug: "tail-wind", Href: "/shoe/tail-wind", Name: "Tail-Wind", ImageSrc: "/img/tail-wind.jpg",
		Variant: shoecard.VariantOnSale, Tag: "Sale", PriceText: "$165.00", SalePriceText: "$149.99",
		PriceStruck: true, ColorInfo: "3 Colors",
	},
	{
		Slug: "cosmic", Href: "/shoe/cosmic", Name: "Cosmic", ImageSrc: "/img/cosmic.jpg",
		Variant: shoecard.VariantNewRelease, Tag: "Just Released!", PriceText: "$125.00", ColorInfo: "1 Color",
	},
}

func newTestRouter(uc usecase.ShoeUC) http.Handler {
	r := chi.NewRouter()
	NewRouter(r, logger.NewNop(), "/swagger/doc.json").Init(uc)
	return r
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListShoes(t *testing.T) {
	t.Run("all cards", func(t *testing.T) {
		uc := &fakeShoeUC{cards: testCards}
		rec := do(t, newTestRouter(uc), httptest.NewRequest(http.MethodGet, "/api/v1/shoes", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var res ListShoesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, 2, res.Count)
		assert.Equal(t, shoecard.Variant(""), uc.listReq.Variant)
	})

	t.Run("variant filter", func(t *testing.T) {
		uc := &fakeShoeUC{cards: testCards}
		rec := do(t, newTestRouter(uc), httptest.NewRequest(http.MethodGet, "/api/v1/shoes?variant=new-release", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var res ListShoesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Len(t, res.Cards, 1)
		assert.Equal(t, "Just Released!", res.Cards[0].Tag)
		assert.Equal(t, shoecard.VariantNewRelease, uc.listReq.Variant)
	})

	t.Run("unknown variant", func(t *testing.T) {
		uc := &fakeShoeUC{cards: testCards}
		rec := do(t, newTestRouter(uc), httptest.NewRequest(http.MethodGet, "/api/v1/shoes?variant=clearance", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, uc.listReq)
	})

	t.Run("internal error is not leaked", func(t *testing.T) {
		uc := &fakeShoeUC{err: assert.AnError}
		rec := do(t, newTestRouter(uc), httptest.NewRequest(http.MethodGet, "/api/v1/shoes", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestGetShoe(t *testing.T) {
	h := newTestRouter(&fakeShoeUC{cards: testCards})

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/shoes/tail-wind", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var card shoecard.Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.Equal(t, "$149.99", card.SalePriceText)
	assert.True(t, card.PriceStruck)

	rec = do(t, h, httptest.NewRequest(http.MethodGet, "/api/v1/shoes/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetHeader(t *testing.T) {
	rec := do(t, newTestRouter(&fakeShoeUC{}), httptest.NewRequest(http.MethodGet, "/api/v1/header", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res HeaderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Free shipping on domestic orders over $75!", res.Promo)
	require.Len(t, res.Links, 6)
	assert.Equal(t, NavLinkJSON{Label: "Sale", Href: "/sale", Accent: true}, res.Links[0])
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func multipartRequest(t *testing.T, fields map[string]string, image []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", "side.png")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shoes", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestRegisterShoe(t *testing.T) {
	fields := func() map[string]string {
		return map[string]string{
			"slug":          "tail-wind",
			"name":          "Tail-Wind",
			"price":         "165",
			"sale_price":    "149.99",
			"release_date":  "2026-10-01",
			"num_of_colors": "3",
		}
	}

	t.Run("created", func(t *testing.T) {
		uc := &fakeShoeUC{event: &usecase.OutboxEvent{EventID: "evt-1"}}
		rec := do(t, newTestRouter(uc), multipartRequest(t, fields(), pngHeader))

		require.Equal(t, http.StatusCreated, rec.Code)
		var res RegisterShoeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, RegisterShoeResponse{EventID: "evt-1", Changed: true}, res)

		req := uc.registerReq
		require.NotNil(t, req)
		assert.Equal(t, int64(16500), req.Price)
		require.NotNil(t, req.SalePrice)
		assert.Equal(t, int64(14999), *req.SalePrice)
		assert.Equal(t, 3, req.NumOfColors)
		assert.Equal(t, "2026-10-01", req.ReleaseDate.Format("2006-01-02"))
		require.NotNil(t, req.Image)
		assert.Equal(t, "image/png", req.Image.MimeType)
	})

	t.Run("no changes", func(t *testing.T) {
		uc := &fakeShoeUC{}
		f := fields()
		delete(f, "sale_price")
		rec := do(t, newTestRouter(uc), multipartRequest(t, f, nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, uc.registerReq.SalePrice)
		assert.Nil(t, uc.registerReq.Image)
	})

	t.Run("bad price", func(t *testing.T) {
		uc := &fakeShoeUC{}
		f := fields()
		f["price"] = "12.345"
		rec := do(t, newTestRouter(uc), multipartRequest(t, f, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), e.ErrPricePrecision.Error())
		assert.Nil(t, uc.registerReq)
	})

	t.Run("missing name", func(t *testing.T) {
		f := fields()
		delete(f, "name")
		rec := do(t, newTestRouter(&fakeShoeUC{}), multipartRequest(t, f, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shoes", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := do(t, newTestRouter(&fakeShoeUC{}), req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), e.ErrExpectedMultipart.Error())
	})
}

func TestStorefrontPages(t *testing.T) {
	t.Run("index renders header and cards", func(t *testing.T) {
		rec := do(t, newTestRouter(&fakeShoeUC{cards: testCards}), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

		body := rec.Body.String()
		assert.Contains(t, body, "Free shipping on domestic orders over $75!")
		assert.Contains(t, body, `<a href="/sale" class="accent">Sale</a>`)
		assert.Contains(t, body, "Tail-Wind")
		assert.Contains(t, body, `<span class="price struck">$165.00</span>`)
		assert.Contains(t, body, `<span class="sale-price">$149.99</span>`)
		assert.Contains(t, body, "Just Released!")
		assert.Contains(t, body, "1 Color")
	})

	t.Run("sale page asks for on-sale cards", func(t *testing.T) {
		uc := &fakeShoeUC{cards: testCards}
		rec := do(t, newTestRouter(uc), httptest.NewRequest(http.MethodGet, "/sale", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, shoecard.VariantOnSale, uc.listReq.Variant)
		assert.NotContains(t, rec.Body.String(), "Cosmic")
	})

	t.Run("new page asks for new releases", func(t *testing.T) {
		uc := &fakeShoeUC{cards: testCards}
		rec := do(t, newTestRouter(uc), httptest.NewRequest(http.MethodGet, "/new", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, shoecard.VariantNewRelease, uc.listReq.Variant)
		assert.Contains(t, rec.Body.String(), "Cosmic")
	})

	t.Run("shoe page", func(t *testing.T) {
		h := newTestRouter(&fakeShoeUC{cards: testCards})

		rec := do(t, h, httptest.NewRequest(http.MethodGet, "/shoe/cosmic", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<title>Cosmic</title>")

		rec = do(t, h, httptest.NewRequest(http.MethodGet, "/shoe/missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty grid", func(t *testing.T) {
		rec := do(t, newTestRouter(&fakeShoeUC{}), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Nothing here yet.")
	})
}
