package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/muhammadheryan/promo-admin/constant"
	"github.com/muhammadheryan/promo-admin/model"
	utilsContext "github.com/muhammadheryan/promo-admin/utils/context"
	"github.com/muhammadheryan/promo-admin/utils/errors"
	"github.com/muhammadheryan/promo-admin/utils/logger"
	validatorx "github.com/muhammadheryan/promo-admin/utils/validator"
	"go.uber.org/zap"
)

const (
	maxImageBytes   = 5 << 20
	sniffLength     = 512
	multipartMemory = 1 << 20
)

// ListProducts handler
// @Summary List products
// @Description Filter the product feed by title and rule status and return one page
// @Tags Products
// @Produce json
// @Param search query string false "Case-insensitive title substring"
// @Param status query string false "Active or No rule"
// @Param page query int false "Page number, starting at 1"
// @Param per_page query int false "Items per page (5, 10, 20, 50)"
// @Success 200 {object} model.ListView
// @Failure 400 {object} Response
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	page, err := intQuery(q.Get("page"), 1)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	perPage, err := intQuery(q.Get("per_page"), 0)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	req := model.ListProductsRequest{
		Search:  q.Get("search"),
		Status:  constant.ProductStatus(q.Get("status")),
		Page:    page,
		PerPage: perPage,
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		logger.Debug("[ListProducts] invalid request", zap.String("fields", validatorx.Describe(err)))
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.ListProducts(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetListView handler
// @Summary Get session list view
// @Description Return the list view kept for the session. A new session is created when the header is absent
// @Tags Products
// @Produce json
// @Param X-Session-ID header string false "List view session id"
// @Success 200 {object} model.ListViewResponse
// @Failure 500 {object} Response
// @Router /products/view [get]
func (s *RestHandler) GetListView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, _ := utilsContext.GetSessionID(ctx)

	res, err := s.ProductApp.GetListView(ctx, sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set(constant.SessionIDHeader, res.SessionID)
	writeSuccess(w, res)
}

// UpdateListView handler
// @Summary Apply a list action
// @Description Apply search, status, next, previous, page, page_size or reset to the session list view
// @Tags Products
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "List view session id"
// @Param request body model.ListAction true "List action"
// @Success 200 {object} model.ListViewResponse
// @Failure 400 {object} Response
// @Router /products/view [post]
func (s *RestHandler) UpdateListView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, _ := utilsContext.GetSessionID(ctx)

	var req model.ListAction
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		logger.Debug("[UpdateListView] invalid request", zap.String("fields", validatorx.Describe(err)))
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.UpdateListView(ctx, sessionID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set(constant.SessionIDHeader, res.SessionID)
	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary Add new product
// @Description Store an admin product draft. The image must be gif, jpeg or png
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param price formData number true "Price"
// @Param description formData string true "Description"
// @Param image formData file true "Product image"
// @Success 200 {object} model.ProductDraft
// @Failure 400 {object} Response
// @Router /products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("price")), 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	req := model.CreateProductRequest{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Price:       price,
		Description: strings.TrimSpace(r.FormValue("description")),
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	defer file.Close()

	req.ImageName = header.Filename
	req.ImageSize = header.Size
	req.ImageType, err = sniffContentType(file)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		logger.Debug("[CreateProduct] invalid request", zap.String("fields", validatorx.Describe(err)))
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.CreateProduct(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListDrafts handler
// @Summary List admin products
// @Description List the products created through the add product form
// @Tags Products
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param per_page query int false "Items per page (5, 10, 20, 50)"
// @Success 200 {object} model.DraftListResponse
// @Failure 400 {object} Response
// @Router /products/drafts [get]
func (s *RestHandler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	page, err := intQuery(q.Get("page"), 1)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	perPage, err := intQuery(q.Get("per_page"), constant.DefaultPageSize)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.ListDrafts(ctx, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func intQuery(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

// sniffContentType detects the type from the leading bytes of the upload
// rather than trusting the client supplied header.
func sniffContentType(r io.Reader) (string, error) {
	buf := make([]byte, sniffLength)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
