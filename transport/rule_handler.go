package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/promo-admin/constant"
	"github.com/muhammadheryan/promo-admin/model"
	"github.com/muhammadheryan/promo-admin/utils/errors"
	"github.com/muhammadheryan/promo-admin/utils/logger"
	validatorx "github.com/muhammadheryan/promo-admin/utils/validator"
	"go.uber.org/zap"
)

// ListRules handler
// @Summary List product rules
// @Description List the promotional rules of a product, newest first
// @Tags Rules
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} model.RuleResponse
// @Failure 400 {object} Response
// @Router /products/{id}/rules [get]
func (s *RestHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.RuleApp.ListRules(ctx, productID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateRule handler
// @Summary Add rule
// @Description Create a tiered discount rule. Discounts are percentages and are stored as fractions
// @Tags Rules
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.CreateRuleRequest true "Create Rule Request"
// @Success 200 {object} model.RuleResponse
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /products/{id}/rules [post]
func (s *RestHandler) CreateRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.ProductID = productID

	if err := validatorx.ValidateStruct(&req); err != nil {
		logger.Debug("[CreateRule] invalid request", zap.String("fields", validatorx.Describe(err)))
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.RuleApp.CreateRule(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ExpireRule handler
// @Summary Expire rule
// @Description Internal callback used by the rule expiration consumer
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rule ID"
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /internal/v1/rules/{id}/expire [post]
func (s *RestHandler) ExpireRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ruleID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.RuleApp.ExpireRule(ctx, ruleID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
