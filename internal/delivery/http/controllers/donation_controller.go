package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"donationrecords/internal/delivery/http/helpers"
	"donationrecords/internal/delivery/http/middleware"
	"donationrecords/internal/domain"

	"github.com/shopspring/decimal"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// localTimestampLayout is accepted for donated_at without an offset; it is read in the server's zone.
const localTimestampLayout = "2006-01-02T15:04:05"

const (
	minNameLength  = 2
	maxNameLength  = 100
	maxEmailLength = 100
	maxIntDigits   = 8
	maxFracDigits  = 2
)

var (
	minAmount      = decimal.New(1, -maxFracDigits)
	amountIntLimit = decimal.New(1, maxIntDigits)
)

// CreateDonationRequest is the request body for POST /api/donations.
type CreateDonationRequest struct {
	DonorName  string           `json:"donor_name" example:"Maria Silva"`
	DonorCPF   string           `json:"donor_cpf" example:"12345678901"`
	Amount     *decimal.Decimal `json:"amount" swaggertype:"number" example:"150.00"`
	DonatedAt  string           `json:"donated_at,omitempty" example:"2025-03-10T14:30:00"`
	DonorEmail *string          `json:"donor_email,omitempty" example:"maria@example.com"`
}

// Validate implements helpers.Validator. Returns one message per failing field.
func (c CreateDonationRequest) Validate() map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(c.DonorName)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		errs["donor_name"] = "donor name is required"
	case n < minNameLength || n > maxNameLength:
		errs["donor_name"] = fmt.Sprintf("donor name must be between %d and %d characters", minNameLength, maxNameLength)
	}

	switch {
	case c.DonorCPF == "":
		errs["donor_cpf"] = "donor CPF is required"
	case !domain.IsValidCPF(c.DonorCPF):
		errs["donor_cpf"] = "donor CPF must have exactly 11 digits"
	}

	switch {
	case c.Amount == nil:
		errs["amount"] = "amount is required"
	case c.Amount.LessThan(minAmount):
		errs["amount"] = "amount must be at least 0.01"
	case !c.Amount.Equal(c.Amount.Round(maxFracDigits)) || c.Amount.GreaterThanOrEqual(amountIntLimit):
		errs["amount"] = fmt.Sprintf("amount must have at most %d integer digits and %d decimal places", maxIntDigits, maxFracDigits)
	}

	if c.DonatedAt != "" {
		if _, err := parseTimestamp(c.DonatedAt, time.UTC); err != nil {
			errs["donated_at"] = "donated_at must be RFC 3339 or YYYY-MM-DDTHH:MM:SS"
		}
	}

	if c.DonorEmail != nil && *c.DonorEmail != "" {
		switch {
		case utf8.RuneCountInString(*c.DonorEmail) > maxEmailLength:
			errs["donor_email"] = fmt.Sprintf("donor email must be at most %d characters", maxEmailLength)
		case !emailRegex.MatchString(*c.DonorEmail):
			errs["donor_email"] = "donor email must be a valid email address"
		}
	}
	return errs
}

// parseTimestamp accepts RFC 3339 or a zone-less local timestamp read in loc.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localTimestampLayout, s, loc)
}

// parsePeriodBound additionally accepts a bare date. As an upper bound a date covers the whole day.
func parsePeriodBound(s string, loc *time.Location, upper bool) (time.Time, error) {
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		if upper {
			return t.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
		}
		return t, nil
	}
	return parseTimestamp(s, loc)
}

type DonationController struct {
	Logger   *slog.Logger
	Service  domain.DonationService
	Location *time.Location
}

func NewDonationController(logger *slog.Logger, svc domain.DonationService, loc *time.Location) *DonationController {
	if loc == nil {
		loc = time.UTC
	}
	return &DonationController{
		Logger:   logger,
		Service:  svc,
		Location: loc,
	}
}

// writeServiceError maps service errors to HTTP responses. Unclassified errors are
// logged and answered with a generic 500.
func (c *DonationController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeInvalidArgument, verr.Message)
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "donation not found")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "an unexpected error occurred")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}

// CreateDonation godoc
// @Summary Record a donation
// @Description Validates and stores a donation. donated_at defaults to the creation time. A receipt is e-mailed when donor_email is given.
// @Tags donations
// @Accept json
// @Produce json
// @Param donation body CreateDonationRequest true "Donation data"
// @Success 201 {object} domain.DonationView
// @Failure 400 {object} helpers.ErrorResponse "error: validation_error, invalid_argument or bad_request"
// @Failure 500 {object} helpers.ErrorResponse "error: internal_error"
// @Router /api/donations [post]
func (c *DonationController) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req CreateDonationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	in := domain.DonationInput{
		DonorName: strings.TrimSpace(req.DonorName),
		DonorCPF:  req.DonorCPF,
		Amount:    *req.Amount,
	}
	if req.DonatedAt != "" {
		t, err := parseTimestamp(req.DonatedAt, c.Location)
		if err != nil {
			helpers.WriteValidationErrors(w, map[string]string{"donated_at": err.Error()})
			return
		}
		in.DonatedAt = &t
	}
	if req.DonorEmail != nil && *req.DonorEmail != "" {
		in.DonorEmail = req.DonorEmail
	}
	view, err := c.Service.Create(r.Context(), in)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, view)
}

// ListDonations godoc
// @Summary List donations
// @Description Most recent donated_at first. Without page and page_size every donation is returned.
// @Tags donations
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {array} domain.DonationView
// @Failure 400 {object} helpers.ErrorResponse "error: bad_request"
// @Failure 500 {object} helpers.ErrorResponse "error: internal_error"
// @Router /api/donations [get]
func (c *DonationController) ListDonations(w http.ResponseWriter, r *http.Request) {
	params, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	views, err := c.Service.ListAll(r.Context(), params)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, views)
}

// GetDonation godoc
// @Summary Get a donation by ID
// @Tags donations
// @Produce json
// @Param id path int true "Donation ID"
// @Success 200 {object} domain.DonationView
// @Failure 400 {object} helpers.ErrorResponse "error: bad_request"
// @Failure 404 {object} helpers.ErrorResponse "error: not_found"
// @Failure 500 {object} helpers.ErrorResponse "error: internal_error"
// @Router /api/donations/{id} [get]
func (c *DonationController) GetDonation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	view, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, view)
}

// ListByCPF godoc
// @Summary List donations by donor CPF
// @Tags donations
// @Produce json
// @Param cpf path string true "Donor CPF (11 digits)"
// @Success 200 {array} domain.DonationView
// @Failure 500 {object} helpers.ErrorResponse "error: internal_error"
// @Router /api/donations/cpf/{cpf} [get]
func (c *DonationController) ListByCPF(w http.ResponseWriter, r *http.Request) {
	views, err := c.Service.ListByCPF(r.Context(), r.PathValue("cpf"))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, views)
}

// ListByName godoc
// @Summary Search donations by donor name
// @Description Case-insensitive substring match on donor_name.
// @Tags donations
// @Produce json
// @Param name path string true "Name fragment"
// @Success 200 {array} domain.DonationView
// @Failure 500 {object} helpers.ErrorResponse "error: internal_error"
// @Router /api/donations/name/{name} [get]
func (c *DonationController) ListByName(w http.ResponseWriter, r *http.Request) {
	views, err := c.Service.ListByName(r.Context(), r.PathValue("name"))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, views)
}

// SumByCPF godoc
// @Summary Total donated by a CPF
// @Description Returns a bare number with two decimals, 0.00 when the CPF has no donations.
// @Tags donations
// @Produce json
// @Param cpf path string true "Donor CPF (11 digits)"
// @Success 200 {number} number "total amount"
// @Failure 500 {object} helpers.ErrorResponse "error: internal_error"
// @Router /api/donations/total/cpf/{cpf} [get]
func (c *DonationController) SumByCPF(w http.ResponseWriter, r *http.Request) {
	total, err := c.Service.SumByCPF(r.Context(), r.PathValue("cpf"))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, domain.FormatAmount(total))
}

// ListByMinAmount godoc
// @Summary List donations at or above an amount
// @Tags donations
// @Produce json
// @Param amount path number true "Minimum amount"
// @Success 200 {array} domain.DonationView
// @Failure 400 {object} helpers.ErrorResponse "error: bad_request"
// @Failure 500 {object} helpers.ErrorResponse "error: internal_error"
// @Router /api/donations/min-amount/{amount} [get]
func (c *DonationController) ListByMinAmount(w http.ResponseWriter, r *http.Request) {
	threshold, err := decimal.NewFromString(r.PathValue("amount"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "amount must be a decimal number")
		return
	}
	views, err := c.Service.ListByMinAmount(r.Context(), threshold)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, views)
}

// ListByPeriod godoc
// @Summary List donations in a period
// @Description Both bounds are inclusive. Accepts RFC 3339, YYYY-MM-DDTHH:MM:SS or YYYY-MM-DD (a date as upper bound covers the whole day).
// @Tags donations
// @Produce json
// @Param from query string true "Start of period"
// @Param to query string true "End of period"
// @Success 200 {array} domain.DonationView
// @Failure 400 {object} helpers.ErrorResponse "error: bad_request or invalid_argument"
// @Failure 500 {object} helpers.ErrorResponse "error: internal_error"
// @Router /api/donations/period [get]
func (c *DonationController) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := parsePeriodBound(q.Get("from"), c.Location, false)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "from is missing or not a valid timestamp")
		return
	}
	to, err := parsePeriodBound(q.Get("to"), c.Location, true)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "to is missing or not a valid timestamp")
		return
	}
	views, err := c.Service.ListByPeriod(r.Context(), from, to)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, views)
}

// DeleteDonation godoc
// @Summary Delete a donation
// @Description Requires an admin token when the server has ADMIN_JWT_SECRET configured.
// @Tags donations
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.ErrorResponse "error: bad_request"
// @Failure 401 {object} helpers.ErrorResponse "error: unauthorized"
// @Failure 404 {object} helpers.ErrorResponse "error: not_found"
// @Failure 500 {object} helpers.ErrorResponse "error: internal_error"
// @Router /api/donations/{id} [delete]
func (c *DonationController) DeleteDonation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		subject = "unknown"
	}
	c.Logger.InfoContext(r.Context(), "donation deleted", "id", id, "by", subject)
	w.WriteHeader(http.StatusNoContent)
}
