package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"homeverse/server/config"
	"homeverse/server/internal/investment"
	"homeverse/server/internal/models"
)

const (
	defaultPropertyPrice = 5000000
	defaultHoldingPeriod = 5
	defaultHistoryYears  = 5
	defaultLoanRate      = 8.5
	defaultLoanTenure    = 20
)

func (h *Handler) MarketTrends(c *gin.Context) {
	zone := c.DefaultQuery("zone", config.DefaultZone)

	h.mu.Lock()
	trends := investment.MarketTrends(zone, h.now(), h.rng)
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"trends":  trends,
	})
}

func (h *Handler) HistoricalData(c *gin.Context) {
	zone := config.GetZoneOrDefault(c.DefaultQuery("zone", config.DefaultZone))

	years, err := strconv.Atoi(c.DefaultQuery("years", strconv.Itoa(defaultHistoryYears)))
	if err != nil {
		h.respondError(c, models.NewInvalidInput("years", "must be an integer"))
		return
	}

	h.mu.Lock()
	series, err := investment.HistoricalSeries(zone.ID, years, h.now(), h.rng)
	h.mu.Unlock()
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"zone":    zone.ID,
		"data":    series,
	})
}

type investmentRequest struct {
	Price *float64 `json:"price"`
	Zone  string   `json:"zone"`
}

func (h *Handler) InvestmentAnalysis(c *gin.Context) {
	var req investmentRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}

	price, err := currency("price", req.Price, defaultPropertyPrice)
	if err != nil {
		h.respondError(c, err)
		return
	}

	analysis, err := investment.Analyze(price, zoneOrDefault(req.Zone))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": analysis,
	})
}

type roiRequest struct {
	PurchasePrice *float64 `json:"purchasePrice"`
	HoldingPeriod *int     `json:"holdingPeriod"`
	Zone          string   `json:"zone"`
}

func (h *Handler) ROICalculator(c *gin.Context) {
	var req roiRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}

	price, err := currency("purchasePrice", req.PurchasePrice, defaultPropertyPrice)
	if err != nil {
		h.respondError(c, err)
		return
	}
	holding := defaultHoldingPeriod
	if req.HoldingPeriod != nil {
		holding = *req.HoldingPeriod
	}

	calculation, err := investment.ROI(price, holding, zoneOrDefault(req.Zone))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"calculation": calculation,
	})
}

type emiRequest struct {
	Principal   *float64 `json:"principal"`
	AnnualRate  *float64 `json:"annualRate"`
	TenureYears *int     `json:"tenureYears"`
}

func (h *Handler) EMICalculator(c *gin.Context) {
	var req emiRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}
	if req.Principal == nil {
		h.respondError(c, models.NewInvalidInput("principal", "is required"))
		return
	}

	rate := defaultLoanRate
	if req.AnnualRate != nil {
		rate = *req.AnnualRate
	}
	tenure := defaultLoanTenure
	if req.TenureYears != nil {
		tenure = *req.TenureYears
	}

	emi, err := investment.EMI(*req.Principal, rate, tenure)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"emi":     emi,
	})
}

func zoneOrDefault(zone string) string {
	if zone == "" {
		return config.DefaultZone
	}
	return zone
}

// currency truncates a monetary amount to whole units, applying def when absent
func currency(field string, v *float64, def int64) (int64, error) {
	if v == nil {
		return def, nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v > math.MaxInt64 {
		return 0, models.NewInvalidInput(field, "must be a finite amount")
	}
	return int64(*v), nil
}
