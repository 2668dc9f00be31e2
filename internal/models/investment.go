package models

type InvestmentAnalysis struct {
	PropertyPrice   int64            `json:"propertyPrice"`
	Zone            string           `json:"zone"`
	GrowthRate      float64          `json:"growthRate"`
	DemandIndex     int              `json:"demandIndex"`
	SupplyIndex     int              `json:"supplyIndex"`
	Projections     []YearProjection `json:"projections"`
	RentalAnalysis  RentalAnalysis   `json:"rentalAnalysis"`
	InvestmentScore float64          `json:"investmentScore"`
	Recommendation  Recommendation   `json:"recommendation"`
}

type YearProjection struct {
	Year         int     `json:"year"`
	Value        int64   `json:"value"`
	Appreciation int64   `json:"appreciation"`
	ROI          float64 `json:"roi"`
}

type RentalAnalysis struct {
	ExpectedAnnualRent  int64   `json:"expectedAnnualRent"`
	ExpectedMonthlyRent int64   `json:"expectedMonthlyRent"`
	RentalYield         float64 `json:"rentalYield"`
	PaybackPeriod       float64 `json:"paybackPeriod"`
}

type Recommendation struct {
	Rating  string `json:"rating"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

type ROIBreakdown struct {
	PurchasePrice     int64           `json:"purchasePrice"`
	HoldingPeriod     int             `json:"holdingPeriod"`
	FutureValue       int64           `json:"futureValue"`
	TotalAppreciation int64           `json:"totalAppreciation"`
	TotalROI          float64         `json:"totalROI"`
	AnnualROI         float64         `json:"annualROI"`
	RentalIncome      RentalIncome    `json:"rentalIncome"`
	BreakdownByYear   []YearBreakdown `json:"breakdownByYear"`
}

type RentalIncome struct {
	AnnualRent  int64   `json:"annualRent"`
	TotalRent   int64   `json:"totalRent"`
	ROIWithRent float64 `json:"roiWithRent"`
}

type YearBreakdown struct {
	Year        int   `json:"year"`
	Value       int64 `json:"value"`
	Rent        int64 `json:"rent"`
	TotalReturn int64 `json:"totalReturn"`
}

// ComparedProperty pairs a description with its valuation
type ComparedProperty struct {
	Property   PropertyDescription `json:"property"`
	Prediction *ValuationResult    `json:"prediction"`
}

type ComparisonInsight struct {
	AvgPrice       int64   `json:"avgPrice"`
	MinPrice       int64   `json:"minPrice"`
	MaxPrice       int64   `json:"maxPrice"`
	PriceVariation float64 `json:"priceVariation"`
	BestValue      string  `json:"bestValue"`
	Premium        string  `json:"premium"`
}

type Comparison struct {
	Comparisons []ComparedProperty `json:"comparisons"`
	Insights    ComparisonInsight  `json:"insights"`
}

type MarketTrends struct {
	Zone            string         `json:"zone"`
	ZoneName        string         `json:"zoneName"`
	CurrentAvgPrice int            `json:"currentAvgPrice"`
	YearlyGrowth    float64        `json:"yearlyGrowth"`
	QuarterlyGrowth float64        `json:"quarterlyGrowth"`
	DemandIndex     int            `json:"demandIndex"`
	SupplyIndex     int            `json:"supplyIndex"`
	PriceRange      PriceRange     `json:"priceRange"`
	TopLocalities   []string       `json:"topLocalities"`
	Historical      []MonthlyPrice `json:"historical"`
	Forecast        Forecast       `json:"forecast"`
}

type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type MonthlyPrice struct {
	Month        string `json:"month"`
	AvgPrice     int64  `json:"avgPrice"`
	Transactions int    `json:"transactions"`
}

type Forecast struct {
	Next6Months  int64   `json:"next6Months"`
	Next12Months int64   `json:"next12Months"`
	Confidence   float64 `json:"confidence"`
}

type YearlyPrice struct {
	Year         int   `json:"year"`
	AvgPrice     int64 `json:"avgPrice"`
	MinPrice     int64 `json:"minPrice"`
	MaxPrice     int64 `json:"maxPrice"`
	Transactions int   `json:"transactions"`
}

type EMIResult struct {
	MonthlyEMI    int64   `json:"monthlyEMI"`
	TotalAmount   int64   `json:"totalAmount"`
	TotalInterest int64   `json:"totalInterest"`
	Principal     float64 `json:"principal"`
}
