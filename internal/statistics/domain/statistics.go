package domain

const (
	ChartBar = "bar"
	ChartPie = "pie"

	TotalSpendingLabel     = "Total Spending"
	TotalSpendingColor     = "#3498db"
	PurchaseFrequencyLabel = "Purchase Frequency"

	CustomerIDPrefix = "cust_"
	ProductIDPrefix  = "prod_"
)

type Checkbox struct {
	ID    string
	Value string
}

type ProductGroup struct {
	Category string
	Products []Checkbox
}

// Options are the customer and product checkboxes of the statistics page.
type Options struct {
	Customers []Checkbox
	Products  []ProductGroup
}

// ChartQuery is the chart type plus the checked values.
type ChartQuery struct {
	Type      string   `form:"type"`
	Customers []string `form:"customers"`
	Products  []string `form:"products"`
}

// Dataset mirrors a Chart.js dataset. BackgroundColor is one color for a
// bar series and one per slice for a pie.
type Dataset struct {
	Label           string      `json:"label"`
	Data            []float64   `json:"data"`
	BackgroundColor interface{} `json:"backgroundColor"`
}

type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}
