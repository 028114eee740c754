package content

// Brand colours.
const (
	ColorRedDark    = "#920000"
	ColorRedMedium  = "#c93834"
	ColorRedBright  = "#BF1B2C" // intro overlay background
	ColorYellow     = "#fdbd51"
	ColorBlueDark   = "#355e82"
	ColorBlueLight  = "#c4daf4"
	ColorOffWhite   = "#F7F6F2"
	ColorGreenDark  = "#6E903C"
	ColorGreenLight = "#A0BB3B"
)

// CompanyName is the full legal name.
const CompanyName = "California Berry Cultivars"

// PrimaryTagline is shown on the intro overlay.
const PrimaryTagline = "Built by People Who Love the Process."

// Taglines rotate through the home page.
var Taglines = []string{
	"Fruit That Works for the World.",
	PrimaryTagline,
	"Precision Matters. Purpose Helps.",
	"Working with Precision and Purpose.",
}

// Mission is the company mission statement.
const Mission = "California Berry Cultivars is dedicated to the continual development and improvement of strawberry cultivars, a vital part of supporting and advancing the global strawberry industry. Our team of experts leads collaborative research aimed at creating superior cultivars that meet the needs of growers worldwide, delivering fruit varieties that truly work for the world."
