package content

// Nursery is a licensed plant supplier.
type Nursery struct {
	Name     string
	Location string
	Website  string
	Note     string
}

// USANurseries sell CBC plants to growers in the United States.
var USANurseries = []Nursery{
	{Name: "Lassen Canyon Nursery", Location: "Redding, CA", Website: "https://lassencanyonnursery.com"},
	{Name: "Crown Nursery LLC", Location: "Watsonville, CA", Website: "https://www.crownnurseryllc.com"},
	{Name: "Planasa", Location: "Salinas, CA", Website: "https://planasa.com"},
	{Name: "Cedar Point Nursery", Location: "Cottonwood, CA", Website: "https://cedarpointnursery.com"},
	{Name: "Bruce Walls Klamath Nursery", Location: "Klamath Falls, OR"},
}

// CanadaNurseries may propagate CBC plants but only sell into the USA.
var CanadaNurseries []Nursery

// Licensee is a regional master licensee for growers outside the USA.
type Licensee struct {
	Name        string
	Region      string
	Flag        string
	Description string
	Website     string
	Note        string
}

var InternationalLicensees = []Licensee{
	{
		Name:        "Eurosemillas",
		Region:      "Europe, Middle East, Africa, Asia, South America, Canada",
		Flag:        "🌍",
		Description: "Master licensee for most of the world",
		Website:     "https://eurosemillas.com",
	},
	{
		Name:        "Toolangi Certified Strawberry Runners",
		Region:      "Australia & New Zealand",
		Flag:        "🇦🇺",
		Description: "Exclusive licensee for the Australian market",
	},
	{
		Name:        "Flavor First",
		Region:      "Eastern United States",
		Flag:        "🍓",
		Description: "Sweet Carolina variety only",
		Website:     "https://www.flavorfirst.com",
		Note:        "Sweet Carolina variety only",
	},
}

// Partner is a founding stakeholder shown on the about page.
type Partner struct {
	Name    string
	Blurb   string
	Website string
}

var Partners = []Partner{
	{Name: "California Giant Berry Farms", Blurb: "Family-owned berry company with global operations.", Website: "https://www.calgiant.com"},
	{Name: "Eurosemillas", Blurb: "International marketing and cultivar licensing partner.", Website: "https://www.eurosemillas.com"},
	{Name: "Gem-Pack Berries", Blurb: "Premium produce company in Southern California.", Website: "https://www.gem-packberries.com"},
	{Name: "BWG Berries", Blurb: "Santa Maria grower and development partner.", Website: "https://bwgberries.com"},
	{Name: "SK Berries", Blurb: "Third-generation Watsonville family farm.", Website: "https://www.skberries.com"},
	{Name: "Grower Advocate", Blurb: "Longtime CBC cultivar tester and advocate."},
}
