// Package content holds the static data shown on the site: job openings,
// cultivars and brand copy.
package content

// JobCategory groups openings on the careers page.
type JobCategory string

const (
	CategoryResearch      JobCategory = "research"
	CategoryOperations    JobCategory = "operations"
	CategoryBusiness      JobCategory = "business"
	CategoryInternational JobCategory = "international"
)

// CategoryOrder is the display order of categories.
var CategoryOrder = []JobCategory{
	CategoryResearch,
	CategoryOperations,
	CategoryBusiness,
	CategoryInternational,
}

// CategoryInfo is the display title and accent colour of a category.
type CategoryInfo struct {
	Title string
	Color string
}

// Categories maps each category to its display info.
var Categories = map[JobCategory]CategoryInfo{
	CategoryResearch:      {Title: "Research & Development", Color: "#6E903C"},
	CategoryOperations:    {Title: "Farm & Field Operations", Color: "#355e82"},
	CategoryBusiness:      {Title: "Business & Administration", Color: "#c93834"},
	CategoryInternational: {Title: "CBC International", Color: "#fdbd51"},
}

// JobOpening is one listed position. PDF is the job description path.
type JobOpening struct {
	Title    string      `json:"title"`
	Location string      `json:"location"`
	Category JobCategory `json:"category"`
	PDF      string      `json:"pdf"`
}

// Openings is the current list of positions. It also feeds the position
// choices on the application form.
var Openings = []JobOpening{
	{Title: "Farm Manager", Location: "French Camp, CA", Category: CategoryOperations, PDF: "/docs/jobs/FarmManager.pdf"},
	{Title: "Field Technician", Location: "Oxnard, CA", Category: CategoryOperations, PDF: "/docs/jobs/FieldTech.pdf"},
	{Title: "Meristem Lab Technician", Location: "French Camp, CA", Category: CategoryResearch, PDF: "/docs/jobs/MeristemTech.pdf"},
	{Title: "Pathology Lab Assistant", Location: "French Camp, CA", Category: CategoryResearch, PDF: "/docs/jobs/PathTech.pdf"},
	{Title: "Trial Specialist", Location: "Multiple Locations", Category: CategoryResearch, PDF: "/docs/jobs/TrialSpecialist.pdf"},
}

// Location is a company site.
type Location struct {
	Name        string
	Description string
	Type        string
}

// Locations lists the company's sites.
var Locations = []Location{
	{Name: "French Camp, CA", Description: "Headquarters, Cleanstock, Breeding Nursery, Pathology", Type: "Headquarters"},
	{Name: "Oxnard, CA", Description: "Short-Day Test Plots", Type: "Field Trials"},
	{Name: "Watsonville, CA", Description: "Day-Neutral & Field Pathology Testing", Type: "Field Trials"},
	{Name: "Huelva, Spain", Description: "CBC International", Type: "International"},
}

// JobGroup is the openings of one category.
type JobGroup struct {
	Category JobCategory
	Info     CategoryInfo
	Jobs     []JobOpening
}

// GroupByCategory groups openings in CategoryOrder, skipping empty categories.
func GroupByCategory(jobs []JobOpening) []JobGroup {
	byCat := make(map[JobCategory][]JobOpening)
	for _, j := range jobs {
		byCat[j.Category] = append(byCat[j.Category], j)
	}

	var groups []JobGroup
	for _, c := range CategoryOrder {
		if len(byCat[c]) == 0 {
			continue
		}
		groups = append(groups, JobGroup{Category: c, Info: Categories[c], Jobs: byCat[c]})
	}
	return groups
}

// PositionChoices lists the options of the application form's position
// field: every opening followed by the catch-all choices.
func PositionChoices() []string {
	out := make([]string, 0, len(Openings)+2)
	for _, j := range Openings {
		out = append(out, j.Title)
	}
	return append(out, "General Interest", "Other")
}
