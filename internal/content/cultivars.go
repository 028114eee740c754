package content

import "math/rand/v2"

// ExplorerURL is the cultivar explorer site.
const ExplorerURL = "https://cultivars.cbcberry.com"

// Cultivar is a released variety with its banner image.
type Cultivar struct {
	ID     string
	Name   string
	Banner string
}

// ExplorerLink deep links to the cultivar in the explorer.
func (c Cultivar) ExplorerLink() string {
	return ExplorerURL + "#" + c.ID
}

// Cultivars is every released cultivar.
var Cultivars = []Cultivar{
	{ID: "adelanto", Name: "Adelanto", Banner: "/images/cultivars/adelanto_banner.jpg"},
	{ID: "alhambra", Name: "Alhambra", Banner: "/images/cultivars/alhambra_banner.jpg"},
	{ID: "alturas", Name: "Alturas", Banner: "/images/cultivars/alturas_banner.jpg"},
	{ID: "artesia", Name: "Artesia", Banner: "/images/cultivars/artesia_banner.jpg"},
	{ID: "belvedere", Name: "Belvedere", Banner: "/images/cultivars/belvedere_banner.jpg"},
	{ID: "brisbane", Name: "Brisbane", Banner: "/images/cultivars/brisbane_banner.jpg"},
	{ID: "carpinteria", Name: "Carpinteria", Banner: "/images/cultivars/carpinteria_banner.jpg"},
	{ID: "castaic", Name: "Castaic", Banner: "/images/cultivars/castaic_banner.jpg"},
	{ID: "sweetcarolina", Name: "Sweet Carolina", Banner: "/images/cultivars/sweetcarolina_banner.jpg"},
}

// RandomCultivars returns up to n distinct cultivars in random order.
func RandomCultivars(n int) []Cultivar {
	if n > len(Cultivars) {
		n = len(Cultivars)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Cultivar, 0, n)
	for _, i := range rand.Perm(len(Cultivars))[:n] {
		out = append(out, Cultivars[i])
	}
	return out
}
