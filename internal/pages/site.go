package pages

import "github.com/cbcberry/berrysite/internal/content"

// NotFoundPath is the catalog path of the not-found page.
const NotFoundPath = "/404"

var explorer = Link{Label: "Explore Cultivars", Href: content.ExplorerURL, External: true}

// DefaultCatalog returns the site's pages.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		homePage(),
		aboutPage(),
		breedingPage(),
		contactPage(),
		whereToBuyPage(),
		careersPage(),
		simplePage("/cultivar-development", "Cultivar Development",
			"Premium berry varieties engineered for performance and profitability.",
			`California Berry Cultivars develops premium berry varieties for both short-day and day-neutral
production systems. Our breeding programs focus on superior fruit quality, disease resistance,
and characteristics that drive grower profitability.

Each cultivar undergoes rigorous multi-year, multi-location testing before commercial release.
We work directly with growers to ensure our varieties deliver real-world results under diverse
growing conditions.`,
			Link{Label: "View Cultivar Explorer", Href: content.ExplorerURL, External: true}),
		simplePage("/disease-testing", "Disease & Field Testing",
			"Rigorous screening to ensure cultivar resilience and performance.",
			`We conduct rigorous pathology screening for *Fusarium*, *Macrophomina*, and other critical
pathogens to ensure our cultivars perform reliably. Disease resistance testing is a core
component of our selection process.

Multi-site field trials across diverse growing conditions validate performance and ensure
cultivars meet real-world production needs. We work directly with commercial growers through
on-farm trials to gather comprehensive data.

Future cycles will bring in *Phytophthora* and *Verticillium* screening, building toward cultivars
with robust, multi-disease resistance validated across environments.`,
			Link{Label: "View Cultivar Explorer", Href: content.ExplorerURL, External: true}),
		simplePage("/grower-partnerships", "Grower Partnerships",
			"Direct collaboration with commercial growers worldwide.",
			`California Berry Cultivars partners directly with commercial growers through on-farm trials
and licensing programs. This collaborative approach ensures our cultivars deliver real-world
results under the conditions that matter most.

Our partnerships span California, Spain, Mexico, Chile, and other major strawberry-growing
regions. We gather data from diverse environments to validate performance and help growers
make informed variety selections.

Whether you're a large-scale commercial operation or exploring new varieties for your region,
we're committed to supporting your success.`,
			Link{Label: "Contact Us", Href: "/contact"}),
		sublicensePage(),
		privacyPage(),
		notFoundPage(),
	)
	if err != nil {
		panic(err)
	}
	return c
}

func homePage() *Page {
	return &Page{
		Path:        "/",
		Title:       "California Berry Cultivars | Independent Strawberry Breeding",
		Description: "Better berries for growers, worldwide. California Berry Cultivars is dedicated to developing high-yield, high-quality strawberry cultivars with superior disease resistance for commercial growers.",
		Snap:        true,
		Intro:       true,
		Sections: []Section{
			{
				Key:     "hero",
				Eyebrow: content.Taglines[2],
				Heading: "Better berries\nfor growers,\nworldwide.",
				Body:    content.Mission,
				Theme:   "red-dark",
				Links:   []Link{explorer},
			},
			{Key: "what-we-do", Theme: "yellow", Partial: "services"},
			{
				Key:     "cultivars",
				Heading: "Featured Cultivars",
				Body:    "Discover our premium varieties designed for superior performance and grower success.",
				Theme:   "red",
				Partial: "cultivars",
				Links:   []Link{{Label: "Explore All Cultivars", Href: content.ExplorerURL, External: true}},
			},
			{
				Key:   "philosophy",
				Theme: "blue",
				Body: `> "If you're not moving forward, you're falling behind."

Nothing could be more true in modern agriculture. At California Berry Cultivars, we are committed to
continuous improvement and innovation in strawberry breeding.`,
				Links: []Link{{Label: "Learn More About Our Approach →", Href: "/breeding"}},
			},
			{
				Key:     "about",
				Heading: "About CBC",
				Theme:   "white",
				Body: `Founded in 2014, California Berry Cultivars is an independent strawberry breeding program
built by growers and breeders who share a vision for better berries.`,
				Links: []Link{{Label: "Our Story", Href: "/about#story"}, {Label: "Meet the Team", Href: "/about#team"}},
			},
			{
				Key:     "contact",
				Heading: "Get in Touch",
				Theme:   "offwhite",
				Partial: "contact-form",
			},
		},
	}
}

func aboutPage() *Page {
	return &Page{
		Path:        "/about",
		Title:       "About | California Berry Cultivars",
		Description: "Independent strawberry breeding, driven by collaboration and innovation.",
		Snap:        true,
		Sections: []Section{
			{
				Key:     "hero",
				Eyebrow: "Who We Are",
				Heading: "About\nCBC",
				Body:    "Independent strawberry breeding, driven by collaboration and innovation. Building better berries for growers worldwide since 2014.",
				Theme:   "red-dark",
			},
			{
				Key:     "story",
				Eyebrow: "How It Started",
				Heading: "Our Story",
				Theme:   "red",
				Body: `California Berry Cultivars, LLC was founded in 2014 as a collaborative effort
between stakeholders in the strawberry industry who shared a vision: to develop
superior strawberry cultivars through independent, focused research.

What began as a partnership between experienced growers and breeders has grown
into a leading independent breeding program, delivering high-quality, high-yield
cultivars to commercial berry growers worldwide.`,
			},
			{
				Key:     "team",
				Eyebrow: "The People Behind CBC",
				Heading: "Our Team",
				Theme:   "green",
				Body: `The California Berry Cultivars team consists of a mix of veterans and the next
generation of strawberry cultivar developers and researchers. Together, they bring
over 100 years of collective experience in the strawberry industry.

Our team is committed to providing strawberry growers with the quality strawberries
they want and need, conducting research that protects and promotes high-yielding,
consumer-desirable products under the ever-changing conditions of the field and marketplace.`,
			},
			{
				Key:     "mission",
				Eyebrow: "What Drives Us",
				Heading: "Our Mission",
				Theme:   "blue",
				Body: `> "If you're not moving forward, you're falling behind."

` + content.Mission,
			},
			{
				Key:     "partners",
				Heading: "Our Partners",
				Body:    "Key stakeholders in the strawberry industry working together.",
				Theme:   "offwhite",
				Partial: "partners",
			},
			{
				Key:     "explore",
				Eyebrow: "See What We've Built",
				Heading: "Explore\nOur Work",
				Body:    "Discover the cultivars we've developed through our breeding programs.",
				Theme:   "yellow",
				Links: []Link{
					{Label: "View Cultivar Explorer", Href: content.ExplorerURL, External: true},
					{Label: "Our Breeding Program", Href: "/breeding"},
				},
			},
		},
	}
}

func breedingPage() *Page {
	return &Page{
		Path:        "/breeding",
		Title:       "Breeding Program | California Berry Cultivars",
		Description: "Cultivar development, field testing, pathology, cleanstock and grower partnerships.",
		Snap:        true,
		Sections: []Section{
			{
				Key:     "cultivar-development",
				Eyebrow: "Our Breeding Program",
				Heading: "Cultivar\nDevelopment",
				Theme:   "red-dark",
				Body: `Premium berry varieties engineered for short-day and day-neutral production systems.
Our cultivar development program focuses on creating superior fruit quality that
drives grower profitability while meeting market demands.`,
				Links: []Link{{Label: "View Our Cultivars", Href: content.ExplorerURL, External: true}},
			},
			{
				Key:     "field-testing",
				Eyebrow: "Multi-Site Validation",
				Heading: "Field\nTesting",
				Theme:   "green",
				Body: `Rigorous multi-site field trials validate performance across diverse growing conditions.
Our testing program spans multiple locations and environments to ensure cultivars
deliver consistent, real-world results for commercial growers.`,
			},
			{
				Key:     "pathology",
				Eyebrow: "Disease Resistance",
				Heading: "Pathology &\nScreening",
				Theme:   "blue",
				Body: `Comprehensive screening for *Fusarium*, *Macrophomina*, and other critical pathogens.
Our pathology program identifies and develops resistance traits that protect grower
investments and ensure sustainable production.`,
			},
			{
				Key:     "cleanstock",
				Eyebrow: "Foundation Stock",
				Heading: "Cleanstock\nProgram",
				Theme:   "red",
				Body: `Our cleanstock program participates in the CDFA Strawberry Registration & Certification
Program, established in 1949 to ensure the health and quality of strawberry planting stock.
Foundation plants are produced through meristem tissue culture, a process that eliminates
pathogens through heat treatment and sterile cultivation of meristem tips, ensuring
disease-free, vigorous planting material for nurseries and commercial growers.`,
			},
			{
				Key:     "grower-partnerships",
				Eyebrow: "Collaborative Success",
				Heading: "Grower\nPartnerships",
				Theme:   "yellow",
				Body: `Direct collaboration with commercial growers drives our innovation. On-farm trials
and licensing programs ensure our cultivars deliver real-world results. We work
alongside growers to optimize production and maximize profitability.`,
				Links: []Link{{Label: "Partner With Us", Href: "/contact"}, {Label: "Cultivar Sublicense", Href: "/cultivar-sublicense"}},
			},
		},
	}
}

func contactPage() *Page {
	return &Page{
		Path:        "/contact",
		Title:       "Contact | California Berry Cultivars",
		Description: "Get in touch with California Berry Cultivars or apply to join the team.",
		Snap:        true,
		Sections: []Section{
			{
				Key:     "contact",
				Eyebrow: "Get In Touch",
				Heading: "Contact Us",
				Body:    "Questions about our cultivars, licensing or partnerships? Send us a message.",
				Theme:   "blue",
				Partial: "contact-form",
			},
			{
				Key:     "careers",
				Eyebrow: "Working at CBC",
				Heading: "Join Our Team",
				Body:    "See current openings on our [careers page](/careers) or send a general application below.",
				Theme:   "green",
				Partial: "apply-form",
			},
		},
	}
}

func whereToBuyPage() *Page {
	return &Page{
		Path:        "/where-to-buy",
		Title:       "Where to Buy Plants | California Berry Cultivars",
		Description: "Find a licensed nursery or regional master licensee for CBC strawberry cultivars.",
		Snap:        true,
		Sections: []Section{
			{
				Key:     "hero",
				Eyebrow: "Find a Supplier",
				Heading: "Where to Buy\nPlants",
				Body:    "We develop the varieties. Our licensed partners grow and sell the plants. Find the right supplier for your region.",
				Theme:   "red-dark",
				Links:   []Link{{Label: "🇺🇸 USA Nurseries", Href: "#usa"}, {Label: "🌍 International", Href: "#international"}},
			},
			{Key: "usa", Heading: "United States", Theme: "blue", Partial: "nurseries"},
			{
				Key:     "international",
				Heading: "International",
				Body:    "Outside the USA? Contact our regional master licensees.",
				Theme:   "green",
				Partial: "licensees",
			},
			{
				Key:     "contact",
				Heading: "Not Sure\nWho to Contact?",
				Body:    "Questions about licensing and availability? Reach out to us directly.",
				Theme:   "red",
				Links:   []Link{{Label: "Contact CBC", Href: "/contact"}, explorer},
			},
		},
	}
}

func careersPage() *Page {
	return &Page{
		Path:        "/careers",
		Title:       "Careers | California Berry Cultivars",
		Description: "Current openings at California Berry Cultivars.",
		Sections: []Section{
			{
				Key:     "careers",
				Eyebrow: "Join Our Team",
				Heading: "Careers at CBC",
				Body:    "Help us build better berries for growers worldwide.",
				Theme:   "green",
			},
			{Key: "locations", Heading: "Our Locations", Theme: "offwhite", Partial: "locations"},
			{Key: "openings", Heading: "Current Openings", Theme: "white", Partial: "jobs"},
			{Key: "apply", Heading: "Apply Now", Theme: "blue", Partial: "apply-form"},
		},
	}
}

func simplePage(path, title, lead, body string, cta Link) *Page {
	return &Page{
		Path:        path,
		Title:       title + " | California Berry Cultivars",
		Description: lead,
		Sections: []Section{{
			Key:     "main",
			Heading: title,
			Eyebrow: lead,
			Body:    body,
			Theme:   "offwhite",
			Links:   []Link{cta, {Label: "← Back to Home", Href: "/"}},
		}},
	}
}

func sublicensePage() *Page {
	return &Page{
		Path:        "/cultivar-sublicense",
		Title:       "Cultivar Sublicense | California Berry Cultivars",
		Description: "Terms and conditions for commercial growers purchasing CBC strawberry cultivars.",
		Sections: []Section{
			{
				Key:     "main",
				Eyebrow: "Grower Licensing",
				Heading: "Cultivar\nSublicense",
				Theme:   "offwhite",
				Body: `California commercial nurseries ("Nursery") are licensed by California Berry Cultivars, LLC ("CBC")
to propagate, sell, and distribute Clones of Cultivars and related Intellectual Property ("IP") to
commercial strawberry growers, only for commercial fruit production. Sales by the Nursery are subject
to that License, which includes the right to sublicense commercial growers to use the IP for commercial
fruit production only.

Nursery may grant nonexclusive sublicenses in the Licensed Field in the Licensed Territory,
without the right to further sublicense, solely to Commercial Growers for a single season
of Production pursuant to the License.

Grower is aware that the Cultivars are subject to Patent and that said Patent reserves to the
patent holder, CBC, a broad range of activities that CBC may restrict others from carrying out.

No rights, licenses, or sublicenses are granted by CBC to Grower under any tangible or intellectual
property, materials, patents, patent applications, plant variety protection certificates, trademarks,
copyrights, trade secrets, know-how, technical information, or other proprietary right owned or
controlled by CBC.

### Full Agreement

Download the complete Cultivar Sublicense Agreement for all terms and conditions.`,
				Links: []Link{
					{Label: "Download PDF", Href: "/docs/CultivarSublicense.pdf", External: true},
					{Label: "Contact Us", Href: "/contact"},
					{Label: "← Back to Grower Partnerships", Href: "/breeding#grower-partnerships"},
				},
			},
		},
	}
}

func privacyPage() *Page {
	return &Page{
		Path:        "/privacy",
		Title:       "Privacy Policy | California Berry Cultivars",
		Description: "How California Berry Cultivars collects and uses information.",
		Sections: []Section{{
			Key:     "main",
			Heading: "Privacy Policy",
			Eyebrow: "Last updated: December 2024",
			Theme:   "offwhite",
			Body: `California Berry Cultivars, LLC ("CBC," "we," "us," or "our") respects your privacy.
This policy explains what information we collect, how we use it, and your rights
regarding that information.

### Information We Collect

- **Contact form:** name, email, company, phone number, growing region, and message content when you reach out to us.
- **Job applications:** name, email, phone number, position, cover letter/message, and resume (PDF) when you apply for a position.

When you submit a contact form, we automatically collect certain technical information
to help us understand our visitors and prevent spam: IP address, approximate location,
browser, operating system, device type and referring page.

This information is collected only when you submit a form and is used solely to provide
context for your inquiry. We do not use this information to track you across other websites.

### How We Use Your Information

We do **not** sell, rent, or share your personal information with
third parties for marketing purposes.

### Third-Party Services

- **Email delivery:** form submissions are delivered to our team by an email provider. Your submitted information is transmitted securely.

### Cookies & Tracking

Our website does **not** use tracking cookies or third-party advertising
trackers. We do not build user profiles or track you across other websites.

### External Links

Our website may contain links to external websites, including our partners and
industry resources. We are not responsible for the privacy practices or content
of these external sites.

### Cultivar Information Disclaimer

Information about our strawberry cultivars, including characteristics, performance
data, and growing recommendations, is provided for general informational purposes
only. Actual plant performance may vary based on growing conditions, climate, soil,
and agricultural practices.

### Your California Privacy Rights

Under the California Consumer Privacy Act (CCPA), California residents have the right to
know what personal information we collect and to request its deletion. [Contact us](/contact) to make a request.`,
		}},
	}
}

func notFoundPage() *Page {
	return &Page{
		Path:        NotFoundPath,
		Title:       "Page Not Found | California Berry Cultivars",
		Description: "The page you are looking for does not exist.",
		Sections: []Section{{
			Key:     "main",
			Eyebrow: "404",
			Heading: "Page Not Found",
			Body:    "The page you're looking for has moved or no longer exists.",
			Theme:   "red-dark",
			Links:   []Link{{Label: "Back to Home", Href: "/"}, explorer},
		}},
	}
}
