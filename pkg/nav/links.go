package nav

// Business details shown in the footer.
const (
	BusinessName    = "Sylvan Lake AUTOPRO"
	BusinessAddress = "1A Industrial Dr, Sylvan Lake, AB T4S 1P4"
	BusinessPhone   = "(403) 887-0440"
)

// BookingURL is the external booking kiosk.
const BookingURL = "https://sylvanlakeautopro.autotext.me/Admin/kioskv2/index.php?id=WTNHaFJhb1g1dk9YV3g1YmpkUEx3QT09&kiosk=1"

// Header is the site header menu.
var Header = HeaderData{
	Links: []Group{
		{
			Title: "Services",
			Links: []Link{
				// Column 1
				{Text: "Oil Change", Href: Permalink("/services/oil-change")},
				{Text: "Brakes", Href: Permalink("/services/brake-repair")},
				{Text: "Tires & Alignment", Href: Permalink("/services/tires")},
				{Text: "Shop Tires", Href: Permalink("/services/tire-pricing")},
				{Text: "Alignment", Href: Permalink("/services/alignment")},
				{Text: "A/C Service", Href: Permalink("/services/ac-service-repair")},
				{Text: "Fluid Services", Href: Permalink("/services/fluid-maintenance")},
				{Text: "Check Engine Light", Href: Permalink("/services/diagnostics")},
				{Text: "Electrical", Href: Permalink("/services/electrical")},
				// Column 2
				{Text: "Steering & Suspension", Href: Permalink("/services/steering-suspension")},
				{Text: "Transmission", Href: Permalink("/services/transmission-repair")},
				{Text: "Engine", Href: Permalink("/services/engine-repair")},
				{Text: "Exhaust", Href: Permalink("/services/exhaust-system")},
				{Text: "Diesel", Href: Permalink("/services/diesel")},
				{Text: "Hybrid & EV", Href: Permalink("/services/hybrid-ev-service")},
				{Text: "Automotive Keys", Href: Permalink("/services/automotive-keys")},
			},
		},
		{
			Title: "Inspections",
			Links: []Link{
				{Text: "Complete Vehicle Inspection", Href: Permalink("/services/vehicle-inspection")},
				{Text: "Out of Province", Href: Permalink("/services/out-of-province-inspection")},
				{Text: "Commercial (CVIP)", Href: Permalink("/services/cvip-inspection")},
				{Text: "Insurance", Href: Permalink("/services/insurance-inspection")},
				{Text: "Pre-Purchase", Href: Permalink("/services/pre-purchase-inspection")},
				{Text: "Brake Inspection", Href: Permalink("/services/brake-inspection")},
			},
		},
		{
			Title: "About",
			Links: []Link{
				{Text: "About Us", Href: Permalink("/about")},
				{Text: "Team", Href: Permalink("/team")},
				{Text: "Making It Easy", Href: Permalink("/making-it-easy")},
				{Text: "Reviews", Href: Permalink("/reviews")},
				{Text: "Warranty", Href: Permalink("/warranty")},
				{Text: "Credentials & Licensing", Href: Permalink("/credentials-and-licensing")},
				{Text: "Areas We Serve", Href: Permalink("/locations")},
			},
		},
		{Title: "Shop Tires", Href: Permalink("/services/tire-pricing")},
		{Title: "Contact", Href: Permalink("/contact")},
	},
	MobileOnlyLinks: []Link{
		{Text: "I'm Broken Down", Href: Permalink("/breakdown"), Icon: "tabler:alert-triangle"},
	},
	Actions: []Link{
		{Text: "Book Now", Href: BookingURL, Target: "_blank"},
	},
}

// Footer is the site footer.
var Footer = FooterData{
	Links: []Group{
		{
			Title: "Services",
			Links: []Link{
				{Text: "Oil Change", Href: Permalink("/services/oil-change")},
				{Text: "Brakes", Href: Permalink("/services/brake-repair")},
				{Text: "Tires & Alignment", Href: Permalink("/services/tires")},
				{Text: "Shop Tires", Href: Permalink("/services/tire-pricing")},
				{Text: "A/C Service", Href: Permalink("/services/ac-service-repair")},
				{Text: "Steering & Suspension", Href: Permalink("/services/steering-suspension")},
				{Text: "Transmission", Href: Permalink("/services/transmission-repair")},
				{Text: "Engine Repair", Href: Permalink("/services/engine-repair")},
				{Text: "Diesel", Href: Permalink("/services/diesel")},
			},
		},
		{
			Title: "Inspections",
			Links: []Link{
				{Text: "Complete Vehicle Inspection", Href: Permalink("/services/vehicle-inspection")},
				{Text: "Out of Province", Href: Permalink("/services/out-of-province-inspection")},
				{Text: "Commercial (CVIP)", Href: Permalink("/services/cvip-inspection")},
				{Text: "Pre-Purchase", Href: Permalink("/services/pre-purchase-inspection")},
				{Text: "Insurance", Href: Permalink("/services/insurance-inspection")},
				{Text: "Brake Inspection", Href: Permalink("/services/brake-inspection")},
			},
		},
		{
			Title: "More Services",
			Links: []Link{
				{Text: "Fluid Services", Href: Permalink("/services/fluid-maintenance")},
				{Text: "Check Engine Light", Href: Permalink("/services/diagnostics")},
				{Text: "Electrical", Href: Permalink("/services/electrical")},
				{Text: "Hybrid & EV", Href: Permalink("/services/hybrid-ev-service")},
				{Text: "Driveline", Href: Permalink("/services/driveline")},
				{Text: "Heater Repair", Href: Permalink("/services/heater-repair")},
				{Text: "Exhaust System", Href: Permalink("/services/exhaust-system")},
				{Text: "Automotive Keys", Href: Permalink("/services/automotive-keys")},
				{Text: "Fleet Services", Href: Permalink("/services/fleet-services")},
			},
		},
		{
			Title: "Company",
			Links: []Link{
				{Text: "About Us", Href: Permalink("/about")},
				{Text: "Team", Href: Permalink("/team")},
				{Text: "Making It Easy", Href: Permalink("/making-it-easy")},
				{Text: "Reviews", Href: Permalink("/reviews")},
				{Text: "Warranty", Href: Permalink("/warranty")},
				{Text: "Credentials & Licensing", Href: Permalink("/credentials-and-licensing")},
				{Text: "Areas We Serve", Href: Permalink("/locations")},
				{Text: "Broken Down?", Href: Permalink("/breakdown")},
				{Text: "Contact", Href: Permalink("/contact")},
			},
		},
	},
	SecondaryLinks: []Link{
		{Text: "Terms", Href: Permalink("/terms")},
		{Text: "Privacy Policy", Href: Permalink("/privacy")},
	},
	SocialLinks: []Link{
		{AriaLabel: "Facebook", Icon: "tabler:brand-facebook", Href: "https://www.facebook.com/SylvanLakeAutopro/"},
		{AriaLabel: "Google", Icon: "tabler:brand-google", Href: "https://g.page/sylvan-lake-autopro"},
	},
}
