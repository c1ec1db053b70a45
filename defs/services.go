package defs

// Offering is one entry of the services catalog, addressed as /services/{Slug}.
type Offering struct {
	Slug        string
	Title       string
	Description string
}

var Offerings = []Offering{
	{"web-development", "Web Development", "Custom web applications built with modern technologies. We focus on performance, scalability, and user experience."},
	{"it-support", "IT Support", "24/7 technical support, system maintenance, and troubleshooting. We ensure your business operations run smoothly without interruption."},
	{"it-consulting", "IT Consulting", "Strategic technology planning and digital transformation advice. We help you leverage technology to achieve your business goals."},
	{"artificial-intelligence", "Artificial Intelligence", "AI and Machine Learning integration services. Automate processes, gain insights from data, and implement intelligent solutions."},
	{"amc-services", "AMC Services", "Annual Maintenance Contracts for your hardware and software infrastructure. Regular checkups and priority support."},
	{"pc-building", "PC Building", "Custom PC assembly for gaming, workstations, and office use. High-quality components and professional cable management."},
	{"office-networking", "Office Networking", "Complete office network setup, structured cabling, Wi-Fi configuration, and security implementation."},
}

func OfferingBySlug(slug string) (Offering, bool) {
	for _, o := range Offerings {
		if o.Slug == slug {
			return o, true
		}
	}
	return Offering{}, false
}
