package scheduling

import "atelier/models"

// serviceCatalogue describes every bookable service for the public
// services endpoint.
var serviceCatalogue = []models.ServiceInfo{
	{
		ID:          models.ServicePortrait,
		Name:        "Portrait Photography",
		Description: "Professional portrait sessions capturing your unique personality",
		Duration:    60,
		Highlights:  []string{"Professional lighting", "Multiple outfit changes", "Digital retouching"},
	},
	{
		ID:          models.ServiceEvent,
		Name:        "Event Photography",
		Description: "Comprehensive coverage of your special events",
		Duration:    240,
		Highlights:  []string{"Full event coverage", "Candid moments", "Edited gallery"},
	},
	{
		ID:          models.ServiceWedding,
		Name:        "Wedding Photography",
		Description: "Beautiful memories of your wedding day",
		Duration:    480,
		Highlights:  []string{"Full day coverage", "Engagement session", "Premium album"},
	},
	{
		ID:          models.ServiceCommercial,
		Name:        "Commercial Photography",
		Description: "Professional imagery for your business needs",
		Duration:    120,
		Highlights:  []string{"Product shots", "Brand photography", "Commercial rights"},
	},
	{
		ID:          models.ServicePhotojournal,
		Name:        "Photojournalism",
		Description: "Documentary-style coverage that tells the real story",
		Duration:    180,
		Highlights:  []string{"Unposed storytelling", "Editorial editing", "Print-ready delivery"},
	},
	{
		ID:          models.ServiceLandscape,
		Name:        "Landscape Photography",
		Description: "Fine-art landscapes on location",
		Duration:    120,
		Highlights:  []string{"Golden hour scheduling", "Large-format prints", "Location scouting"},
	},
	{
		ID:          models.ServiceTheatre,
		Name:        "Theatre Photography",
		Description: "Stage and performance photography under live lighting",
		Duration:    180,
		Highlights:  []string{"Dress rehearsal coverage", "Low-light expertise", "Cast galleries"},
	},
	{
		ID:          models.ServiceStorytelling,
		Name:        "Storytelling Photography",
		Description: "A narrative photo series built around your story",
		Duration:    90,
		Highlights:  []string{"Concept development", "Styled sessions", "Sequenced gallery"},
	},
}

// ServiceCatalogue returns the static list of offered services.
func ServiceCatalogue() []models.ServiceInfo {
	return serviceCatalogue
}
