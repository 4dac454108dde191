package memory

import (
	"time"

	"github.com/elysianestates/crm-api/internal/entity"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// SeedLeads is the initial client registry supplied at process start. In a
// persisted deployment the same shapes come out of Postgres instead.
func SeedLeads() []*entity.Lead {
	now := time.Now()

	return []*entity.Lead{
		{
			ID:                     "L1",
			Name:                   "Rajesh Malhotra",
			Email:                  "rajesh.m@privateoffice.ae",
			Phone:                  "+971 50 221 8890",
			Location:               "Dubai, UAE",
			Citizenship:            "NRI (UAE)",
			NetWorth:               "$120M+",
			InvestmentBudget:       "$15M - $25M",
			Status:                 entity.StatusNegotiation,
			PreferredPropertyTypes: []string{"Penthouse", "Sea-Facing"},
			LastInteraction:        "Site visit completed last Tuesday",
			Notes:                  "Prefers off-market deals. Decision maker is his family office in DIFC. Wants vastu-compliant layouts.",
			DealValue:              floatPtr(18_500_000),
			Probability:            intPtr(65),
			AssignedPropertyID:     "P1",
			CreatedAt:              now,
			UpdatedAt:              now,
		},
		{
			ID:                     "L2",
			Name:                   "Meera Krishnan-Hale",
			Email:                  "meera.kh@sterlingcap.co.uk",
			Phone:                  "+44 7700 900321",
			Location:               "London, UK",
			Citizenship:            "NRI (UK)",
			NetWorth:               "$80M",
			InvestmentBudget:       "$8M - $12M",
			Status:                 entity.StatusQualified,
			PreferredPropertyTypes: []string{"Heritage Villa", "Golf Estate"},
			LastInteraction:        "Video consultation, 3 days ago",
			Notes:                  "Buying for her parents' return to India. Sensitive to privacy; no broker chains.",
			Probability:            intPtr(40),
			CreatedAt:              now,
			UpdatedAt:              now,
		},
		{
			ID:                     "L3",
			Name:                   "Arman Qureshi",
			Email:                  "aq@qholdings.sg",
			Phone:                  "+65 8123 4567",
			Location:               "Singapore",
			Citizenship:            "Indian",
			NetWorth:               "$300M+",
			InvestmentBudget:       "$30M+",
			Status:                 entity.StatusUnderContract,
			PreferredPropertyTypes: []string{"Penthouse", "Private Island"},
			LastInteraction:        "Term sheet shared yesterday",
			Notes:                  "Third acquisition with us. Moves fast once legal clears. Payment via SG holding entity.",
			DealValue:              floatPtr(32_000_000),
			Probability:            intPtr(85),
			AssignedPropertyID:     "P3",
			CreatedAt:              now,
			UpdatedAt:              now,
		},
		{
			ID:                     "L4",
			Name:                   "Priya Venkatesh",
			Email:                  "priya.v@gmail.com",
			Phone:                  "+91 98200 11223",
			Location:               "Mumbai, India",
			Citizenship:            "Indian",
			NetWorth:               "$45M",
			InvestmentBudget:       "$5M - $8M",
			Status:                 entity.StatusProspect,
			PreferredPropertyTypes: []string{"Sky Villa"},
			LastInteraction:        "Inbound enquiry via referral",
			Notes:                  "Referred by L3. Early stage; exploring a second home in Alibaug or Goa.",
			Probability:            intPtr(20),
			CreatedAt:              now,
			UpdatedAt:              now,
		},
		{
			ID:                     "L5",
			Name:                   "Vikram Sethi",
			Email:                  "vikram@sethifamily.com",
			Phone:                  "+1 (650) 555-0144",
			Location:               "Palo Alto, USA",
			Citizenship:            "NRI (USA)",
			NetWorth:               "$95M",
			InvestmentBudget:       "$10M - $14M",
			Status:                 entity.StatusClosed,
			PreferredPropertyTypes: []string{"Golf Estate"},
			LastInteraction:        "Deal closed two weeks ago",
			Notes:                  "Closed on the Oberoi greens estate. Open to a Dubai pied-à-terre next year.",
			DealValue:              floatPtr(11_200_000),
			Probability:            intPtr(100),
			AssignedPropertyID:     "P4",
			CreatedAt:              now,
			UpdatedAt:              now,
		},
		{
			ID:                     "L6",
			Name:                   "Anastasia Rao",
			Email:                  "arao@meridianpartners.hk",
			Phone:                  "+852 9012 3344",
			Location:               "Hong Kong",
			Citizenship:            "OCI",
			NetWorth:               "$60M",
			InvestmentBudget:       "$6M - $9M",
			Status:                 entity.StatusSiteVisit,
			PreferredPropertyTypes: []string{"Sea-Facing", "Penthouse"},
			LastInteraction:        "Site visit scheduled this weekend",
			Notes:                  "Wants rental-yield numbers alongside lifestyle pitch. Travels monthly to Mumbai.",
			Probability:            intPtr(45),
			CreatedAt:              now,
			UpdatedAt:              now,
		},
	}
}

// SeedProperties is the curated luxury inventory.
func SeedProperties() []*entity.Property {
	return []*entity.Property{
		{
			ID:           "P1",
			Title:        "The Pinnacle Penthouse, Worli",
			Location:     "Mumbai, India",
			Price:        "$18.5M",
			NumericPrice: 18_500_000,
			Sqft:         11200,
			Beds:         5,
			Baths:        7,
			Image:        "https://images.elysianestates.com/p1.jpg",
			Amenities:    []string{"Private Infinity Pool", "360° Sea View", "Six-Car Garage", "Dedicated Elevator"},
			Description:  "A full-floor penthouse crowning Worli's tallest residential tower, with uninterrupted Arabian Sea views.",
		},
		{
			ID:           "P2",
			Title:        "Emirates Hills Signature Villa",
			Location:     "Dubai, UAE",
			Price:        "$22.0M",
			NumericPrice: 22_000_000,
			Sqft:         18500,
			Beds:         7,
			Baths:        9,
			Image:        "https://images.elysianestates.com/p2.jpg",
			Amenities:    []string{"Lake Frontage", "Private Cinema", "Wellness Spa", "Staff Quarters"},
			Description:  "A lake-fronting estate on the most coveted plot in Emirates Hills, rebuilt in 2023 by a Milanese studio.",
		},
		{
			ID:           "P3",
			Title:        "One Hyde Park Sky Residence",
			Location:     "London, UK",
			Price:        "$34.0M",
			NumericPrice: 34_000_000,
			Sqft:         9400,
			Beds:         4,
			Baths:        5,
			Image:        "https://images.elysianestates.com/p3.jpg",
			Amenities:    []string{"Mandarin Oriental Services", "Panic Suite", "Bulletproof Glazing", "Wine Vault"},
			Description:  "An upper-floor residence with hotel servicing and park views, held off-market at the vendor's request.",
		},
		{
			ID:           "P4",
			Title:        "Oberoi Greens Golf Estate",
			Location:     "Gurgaon, India",
			Price:        "$11.2M",
			NumericPrice: 11_200_000,
			Sqft:         14800,
			Beds:         6,
			Baths:        8,
			Image:        "https://images.elysianestates.com/p4.jpg",
			Amenities:    []string{"Fairway Frontage", "Temperature-Controlled Pool", "Home Theatre", "Vastu Compliant"},
			Description:  "A fairway-fronting estate inside the gated championship course, five minutes from the aerocity.",
		},
	}
}
