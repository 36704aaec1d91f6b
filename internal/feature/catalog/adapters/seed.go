package adapters

import (
	"globalhub_backend/internal/feature/catalog/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedCatalog loads the initial catalog content. Existing rows are left
// untouched so operators can edit the catalog after the first boot.
func SeedCatalog(db *gorm.DB) error {
	products := []entity.Product{
		{ID: "p1", Name: "IAR Logo T-Shirt - White", Price: 10.00, Category: entity.CategoryApparel,
			Description: "Classic white t-shirt featuring the official IAR (International & Alumni Relations Office) logo.",
			Image:       "/images/iar-tshirt-white.png", IsActive: true, SortKey: 1},
		{ID: "p2", Name: "IAR Logo T-Shirt - Lime Green", Price: 10.00, Category: entity.CategoryApparel,
			Description: "Vibrant lime green t-shirt showcasing the IAR logo in bold blue.",
			Image:       "/images/iar-tshirt-lime.png", IsActive: true, SortKey: 2},
		{ID: "p3", Name: "IAR Logo T-Shirt - Yellow", Price: 10.00, Category: entity.CategoryApparel,
			Description: "Bright yellow t-shirt with the iconic IAR logo featuring the globe and graduation cap.",
			Image:       "/images/iar-tshirt-yellow.png", IsActive: true, SortKey: 3},
		{ID: "p4", Name: "MSU Alumni Reunion 2026 T-Shirt", Price: 10.00, Category: entity.CategoryApparel,
			Description: "Commemorative white t-shirt for the MSU Alumni Reunion 2026.",
			Image:       "/images/reunion-2026-tshirt.png", IsActive: true, SortKey: 4},
	}

	events := []entity.Event{
		{ID: "e5", Title: "MSU Alumni Reunion 2025", Date: "March 06, 2026", Time: "09:30 AM - 5:00 PM",
			Location: "Main Campus Gweru", Category: "Social",
			Description: "A full day celebration of global community and local culture.",
			Image:       "/images/reunion.jpg", IsActive: true, SortKey: 1},
		{ID: "e1", Title: "International Coffee Hour", Date: "March 28, 2024", Time: "2:00 PM - 4:00 PM",
			Location: "Gweru Main Campus, IRO Lounge", Category: "Social",
			Description: "Connect with international students over coffee and traditional Zimbabwean snacks.",
			Image:       "/images/coffee-hour.jpg", IsActive: true, SortKey: 2},
		{ID: "e2", Title: "Alumni Networking Night", Date: "April 05, 2024", Time: "6:00 PM - 9:00 PM",
			Location: "Meikles Hotel, Harare", Category: "Networking",
			Description: "An exclusive evening for final year students and alumni to network.",
			Image:       "/images/networking.jpg", IsActive: true, SortKey: 3},
		{ID: "e3", Title: "Innovation Hub Workshop", Date: "April 12, 2024", Time: "10:00 AM - 1:00 PM",
			Location: "Zvishavane Campus Hub", Category: "Academic",
			Description: "Hands-on workshop on starting tech-ventures in the SADC region.",
			Image:       "/images/workshop.jpg", IsActive: true, SortKey: 4},
		{ID: "e4", Title: "Great Zimbabwe Cultural Tour", Date: "April 20, 2024", Time: "Full Day",
			Location: "Departure from Gweru Main", Category: "Cultural",
			Description: "A guided immersion tour to the Great Zimbabwe Ruins.",
			Image:       "/images/tour.jpg", IsActive: true, SortKey: 5},
	}

	jobs := []entity.Job{
		{ID: "j1", Title: "International Relations Intern", Company: "UNICEF Zimbabwe",
			Location: "Harare, Zimbabwe", HasHelpBadge: true,
			AlumniName: "Dr. Chipo Rugare", AlumniRole: "Head of IRO",
			Description: "Supporting the socio-cultural integration of international students.",
			IsActive:    true, SortKey: 1},
		{ID: "j2", Title: "Cultural Immersion Coordinator", Company: "Antelope Park",
			Location: "Gweru, Zimbabwe", HasHelpBadge: true,
			AlumniName: "Gift Zulu", AlumniRole: "Manager",
			Description: "Liaising between international researchers and local tourism facilities.",
			IsActive:    true, SortKey: 2},
		{ID: "j3", Title: "Data Analyst (Diplomacy)", Company: "SADC Secretariat",
			Location: "Gaborone, Botswana", HasHelpBadge: false,
			Description: "Analyzing regional trade patterns and diplomatic relations.",
			IsActive:    true, SortKey: 3},
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error; err != nil {
		return err
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&events).Error; err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&jobs).Error
}
