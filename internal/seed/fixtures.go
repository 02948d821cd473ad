package seed

import "github.com/relieflabs/aid-receipts/internal/models"

// Demo packages cover every urgency/status combination the priority engine
// distinguishes. Descriptions are written to exercise category detection:
// hospital and NGO packages match medicine keywords, retail matches clothes,
// luxury matches fancy, warehouse matches nothing.
func demoPackages() []models.Package {
	return []models.Package{
		{
			PackageID:   "DEMO-001-HOSPITAL-CRIT",
			Destination: "City Hospital, Emergency Ward",
			Urgency:     models.UrgencyCritical,
			Status:      models.PackageStatusInTransit,
			Description: "Emergency medical supplies: antibiotic stock and surgical dressings",
		},
		{
			PackageID:   "DEMO-002-NGO-CRIT",
			Destination: "Relief NGO, Disaster Zone",
			Urgency:     models.UrgencyCritical,
			Status:      models.PackageStatusInTransit,
			Description: "First aid kits and trauma medicine for field teams",
		},
		{
			PackageID:   "DEMO-003-NGO-PREF",
			Destination: "Community Health NGO, Rural Center",
			Urgency:     models.UrgencyPreferred,
			Status:      models.PackageStatusInTransit,
			Description: "Community health medicine restock, tablet blister packs",
		},
		{
			PackageID:   "DEMO-004-WAREHOUSE-FLEX",
			Destination: "Regional Warehouse, Storage Zone",
			Urgency:     models.UrgencyFlexible,
			Status:      models.PackageStatusInTransit,
			Description: "Bulk storage pallets for regional inventory",
		},
		{
			PackageID:   "DEMO-005-RETAIL-DELAYED",
			Destination: "Retail Store, Downtown",
			Urgency:     models.UrgencyCritical,
			Status:      models.PackageStatusDelayed,
			Description: "Winter clothes shipment: jackets and t-shirt cartons",
		},
		{
			PackageID:   "DEMO-006-LUXURY-DELIVERED",
			Destination: "Luxury Boutique, Upscale District",
			Urgency:     models.UrgencyFlexible,
			Status:      models.PackageStatusDelivered,
			Description: "Luxury perfume collection, exclusive release",
		},
		{
			PackageID:   "DEMO-007-GOVT-CRIT",
			Destination: "Government Health Center, Central",
			Urgency:     models.UrgencyCritical,
			Status:      models.PackageStatusInTransit,
			Description: "Government medical shipment: vaccine cold chain and drug supplies",
		},
		{
			PackageID:   "DEMO-008-RETAIL-PREF",
			Destination: "Fashion Retail, Shopping Mall",
			Urgency:     models.UrgencyPreferred,
			Status:      models.PackageStatusInTransit,
			Description: "Seasonal dress collection from fair-trade fabric suppliers",
		},
		{
			PackageID:   "DEMO-009-LUXURY-FLEX",
			Destination: "Art Gallery, Cultural Center",
			Urgency:     models.UrgencyFlexible,
			Status:      models.PackageStatusInTransit,
			Description: "Handcrafted jewelry pieces for the gallery exhibition",
		},
		{
			PackageID:   "DEMO-010-NGO-CRIT-MED",
			Destination: "Medical NGO, Emergency Response",
			Urgency:     models.UrgencyCritical,
			Status:      models.PackageStatusInTransit,
			Description: "Emergency response medicine and first aid consumables",
		},
	}
}

// Demo receipts pair with the demo packages and cover every disaster type in
// the harm score table plus the no-disaster baseline.
func demoReceipts() []models.Receipt {
	return []models.Receipt{
		{
			ReceiptID:    "RECEIPT-001-HOSPITAL",
			PackageID:    "DEMO-001-HOSPITAL-CRIT",
			ProofSummary: "Emergency medical supplies verified by City Hospital. Delivery confirmed with signature from ER Director. Ethically sourced from WHO-approved supplier.",
			Status:       models.ReceiptStatusVerified,
			DisasterType: "flood",
		},
		{
			ReceiptID:    "RECEIPT-002-NGO",
			PackageID:    "DEMO-002-NGO-CRIT",
			ProofSummary: "Disaster relief supplies awaiting verification. Sent to Relief NGO, verification documents submitted.",
			Status:       models.ReceiptStatusPending,
			DisasterType: "earthquake",
		},
		{
			ReceiptID:    "RECEIPT-003-COMMUNITY-NGO",
			PackageID:    "DEMO-003-NGO-PREF",
			ProofSummary: "Community health supplies verified by Community Health NGO. Rural center received package. Ethical sourcing verified from certified suppliers.",
			Status:       models.ReceiptStatusVerified,
			DisasterType: "cyclone",
		},
		{
			ReceiptID:    "RECEIPT-004-WAREHOUSE",
			PackageID:    "DEMO-004-WAREHOUSE-FLEX",
			ProofSummary: "Storage facility received goods. Verification in progress for regional warehouse inventory.",
			Status:       models.ReceiptStatusPending,
		},
		{
			ReceiptID:    "RECEIPT-005-RETAIL",
			PackageID:    "DEMO-005-RETAIL-DELAYED",
			ProofSummary: "Retail store received clothing shipment. Verified delivery with photos. Fair-trade sourcing confirmed.",
			Status:       models.ReceiptStatusVerified,
			DisasterType: "landslide",
		},
		{
			ReceiptID:    "RECEIPT-006-LUXURY",
			PackageID:    "DEMO-006-LUXURY-DELIVERED",
			ProofSummary: "Luxury boutique received exclusive collection. Quality inspection completed. Ethically produced by certified artisans.",
			Status:       models.ReceiptStatusVerified,
		},
		{
			ReceiptID:    "RECEIPT-007-GOVT",
			PackageID:    "DEMO-007-GOVT-CRIT",
			ProofSummary: "Government health center medical shipment awaiting final verification. Initial inspection passed.",
			Status:       models.ReceiptStatusPending,
			DisasterType: "flood",
		},
		{
			ReceiptID:    "RECEIPT-008-FASHION",
			PackageID:    "DEMO-008-RETAIL-PREF",
			ProofSummary: "Fashion retail received seasonal collection. Verified delivery from ethical supplier. Labor conditions certified as fair.",
			Status:       models.ReceiptStatusVerified,
			DisasterType: "storm",
		},
		{
			ReceiptID:    "RECEIPT-009-GALLERY",
			PackageID:    "DEMO-009-LUXURY-FLEX",
			ProofSummary: "Art gallery received cultural items. Artwork authenticated and ethically sourced from established artists.",
			Status:       models.ReceiptStatusVerified,
		},
		{
			ReceiptID:    "RECEIPT-010-MEDICAL-NGO",
			PackageID:    "DEMO-010-NGO-CRIT-MED",
			ProofSummary: "Medical emergency supplies sent to NGO emergency response unit. Verification documents being processed.",
			Status:       models.ReceiptStatusPending,
			DisasterType: "earthquake",
		},
	}
}
