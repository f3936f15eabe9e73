package catalog

import "rebel-hub/internal/domain"

// Seed returns the initial product catalog. The store persists it on first
// read; afterwards stock levels diverge from these values as orders are
// placed.
func Seed() []domain.Product {
	return []domain.Product{
		{
			ID: "m1", Name: "Paracetamol 500mg (Bulk)", Manufacturer: "PharmaCore Labs",
			PricePerUnit: 2.50, MinOrderQuantity: 500, StockLevel: 25000, Category: "Analgesics",
			Image:     "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?auto=format&fit=crop&q=80&w=600&h=450",
			Packaging: "Box of 10 Strips x 10 Tabs",
			BulkDiscounts: []domain.BulkDiscount{
				{MinQty: 1000, DiscountPercent: 0.05},
				{MinQty: 5000, DiscountPercent: 0.12},
			},
		},
		{
			ID: "m2", Name: "Amoxicillin 250mg Capsules", Manufacturer: "Global Antibiotics",
			PricePerUnit: 8.75, MinOrderQuantity: 200, StockLevel: 15000, Category: "Antibiotics",
			Image:     "https://images.unsplash.com/photo-1471864190281-ad5fe9bb0724?auto=format&fit=crop&q=80&w=600&h=450",
			Packaging: "Bottle of 100 Caps",
			BulkDiscounts: []domain.BulkDiscount{
				{MinQty: 1000, DiscountPercent: 0.08},
				{MinQty: 3000, DiscountPercent: 0.15},
			},
		},
		{
			ID: "m3", Name: "Vitamin C 1000mg Effervescent", Manufacturer: "Vitality Nutra",
			PricePerUnit: 4.20, MinOrderQuantity: 300, StockLevel: 8000, Category: "Supplements",
			Image:     "https://images.unsplash.com/photo-1616671285410-093110298a03?auto=format&fit=crop&q=80&w=600&h=450",
			Packaging: "Tube of 20 Tabs",
			BulkDiscounts: []domain.BulkDiscount{
				{MinQty: 1000, DiscountPercent: 0.05},
			},
		},
		{
			ID: "m4", Name: "Insulin Glargine 100U/mL", Manufacturer: "BioGenics",
			PricePerUnit: 45.00, MinOrderQuantity: 50, StockLevel: 2000, Category: "Endocrinology",
			Image:     "https://images.unsplash.com/photo-1579165466541-74e2149581ae?auto=format&fit=crop&q=80&w=600&h=450",
			Packaging: "Carton of 5 Pens",
		},
		{ID: "m5", Name: "Ibuprofen 400mg Tablets", Manufacturer: "PainRelief Inc.", PricePerUnit: 3.10, MinOrderQuantity: 400, StockLevel: 12000, Category: "Analgesics", Image: "https://images.unsplash.com/photo-1550572017-ed20015a323b?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Box of 50 Tabs"},
		{ID: "m6", Name: "Metformin 500mg Tablets", Manufacturer: "DiabeTech", PricePerUnit: 1.80, MinOrderQuantity: 1000, StockLevel: 50000, Category: "Endocrinology", Image: "https://images.unsplash.com/photo-1585435557343-3b092031a831?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Box of 100 Strips"},
		{ID: "m7", Name: "Atorvastatin 20mg Tablets", Manufacturer: "HeartCare Pharm", PricePerUnit: 12.50, MinOrderQuantity: 100, StockLevel: 5000, Category: "Cardiovascular", Image: "https://images.unsplash.com/photo-1607619056574-7b8d3ee536b2?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Blister Pack of 30"},
		{ID: "m8", Name: "Lisinopril 10mg Tablets", Manufacturer: "PureHealth Labs", PricePerUnit: 4.50, MinOrderQuantity: 250, StockLevel: 10000, Category: "Cardiovascular", Image: "https://images.unsplash.com/photo-1587854692152-cbe660dbbb88?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Strip of 10 Tabs"},
		{ID: "m9", Name: "Azithromycin 500mg", Manufacturer: "Global Antibiotics", PricePerUnit: 15.20, MinOrderQuantity: 100, StockLevel: 3000, Category: "Antibiotics", Image: "https://images.unsplash.com/photo-1512069772995-ec65ed45afd6?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Pack of 3 Tablets"},
		{ID: "m10", Name: "Aspirin 81mg Low Dose", Manufacturer: "PharmaCore Labs", PricePerUnit: 1.10, MinOrderQuantity: 2000, StockLevel: 100000, Category: "Analgesics", Image: "https://images.unsplash.com/photo-1547489432-cf93fa6c71ee?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Bulk Bottle of 500"},
		{ID: "m11", Name: "Omeprazole 20mg Caps", Manufacturer: "GastroGuard", PricePerUnit: 6.40, MinOrderQuantity: 500, StockLevel: 18000, Category: "Gastroenterology", Image: "https://images.unsplash.com/photo-1626414302636-f082be05e320?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Bottle of 30 Caps"},
		{ID: "m12", Name: "Amlodipine 5mg Tablets", Manufacturer: "HeartCare Pharm", PricePerUnit: 3.80, MinOrderQuantity: 600, StockLevel: 22000, Category: "Cardiovascular", Image: "https://images.unsplash.com/photo-1631549916768-4119b2e55c06?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Box of 100 Tabs"},
		{ID: "m13", Name: "Albuterol Inhaler 90mcg", Manufacturer: "BreatheFree", PricePerUnit: 35.00, MinOrderQuantity: 20, StockLevel: 1500, Category: "Respiratory", Image: "https://images.unsplash.com/photo-1582718885933-31f32a875a64?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Metered Dose Inhaler"},
		{ID: "m14", Name: "Levothyroxine 50mcg", Manufacturer: "ThyroSafe", PricePerUnit: 5.20, MinOrderQuantity: 300, StockLevel: 9000, Category: "Endocrinology", Image: "https://images.unsplash.com/photo-1550572017-ed20015a323b?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Bottle of 90"},
		{ID: "m15", Name: "Gabapentin 300mg Caps", Manufacturer: "NeuroRelief", PricePerUnit: 9.30, MinOrderQuantity: 200, StockLevel: 6000, Category: "Neurology", Image: "https://images.unsplash.com/photo-1512428559087-560ad5ceab42?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Box of 60 Caps"},
		{ID: "m16", Name: "Sertraline 50mg Tablets", Manufacturer: "MindWellness", PricePerUnit: 7.10, MinOrderQuantity: 400, StockLevel: 12000, Category: "Psychiatry", Image: "https://images.unsplash.com/photo-1542060775-10313f837364?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Strip of 14"},
		{ID: "m17", Name: "Losartan 50mg Tablets", Manufacturer: "PureHealth Labs", PricePerUnit: 5.90, MinOrderQuantity: 300, StockLevel: 11000, Category: "Cardiovascular", Image: "https://images.unsplash.com/photo-1555633514-abcee6ad93a1?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Box of 30"},
		{ID: "m18", Name: "Hydrochlorothiazide 25mg", Manufacturer: "FlowMed", PricePerUnit: 2.10, MinOrderQuantity: 1000, StockLevel: 45000, Category: "Cardiovascular", Image: "https://images.unsplash.com/photo-1550572017-617245458fd0?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Strip of 20"},
		{ID: "m19", Name: "Prednisone 10mg Tablets", Manufacturer: "PharmaCore Labs", PricePerUnit: 4.80, MinOrderQuantity: 500, StockLevel: 15000, Category: "Immunology", Image: "https://images.unsplash.com/photo-1583947215259-38e31be8751f?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Box of 50"},
		{ID: "m63", Name: "Paracetamol 650mg ER", Manufacturer: "PharmaCore Labs", PricePerUnit: 3.20, MinOrderQuantity: 300, StockLevel: 12000, Category: "Analgesics", Image: "https://images.unsplash.com/photo-1584017911766-d451b3d0e843?auto=format&fit=crop&q=80&w=600&h=450", Packaging: "Sheet Box (15 Strips x 10 Tabs)"},
	}
}
