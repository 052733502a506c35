package services

// SampleQuotes returns demo documents covering the common states of a quote:
// a priced quotation, one still being typed in, and an invoiced one.
func SampleQuotes() []Quote {
	return []Quote{
		{
			Number:   "QT-ACME-25-26-001",
			Client:   Party{Name: "Acme Industries", Address: "12 MG Road, Bengaluru", PinCode: "560001", GSTIN: "29AAPFU0939F1ZV", Email: "accounts@acme.example"},
			Date:     "2025-06-02",
			Currency: "INR",
			Status:   "sent",
			TaxRate:  Parsed(18),
			Discount: Parsed(1000),
			Items: []LineItem{
				{ID: "design", Name: "Design", Unit: "Day", Quantity: Parsed(10), UnitPrice: Parsed(500), DiscountPercent: Parsed(0)},
				{ID: "dev", Name: "Dev", Unit: "Day", Quantity: Parsed(20), UnitPrice: Parsed(750), DiscountPercent: Parsed(5)},
			},
			Terms: "50% advance, balance on delivery.\nValid for 30 days.",
		},
		{
			Number:   "QT-25-26-002",
			Client:   Party{Name: "Globex Retail"},
			Date:     "2025-07-14",
			Currency: "INR",
			Status:   "draft",
			TaxRate:  Raw("12"),
			Discount: Empty(),
			Items: []LineItem{
				{ID: "shelving", Name: "Shelving units", Unit: "Nos", Quantity: Raw("8"), UnitPrice: Raw("4500"), DiscountPercent: Empty()},
				{ID: "install", Name: "Installation", Unit: "Lumpsum", Quantity: Raw("1"), UnitPrice: Raw("6000"), DiscountPercent: Raw("10")},
				{ID: "pending", Name: "", Unit: "Nos", Quantity: Raw("3"), UnitPrice: Raw("250")},
			},
			Notes: "Rates pending site survey.",
		},
		{
			Number:   "QT-INITECH-25-26-003",
			Client:   Party{Name: "Initech LLC", Email: "ap@initech.example"},
			Date:     "2025-09-30",
			Currency: "USD",
			Status:   "invoiced",
			TaxRate:  Parsed(0),
			Discount: Parsed(0),
			Items: []LineItem{
				{ID: "support", Name: "Support retainer", Unit: "Month", Quantity: Parsed(3), UnitPrice: Parsed(1200), DiscountPercent: Parsed(0)},
				{ID: "hours", Name: "Additional hours", Unit: "Hour", Quantity: Parsed(12.5), UnitPrice: Parsed(85), DiscountPercent: Parsed(0)},
			},
		},
	}
}
