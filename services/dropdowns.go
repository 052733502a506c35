package services

// UOMOptions returns the list of Unit of Measurement options.
var UOMOptions = []string{
	"Nos",
	"Sqm",
	"Sqft",
	"Rmt",
	"Cum",
	"Kg",
	"MT",
	"Lot",
	"Set",
	"Lumpsum",
	"Ltr",
	"Pair",
	"Bag",
	"Box",
	"Roll",
	"Bundle",
	"Trip",
	"Day",
	"Month",
	"Hour",
}

// TaxRateOptions lists the GST slabs offered as tax rates.
var TaxRateOptions = []int{0, 5, 12, 18, 28}
