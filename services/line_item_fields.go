package services

// TemplateField describes one column of a line-item import file.
type TemplateField struct {
	Key            string   // LineItem JSON field name
	Label          string   // header shown in the spreadsheet
	Aliases        []string // other accepted headers, lower case
	Description    string   // shown on the Instructions sheet
	FormatRule     string
	ExampleValue   string
	AlwaysRequired bool
	Numeric        bool
}

// LineItemTemplateFields returns the ordered columns of the line-item import
// template.
func LineItemTemplateFields() []TemplateField {
	return []TemplateField{
		{Key: "name", Label: "Item", Aliases: []string{"name", "description", "item name", "service"}, Description: "Goods or service being quoted; rows without it are not totalled", ExampleValue: "Website design", AlwaysRequired: true},
		{Key: "unit", Label: "Unit", Aliases: []string{"uom", "unit of measure"}, Description: "Unit of measure (select from dropdown)", ExampleValue: "Nos"},
		{Key: "quantity", Label: "Quantity", Aliases: []string{"qty"}, Description: "Number of units; blank counts as 0", FormatRule: "Number", ExampleValue: "10", Numeric: true},
		{Key: "unit_price", Label: "Unit Price", Aliases: []string{"rate", "price", "unit rate"}, Description: "Price per unit before discount; blank counts as 0", FormatRule: "Number", ExampleValue: "500", Numeric: true},
		{Key: "discount_percent", Label: "Discount %", Aliases: []string{"discount", "discount (%)", "disc %"}, Description: "Line discount as a percentage of quantity x unit price", FormatRule: "Number, usually 0-100", ExampleValue: "5", Numeric: true},
	}
}
