package storage

// SampleRecords returns the fixed starter data set used when no transaction
// file exists yet. Pure function: the load path always receives a concrete
// record sequence, real or sample.
func SampleRecords() []Record {
	return []Record{
		{ID: 1, Date: "2025-01-03", Amount: 3000.00, Category: "Salary", Type: "income", Description: "Monthly salary"},
		{ID: 2, Date: "2025-01-05", Amount: 45.20, Category: "Groceries", Type: "expense", Description: "Walmart shopping"},
		{ID: 3, Date: "2025-01-10", Amount: 120.00, Category: "Utilities", Type: "expense", Description: "Electricity bill"},
		{ID: 4, Date: "2025-02-01", Amount: 3000.00, Category: "Salary", Type: "income", Description: "Monthly salary"},
		{ID: 5, Date: "2025-02-12", Amount: 250.00, Category: "Shopping", Type: "expense", Description: "New jacket"},
		{ID: 6, Date: "2025-02-20", Amount: 12.00, Category: "Coffee", Type: "expense", Description: "Coffee shop"},
		{ID: 7, Date: "2025-03-01", Amount: 3000.00, Category: "Salary", Type: "income", Description: "Monthly salary"},
		{ID: 8, Date: "2025-03-14", Amount: 600.00, Category: "Rent", Type: "expense", Description: "March rent"},
	}
}
