package domain

// Category vocabularies, conditioned on transaction kind. The vocabulary is
// advisory for clients building pickers; persistence only requires a non-empty
// category so older records with retired labels keep loading.

var IncomeCategories = []string{
	"Salary",
	"Freelance",
	"Investments",
	"Business",
	"Gifts",
	"Other Income",
}

var ExpenseCategories = []string{
	"Groceries",
	"Entertainment",
	"Transportation",
	"Utilities",
	"Healthcare",
	"Shopping",
	"Dining",
	"Education",
	"Housing",
	"Other Expense",
}

// CategoriesForKind returns the vocabulary for the given kind.
func CategoriesForKind(kind TransactionKind) []string {
	if kind == KindIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}
