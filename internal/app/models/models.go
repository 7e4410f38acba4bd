package models

// Fixed column names of the rank sheet
const (
	ColumnInstCode      = "Inst Code"
	ColumnInstituteName = "Institute Name"
	ColumnBranchCode    = "Branch Code"
	ColumnBranchName    = "Branch Name"
)

// RequiredColumns must be present in every rank sheet
var RequiredColumns = []string{ColumnInstCode, ColumnInstituteName, ColumnBranchCode}

// CategoryColumn is one of the caste/gender rank-cutoff columns
type CategoryColumn string

// Category column constants
const (
	CategoryOCBoys     CategoryColumn = "OC BOYS"
	CategoryOCGirls    CategoryColumn = "OC GIRLS"
	CategoryBCABoys    CategoryColumn = "BC_A BOYS"
	CategoryBCAGirls   CategoryColumn = "BC_A GIRLS"
	CategoryBCBBoys    CategoryColumn = "BC_B BOYS"
	CategoryBCBGirls   CategoryColumn = "BC_B GIRLS"
	CategoryBCCBoys    CategoryColumn = "BC_C BOYS"
	CategoryBCCGirls   CategoryColumn = "BC_C GIRLS"
	CategoryBCDBoys    CategoryColumn = "BC_D BOYS"
	CategoryBCDGirls   CategoryColumn = "BC_D GIRLS"
	CategoryBCEBoys    CategoryColumn = "BC_E BOYS"
	CategoryBCEGirls   CategoryColumn = "BC_E GIRLS"
	CategorySCBoys     CategoryColumn = "SC BOYS"
	CategorySCGirls    CategoryColumn = "SC GIRLS"
	CategorySTBoys     CategoryColumn = "ST BOYS"
	CategorySTGirls    CategoryColumn = "ST GIRLS"
	CategoryEWSGenOU   CategoryColumn = "EWS GEN OU"
	CategoryEWSGirlsOU CategoryColumn = "EWS GIRLS OU"
)

var categoryColumns = [...]CategoryColumn{
	CategoryOCBoys, CategoryOCGirls,
	CategoryBCABoys, CategoryBCAGirls,
	CategoryBCBBoys, CategoryBCBGirls,
	CategoryBCCBoys, CategoryBCCGirls,
	CategoryBCDBoys, CategoryBCDGirls,
	CategoryBCEBoys, CategoryBCEGirls,
	CategorySCBoys, CategorySCGirls,
	CategorySTBoys, CategorySTGirls,
	CategoryEWSGenOU, CategoryEWSGirlsOU,
}

// CategoryColumns returns the category columns in display order.
// The returned slice is a copy.
func CategoryColumns() []CategoryColumn {
	out := make([]CategoryColumn, len(categoryColumns))
	copy(out, categoryColumns[:])
	return out
}

// IsCategoryColumn reports whether name is one of the enumerated category columns
func IsCategoryColumn(name string) bool {
	for _, c := range categoryColumns {
		if string(c) == name {
			return true
		}
	}
	return false
}
