package models

import "sort"

var branchNames = map[string]string{
	"AGR": "Agricultural Engineering",
	"AI":  "Artificial Intelligence",
	"AID": "AI & Data Science",
	"AIM": "AI & Machine Learning",
	"ANE": "Automobile Engineering",
	"AUT": "Automation",
	"BIO": "Biotechnology",
	"BME": "Biomedical Engineering",
	"BSE": "Biological Systems Engg",
	"CHE": "Chemical Engineering",
	"CIC": "Computer and Info. Science",
	"CIV": "Civil Engineering",
	"CME": "Computer Engineering",
	"CSA": "CS and Applications",
	"CSB": "CS and Business Systems",
	"CSC": "CS and Cyber Security",
	"CSD": "CS and Design",
	"CSE": "Computer Science Engineering",
	"CSG": "CS and Game Design",
	"CSI": "CS and IT",
	"CSM": "CS and ML",
	"CSN": "CS and Networks",
	"CSO": "CS and Optimization",
	"CSW": "CS and Web Tech",
	"DRG": "Drug Technology",
	"DTD": "Design Tech",
	"ECE": "Electronics & Comm Engg",
	"ECI": "Electronics & Computer Engg",
	"ECM": "Electronics & Comm. Mgmt",
	"EEE": "Electrical & Electronics Engg",
	"EIE": "Electronics & Instrumentation",
	"ETM": "Embedded Tech and Mgmt",
	"EVL": "Environmental Engg",
	"FDT": "Fashion Design Tech",
	"GEO": "Geoinformatics",
	"INF": "Information Technology",
	"MCT": "Mechatronics",
	"MEC": "Mechanical Engineering",
	"MET": "Metallurgy",
	"MIN": "Mining Engineering",
	"MMS": "Materials Science",
	"MMT": "Manufacturing Mgmt",
	"MTE": "Medical Technology",
	"PHE": "Pharmaceutical Engg",
	"PLG": "Plastic Technology",
	"TEX": "Textile Engineering",
}

// BranchName resolves a branch code to its display name.
// Unknown codes return ok == false.
func BranchName(code string) (name string, ok bool) {
	name, ok = branchNames[code]
	return name, ok
}

// BranchCodes returns all known branch codes in ascending order
func BranchCodes() []string {
	codes := make([]string, 0, len(branchNames))
	for code := range branchNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// BranchOption is a branch code paired with its display label
type BranchOption struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// NewBranchOptions pairs each code with its resolved name, keeping the input order
func NewBranchOptions(codes []string) []BranchOption {
	options := make([]BranchOption, 0, len(codes))
	for _, code := range codes {
		name, _ := BranchName(code)
		options = append(options, BranchOption{Code: code, Name: name})
	}
	return options
}
