// Closed enum domains shared by the validation layer and the persistence
// mapping, so an out-of-domain string can never reach storage.
package model

type ProjectStatus string

const (
	StatusAvailable  ProjectStatus = "available"
	StatusSoldOut    ProjectStatus = "sold_out"
	StatusComingSoon ProjectStatus = "coming_soon"
)

var ProjectStatuses = []ProjectStatus{StatusAvailable, StatusSoldOut, StatusComingSoon}

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusSoldOut, StatusComingSoon:
		return true
	}
	return false
}

type PropertyType string

const (
	PropertyCommercial  PropertyType = "commercial"
	PropertyResidential PropertyType = "residential"
	PropertyPlot        PropertyType = "plot"
	PropertyLand        PropertyType = "land"
	PropertyMixedUse    PropertyType = "mixed_use"
)

var PropertyTypes = []PropertyType{
	PropertyCommercial, PropertyResidential, PropertyPlot, PropertyLand, PropertyMixedUse,
}

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyCommercial, PropertyResidential, PropertyPlot, PropertyLand, PropertyMixedUse:
		return true
	}
	return false
}

// AllowsRentalIncome reports whether projects of this type may carry
// rental income. Plot and land sales never do.
func (p PropertyType) AllowsRentalIncome() bool {
	return p != PropertyPlot && p != PropertyLand
}

type SchemeType string

const (
	SchemeSinglePayment SchemeType = "single_payment"
	SchemeInstallment   SchemeType = "installment"
)

func (s SchemeType) Valid() bool {
	return s == SchemeSinglePayment || s == SchemeInstallment
}
