package models

// Facets holds everything the field extractor pulls out of one document.
// JD and CV share the common facets; responsibilities are JD-only and
// role blocks / academic info are CV-centric.
type Facets struct {
	Role             DocumentRole
	Skills           []string
	Experience       ExperienceFact
	Compensation     *CompensationFact
	Responsibilities []string
	RoleBlocks       []RoleBlock
	DegreeLevel      DegreeLevel
	SoftSkillCues    []string
	Title            string
}

// ExperienceFact is the parsed years-of-experience signal. Years is nil
// when no reliable signal was found; callers must treat nil as unknown,
// never as zero years.
type ExperienceFact struct {
	Years *float64
}

// CompensationFact is a parsed salary expectation or offered band.
// Min and Max are normalized to absolute units of Currency (so "12 LPA"
// becomes 1200000 INR). Min equals Max for a single figure.
type CompensationFact struct {
	Min      float64
	Max      float64
	Currency string
	Original string
}

// RoleBlock is one prior-role section segmented out of a CV.
type RoleBlock struct {
	Title       string
	Company     string
	StartYear   int
	EndYear     int // current year when the range is open ("2021 - present")
	Description string
}

// DegreeLevel is the ordinal academic scale used for the academic
// sub-score. Higher values meet or exceed lower requirements.
type DegreeLevel int

const (
	DegreeNone DegreeLevel = iota
	DegreeDiploma
	DegreeBachelor
	DegreeMaster
	DegreeDoctorate
)

func (d DegreeLevel) String() string {
	switch d {
	case DegreeDiploma:
		return "diploma"
	case DegreeBachelor:
		return "bachelor"
	case DegreeMaster:
		return "master"
	case DegreeDoctorate:
		return "doctorate"
	default:
		return "none"
	}
}
