package pipeline

import "strings"

// Discovery defaults used when no keyword table hits.
const (
	IndustryGeneral = "general"

	ScaleEnterprise = "enterprise"
	ScaleMidmarket  = "midmarket"
	ScaleSME        = "sme"

	UrgencyUrgent   = "urgent"
	UrgencyStandard = "standard"
)

// industryTable maps industry labels to lookup keywords. Iterated in slice
// order so classification is deterministic.
var industryTable = []struct {
	industry string
	keywords []string
}{
	{"manufacturing", []string{"manufactur", "plant", "factory", "production", "industrial"}},
	{"financial", []string{"bank", "finance", "financial", "insurance", "lending"}},
	{"retail", []string{"retail", "ecommerce", "store", "pos", "inventory"}},
	{"healthcare", []string{"healthcare", "hospital", "clinic", "patient", "pharma"}},
	{"public sector", []string{"government", "public sector", "municipal", "tender portal", "psu"}},
}

var enterpriseMarkers = []string{"enterprise", "corporation", "multinational", "limited", "ltd", "global"}
var midmarketMarkers = []string{"company", "business", "organization", "organisation"}

var urgencyMarkers = []string{"urgent", "immediate", "asap", "expedite", "fast-track"}

// Discover classifies free-text input into coarse RFP metadata via keyword
// lookup tables. A provided industry hint wins over classification.
func Discover(raw RawRFP) Discovery {
	lower := strings.ToLower(raw.Text)

	industry := strings.ToLower(strings.TrimSpace(raw.Industry))
	if industry == "" {
		industry = IndustryGeneral
		for _, entry := range industryTable {
			if containsAny(lower, entry.keywords) {
				industry = entry.industry
				break
			}
		}
	}

	scale := ScaleSME
	if containsAny(lower, enterpriseMarkers) {
		scale = ScaleEnterprise
	} else if containsAny(lower, midmarketMarkers) {
		scale = ScaleMidmarket
	}

	urgency := UrgencyStandard
	if containsAny(lower, urgencyMarkers) {
		urgency = UrgencyUrgent
	}

	return Discovery{
		Industry: industry,
		Scale:    scale,
		Urgency:  urgency,
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
