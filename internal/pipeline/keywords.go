package pipeline

import "strings"

// categoryDictionary is one keyword dictionary with its category label.
// Dictionaries are consulted in slice order; the first dictionary with a hit
// wins, which encodes the compliance > technical > commercial tie-break.
type categoryDictionary struct {
	category string
	terms    map[string]struct{}
}

var categoryDictionaries = []categoryDictionary{
	{
		category: CategoryCompliance,
		terms: termSet(
			"compliance", "compliant", "certification", "certified", "audit",
			"regulatory", "regulation", "iso", "gdpr", "soc2", "hipaa", "pci",
			"standard", "standards", "policy", "retention",
		),
	},
	{
		category: CategoryTechnical,
		terms: termSet(
			"cloud", "infrastructure", "storage", "server", "servers",
			"security", "encryption", "authentication", "access", "firewall",
			"integration", "erp", "sap", "oracle", "api", "database",
			"network", "bandwidth", "connectivity", "data", "analytics",
			"reporting", "dashboard", "iot", "sensors", "automation",
			"migration", "backup", "recovery", "availability", "scalability",
			"platform", "monitoring", "hosting",
		),
	},
	{
		category: CategoryCommercial,
		terms: termSet(
			"price", "pricing", "cost", "costs", "budget", "payment",
			"discount", "invoice", "warranty", "licensing", "license",
			"subscription", "commercial", "quotation", "tender",
		),
	},
}

// stopwords are dropped during tokenization so requirement keyword sets carry
// only content-bearing terms.
var stopwords = termSet(
	"the", "and", "for", "with", "that", "this", "must", "shall", "should",
	"will", "would", "can", "could", "may", "our", "your", "their", "are",
	"was", "were", "has", "have", "had", "been", "being", "all", "any",
	"each", "its", "not", "but", "from", "into", "per", "via", "etc",
	"need", "needs", "require", "requires", "required", "requirement",
	"requirements", "provide", "provides", "support", "supports", "include",
	"includes", "including", "solution", "solutions", "system", "systems",
	"vendor", "vendors", "able", "ensure",
)

func termSet(terms ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[t] = struct{}{}
	}
	return set
}

// tokenize lowercases the statement and splits it into alphanumeric tokens.
func tokenize(statement string) []string {
	lower := strings.ToLower(statement)
	return strings.FieldsFunc(lower, func(r rune) bool {
		isLetter := r >= 'a' && r <= 'z'
		isDigit := r >= '0' && r <= '9'
		return !isLetter && !isDigit
	})
}

// statementKeywords returns the unique content-bearing tokens of a statement,
// in first-appearance order.
func statementKeywords(statement string) []string {
	tokens := tokenize(statement)
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) < 3 {
			continue
		}
		if _, skip := stopwords[tok]; skip {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// classify returns the category of the first dictionary containing any of the
// statement's tokens, or "" when no dictionary matches.
func classify(tokens []string) string {
	for _, dict := range categoryDictionaries {
		for _, tok := range tokens {
			if _, ok := dict.terms[tok]; ok {
				return dict.category
			}
		}
	}
	return ""
}
