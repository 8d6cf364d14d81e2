package allocator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rhyrak/ta-allocator/pkg/model"
)

// ValidateCatalog checks the rule catalog, override table and lab-only
// registry for data entry mistakes.
// Returns false and a report for invalid tables.
func ValidateCatalog(catalog *Catalog, overrides *OverrideTable, labOnly *LabOnlyRegistry) (bool, string) {
	var message string
	var valid bool = true
	var badOverrideCode bool = false
	var badLabOnlyCode bool = false
	var duplicateOverride bool = false
	var negativeHours bool = false
	var negativeAmount bool = false

	seen := make(map[string]bool)
	for _, o := range overrides.Entries() {
		if hasSpace(o.Course) || o.Course == "" {
			valid = false
			badOverrideCode = true
			message += fmt.Sprintf("- Special case %q must be a non-empty code without whitespace\n", o.Course)
		}
		if seen[o.Course] {
			valid = false
			duplicateOverride = true
			message += "- Special case " + o.Course + " defined multiple times\n"
		}
		seen[o.Course] = true
		if o.Amount < 0 {
			valid = false
			negativeAmount = true
			message += fmt.Sprintf("- Special case %s has negative amount %.1f\n", o.Course, o.Amount)
		}
	}

	for _, code := range labOnly.Codes() {
		if hasSpace(code) || code == "" {
			valid = false
			badLabOnlyCode = true
			message += fmt.Sprintf("- Lab-only course %q must be a non-empty code without whitespace\n", code)
		}
	}

	for _, tier := range []struct {
		name  string
		rules []model.AllocationRule
	}{
		{"undergraduate", catalog.Undergraduate},
		{"graduate", catalog.Graduate},
	} {
		for _, r := range tier.rules {
			if r.Hours < 0 {
				valid = false
				negativeHours = true
				message += fmt.Sprintf("- Rule %q (%s) has negative hours %.2f\n", r.Name, tier.name, r.Hours)
			}
		}
	}

	message = check(!negativeAmount, "Special case amount check.") + message
	message = check(!negativeHours, "Rule hours check.") + message
	message = check(!duplicateOverride, "Special case uniqueness check.") + message
	message = check(!badLabOnlyCode, "Lab-only course code check.") + message
	message = check(!badOverrideCode, "Special case course code check.") + message

	return valid, message
}

func check(ok bool, name string) string {
	if ok {
		return "[  OK]: " + name + "\n"
	}
	return "[FAIL]: " + name + "\n"
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
