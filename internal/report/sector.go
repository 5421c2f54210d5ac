package report

import "strings"

// sectorNoise marks labels that describe index membership, margin trading or
// cross-market connect eligibility rather than an industry.
var sectorNoise = []string{"MSCI", "标普", "同花顺", "融资融券", "沪股通"}

// FilterSector drops labels containing any noise keyword.
func FilterSector(sectors []string) []string {
	out := make([]string, 0, len(sectors))
	for _, s := range sectors {
		noisy := false
		for _, k := range sectorNoise {
			if strings.Contains(s, k) {
				noisy = true
				break
			}
		}
		if !noisy {
			out = append(out, s)
		}
	}
	return out
}
